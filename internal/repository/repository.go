// Package repository is the GORM data access layer. Every repository is an
// interface backed by a private struct; methods suffixed Tx run on the
// transaction handle passed by the service.
package repository

import "strings"

// likeTermo builds a case-insensitive substring pattern for LOWER(col) LIKE ?.
// LOWER keeps the query portable between PostgreSQL and SQLite.
func likeTermo(termo string) string {
	return "%" + strings.ToLower(strings.TrimSpace(termo)) + "%"
}
