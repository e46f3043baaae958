// Package migrations embeds the PostgreSQL schema migrations applied by
// golang-migrate (see infra.RunMigrations and `admin migrate`).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
