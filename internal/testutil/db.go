// Package testutil provides the throwaway SQLite database used by the
// repository, service and handler tests.
package testutil

import (
	"testing"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/infra"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory SQLite database with the full schema.
// A single connection is used, so code under test must run its queries on the
// transaction handle while a transaction is open.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.AutoMigrate(db))
	return db
}

// SeedFornecedor inserts a supplier with the given normalized CNPJ.
func SeedFornecedor(t *testing.T, db *gorm.DB, nome, cnpj string) *model.Fornecedor {
	t.Helper()
	f := &model.Fornecedor{Nome: nome, CNPJ: cnpj}
	require.NoError(t, db.Create(f).Error)
	return f
}

// SeedProduto inserts a product priced at preco (e.g. "12.50") with the given stock.
func SeedProduto(t *testing.T, db *gorm.DB, fornecedorID uint, descricao, preco string, estoque int) *model.Produto {
	t.Helper()
	p := &model.Produto{
		Descricao:    descricao,
		Preco:        decimal.RequireFromString(preco),
		QtdEstoque:   estoque,
		FornecedorID: fornecedorID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

// SeedCliente inserts a customer with the given normalized CPF.
func SeedCliente(t *testing.T, db *gorm.DB, nome, cpf string) *model.Cliente {
	t.Helper()
	c := &model.Cliente{Nome: nome, CPF: cpf}
	require.NoError(t, db.Create(c).Error)
	return c
}
