package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto is a sellable item. QtdEstoque is decremented by sale finalization
// and may only go down through the conditional update in the repository.
type Produto struct {
	ID           uint            `gorm:"primaryKey"`
	Descricao    string          `gorm:"size:200;not null;index"`
	Preco        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	QtdEstoque   int             `gorm:"not null;default:0"`
	FornecedorID uint            `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Fornecedor *Fornecedor `gorm:"foreignKey:FornecedorID"`
}

func (Produto) TableName() string { return "produtos" }
