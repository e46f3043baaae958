package model

import "time"

// MovimentoEstoque records every stock change on a product.
// Quantidade is signed: negative for outflows (sales).
type MovimentoEstoque struct {
	ID              uint   `gorm:"primaryKey"`
	ProdutoID       uint   `gorm:"not null;index"`
	Tipo            string `gorm:"size:20;not null"` // "venda"
	Quantidade      int    `gorm:"not null"`
	EstoqueAnterior int    `gorm:"not null"`
	EstoqueNovo     int    `gorm:"not null"`
	Motivo          string `gorm:"size:200"`
	VendaID         *uint  `gorm:"index"`
	CreatedAt       time.Time
}

// TableName overrides GORM's default pluralization (movimento_estoques → movimentos_estoque).
func (MovimentoEstoque) TableName() string { return "movimentos_estoque" }
