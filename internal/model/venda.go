package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale states. A sale is created pendente and becomes paga exactly once.
const (
	VendaPendente = "pendente"
	VendaPaga     = "paga"
)

// Venda is a point-of-sale transaction header.
type Venda struct {
	ID            uint            `gorm:"primaryKey"`
	ClienteID     *uint           `gorm:"index"`
	FuncionarioID *uint           `gorm:"index"`
	DataVenda     time.Time       `gorm:"not null;index"`
	TotalVenda    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Observacoes   string          `gorm:"type:text;not null;default:''"`
	Status        string          `gorm:"size:20;not null;default:'pendente';index"`
	Troco         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PagoEm        *time.Time
	ReciboPath    *string `gorm:"size:300"`

	Cliente *Cliente    `gorm:"foreignKey:ClienteID"`
	Itens   []ItemVenda `gorm:"foreignKey:VendaID"`
}

func (Venda) TableName() string { return "vendas" }

// ItemVenda is one sale line. Each line decrements its product's stock once.
type ItemVenda struct {
	ID         uint            `gorm:"primaryKey"`
	VendaID    uint            `gorm:"not null;index"`
	ProdutoID  uint            `gorm:"not null;index"`
	Quantidade int             `gorm:"not null"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (ItemVenda) TableName() string { return "itens_venda" }
