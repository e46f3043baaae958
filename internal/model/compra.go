package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase order states.
const (
	CompraPendente    = "pendente"
	CompraProcessando = "processando"
	CompraConcluida   = "concluida"
	CompraCancelada   = "cancelada"
)

// StatusCompraValidos lists every accepted purchase order state, in display order.
var StatusCompraValidos = []string{CompraPendente, CompraProcessando, CompraConcluida, CompraCancelada}

// Compra is a purchase order placed with a supplier.
// ValorTotal is always Σ(ItemCompra.Subtotal); freight and discount are kept apart.
type Compra struct {
	ID            uint            `gorm:"primaryKey"`
	NumeroPedido  string          `gorm:"size:30;uniqueIndex;not null"`
	FornecedorID  uint            `gorm:"not null;index"`
	DataCompra    time.Time       `gorm:"not null;index"`
	Status        string          `gorm:"size:20;not null;default:'pendente';index"`
	ValorTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ValorFrete    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ValorDesconto decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Observacoes   *string
	CriadoPorID   *uint     `gorm:"index"`
	CriadoEm      time.Time `gorm:"autoCreateTime"`
	AtualizadoEm  time.Time `gorm:"autoUpdateTime"`

	Fornecedor *Fornecedor  `gorm:"foreignKey:FornecedorID"`
	CriadoPor  *Funcionario `gorm:"foreignKey:CriadoPorID"`
	Itens      []ItemCompra `gorm:"foreignKey:CompraID"`
}

func (Compra) TableName() string { return "compras" }

// ItemCompra is one purchase order line. Subtotal = Quantidade × PrecoUnitario.
type ItemCompra struct {
	ID            uint            `gorm:"primaryKey"`
	CompraID      uint            `gorm:"not null;index"`
	ProdutoID     uint            `gorm:"not null;index"`
	Quantidade    int             `gorm:"not null"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (ItemCompra) TableName() string { return "itens_compra" }

// SequenciaPedido is the per-day order number counter. Chave is
// "<PREFIX>-<YYYYMMDD>"; Ultimo is the last sequence handed out that day.
type SequenciaPedido struct {
	Chave  string `gorm:"primaryKey;size:30"`
	Ultimo int    `gorm:"not null;default:0"`
}

func (SequenciaPedido) TableName() string { return "sequencias_pedido" }
