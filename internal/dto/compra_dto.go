package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemCompraRequest struct {
	ProdutoID     uint            `json:"produto_id"     validate:"required"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
}

// CriarCompraRequest records a purchase order. DataCompra is DD/MM/YYYY.
// Quantity and price rules are checked by the service so that the messages
// name the offending line.
type CriarCompraRequest struct {
	DataCompra    string              `json:"data_compra"    validate:"required"`
	FornecedorID  uint                `json:"fornecedor_id"  validate:"required"`
	Status        string              `json:"status"`
	ValorFrete    decimal.Decimal     `json:"valor_frete"`
	ValorDesconto decimal.Decimal     `json:"valor_desconto"`
	Observacoes   *string             `json:"observacoes"`
	Itens         []ItemCompraRequest `json:"itens"          validate:"dive"`
}

type AtualizarStatusCompraRequest struct {
	Status string `json:"status" validate:"required"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type CompraFilter struct {
	FornecedorID uint   `form:"fornecedor_id"`
	Status       string `form:"status"`
	DataInicio   string `form:"data_inicio"`
	DataFim      string `form:"data_fim"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemCompraResponse struct {
	ID               uint            `json:"id"`
	ProdutoID        uint            `json:"produto_id"`
	ProdutoDescricao string          `json:"produto_descricao"`
	Quantidade       int             `json:"quantidade"`
	PrecoUnitario    decimal.Decimal `json:"preco_unitario"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}

type CompraResponse struct {
	ID             uint                 `json:"id"`
	NumeroPedido   string               `json:"numero_pedido"`
	FornecedorID   uint                 `json:"fornecedor_id"`
	FornecedorNome string               `json:"fornecedor_nome"`
	DataCompra     string               `json:"data_compra"`
	Status         string               `json:"status"`
	ValorTotal     decimal.Decimal      `json:"valor_total"`
	ValorFrete     decimal.Decimal      `json:"valor_frete"`
	ValorDesconto  decimal.Decimal      `json:"valor_desconto"`
	Observacoes    *string              `json:"observacoes"`
	CriadoPorID    *uint                `json:"criado_por_id"`
	CriadoPorNome  string               `json:"criado_por_nome,omitempty"`
	CriadoEm       time.Time            `json:"criado_em"`
	AtualizadoEm   time.Time            `json:"atualizado_em"`
	Itens          []ItemCompraResponse `json:"itens"`
}
