package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVendaRequest struct {
	ProdutoID  uint            `json:"produto_id" validate:"required"`
	Quantidade int             `json:"quantidade" validate:"required,min=1"`
	Subtotal   decimal.Decimal `json:"subtotal"   validate:"gte=0"`
}

// FinalizarVendaRequest closes the cart. A zero Total means "sum the lines".
type FinalizarVendaRequest struct {
	CPF         string             `json:"cpf"`
	Itens       []ItemVendaRequest `json:"itens"       validate:"dive"`
	Total       decimal.Decimal    `json:"total"       validate:"gte=0"`
	Observacoes string             `json:"observacoes" validate:"max=1000"`
}

// PagarVendaRequest settles a pending sale. VendaID may be omitted, in which
// case the operator's last finalized sale is used.
type PagarVendaRequest struct {
	VendaID     uint            `json:"venda_id"`
	Dinheiro    decimal.Decimal `json:"dinheiro"`
	Cartao      decimal.Decimal `json:"cartao"`
	Cheque      decimal.Decimal `json:"cheque"`
	Observacoes string          `json:"observacoes" validate:"max=500"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type PeriodoFilter struct {
	DataInicio string `form:"data_inicio" binding:"required"`
	DataFim    string `form:"data_fim"    binding:"required"`
}

type DataFilter struct {
	Data string `form:"data" binding:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type FinalizarVendaResponse struct {
	Success  bool            `json:"success"`
	Mensagem string          `json:"mensagem"`
	VendaID  uint            `json:"venda_id"`
	Total    decimal.Decimal `json:"total"`
}

type PagarVendaResponse struct {
	Success  bool            `json:"success"`
	Mensagem string          `json:"mensagem"`
	Troco    decimal.Decimal `json:"troco"`
	VendaID  uint            `json:"venda_id"`
}

// VendaResumo is one row of the sales-in-period report.
type VendaResumo struct {
	ID             uint            `json:"id"`
	Codigo         string          `json:"codigo"`
	Data           string          `json:"data"`
	Cliente        string          `json:"cliente"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatado string          `json:"total_formatado"`
	Status         string          `json:"status"`
	Observacoes    string          `json:"observacoes"`
}

type VendasPeriodoResponse struct {
	Vendas         []VendaResumo   `json:"vendas"`
	Quantidade     int             `json:"quantidade"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatado string          `json:"total_formatado"`
}

type TotalDoDiaResponse struct {
	Data           string          `json:"data"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatado string          `json:"total_formatado"`
}
