package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProdutoRequest struct {
	Descricao    string          `json:"descricao"     validate:"required,min=1,max=200"`
	Preco        decimal.Decimal `json:"preco"         validate:"gte=0"`
	QtdEstoque   int             `json:"qtd_estoque"   validate:"min=0"`
	FornecedorID uint            `json:"fornecedor_id" validate:"required"`
}

type ProdutoResponse struct {
	ID             uint            `json:"id"`
	Descricao      string          `json:"descricao"`
	Preco          decimal.Decimal `json:"preco"`
	QtdEstoque     int             `json:"qtd_estoque"`
	FornecedorID   uint            `json:"fornecedor_id"`
	FornecedorNome string          `json:"fornecedor_nome,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type MovimentoEstoqueResponse struct {
	ID              uint      `json:"id"`
	Tipo            string    `json:"tipo"`
	Quantidade      int       `json:"quantidade"`
	EstoqueAnterior int       `json:"estoque_anterior"`
	EstoqueNovo     int       `json:"estoque_novo"`
	Motivo          string    `json:"motivo"`
	VendaID         *uint     `json:"venda_id"`
	CreatedAt       time.Time `json:"created_at"`
}
