// Package dto holds the typed request and response bodies of the HTTP API.
package dto

import "github.com/shopspring/decimal"

func init() {
	// Money goes over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// EnderecoDTO is the address block shared by customers, suppliers and
// employees. It is embedded, so its fields appear flat in the JSON body.
type EnderecoDTO struct {
	CEP         *string `json:"cep"         validate:"omitempty,max=10"`
	Logradouro  *string `json:"endereco"    validate:"omitempty,max=300"`
	Numero      *int    `json:"numero"      validate:"omitempty,min=0"`
	Complemento *string `json:"complemento" validate:"omitempty,max=200"`
	Bairro      *string `json:"bairro"      validate:"omitempty,max=100"`
	Cidade      *string `json:"cidade"      validate:"omitempty,max=100"`
	UF          *string `json:"uf"          validate:"omitempty,len=2"`
}

// BuscaFilter is the ?q= search term accepted by the catalog list endpoints.
type BuscaFilter struct {
	Termo string `form:"q"`
}

type MensagemResponse struct {
	Success  bool   `json:"success"`
	Mensagem string `json:"mensagem"`
}
