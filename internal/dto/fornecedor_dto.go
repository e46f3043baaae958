package dto

import "time"

type FornecedorRequest struct {
	Nome     string  `json:"nome"     validate:"required,min=2,max=100"`
	CNPJ     string  `json:"cnpj"     validate:"required,max=18"`
	Email    *string `json:"email"    validate:"omitempty,email,max=200"`
	Telefone *string `json:"telefone" validate:"omitempty,max=30"`
	Celular  *string `json:"celular"  validate:"omitempty,max=30"`
	EnderecoDTO
}

type FornecedorResponse struct {
	ID       uint    `json:"id"`
	Nome     string  `json:"nome"`
	CNPJ     string  `json:"cnpj"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
	Celular  *string `json:"celular"`
	EnderecoDTO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
