package dto

import "time"

type ClienteRequest struct {
	Nome     string  `json:"nome"     validate:"required,min=2,max=200"`
	RG       *string `json:"rg"       validate:"omitempty,max=20"`
	CPF      string  `json:"cpf"      validate:"required,max=14"`
	Email    *string `json:"email"    validate:"omitempty,email,max=200"`
	Telefone *string `json:"telefone" validate:"omitempty,max=20"`
	Celular  *string `json:"celular"  validate:"omitempty,max=20"`
	EnderecoDTO
}

type ClienteResponse struct {
	ID       uint    `json:"id"`
	Nome     string  `json:"nome"`
	RG       *string `json:"rg"`
	CPF      string  `json:"cpf"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
	Celular  *string `json:"celular"`
	EnderecoDTO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
