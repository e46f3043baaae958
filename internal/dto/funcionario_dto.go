package dto

import "time"

type FuncionarioRequest struct {
	Nome        string  `json:"nome"         validate:"required,min=2,max=255"`
	RG          string  `json:"rg"           validate:"required,max=20"`
	CPF         string  `json:"cpf"          validate:"required,max=14"`
	Email       string  `json:"email"        validate:"required,email,max=255"`
	Telefone    *string `json:"telefone"     validate:"omitempty,max=20"`
	Celular     *string `json:"celular"      validate:"omitempty,max=20"`
	Cargo       string  `json:"cargo"        validate:"required,max=100"`
	NivelAcesso int     `json:"nivel_acesso" validate:"required,min=1,max=3"`
	// Senha is required on create; on update an empty value keeps the old hash.
	Senha string `json:"senha" validate:"omitempty,min=6,max=72"`
	EnderecoDTO
}

type FuncionarioResponse struct {
	ID          uint    `json:"id"`
	Nome        string  `json:"nome"`
	RG          string  `json:"rg"`
	CPF         string  `json:"cpf"`
	Email       string  `json:"email"`
	Telefone    *string `json:"telefone"`
	Celular     *string `json:"celular"`
	Cargo       string  `json:"cargo"`
	NivelAcesso int     `json:"nivel_acesso"`
	EnderecoDTO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type LoginResponse struct {
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	ExpiresIn   int                 `json:"expires_in"`
	Funcionario FuncionarioResponse `json:"funcionario"`
}
