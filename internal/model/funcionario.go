package model

import "time"

// Access levels, from least to most privileged.
const (
	NivelOperador      = 1
	NivelGerente       = 2
	NivelAdministrador = 3
)

// Funcionario is an employee who can log into the back office.
type Funcionario struct {
	ID          uint     `gorm:"primaryKey"`
	Nome        string   `gorm:"size:255;not null"`
	RG          string   `gorm:"column:rg;size:20;not null"`
	CPF         string   `gorm:"column:cpf;size:14;not null"`
	Email       string   `gorm:"size:255;uniqueIndex;not null"`
	Telefone    *string  `gorm:"size:20"`
	Celular     *string  `gorm:"size:20"`
	Cargo       string   `gorm:"size:100;not null"`
	NivelAcesso int      `gorm:"not null;default:1"`
	SenhaHash   string   `gorm:"not null"`
	Endereco    Endereco `gorm:"embedded"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Funcionario) TableName() string { return "funcionarios" }
