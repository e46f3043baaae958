package model

import "time"

// Cliente is a retail customer. CPF is stored normalized (digits only) and is
// unique across the table.
type Cliente struct {
	ID       uint     `gorm:"primaryKey"`
	Nome     string   `gorm:"size:200;not null;index"`
	RG       *string  `gorm:"column:rg;size:20"`
	CPF      string   `gorm:"column:cpf;size:14;uniqueIndex;not null"`
	Email    *string  `gorm:"size:200"`
	Telefone *string  `gorm:"size:20"`
	Celular  *string  `gorm:"size:20"`
	Endereco Endereco `gorm:"embedded"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }
