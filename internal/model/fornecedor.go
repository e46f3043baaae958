package model

import "time"

// Fornecedor represents a supplier. CNPJ is normalized and unique.
type Fornecedor struct {
	ID       uint     `gorm:"primaryKey"`
	Nome     string   `gorm:"size:100;not null;index"`
	CNPJ     string   `gorm:"column:cnpj;size:18;uniqueIndex;not null"`
	Email    *string  `gorm:"size:200"`
	Telefone *string  `gorm:"size:30"`
	Celular  *string  `gorm:"size:30"`
	Endereco Endereco `gorm:"embedded"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default pluralization (fornecedors → fornecedores).
func (Fornecedor) TableName() string { return "fornecedores" }
