package model

// Endereco is the postal address block shared by customers, suppliers and
// employees. It is embedded, so its columns live on the owning table.
type Endereco struct {
	CEP         *string `gorm:"column:cep;size:10"`
	Logradouro  *string `gorm:"column:endereco;size:300"`
	Numero      *int    `gorm:"column:numero"`
	Complemento *string `gorm:"column:complemento;size:200"`
	Bairro      *string `gorm:"column:bairro;size:100"`
	Cidade      *string `gorm:"column:cidade;size:100;index"`
	UF          *string `gorm:"column:uf;size:2"`
}
