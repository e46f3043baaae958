// Package model holds the GORM entities persisted by the repositories.
package model

// All returns every entity in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Fornecedor{},
		&Cliente{},
		&Funcionario{},
		&Produto{},
		&Compra{},
		&ItemCompra{},
		&SequenciaPedido{},
		&Venda{},
		&ItemVenda{},
		&MovimentoEstoque{},
	}
}
