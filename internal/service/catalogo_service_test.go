package service

import (
	"context"
	"testing"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCliente_CPFNormalizedAndUnique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.clientes.Criar(ctx, dto.ClienteRequest{Nome: "Maria Souza", CPF: "123.456.789-00"})
	require.NoError(t, err)
	assert.Equal(t, "12345678900", c.CPF)

	_, err = f.clientes.Criar(ctx, dto.ClienteRequest{Nome: "Outra Maria", CPF: "12345678900"})
	assert.ErrorIs(t, err, ErrValidation)

	a, err := f.clientes.ObterPorCPF(ctx, "123.456.789-00")
	require.NoError(t, err)
	b, err := f.clientes.ObterPorCPF(ctx, "12345678900")
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)

	// Updating a customer with its own CPF is not a duplicate.
	upd, err := f.clientes.Atualizar(ctx, c.ID, dto.ClienteRequest{Nome: "Maria S. Souza", CPF: "123.456.789-00"})
	require.NoError(t, err)
	assert.Equal(t, "Maria S. Souza", upd.Nome)
}

func TestCliente_DeleteBlockedBySales(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	forn := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	p := testutil.SeedProduto(t, f.db, forn.ID, "Caneta", "2.00", 5)
	c := testutil.SeedCliente(t, f.db, "Maria Souza", "12345678900")

	_, err := f.vendas.FinalizarVenda(ctx, operador, dto.FinalizarVendaRequest{
		CPF:   "12345678900",
		Itens: []dto.ItemVendaRequest{{ProdutoID: p.ID, Quantidade: 1, Subtotal: dec("2")}},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.clientes.Excluir(ctx, c.ID), ErrValidation)
	assert.ErrorIs(t, f.clientes.Excluir(ctx, 999), ErrNotFound)
}

func TestFornecedor_CNPJAlwaysUnique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.fornecedores.Criar(ctx, dto.FornecedorRequest{Nome: "Distribuidora Sul", CNPJ: "11.222.333/0001-81"})
	require.NoError(t, err)
	other, err := f.fornecedores.Criar(ctx, dto.FornecedorRequest{Nome: "Papelaria Norte", CNPJ: "99.888.777/0001-66"})
	require.NoError(t, err)

	_, err = f.fornecedores.Criar(ctx, dto.FornecedorRequest{Nome: "Cópia", CNPJ: "11222333000181"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.fornecedores.Atualizar(ctx, other.ID, dto.FornecedorRequest{Nome: "Papelaria Norte", CNPJ: "11.222.333/0001-81"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFornecedor_DeleteBlockedByProducts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	forn, err := f.fornecedores.Criar(ctx, dto.FornecedorRequest{Nome: "Distribuidora Sul", CNPJ: "11222333000181"})
	require.NoError(t, err)
	_, err = f.produtos.Criar(ctx, dto.ProdutoRequest{Descricao: "Caneta", Preco: dec("2"), FornecedorID: forn.ID})
	require.NoError(t, err)

	err = f.fornecedores.Excluir(ctx, forn.ID)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "1 produto(s)")

	vazio, err := f.fornecedores.Criar(ctx, dto.FornecedorRequest{Nome: "Sem Produtos", CNPJ: "99888777000166"})
	require.NoError(t, err)
	require.NoError(t, f.fornecedores.Excluir(ctx, vazio.ID))
	_, err = f.fornecedores.Obter(ctx, vazio.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProduto_RequiresSupplierAndSearches(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.produtos.Criar(ctx, dto.ProdutoRequest{Descricao: "Caneta", Preco: dec("2"), FornecedorID: 42})
	assert.ErrorIs(t, err, ErrNotFound)

	forn := testutil.SeedFornecedor(t, f.db, "Papelaria Norte", "99888777000166")
	p, err := f.produtos.Criar(ctx, dto.ProdutoRequest{Descricao: "Caneta", Preco: dec("2.5"), QtdEstoque: 3, FornecedorID: forn.ID})
	require.NoError(t, err)
	assert.Equal(t, "Papelaria Norte", p.FornecedorNome)

	_, err = f.produtos.Criar(ctx, dto.ProdutoRequest{Descricao: "Caneta", Preco: dec("-1"), FornecedorID: forn.ID})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.produtos.Criar(ctx, dto.ProdutoRequest{Descricao: "Caneta", Preco: dec("2.505"), FornecedorID: forn.ID})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "O valor de preço deve ter no máximo duas casas decimais", err.Error())

	found, err := f.produtos.Listar(ctx, "norte")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, p.ID, found[0].ID)
}

func TestProduto_MovimentosAfterSale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	forn := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	p := testutil.SeedProduto(t, f.db, forn.ID, "Caneta", "2.00", 5)

	_, err := f.vendas.FinalizarVenda(ctx, operador, dto.FinalizarVendaRequest{
		Itens: []dto.ItemVendaRequest{{ProdutoID: p.ID, Quantidade: 2, Subtotal: dec("4")}},
	})
	require.NoError(t, err)

	movs, err := f.produtos.Movimentos(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, "venda", movs[0].Tipo)
	assert.Equal(t, 3, movs[0].EstoqueNovo)

	assert.ErrorIs(t, f.produtos.Excluir(ctx, p.ID), ErrValidation)
}
