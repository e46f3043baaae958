package service

import (
	"context"
	"testing"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/format"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const operador uint = 7

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFinalizarVenda_DecrementsStockAndWritesMovement(t *testing.T) {
	f := newFixture(t)
	forn := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	p := testutil.SeedProduto(t, f.db, forn.ID, "Caderno 96 folhas", "12.50", 10)

	resp, err := f.vendas.FinalizarVenda(context.Background(), operador, dto.FinalizarVendaRequest{
		Itens: []dto.ItemVendaRequest{{ProdutoID: p.ID, Quantidade: 4, Subtotal: dec("50.00")}},
		Total: dec("50.00"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Venda finalizada com sucesso!", resp.Mensagem)
	assert.True(t, dec("50").Equal(resp.Total))

	assert.Equal(t, 6, f.produto(t, p.ID).QtdEstoque)

	var venda model.Venda
	require.NoError(t, f.db.Preload("Itens").First(&venda, resp.VendaID).Error)
	assert.Equal(t, model.VendaPendente, venda.Status)
	require.Len(t, venda.Itens, 1)
	assert.Equal(t, 4, venda.Itens[0].Quantidade)
	require.NotNil(t, venda.FuncionarioID)
	assert.Equal(t, operador, *venda.FuncionarioID)

	var mov model.MovimentoEstoque
	require.NoError(t, f.db.Where("produto_id = ?", p.ID).First(&mov).Error)
	assert.Equal(t, -4, mov.Quantidade)
	assert.Equal(t, 10, mov.EstoqueAnterior)
	assert.Equal(t, 6, mov.EstoqueNovo)
	assert.Equal(t, "Venda "+format.CodigoVenda(resp.VendaID), mov.Motivo)

	pinned, err := f.pendentes.Current(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, resp.VendaID, pinned)
}

func TestFinalizarVenda_ZeroTotalSumsLines(t *testing.T) {
	f := newFixture(t)
	forn := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	a := testutil.SeedProduto(t, f.db, forn.ID, "Lápis", "0.10", 100)
	b := testutil.SeedProduto(t, f.db, forn.ID, "Borracha", "0.20", 100)

	resp, err := f.vendas.FinalizarVenda(context.Background(), operador, dto.FinalizarVendaRequest{
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: a.ID, Quantidade: 1, Subtotal: dec("0.10")},
			{ProdutoID: b.ID, Quantidade: 1, Subtotal: dec("0.20")},
		},
	})
	require.NoError(t, err)
	// 0.1 + 0.2 is exactly 0.3 in decimal arithmetic.
	assert.Equal(t, "0.30", resp.Total.StringFixed(2))
	assert.True(t, dec("0.3").Equal(resp.Total))
}

func TestFinalizarVenda_TotalMismatchRejected(t *testing.T) {
	f := newFixture(t)
	forn := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	p := testutil.SeedProduto(t, f.db, forn.ID, "Caneta", "2.00", 10)

	_, err := f.vendas.FinalizarVenda(context.Background(), operador, dto.FinalizarVendaRequest{
		Itens: []dto.ItemVendaRequest{{ProdutoID: p.ID, Quantidade: 1, Subtotal: dec("2.00")}},
		Total: dec("3.00"),
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, int64(0), f.count(t, &model.Venda{}))
}

func TestFinalizarVenda_InsufficientStockWritesNothing(t *testing.T) {
	f := newFixture(t)
	forn := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	ok := testutil.SeedProduto(t, f.db, forn.ID, "Caneta", "2.00", 10)
	low := testutil.SeedProduto(t, f.db, forn.ID, "Grampeador", "25.00", 2)

	_, err := f.vendas.FinalizarVenda(context.Background(), operador, dto.FinalizarVendaRequest{
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: ok.ID, Quantidade: 1, Subtotal: dec("2.00")},
			{ProdutoID: low.ID, Quantidade: 3, Subtotal: dec("75.00")},
		},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, "Estoque insuficiente para Grampeador. Disponível: 2, Solicitado: 3", err.Error())

	assert.Equal(t, 10, f.produto(t, ok.ID).QtdEstoque)
	assert.Equal(t, 2, f.produto(t, low.ID).QtdEstoque)
	assert.Equal(t, int64(0), f.count(t, &model.Venda{}))
	assert.Equal(t, int64(0), f.count(t, &model.ItemVenda{}))
	assert.Equal(t, int64(0), f.count(t, &model.MovimentoEstoque{}))
}

func TestFinalizarVenda_RepeatedProductLinesAreSummed(t *testing.T) {
	f := newFixture(t)
	forn := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	p := testutil.SeedProduto(t, f.db, forn.ID, "Caneta", "2.00", 5)

	_, err := f.vendas.FinalizarVenda(context.Background(), operador, dto.FinalizarVendaRequest{
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: p.ID, Quantidade: 3, Subtotal: dec("6.00")},
			{ProdutoID: p.ID, Quantidade: 3, Subtotal: dec("6.00")},
		},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Disponível: 5, Solicitado: 6")
	assert.Equal(t, 5, f.produto(t, p.ID).QtdEstoque)
}

func TestFinalizarVenda_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.vendas.FinalizarVenda(ctx, operador, dto.FinalizarVendaRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.vendas.FinalizarVenda(ctx, operador, dto.FinalizarVendaRequest{
		Itens: []dto.ItemVendaRequest{{ProdutoID: 999, Quantidade: 1, Subtotal: dec("1")}},
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Produto com ID 999 não encontrado", err.Error())
}

func TestFinalizarVenda_ResolvesCustomerByFormattedCPF(t *testing.T) {
	f := newFixture(t)
	forn := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	p := testutil.SeedProduto(t, f.db, forn.ID, "Caneta", "2.00", 5)
	c := testutil.SeedCliente(t, f.db, "Maria Souza", "12345678900")
	ctx := context.Background()

	resp, err := f.vendas.FinalizarVenda(ctx, operador, dto.FinalizarVendaRequest{
		CPF:   "123.456.789-00",
		Itens: []dto.ItemVendaRequest{{ProdutoID: p.ID, Quantidade: 1, Subtotal: dec("2.00")}},
	})
	require.NoError(t, err)
	var v model.Venda
	require.NoError(t, f.db.First(&v, resp.VendaID).Error)
	require.NotNil(t, v.ClienteID)
	assert.Equal(t, c.ID, *v.ClienteID)

	// Unknown CPF: the sale goes through without a customer.
	resp, err = f.vendas.FinalizarVenda(ctx, operador, dto.FinalizarVendaRequest{
		CPF:   "999.999.999-99",
		Itens: []dto.ItemVendaRequest{{ProdutoID: p.ID, Quantidade: 1, Subtotal: dec("2.00")}},
	})
	require.NoError(t, err)
	var semCliente model.Venda
	require.NoError(t, f.db.First(&semCliente, resp.VendaID).Error)
	assert.Nil(t, semCliente.ClienteID)
}

// venda creates a pendente sale of the given total for operador.
func (f *fixture) venda(t *testing.T, total string) uint {
	t.Helper()
	forn := testutil.SeedFornecedor(t, f.db, "Fornecedor "+total, "CNPJ"+total)
	p := testutil.SeedProduto(t, f.db, forn.ID, "Produto "+total, total, 10)
	resp, err := f.vendas.FinalizarVenda(context.Background(), operador, dto.FinalizarVendaRequest{
		Itens:       []dto.ItemVendaRequest{{ProdutoID: p.ID, Quantidade: 1, Subtotal: dec(total)}},
		Total:       dec(total),
		Observacoes: "balcão",
	})
	require.NoError(t, err)
	return resp.VendaID
}

func TestPagarVenda_ExactChange(t *testing.T) {
	f := newFixture(t)
	id := f.venda(t, "47.83")

	resp, err := f.vendas.PagarVenda(context.Background(), operador, dto.PagarVendaRequest{
		VendaID: id, Dinheiro: dec("50.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2.17", resp.Troco.StringFixed(2))
	assert.True(t, dec("2.17").Equal(resp.Troco))
	assert.Equal(t, id, resp.VendaID)

	var v model.Venda
	require.NoError(t, f.db.First(&v, id).Error)
	assert.Equal(t, model.VendaPaga, v.Status)
	assert.NotNil(t, v.PagoEm)
	assert.Equal(t, "balcão\nPagamento: Dinheiro R$ 50,00", v.Observacoes)
	assert.Equal(t, []uint{id}, f.dispatcher.vendas)
}

func TestPagarVenda_SplitTenderNoChange(t *testing.T) {
	f := newFixture(t)
	id := f.venda(t, "100.00")

	resp, err := f.vendas.PagarVenda(context.Background(), operador, dto.PagarVendaRequest{
		VendaID: id, Dinheiro: dec("60"), Cartao: dec("40"), Observacoes: "cliente fiel",
	})
	require.NoError(t, err)
	assert.True(t, resp.Troco.IsZero())
	assert.Equal(t, "0.00", resp.Troco.StringFixed(2))

	var v model.Venda
	require.NoError(t, f.db.First(&v, id).Error)
	assert.Equal(t, "balcão\ncliente fiel; Pagamento: Dinheiro R$ 60,00 Cartão R$ 40,00", v.Observacoes)
}

func TestPagarVenda_InsufficientLeavesSaleUntouched(t *testing.T) {
	f := newFixture(t)
	id := f.venda(t, "47.83")

	_, err := f.vendas.PagarVenda(context.Background(), operador, dto.PagarVendaRequest{
		VendaID: id, Dinheiro: dec("47.82"),
	})
	require.ErrorIs(t, err, ErrInsufficientPayment)
	assert.Equal(t, "Valor pago é menor que o total da venda", err.Error())

	var v model.Venda
	require.NoError(t, f.db.First(&v, id).Error)
	assert.Equal(t, model.VendaPendente, v.Status)
	assert.Equal(t, "balcão", v.Observacoes)
	assert.Empty(t, f.dispatcher.vendas)
}

func TestPagarVenda_SecondPaymentFails(t *testing.T) {
	f := newFixture(t)
	id := f.venda(t, "10.00")
	ctx := context.Background()

	// No id: the operator's pinned sale is used.
	resp, err := f.vendas.PagarVenda(ctx, operador, dto.PagarVendaRequest{Dinheiro: dec("10")})
	require.NoError(t, err)
	assert.Equal(t, id, resp.VendaID)

	_, err = f.vendas.PagarVenda(ctx, operador, dto.PagarVendaRequest{Dinheiro: dec("10")})
	require.ErrorIs(t, err, ErrNoPendingSale)
	assert.Equal(t, "Nenhuma venda em andamento", err.Error())

	_, err = f.vendas.PagarVenda(ctx, operador, dto.PagarVendaRequest{VendaID: id, Dinheiro: dec("10")})
	assert.ErrorIs(t, err, ErrNoPendingSale)
}

func TestPagarVenda_NegativeTenderAndUnknownSale(t *testing.T) {
	f := newFixture(t)
	id := f.venda(t, "10.00")
	ctx := context.Background()

	_, err := f.vendas.PagarVenda(ctx, operador, dto.PagarVendaRequest{
		VendaID: id, Dinheiro: dec("20"), Cartao: dec("-10"),
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.vendas.PagarVenda(ctx, operador, dto.PagarVendaRequest{VendaID: 12345, Dinheiro: dec("1")})
	assert.ErrorIs(t, err, ErrNotFound)

	// Another operator has nothing pinned.
	_, err = f.vendas.PagarVenda(ctx, 99, dto.PagarVendaRequest{Dinheiro: dec("10")})
	assert.ErrorIs(t, err, ErrNoPendingSale)
}

func TestPagarVenda_RejectsFractionOfCent(t *testing.T) {
	f := newFixture(t)
	id := f.venda(t, "47.83")
	ctx := context.Background()

	for _, pago := range []string{"50.005", "47.825"} {
		_, err := f.vendas.PagarVenda(ctx, operador, dto.PagarVendaRequest{VendaID: id, Dinheiro: dec(pago)})
		require.ErrorIs(t, err, ErrValidation, pago)
		assert.Equal(t, "O valor de pagamento deve ter no máximo duas casas decimais", err.Error())
	}
	_, err := f.vendas.PagarVenda(ctx, operador, dto.PagarVendaRequest{
		VendaID: id, Dinheiro: dec("40"), Cartao: dec("7.831"),
	})
	assert.ErrorIs(t, err, ErrValidation)

	var v model.Venda
	require.NoError(t, f.db.First(&v, id).Error)
	assert.Equal(t, model.VendaPendente, v.Status)
	assert.Equal(t, "balcão", v.Observacoes)

	// Trailing zeros are still whole cents.
	resp, err := f.vendas.PagarVenda(ctx, operador, dto.PagarVendaRequest{VendaID: id, Dinheiro: dec("50.000")})
	require.NoError(t, err)
	assert.Equal(t, "2.17", resp.Troco.StringFixed(2))
}

func TestFinalizarVenda_RejectsFractionOfCent(t *testing.T) {
	f := newFixture(t)
	forn := testutil.SeedFornecedor(t, f.db, "Fornecedor Centavos", "12312312000112")
	p := testutil.SeedProduto(t, f.db, forn.ID, "Borracha", "47.83", 5)
	ctx := context.Background()

	_, err := f.vendas.FinalizarVenda(ctx, operador, dto.FinalizarVendaRequest{
		Itens: []dto.ItemVendaRequest{{ProdutoID: p.ID, Quantidade: 1, Subtotal: dec("47.825")}},
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "O valor de subtotal deve ter no máximo duas casas decimais", err.Error())

	_, err = f.vendas.FinalizarVenda(ctx, operador, dto.FinalizarVendaRequest{
		Itens: []dto.ItemVendaRequest{{ProdutoID: p.ID, Quantidade: 1, Subtotal: dec("47.83")}},
		Total: dec("47.829"),
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "O valor de total deve ter no máximo duas casas decimais", err.Error())

	assert.Equal(t, int64(0), f.count(t, &model.Venda{}))
	var estoque model.Produto
	require.NoError(t, f.db.First(&estoque, p.ID).Error)
	assert.Equal(t, 5, estoque.QtdEstoque)
}

func TestResumoPagamento(t *testing.T) {
	assert.Equal(t, "Pagamento: Cheque R$ 1.234,50",
		ResumoPagamento(decimal.Zero, decimal.Zero, dec("1234.5")))
	assert.Equal(t, "Pagamento: Dinheiro R$ 5,00 Cartão R$ 0,01 Cheque R$ 3,00",
		ResumoPagamento(dec("5"), dec("0.01"), dec("3")))
}

func TestFinalizarVenda_UsesClock(t *testing.T) {
	f := newFixture(t)
	fixed := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)
	f.vendas.now = func() time.Time { return fixed }
	id := f.venda(t, "5.00")

	var v model.Venda
	require.NoError(t, f.db.First(&v, id).Error)
	assert.True(t, fixed.Equal(v.DataVenda))
}
