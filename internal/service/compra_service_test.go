package service

import (
	"context"
	"testing"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compraReq(fornecedorID uint, itens ...dto.ItemCompraRequest) dto.CriarCompraRequest {
	return dto.CriarCompraRequest{
		DataCompra:   "15/03/2024",
		FornecedorID: fornecedorID,
		Itens:        itens,
	}
}

func TestRegistrarCompra_TotalIsExactSum(t *testing.T) {
	f := newFixture(t)
	forn := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	a := testutil.SeedProduto(t, f.db, forn.ID, "Caneta", "2.00", 0)
	b := testutil.SeedProduto(t, f.db, forn.ID, "Lápis", "0.50", 0)

	req := compraReq(forn.ID,
		dto.ItemCompraRequest{ProdutoID: a.ID, Quantidade: 3, PrecoUnitario: dec("0.10")},
		dto.ItemCompraRequest{ProdutoID: b.ID, Quantidade: 7, PrecoUnitario: dec("19.99")},
	)
	req.ValorFrete = dec("15.00")
	req.Observacoes = strPtr("entrega na loja")

	resp, err := f.compras.RegistrarCompra(context.Background(), nil, req)
	require.NoError(t, err)
	// 3×0.10 + 7×19.99 = 0.30 + 139.93
	assert.Equal(t, "140.23", resp.ValorTotal.StringFixed(2))
	assert.Equal(t, model.CompraPendente, resp.Status)
	assert.Equal(t, "Distribuidora Sul", resp.FornecedorNome)
	assert.Equal(t, "15/03/2024", resp.DataCompra)
	assert.Equal(t, "15.00", resp.ValorFrete.StringFixed(2))
	require.Len(t, resp.Itens, 2)
	assert.Equal(t, "Caneta", resp.Itens[0].ProdutoDescricao)
	assert.Equal(t, "0.30", resp.Itens[0].Subtotal.StringFixed(2))
	assert.Equal(t, "139.93", resp.Itens[1].Subtotal.StringFixed(2))
}

func TestRegistrarCompra_SequentialNumbersPerDay(t *testing.T) {
	f := newFixture(t)
	f.compras.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }
	forn := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	p := testutil.SeedProduto(t, f.db, forn.ID, "Caneta", "2.00", 0)
	ctx := context.Background()
	item := dto.ItemCompraRequest{ProdutoID: p.ID, Quantidade: 1, PrecoUnitario: dec("2")}

	first, err := f.compras.RegistrarCompra(ctx, nil, compraReq(forn.ID, item))
	require.NoError(t, err)
	second, err := f.compras.RegistrarCompra(ctx, nil, compraReq(forn.ID, item))
	require.NoError(t, err)
	assert.Equal(t, "COMP-20240315-0001", first.NumeroPedido)
	assert.Equal(t, "COMP-20240315-0002", second.NumeroPedido)

	f.compras.now = func() time.Time { return time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC) }
	next, err := f.compras.RegistrarCompra(ctx, nil, compraReq(forn.ID, item))
	require.NoError(t, err)
	assert.Equal(t, "COMP-20240316-0001", next.NumeroPedido)
}

func TestRegistrarCompra_SeedsFromExistingOrders(t *testing.T) {
	f := newFixture(t)
	f.compras.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }
	forn := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	p := testutil.SeedProduto(t, f.db, forn.ID, "Caneta", "2.00", 0)

	legado := &model.Compra{NumeroPedido: "COMP-20240315-0041", FornecedorID: forn.ID,
		DataCompra: time.Now().UTC(), Status: model.CompraConcluida, ValorTotal: dec("0")}
	require.NoError(t, f.db.Create(legado).Error)

	resp, err := f.compras.RegistrarCompra(context.Background(), nil, compraReq(forn.ID,
		dto.ItemCompraRequest{ProdutoID: p.ID, Quantidade: 1, PrecoUnitario: dec("2")}))
	require.NoError(t, err)
	assert.Equal(t, "COMP-20240315-0042", resp.NumeroPedido)
}

func TestRegistrarCompra_Validation(t *testing.T) {
	f := newFixture(t)
	forn := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	p := testutil.SeedProduto(t, f.db, forn.ID, "Caneta", "2.00", 0)
	ctx := context.Background()
	ok := dto.ItemCompraRequest{ProdutoID: p.ID, Quantidade: 1, PrecoUnitario: dec("2")}

	cases := []struct {
		name string
		req  dto.CriarCompraRequest
		kind error
		msg  string
	}{
		{"sem itens", compraReq(forn.ID), ErrValidation, "É necessário adicionar pelo menos um item à compra"},
		{"fornecedor inexistente", compraReq(999, ok), ErrNotFound, "Fornecedor não encontrado"},
		{"produto inexistente", compraReq(forn.ID, dto.ItemCompraRequest{ProdutoID: 555, Quantidade: 1}),
			ErrNotFound, "Produto com ID 555 não encontrado"},
		{"quantidade zero", compraReq(forn.ID, dto.ItemCompraRequest{ProdutoID: p.ID, Quantidade: 0}),
			ErrValidation, "A quantidade deve ser maior que zero"},
		{"preço negativo", compraReq(forn.ID, dto.ItemCompraRequest{ProdutoID: p.ID, Quantidade: 1, PrecoUnitario: dec("-1")}),
			ErrValidation, "O preço unitário não pode ser negativo"},
		{"preço com fração de centavo", compraReq(forn.ID, dto.ItemCompraRequest{ProdutoID: p.ID, Quantidade: 1, PrecoUnitario: dec("10.005")}),
			ErrValidation, "O valor de preço unitário deve ter no máximo duas casas decimais"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.compras.RegistrarCompra(ctx, nil, tc.req)
			require.ErrorIs(t, err, tc.kind)
			assert.Equal(t, tc.msg, err.Error())
		})
	}

	bad := compraReq(forn.ID, ok)
	bad.DataCompra = "2024-03-15"
	_, err := f.compras.RegistrarCompra(ctx, nil, bad)
	assert.ErrorIs(t, err, ErrValidation)

	bad = compraReq(forn.ID, ok)
	bad.Status = "enviada"
	_, err = f.compras.RegistrarCompra(ctx, nil, bad)
	assert.ErrorIs(t, err, ErrValidation)

	bad = compraReq(forn.ID, ok)
	bad.ValorFrete = dec("3.001")
	_, err = f.compras.RegistrarCompra(ctx, nil, bad)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, int64(0), f.count(t, &model.Compra{}))
	assert.Equal(t, int64(0), f.count(t, &model.ItemCompra{}))
}

func TestListarCompras_Filters(t *testing.T) {
	f := newFixture(t)
	sul := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	norte := testutil.SeedFornecedor(t, f.db, "Papelaria Norte", "99888777000166")
	p := testutil.SeedProduto(t, f.db, sul.ID, "Caneta", "2.00", 0)
	ctx := context.Background()
	item := dto.ItemCompraRequest{ProdutoID: p.ID, Quantidade: 2, PrecoUnitario: dec("2")}

	for _, c := range []struct {
		forn uint
		data string
	}{{sul.ID, "10/03/2024"}, {sul.ID, "15/03/2024"}, {norte.ID, "20/03/2024"}} {
		req := compraReq(c.forn, item)
		req.DataCompra = c.data
		_, err := f.compras.RegistrarCompra(ctx, nil, req)
		require.NoError(t, err)
	}

	all, err := f.compras.ListarCompras(ctx, dto.CompraFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	require.Len(t, all[0].Itens, 1)

	bySupplier, err := f.compras.ListarCompras(ctx, dto.CompraFilter{FornecedorID: sul.ID})
	require.NoError(t, err)
	assert.Len(t, bySupplier, 2)

	// The end date is inclusive.
	byRange, err := f.compras.ListarCompras(ctx, dto.CompraFilter{DataInicio: "11/03/2024", DataFim: "20/03/2024"})
	require.NoError(t, err)
	assert.Len(t, byRange, 2)

	_, err = f.compras.ListarCompras(ctx, dto.CompraFilter{DataInicio: "2024-03-11"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAtualizarStatus(t *testing.T) {
	f := newFixture(t)
	forn := testutil.SeedFornecedor(t, f.db, "Distribuidora Sul", "11222333000181")
	p := testutil.SeedProduto(t, f.db, forn.ID, "Caneta", "2.00", 0)
	ctx := context.Background()
	c, err := f.compras.RegistrarCompra(ctx, nil, compraReq(forn.ID,
		dto.ItemCompraRequest{ProdutoID: p.ID, Quantidade: 1, PrecoUnitario: dec("2")}))
	require.NoError(t, err)

	resp, err := f.compras.AtualizarStatus(ctx, c.ID, model.CompraConcluida)
	require.NoError(t, err)
	assert.Equal(t, model.CompraConcluida, resp.Status)

	_, err = f.compras.AtualizarStatus(ctx, c.ID, "entregue")
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Status inválido. Valores aceitos: pendente, processando, concluida, cancelada", err.Error())

	_, err = f.compras.AtualizarStatus(ctx, 999, model.CompraCancelada)
	assert.ErrorIs(t, err, ErrNotFound)
}

func strPtr(s string) *string { return &s }
