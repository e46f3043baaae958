package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/pending"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/repository"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// stubDispatcher records the sales whose receipt was requested.
type stubDispatcher struct {
	mu     sync.Mutex
	vendas []uint
}

func (d *stubDispatcher) EnqueueRecibo(_ context.Context, vendaID uint) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.vendas = append(d.vendas, vendaID)
	return nil
}

var _ ReciboDispatcher = (*stubDispatcher)(nil)

type fixture struct {
	db         *gorm.DB
	loc        *time.Location
	pendentes  *pending.MemoryRegistry
	dispatcher *stubDispatcher

	clientes     ClienteService
	fornecedores FornecedorService
	produtos     ProdutoService
	compras      *compraService
	vendas       *vendaService
	relatorios   RelatorioService
	funcionarios FuncionarioService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	loc := time.UTC

	clienteRepo := repository.NewClienteRepository(db)
	fornecedorRepo := repository.NewFornecedorRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	movRepo := repository.NewMovimentoEstoqueRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	funcRepo := repository.NewFuncionarioRepository(db)

	f := &fixture{
		db:         db,
		loc:        loc,
		pendentes:  pending.NewMemoryRegistry(),
		dispatcher: &stubDispatcher{},
	}
	f.clientes = NewClienteService(clienteRepo)
	f.fornecedores = NewFornecedorService(fornecedorRepo)
	f.produtos = NewProdutoService(produtoRepo, fornecedorRepo, movRepo)
	f.compras = NewCompraService(compraRepo, fornecedorRepo, produtoRepo, "COMP", loc).(*compraService)
	f.vendas = NewVendaService(vendaRepo, produtoRepo, clienteRepo, movRepo, f.pendentes, f.dispatcher).(*vendaService)
	f.relatorios = NewRelatorioService(vendaRepo, loc)
	f.funcionarios = NewFuncionarioService(funcRepo)
	return f
}

func (f *fixture) produto(t *testing.T, id uint) *model.Produto {
	t.Helper()
	var p model.Produto
	require.NoError(t, f.db.First(&p, id).Error)
	return &p
}

func (f *fixture) count(t *testing.T, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(m).Count(&n).Error)
	return n
}

func seedFuncionario(t *testing.T, db *gorm.DB, email, senha string, nivel int) *model.Funcionario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	f := &model.Funcionario{
		Nome: "Operador Teste", RG: "123", CPF: "11122233344", Email: email,
		Cargo: "Caixa", NivelAcesso: nivel, SenhaHash: string(hash),
	}
	require.NoError(t, db.Create(f).Error)
	return f
}
