package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/format"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompraService interface {
	// RegistrarCompra validates the order, numbers it and writes header and
	// lines in one transaction. criadoPor may be nil.
	RegistrarCompra(ctx context.Context, criadoPor *uint, req dto.CriarCompraRequest) (*dto.CompraResponse, error)
	ListarCompras(ctx context.Context, filter dto.CompraFilter) ([]dto.CompraResponse, error)
	ObterCompra(ctx context.Context, id uint) (*dto.CompraResponse, error)
	AtualizarStatus(ctx context.Context, id uint, status string) (*dto.CompraResponse, error)
}

type compraService struct {
	repo         repository.CompraRepository
	fornecedores repository.FornecedorRepository
	produtos     repository.ProdutoRepository
	prefixo      string
	loc          *time.Location
	now          func() time.Time
}

func NewCompraService(
	repo repository.CompraRepository,
	fornecedores repository.FornecedorRepository,
	produtos repository.ProdutoRepository,
	prefixo string,
	loc *time.Location,
) CompraService {
	return &compraService{
		repo:         repo,
		fornecedores: fornecedores,
		produtos:     produtos,
		prefixo:      prefixo,
		loc:          loc,
		now:          time.Now,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func statusCompraValido(status string) bool {
	for _, s := range model.StatusCompraValidos {
		if s == status {
			return true
		}
	}
	return false
}

func errStatusInvalido() error {
	return invalid("Status inválido. Valores aceitos: %s", strings.Join(model.StatusCompraValidos, ", "))
}

// ── RegistrarCompra ──────────────────────────────────────────────────────────
//   1. Validate items, supplier, date, status and every line (no writes)
//   2. BEGIN TX: next order number for the day, header, lines
//   3. COMMIT, then reload with supplier and product names

func (s *compraService) RegistrarCompra(ctx context.Context, criadoPor *uint, req dto.CriarCompraRequest) (*dto.CompraResponse, error) {
	if len(req.Itens) == 0 {
		return nil, invalid("É necessário adicionar pelo menos um item à compra")
	}
	fornecedor, err := s.fornecedores.FindByID(ctx, req.FornecedorID)
	if err != nil {
		return nil, notFoundOr(err, "Fornecedor não encontrado")
	}
	dataCompra, err := format.ParseData(req.DataCompra, s.loc)
	if err != nil {
		return nil, invalid("%s", format.ErrDataInvalida.Error())
	}
	status := req.Status
	if status == "" {
		status = model.CompraPendente
	}
	if !statusCompraValido(status) {
		return nil, errStatusInvalido()
	}
	if req.ValorFrete.IsNegative() {
		return nil, invalid("O valor do frete não pode ser negativo")
	}
	if req.ValorDesconto.IsNegative() {
		return nil, invalid("O valor do desconto não pode ser negativo")
	}
	if !format.EmCentavos(req.ValorFrete) {
		return nil, errCentavos("frete")
	}
	if !format.EmCentavos(req.ValorDesconto) {
		return nil, errCentavos("desconto")
	}

	itens := make([]model.ItemCompra, 0, len(req.Itens))
	total := decimal.Zero
	for _, it := range req.Itens {
		if _, err := s.produtos.FindByID(ctx, it.ProdutoID); err != nil {
			return nil, notFoundOr(err, fmt.Sprintf("Produto com ID %d não encontrado", it.ProdutoID))
		}
		if it.Quantidade <= 0 {
			return nil, invalid("A quantidade deve ser maior que zero")
		}
		if it.PrecoUnitario.IsNegative() {
			return nil, invalid("O preço unitário não pode ser negativo")
		}
		if !format.EmCentavos(it.PrecoUnitario) {
			return nil, errCentavos("preço unitário")
		}
		preco := it.PrecoUnitario
		subtotal := preco.Mul(decimal.NewFromInt(int64(it.Quantidade)))
		total = total.Add(subtotal)
		itens = append(itens, model.ItemCompra{
			ProdutoID:     it.ProdutoID,
			Quantidade:    it.Quantidade,
			PrecoUnitario: preco,
			Subtotal:      subtotal,
		})
	}

	compra := model.Compra{
		FornecedorID:  fornecedor.ID,
		DataCompra:    dataCompra.UTC(),
		Status:        status,
		ValorTotal:    total,
		ValorFrete:    req.ValorFrete,
		ValorDesconto: req.ValorDesconto,
		Observacoes:   req.Observacoes,
		CriadoPorID:   criadoPor,
		Itens:         itens,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		numero, err := s.proximoNumeroPedidoTx(tx)
		if err != nil {
			return err
		}
		compra.NumeroPedido = numero
		return s.repo.CreateTx(tx, &compra)
	})
	if txErr != nil {
		return nil, duplicadoOr(txErr, "Número de pedido já utilizado, tente novamente")
	}

	log.Info().
		Uint("compra_id", compra.ID).
		Str("numero_pedido", compra.NumeroPedido).
		Str("total", total.StringFixed(2)).
		Msg("compra registrada")

	return s.ObterCompra(ctx, compra.ID)
}

// proximoNumeroPedidoTx hands out today's next order number. The counter row
// is seeded from the last number already stored for the day, so orders
// created before the counter existed are never reissued.
func (s *compraService) proximoNumeroPedidoTx(tx *gorm.DB) (string, error) {
	chave := ChavePedido(s.prefixo, s.now(), s.loc)
	ultimo, err := s.repo.UltimoNumeroPedidoTx(tx, chave)
	if err != nil {
		return "", err
	}
	seed := 0
	if ultimo != "" {
		if seed, err = ParseSequencia(ultimo); err != nil {
			return "", err
		}
	}
	seq, err := s.repo.ProximaSequenciaTx(tx, chave, seed)
	if err != nil {
		return "", err
	}
	return FormatarNumeroPedido(chave, seq), nil
}

func (s *compraService) ListarCompras(ctx context.Context, filter dto.CompraFilter) ([]dto.CompraResponse, error) {
	f := repository.CompraFiltro{FornecedorID: filter.FornecedorID, Status: filter.Status}
	if f.Status != "" && !statusCompraValido(f.Status) {
		return nil, errStatusInvalido()
	}
	if filter.DataInicio != "" {
		d, err := format.ParseData(filter.DataInicio, s.loc)
		if err != nil {
			return nil, invalid("%s", format.ErrDataInvalida.Error())
		}
		inicio := d.UTC()
		f.Inicio = &inicio
	}
	if filter.DataFim != "" {
		d, err := format.ParseData(filter.DataFim, s.loc)
		if err != nil {
			return nil, invalid("%s", format.ErrDataInvalida.Error())
		}
		// Inclusive end date: everything before the next midnight.
		fim := d.AddDate(0, 0, 1).UTC()
		f.Fim = &fim
	}

	compras, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CompraResponse, len(compras))
	for i := range compras {
		resp[i] = compraToResponse(&compras[i], s.loc)
	}
	return resp, nil
}

func (s *compraService) ObterCompra(ctx context.Context, id uint) (*dto.CompraResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Compra não encontrada")
	}
	resp := compraToResponse(c, s.loc)
	return &resp, nil
}

func (s *compraService) AtualizarStatus(ctx context.Context, id uint, status string) (*dto.CompraResponse, error) {
	if !statusCompraValido(status) {
		return nil, errStatusInvalido()
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Compra não encontrada")
		}
		return nil, err
	}
	log.Info().Uint("compra_id", id).Str("status", status).Msg("status da compra atualizado")
	return s.ObterCompra(ctx, id)
}
