package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/format"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/pending"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReciboDispatcher queues the receipt of a paid sale.
type ReciboDispatcher interface {
	EnqueueRecibo(ctx context.Context, vendaID uint) error
}

type VendaService interface {
	// FinalizarVenda records a pendente sale for the operator and decrements
	// stock, all or nothing.
	FinalizarVenda(ctx context.Context, funcionarioID uint, req dto.FinalizarVendaRequest) (*dto.FinalizarVendaResponse, error)
	// PagarVenda settles req.VendaID, or the operator's pinned sale when it
	// is zero.
	PagarVenda(ctx context.Context, funcionarioID uint, req dto.PagarVendaRequest) (*dto.PagarVendaResponse, error)
}

type vendaService struct {
	repo       repository.VendaRepository
	produtos   repository.ProdutoRepository
	clientes   repository.ClienteRepository
	movimentos repository.MovimentoEstoqueRepository
	pendentes  pending.Registry
	dispatcher ReciboDispatcher
	now        func() time.Time
}

func NewVendaService(
	repo repository.VendaRepository,
	produtos repository.ProdutoRepository,
	clientes repository.ClienteRepository,
	movimentos repository.MovimentoEstoqueRepository,
	pendentes pending.Registry,
	dispatcher ReciboDispatcher,
) VendaService {
	return &vendaService{
		repo:       repo,
		produtos:   produtos,
		clientes:   clientes,
		movimentos: movimentos,
		pendentes:  pendentes,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func operadorKey(funcionarioID uint) string {
	return strconv.FormatUint(uint64(funcionarioID), 10)
}

func estoqueInsuficiente(descricao string, disponivel, solicitado int) error {
	return newError(ErrInsufficientStock, "Estoque insuficiente para %s. Disponível: %d, Solicitado: %d",
		descricao, disponivel, solicitado)
}

// ── FinalizarVenda ───────────────────────────────────────────────────────────
//   1. Reject an empty cart
//   2. Resolve the customer by normalized CPF (optional)
//   3. Check every product and its stock before writing anything
//   4. BEGIN TX: header, then per line: item, guarded decrement, movement
//   5. COMMIT, pin the sale to the operator

func (s *vendaService) FinalizarVenda(ctx context.Context, funcionarioID uint, req dto.FinalizarVendaRequest) (*dto.FinalizarVendaResponse, error) {
	if len(req.Itens) == 0 {
		return nil, invalid("O carrinho está vazio")
	}

	clienteID, err := s.resolverCliente(ctx, req.CPF)
	if err != nil {
		return nil, err
	}

	// Quantities are summed per product so that two lines of the same
	// product cannot each pass the check on their own.
	solicitado := make(map[uint]int)
	produtos := make(map[uint]*model.Produto)
	soma := decimal.Zero
	for _, it := range req.Itens {
		if it.Quantidade <= 0 {
			return nil, invalid("A quantidade deve ser maior que zero")
		}
		if it.Subtotal.IsNegative() {
			return nil, invalid("O subtotal não pode ser negativo")
		}
		if !format.EmCentavos(it.Subtotal) {
			return nil, errCentavos("subtotal")
		}
		p, ok := produtos[it.ProdutoID]
		if !ok {
			p, err = s.produtos.FindByID(ctx, it.ProdutoID)
			if err != nil {
				return nil, notFoundOr(err, fmt.Sprintf("Produto com ID %d não encontrado", it.ProdutoID))
			}
			produtos[it.ProdutoID] = p
		}
		solicitado[it.ProdutoID] += it.Quantidade
		if p.QtdEstoque < solicitado[it.ProdutoID] {
			return nil, estoqueInsuficiente(p.Descricao, p.QtdEstoque, solicitado[it.ProdutoID])
		}
		soma = soma.Add(it.Subtotal)
	}

	if !format.EmCentavos(req.Total) {
		return nil, errCentavos("total")
	}
	total := req.Total
	if total.IsZero() {
		total = soma
	} else if !total.Equal(soma) {
		return nil, invalid("O total informado (%s) não confere com a soma dos itens (%s)",
			format.FormatarMoeda(total), format.FormatarMoeda(soma))
	}

	venda := model.Venda{
		ClienteID:   clienteID,
		DataVenda:   s.now().UTC(),
		TotalVenda:  total,
		Observacoes: strings.TrimSpace(req.Observacoes),
		Status:      model.VendaPendente,
		Troco:       decimal.Zero,
	}
	if funcionarioID != 0 {
		fid := funcionarioID
		venda.FuncionarioID = &fid
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &venda); err != nil {
			return err
		}
		for _, it := range req.Itens {
			item := model.ItemVenda{
				VendaID:    venda.ID,
				ProdutoID:  it.ProdutoID,
				Quantidade: it.Quantidade,
				Subtotal:   it.Subtotal,
			}
			if err := s.repo.CreateItemTx(tx, &item); err != nil {
				return err
			}

			novo, ok, err := s.produtos.DecrementarEstoqueTx(tx, it.ProdutoID, it.Quantidade)
			if err != nil {
				return err
			}
			if !ok {
				// Another sale took the stock after the pre-check.
				atual := 0
				if p, err := s.produtos.FindByIDTx(tx, it.ProdutoID); err == nil {
					atual = p.QtdEstoque
				}
				return estoqueInsuficiente(produtos[it.ProdutoID].Descricao, atual, it.Quantidade)
			}

			vendaID := venda.ID
			mov := model.MovimentoEstoque{
				ProdutoID:       it.ProdutoID,
				Tipo:            "venda",
				Quantidade:      -it.Quantidade,
				EstoqueAnterior: novo + it.Quantidade,
				EstoqueNovo:     novo,
				Motivo:          "Venda " + format.CodigoVenda(venda.ID),
				VendaID:         &vendaID,
			}
			if err := s.movimentos.CreateTx(tx, &mov); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.pendentes.Pin(ctx, operadorKey(funcionarioID), venda.ID); err != nil {
		log.Warn().Err(err).Uint("venda_id", venda.ID).Msg("venda finalizada sem registro de pendência")
	}

	log.Info().
		Uint("venda_id", venda.ID).
		Uint("funcionario_id", funcionarioID).
		Int("itens", len(req.Itens)).
		Str("total", total.StringFixed(2)).
		Msg("venda finalizada")

	return &dto.FinalizarVendaResponse{
		Success:  true,
		Mensagem: "Venda finalizada com sucesso!",
		VendaID:  venda.ID,
		Total:    total,
	}, nil
}

func (s *vendaService) resolverCliente(ctx context.Context, cpf string) (*uint, error) {
	doc := format.NormalizarDocumento(cpf)
	if doc == "" {
		return nil, nil
	}
	c, err := s.clientes.FindByCPF(ctx, doc)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c.ID, nil
}

// ── PagarVenda ───────────────────────────────────────────────────────────────

func (s *vendaService) PagarVenda(ctx context.Context, funcionarioID uint, req dto.PagarVendaRequest) (*dto.PagarVendaResponse, error) {
	operador := operadorKey(funcionarioID)
	vendaID := req.VendaID
	if vendaID == 0 {
		id, err := s.pendentes.Current(ctx, operador)
		if errors.Is(err, pending.ErrNone) {
			return nil, semVendaPendente()
		}
		if err != nil {
			return nil, err
		}
		vendaID = id
	}

	if req.Dinheiro.IsNegative() || req.Cartao.IsNegative() || req.Cheque.IsNegative() {
		return nil, invalid("Os valores de pagamento não podem ser negativos")
	}
	for _, v := range []decimal.Decimal{req.Dinheiro, req.Cartao, req.Cheque} {
		if !format.EmCentavos(v) {
			return nil, errCentavos("pagamento")
		}
	}

	venda, err := s.repo.FindByID(ctx, vendaID)
	if err != nil {
		return nil, notFoundOr(err, "Venda não encontrada")
	}
	if venda.Status != model.VendaPendente {
		return nil, semVendaPendente()
	}

	pago := req.Dinheiro.Add(req.Cartao).Add(req.Cheque)
	if pago.LessThan(venda.TotalVenda) {
		return nil, newError(ErrInsufficientPayment, "Valor pago é menor que o total da venda")
	}
	troco := pago.Sub(venda.TotalVenda)

	nota := ResumoPagamento(req.Dinheiro, req.Cartao, req.Cheque)
	if obs := strings.TrimSpace(req.Observacoes); obs != "" {
		nota = obs + "; " + nota
	}
	observacoes := nota
	if venda.Observacoes != "" {
		observacoes = venda.Observacoes + "\n" + nota
	}

	ok, err := s.repo.RegistrarPagamento(ctx, venda.ID, observacoes, troco, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if !ok {
		// Paid concurrently between the read and the update.
		return nil, semVendaPendente()
	}

	if err := s.pendentes.Clear(ctx, operador, venda.ID); err != nil {
		log.Warn().Err(err).Uint("venda_id", venda.ID).Msg("falha ao limpar venda pendente")
	}
	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueRecibo(ctx, venda.ID); err != nil {
			log.Warn().Err(err).Uint("venda_id", venda.ID).Msg("recibo não enfileirado")
		}
	}

	log.Info().
		Uint("venda_id", venda.ID).
		Str("total", venda.TotalVenda.StringFixed(2)).
		Str("pago", pago.StringFixed(2)).
		Str("troco", troco.StringFixed(2)).
		Msg("pagamento processado")

	return &dto.PagarVendaResponse{
		Success:  true,
		Mensagem: "Pagamento processado com sucesso!",
		Troco:    troco,
		VendaID:  venda.ID,
	}, nil
}

// ResumoPagamento lists the non-zero tenders, e.g.
// "Pagamento: Dinheiro R$ 50,00 Cartão R$ 10,00".
func ResumoPagamento(dinheiro, cartao, cheque decimal.Decimal) string {
	partes := []string{"Pagamento:"}
	if dinheiro.IsPositive() {
		partes = append(partes, "Dinheiro "+format.FormatarMoeda(dinheiro))
	}
	if cartao.IsPositive() {
		partes = append(partes, "Cartão "+format.FormatarMoeda(cartao))
	}
	if cheque.IsPositive() {
		partes = append(partes, "Cheque "+format.FormatarMoeda(cheque))
	}
	return strings.Join(partes, " ")
}
