package service

import (
	"context"
	"strings"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/format"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/repository"

	"github.com/rs/zerolog/log"
)

type ProdutoService interface {
	Listar(ctx context.Context, termo string) ([]dto.ProdutoResponse, error)
	Obter(ctx context.Context, id uint) (*dto.ProdutoResponse, error)
	Criar(ctx context.Context, req dto.ProdutoRequest) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.ProdutoRequest) (*dto.ProdutoResponse, error)
	Excluir(ctx context.Context, id uint) error
	Movimentos(ctx context.Context, id uint) ([]dto.MovimentoEstoqueResponse, error)
}

type produtoService struct {
	repo         repository.ProdutoRepository
	fornecedores repository.FornecedorRepository
	movimentos   repository.MovimentoEstoqueRepository
}

func NewProdutoService(
	repo repository.ProdutoRepository,
	fornecedores repository.FornecedorRepository,
	movimentos repository.MovimentoEstoqueRepository,
) ProdutoService {
	return &produtoService{repo: repo, fornecedores: fornecedores, movimentos: movimentos}
}

func (s *produtoService) Listar(ctx context.Context, termo string) ([]dto.ProdutoResponse, error) {
	ps, err := s.repo.Search(ctx, termo)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProdutoResponse, len(ps))
	for i := range ps {
		resp[i] = produtoToResponse(&ps[i])
	}
	return resp, nil
}

func (s *produtoService) Obter(ctx context.Context, id uint) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Produto não encontrado")
	}
	resp := produtoToResponse(p)
	return &resp, nil
}

func (s *produtoService) Criar(ctx context.Context, req dto.ProdutoRequest) (*dto.ProdutoResponse, error) {
	p := &model.Produto{}
	if err := s.preencher(ctx, p, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	log.Info().Uint("produto_id", p.ID).Str("descricao", p.Descricao).Msg("produto criado")
	resp := produtoToResponse(p)
	return &resp, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uint, req dto.ProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Produto não encontrado")
	}
	if err := s.preencher(ctx, p, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := produtoToResponse(p)
	return &resp, nil
}

func (s *produtoService) Excluir(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "Produto não encontrado")
	}
	n, err := s.repo.CountReferencias(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return invalid("Produto consta em %d item(ns) de venda ou compra e não pode ser excluído", n)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Uint("produto_id", id).Msg("produto excluído")
	return nil
}

func (s *produtoService) Movimentos(ctx context.Context, id uint) ([]dto.MovimentoEstoqueResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, notFoundOr(err, "Produto não encontrado")
	}
	movs, err := s.movimentos.ListByProduto(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovimentoEstoqueResponse, len(movs))
	for i, m := range movs {
		resp[i] = dto.MovimentoEstoqueResponse{
			ID:              m.ID,
			Tipo:            m.Tipo,
			Quantidade:      m.Quantidade,
			EstoqueAnterior: m.EstoqueAnterior,
			EstoqueNovo:     m.EstoqueNovo,
			Motivo:          m.Motivo,
			VendaID:         m.VendaID,
			CreatedAt:       m.CreatedAt,
		}
	}
	return resp, nil
}

func (s *produtoService) preencher(ctx context.Context, p *model.Produto, req dto.ProdutoRequest) error {
	if req.Preco.IsNegative() {
		return invalid("O preço não pode ser negativo")
	}
	if !format.EmCentavos(req.Preco) {
		return errCentavos("preço")
	}
	if req.QtdEstoque < 0 {
		return invalid("A quantidade em estoque não pode ser negativa")
	}
	f, err := s.fornecedores.FindByID(ctx, req.FornecedorID)
	if err != nil {
		return notFoundOr(err, "Fornecedor não encontrado")
	}
	p.Descricao = strings.TrimSpace(req.Descricao)
	p.Preco = req.Preco
	p.QtdEstoque = req.QtdEstoque
	p.FornecedorID = f.ID
	p.Fornecedor = f
	return nil
}
