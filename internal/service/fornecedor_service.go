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

type FornecedorService interface {
	Listar(ctx context.Context, termo string) ([]dto.FornecedorResponse, error)
	Obter(ctx context.Context, id uint) (*dto.FornecedorResponse, error)
	Criar(ctx context.Context, req dto.FornecedorRequest) (*dto.FornecedorResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.FornecedorRequest) (*dto.FornecedorResponse, error)
	// Excluir refuses suppliers still referenced by purchases or products.
	Excluir(ctx context.Context, id uint) error
}

type fornecedorService struct {
	repo repository.FornecedorRepository
}

func NewFornecedorService(repo repository.FornecedorRepository) FornecedorService {
	return &fornecedorService{repo: repo}
}

const msgCNPJDuplicado = "Já existe um fornecedor cadastrado com este CNPJ"

func (s *fornecedorService) Listar(ctx context.Context, termo string) ([]dto.FornecedorResponse, error) {
	fs, err := s.repo.Search(ctx, termo)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.FornecedorResponse, len(fs))
	for i := range fs {
		resp[i] = fornecedorToResponse(&fs[i])
	}
	return resp, nil
}

func (s *fornecedorService) Obter(ctx context.Context, id uint) (*dto.FornecedorResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Fornecedor não encontrado")
	}
	resp := fornecedorToResponse(f)
	return &resp, nil
}

func (s *fornecedorService) Criar(ctx context.Context, req dto.FornecedorRequest) (*dto.FornecedorResponse, error) {
	f := &model.Fornecedor{}
	if err := s.preencher(ctx, f, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, duplicadoOr(err, msgCNPJDuplicado)
	}
	log.Info().Uint("fornecedor_id", f.ID).Msg("fornecedor cadastrado")
	resp := fornecedorToResponse(f)
	return &resp, nil
}

func (s *fornecedorService) Atualizar(ctx context.Context, id uint, req dto.FornecedorRequest) (*dto.FornecedorResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Fornecedor não encontrado")
	}
	if err := s.preencher(ctx, f, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, duplicadoOr(err, msgCNPJDuplicado)
	}
	resp := fornecedorToResponse(f)
	return &resp, nil
}

func (s *fornecedorService) Excluir(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "Fornecedor não encontrado")
	}
	compras, produtos, err := s.repo.CountReferencias(ctx, id)
	if err != nil {
		return err
	}
	if compras > 0 || produtos > 0 {
		return invalid("Fornecedor possui %d compra(s) e %d produto(s) vinculados e não pode ser excluído",
			compras, produtos)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Uint("fornecedor_id", id).Msg("fornecedor excluído")
	return nil
}

func (s *fornecedorService) preencher(ctx context.Context, f *model.Fornecedor, req dto.FornecedorRequest) error {
	cnpj := format.NormalizarDocumento(req.CNPJ)
	if cnpj == "" {
		return invalid("CNPJ inválido")
	}
	emUso, err := s.repo.CNPJEmUso(ctx, cnpj, f.ID)
	if err != nil {
		return err
	}
	if emUso {
		return invalid(msgCNPJDuplicado)
	}
	f.Nome = strings.TrimSpace(req.Nome)
	f.CNPJ = cnpj
	f.Email = req.Email
	f.Telefone = req.Telefone
	f.Celular = req.Celular
	f.Endereco = enderecoFromDTO(req.EnderecoDTO)
	return nil
}
