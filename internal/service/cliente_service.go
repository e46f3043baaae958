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

type ClienteService interface {
	Listar(ctx context.Context, termo string) ([]dto.ClienteResponse, error)
	Obter(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	// ObterPorCPF accepts the CPF formatted or not.
	ObterPorCPF(ctx context.Context, cpf string) (*dto.ClienteResponse, error)
	Criar(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	Excluir(ctx context.Context, id uint) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

const msgCPFDuplicado = "Já existe um cliente cadastrado com este CPF"

func (s *clienteService) Listar(ctx context.Context, termo string) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.Search(ctx, termo)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		resp[i] = clienteToResponse(&clientes[i])
	}
	return resp, nil
}

func (s *clienteService) Obter(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Cliente não encontrado")
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) ObterPorCPF(ctx context.Context, cpf string) (*dto.ClienteResponse, error) {
	doc := format.NormalizarDocumento(cpf)
	if doc == "" {
		return nil, invalid("CPF inválido")
	}
	c, err := s.repo.FindByCPF(ctx, doc)
	if err != nil {
		return nil, notFoundOr(err, "Cliente não encontrado")
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Criar(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c := &model.Cliente{}
	if err := s.preencher(ctx, c, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, duplicadoOr(err, msgCPFDuplicado)
	}
	log.Info().Uint("cliente_id", c.ID).Msg("cliente criado")
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uint, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Cliente não encontrado")
	}
	if err := s.preencher(ctx, c, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, duplicadoOr(err, msgCPFDuplicado)
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Excluir(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "Cliente não encontrado")
	}
	n, err := s.repo.CountVendas(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return invalid("Cliente possui %d venda(s) registrada(s) e não pode ser excluído", n)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Uint("cliente_id", id).Msg("cliente excluído")
	return nil
}

// preencher overwrites every field of c from req after normalizing and
// checking the CPF.
func (s *clienteService) preencher(ctx context.Context, c *model.Cliente, req dto.ClienteRequest) error {
	cpf := format.NormalizarDocumento(req.CPF)
	if cpf == "" {
		return invalid("CPF inválido")
	}
	emUso, err := s.repo.CPFEmUso(ctx, cpf, c.ID)
	if err != nil {
		return err
	}
	if emUso {
		return invalid(msgCPFDuplicado)
	}
	c.Nome = strings.TrimSpace(req.Nome)
	c.RG = req.RG
	c.CPF = cpf
	c.Email = req.Email
	c.Telefone = req.Telefone
	c.Celular = req.Celular
	c.Endereco = enderecoFromDTO(req.EnderecoDTO)
	return nil
}
