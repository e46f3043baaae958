package service

import (
	"context"
	"strings"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/format"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is used for every stored password.
const BcryptCost = 12

type FuncionarioService interface {
	Listar(ctx context.Context) ([]dto.FuncionarioResponse, error)
	Obter(ctx context.Context, id uint) (*dto.FuncionarioResponse, error)
	Criar(ctx context.Context, req dto.FuncionarioRequest) (*dto.FuncionarioResponse, error)
	// Atualizar keeps the current password when req.Senha is empty.
	Atualizar(ctx context.Context, id uint, req dto.FuncionarioRequest) (*dto.FuncionarioResponse, error)
	Excluir(ctx context.Context, id uint) error
}

type funcionarioService struct {
	repo repository.FuncionarioRepository
}

func NewFuncionarioService(repo repository.FuncionarioRepository) FuncionarioService {
	return &funcionarioService{repo: repo}
}

const msgEmailDuplicado = "Já existe um funcionário cadastrado com este e-mail"

func (s *funcionarioService) Listar(ctx context.Context) ([]dto.FuncionarioResponse, error) {
	fs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.FuncionarioResponse, len(fs))
	for i := range fs {
		resp[i] = funcionarioToResponse(&fs[i])
	}
	return resp, nil
}

func (s *funcionarioService) Obter(ctx context.Context, id uint) (*dto.FuncionarioResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Funcionário não encontrado")
	}
	resp := funcionarioToResponse(f)
	return &resp, nil
}

func (s *funcionarioService) Criar(ctx context.Context, req dto.FuncionarioRequest) (*dto.FuncionarioResponse, error) {
	if req.Senha == "" {
		return nil, invalid("A senha é obrigatória")
	}
	f := &model.Funcionario{}
	if err := s.preencher(ctx, f, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, duplicadoOr(err, msgEmailDuplicado)
	}
	log.Info().Uint("funcionario_id", f.ID).Int("nivel", f.NivelAcesso).Msg("funcionário salvo")
	resp := funcionarioToResponse(f)
	return &resp, nil
}

func (s *funcionarioService) Atualizar(ctx context.Context, id uint, req dto.FuncionarioRequest) (*dto.FuncionarioResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Funcionário não encontrado")
	}
	if err := s.preencher(ctx, f, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, duplicadoOr(err, msgEmailDuplicado)
	}
	resp := funcionarioToResponse(f)
	return &resp, nil
}

func (s *funcionarioService) Excluir(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "Funcionário não encontrado")
	}
	n, err := s.repo.CountReferencias(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return invalid("Funcionário possui %d venda(s) ou compra(s) registradas e não pode ser excluído", n)
	}
	return s.repo.Delete(ctx, id)
}

func (s *funcionarioService) preencher(ctx context.Context, f *model.Funcionario, req dto.FuncionarioRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	emUso, err := s.repo.EmailEmUso(ctx, email, f.ID)
	if err != nil {
		return err
	}
	if emUso {
		return invalid(msgEmailDuplicado)
	}
	if req.NivelAcesso < model.NivelOperador || req.NivelAcesso > model.NivelAdministrador {
		return invalid("Nível de acesso inválido")
	}
	if req.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), BcryptCost)
		if err != nil {
			return err
		}
		f.SenhaHash = string(hash)
	}
	f.Nome = strings.TrimSpace(req.Nome)
	f.RG = req.RG
	f.CPF = format.NormalizarDocumento(req.CPF)
	f.Email = email
	f.Telefone = req.Telefone
	f.Celular = req.Celular
	f.Cargo = req.Cargo
	f.NivelAcesso = req.NivelAcesso
	f.Endereco = enderecoFromDTO(req.EnderecoDTO)
	return nil
}
