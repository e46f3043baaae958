package service

import (
	"context"
	"errors"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/config"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.FuncionarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.FuncionarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func credenciaisInvalidas() error {
	return newError(ErrUnauthorized, "E-mail ou senha inválidos")
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	f, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, notFoundOrUnauthorized(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(f.SenhaHash), []byte(req.Senha)); err != nil {
		log.Warn().Str("email", f.Email).Msg("login recusado")
		return nil, credenciaisInvalidas()
	}

	token, err := s.generateToken(f, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	log.Info().Uint("funcionario_id", f.ID).Msg("login")

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		Funcionario: funcionarioToResponse(f),
	}, nil
}

// notFoundOrUnauthorized hides whether the e-mail exists.
func notFoundOrUnauthorized(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return credenciaisInvalidas()
	}
	return err
}

func (s *authService) generateToken(f *model.Funcionario, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"funcionario_id": f.ID,
		"nome":           f.Nome,
		"nivel":          f.NivelAcesso,
		"sub":            f.Email,
		"iat":            now.Unix(),
		"exp":            now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
