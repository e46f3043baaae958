package service

import (
	"context"
	"testing"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/config"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestFuncionario_CreateHashesPasswordAndRejectsDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := dto.FuncionarioRequest{
		Nome: "Ana Caixa", RG: "1234567", CPF: "111.222.333-44", Email: "Ana@Loja.com",
		Cargo: "Caixa", NivelAcesso: model.NivelOperador, Senha: "segredo1",
	}

	resp, err := f.funcionarios.Criar(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "ana@loja.com", resp.Email)
	assert.Equal(t, "11122233344", resp.CPF)

	var stored model.Funcionario
	require.NoError(t, f.db.First(&stored, resp.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.SenhaHash), []byte("segredo1")))

	req.Nome = "Outra Ana"
	_, err = f.funcionarios.Criar(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)

	// Update without a password keeps the old hash.
	req.Nome = "Ana Maria"
	req.Email = "ana@loja.com"
	req.Senha = ""
	_, err = f.funcionarios.Atualizar(ctx, resp.ID, req)
	require.NoError(t, err)
	var after model.Funcionario
	require.NoError(t, f.db.First(&after, resp.ID).Error)
	assert.Equal(t, stored.SenhaHash, after.SenhaHash)
	assert.Equal(t, "Ana Maria", after.Nome)
}

func TestAuth_Login(t *testing.T) {
	f := newFixture(t)
	seedFuncionario(t, f.db, "gerente@loja.com", "senha123", model.NivelGerente)
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8}
	auth := NewAuthService(repository.NewFuncionarioRepository(f.db), cfg)
	ctx := context.Background()

	resp, err := auth.Login(ctx, dto.LoginRequest{Email: "GERENTE@loja.com", Senha: "senha123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, float64(model.NivelGerente), claims["nivel"])
	assert.Equal(t, float64(resp.Funcionario.ID), claims["funcionario_id"])

	_, err = auth.Login(ctx, dto.LoginRequest{Email: "gerente@loja.com", Senha: "errada"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = auth.Login(ctx, dto.LoginRequest{Email: "ninguem@loja.com", Senha: "senha123"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}
