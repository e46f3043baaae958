package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/dto"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/infra"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/repository"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	adminNome  string
	adminEmail string
	adminSenha string
	adminCPF   string
	adminRG    string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Cria o primeiro funcionário administrador",
	Long: `Cria um funcionário com nível de acesso administrador, necessário
para cadastrar os demais funcionários pela API.

Exemplo:
  admin seed-admin --email admin@loja.com.br --senha 's3nh@forte'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeedAdmin(cmd.Context())
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password SENHA",
	Short: "Imprime o hash bcrypt de uma senha",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := bcrypt.GenerateFromPassword([]byte(args[0]), service.BcryptCost)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(h))
		return nil
	},
}

func init() {
	f := seedAdminCmd.Flags()
	f.StringVar(&adminNome, "nome", "Administrador", "Nome do funcionário")
	f.StringVar(&adminEmail, "email", "", "E-mail de login (obrigatório)")
	f.StringVar(&adminSenha, "senha", "", "Senha, mínimo 6 caracteres (obrigatório)")
	f.StringVar(&adminCPF, "cpf", "00000000000", "CPF")
	f.StringVar(&adminRG, "rg", "0", "RG")
	_ = seedAdminCmd.MarkFlagRequired("email")
	_ = seedAdminCmd.MarkFlagRequired("senha")
}

func runSeedAdmin(ctx context.Context) error {
	if len(adminSenha) < 6 {
		return errors.New("a senha deve ter pelo menos 6 caracteres")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := infra.NewDatabase(cfg)
	if err != nil {
		return fmt.Errorf("conectar ao banco: %w", err)
	}

	svc := service.NewFuncionarioService(repository.NewFuncionarioRepository(db))
	resp, err := svc.Criar(ctx, dto.FuncionarioRequest{
		Nome:        adminNome,
		RG:          adminRG,
		CPF:         adminCPF,
		Email:       adminEmail,
		Cargo:       "Administrador",
		NivelAcesso: model.NivelAdministrador,
		Senha:       adminSenha,
	})
	if errors.Is(err, service.ErrValidation) {
		return fmt.Errorf("não foi possível criar o administrador: %w", err)
	}
	if err != nil {
		return err
	}
	log.Info().Uint("id", resp.ID).Str("email", resp.Email).Msg("administrador criado")
	return nil
}
