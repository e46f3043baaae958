package commands

import (
	"fmt"
	"os"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Ferramentas de manutenção do sistema de vendas",
	Long: `Ferramentas de manutenção do sistema de vendas.

Configuração lida das mesmas variáveis de ambiente (ou .env) do servidor:
DATABASE_DRIVER, DATABASE_URL, ...`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Saída detalhada")
	rootCmd.AddCommand(migrateCmd, seedAdminCmd, hashPasswordCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("carregar configuração: %w", err)
	}
	return cfg, nil
}
