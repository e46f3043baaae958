package commands

import (
	"errors"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/infra"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica ou reverte as migrações SQL",
	Long: `Aplica ou reverte as migrações SQL embutidas (PostgreSQL).

Subcomandos:
  up    - aplica as migrações pendentes
  down  - reverte todas as migrações`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica as migrações pendentes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(true)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Reverte todas as migrações (apaga os dados)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(false)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}

func runMigrate(up bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseDriver == "sqlite" {
		return errors.New("migrações SQL só se aplicam ao PostgreSQL; use AUTO_MIGRATE=true com SQLite")
	}
	return infra.RunMigrations(cfg.DatabaseURL, up)
}
