// Package main é a CLI de tendências: lê o log de buscas configurado e
// imprime tópicos em alta e volume de buscas.
package main

import (
	"fmt"
	"os"

	"github.com/medpub/app-busca-medica/internal/config"
	"github.com/medpub/app-busca-medica/internal/services"
	"github.com/medpub/app-busca-medica/internal/storage"
	"github.com/medpub/app-busca-medica/internal/typesense"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "trends",
	Short: "Tópicos em alta e volume de buscas a partir do log de buscas",
	Long: `trends lê o log de buscas configurado (QUERY_LOG_BACKEND) e calcula os
tópicos em alta de uma janela em dias ou o volume de buscas por query das
últimas horas. A saída é uma tabela ou JSON (--json).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "saída em JSON")
}

// openQueryLog abre o log de buscas do backend configurado.
// O close retornado deve ser chamado pelo comando.
func openQueryLog(cfg *config.Config) (services.QueryLogStore, func(), error) {
	if cfg.QueryLogBackend == config.QueryLogBackendSQLite {
		store, err := storage.NewSQLiteQueryLog(cfg.QueryLogSQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao abrir %s: %w", cfg.QueryLogSQLitePath, err)
		}
		return store, func() { _ = store.Close() }, nil
	}

	return typesense.NewClient(cfg, zap.NewNop()), func() {}, nil
}

func loadStore() (services.QueryLogStore, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return openQueryLog(cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
