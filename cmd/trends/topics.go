package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/medpub/app-busca-medica/internal/search/vocabulary"
	"github.com/medpub/app-busca-medica/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Lista os tópicos em alta",
	Long: `topics agrupa as buscas da janela por query normalizada e lista os
tópicos com volume suficiente, com categoria, taxa de crescimento e termos
relacionados.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		asJSON, _ := cmd.Flags().GetBool("json")
		if days < 1 {
			return fmt.Errorf("--days deve ser maior que zero")
		}

		store, closeStore, err := loadStore()
		if err != nil {
			return err
		}
		defer closeStore()

		svc := services.NewTrendingService(store, vocabulary.Default(), zap.NewNop(), nil)
		topics, err := svc.Topics(cmd.Context(), days)
		if err != nil {
			return err
		}

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), models.TrendingTopicsResponse{WindowDays: days, Topics: topics})
		}
		return writeTopicsTable(cmd.OutOrStdout(), topics)
	},
}

func init() {
	topicsCmd.Flags().Int("days", 7, "janela em dias")
	rootCmd.AddCommand(topicsCmd)
}

func writeTopicsTable(w io.Writer, topics []models.TrendingTopic) error {
	if len(topics) == 0 {
		_, err := fmt.Fprintln(w, "nenhum tópico em alta")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TÓPICO\tCATEGORIA\tBUSCAS\tCRESCIMENTO\tRELACIONADOS")
	for _, t := range topics {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f%%\t%s\n",
			t.Term, t.Category, t.SearchCount, t.GrowthRate, strings.Join(t.RelatedTerms, ", "))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
