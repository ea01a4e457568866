package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/medpub/app-busca-medica/internal/analytics"
	"github.com/medpub/app-busca-medica/internal/models"
	"github.com/spf13/cobra"
)

var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Volume de buscas por query nas últimas horas",
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, _ := cmd.Flags().GetInt("hours")
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")
		if hours < 1 {
			return fmt.Errorf("--hours deve ser maior que zero")
		}

		store, closeStore, err := loadStore()
		if err != nil {
			return err
		}
		defer closeStore()

		since := time.Now().Add(-time.Duration(hours) * time.Hour)
		entries, err := store.Since(cmd.Context(), since)
		if err != nil {
			return err
		}

		volumes := analytics.AggregateVolume(entries, since)
		if limit > 0 && len(volumes) > limit {
			volumes = volumes[:limit]
		}

		if asJSON {
			return writeJSON(cmd.OutOrStdout(), volumes)
		}
		return writeVolumeTable(cmd.OutOrStdout(), volumes)
	},
}

func init() {
	volumeCmd.Flags().Int("hours", 24, "janela em horas")
	volumeCmd.Flags().Int("limit", 20, "quantidade máxima de queries (0 = todas)")
	rootCmd.AddCommand(volumeCmd)
}

func writeVolumeTable(w io.Writer, volumes []models.SearchVolume) error {
	if len(volumes) == 0 {
		_, err := fmt.Fprintln(w, "nenhuma busca no período")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "QUERY\tBUSCAS\tÚLTIMA")
	for _, v := range volumes {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", v.Query, v.Count, v.Date.Local().Format(time.DateTime))
	}
	return tw.Flush()
}
