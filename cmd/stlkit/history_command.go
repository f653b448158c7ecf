package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stlkit/internal/catalog"
)

type historyEntryView struct {
	ID             string `json:"id"`
	SourcePath     string `json:"source_path"`
	OutputPath     string `json:"output_path"`
	DiskFormat     string `json:"disk_format"`
	SubtitleCount  int    `json:"subtitle_count"`
	TruncatedCount int    `json:"truncated_count"`
	CreatedAt      string `json:"created_at"`
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Catalog.Enabled {
				return fmt.Errorf("catalog is disabled in the configuration")
			}

			store, err := catalog.Open(cfg.Catalog.Dir)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer func() { _ = store.Close() }()

			conversions, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				views := make([]historyEntryView, 0, len(conversions))
				for _, conv := range conversions {
					views = append(views, historyEntryView{
						ID:             conv.ID,
						SourcePath:     conv.SourcePath,
						OutputPath:     conv.OutputPath,
						DiskFormat:     conv.DiskFormat,
						SubtitleCount:  conv.SubtitleCount,
						TruncatedCount: conv.TruncatedCount,
						CreatedAt:      conv.CreatedAt.Format(time.RFC3339),
					})
				}
				return writeJSON(cmd, views)
			}

			if len(conversions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No conversions recorded")
				return nil
			}

			rows := make([][]string, 0, len(conversions))
			for _, conv := range conversions {
				rows = append(rows, []string{
					conv.CreatedAt.Local().Format("2006-01-02 15:04"),
					conv.SourcePath,
					conv.OutputPath,
					conv.DiskFormat,
					fmt.Sprintf("%d", conv.SubtitleCount),
					fmt.Sprintf("%d", conv.TruncatedCount),
				})
			}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(cmd.OutOrStdout(),
				[]string{"When", "Source", "Output", "Format", "Subtitles", "Truncated"},
				rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}
