package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"stlkit/internal/catalog"
	"stlkit/internal/config"
	"stlkit/internal/convert"
	"stlkit/internal/logging"
	"stlkit/internal/srt"
	"stlkit/internal/stl"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var (
		outputPath   string
		diskFormat   string
		table        string
		doubleHeight bool
		noCatalog    bool
	)

	cmd := &cobra.Command{
		Use:   "convert <file.srt> [file.stl]",
		Short: "Convert an SRT file to EBU STL",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.logger(cmd.ErrOrStderr())

			cues, err := srt.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			opts, err := convertOptions(cfg, diskFormat, table, doubleHeight)
			if err != nil {
				return err
			}

			result, err := convert.FromCues(cues, opts)
			if err != nil {
				return err
			}
			for _, diag := range result.Diagnostics {
				logger.Warn("field truncated",
					logging.String("field", diag.Field),
					logging.Int("limit", diag.Limit),
					logging.Int("actual", diag.Actual))
			}

			target := strings.TrimSpace(outputPath)
			if target == "" && len(args) > 1 {
				target = args[1]
			}
			if target == "" {
				target = replaceExtension(args[0], ".stl")
			}
			writeDiags, err := result.Document.WriteFile(target)
			if err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			for _, diag := range writeDiags {
				logger.Warn("header field truncated",
					logging.String("field", diag.Field),
					logging.Int("limit", diag.Limit),
					logging.Int("actual", diag.Actual))
			}

			if cfg.Catalog.Enabled && !noCatalog {
				recordConversion(cmd, logger, cfg, args[0], target, result)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d subtitles to %s\n",
				result.Document.GSI.SubtitleCount, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output STL path (default: input with .stl extension)")
	cmd.Flags().StringVar(&diskFormat, "disk-format", "", "Disk format code, STL25.01 or STL30.01")
	cmd.Flags().StringVar(&table, "table", "", "Character code table, 00 to 04")
	cmd.Flags().BoolVar(&doubleHeight, "double-height", false, "Render subtitles double height")
	cmd.Flags().BoolVar(&noCatalog, "no-catalog", false, "Skip recording the conversion in the catalog")
	return cmd
}

func convertOptions(cfg *config.Config, diskFormat, table string, doubleHeight bool) (convert.Options, error) {
	format, charTable, codePage := cfg.STLOptions()

	if flag := strings.ToUpper(strings.TrimSpace(diskFormat)); flag != "" {
		switch stl.DiskFormatCode(flag) {
		case stl.DiskFormat25, stl.DiskFormat30:
			format = stl.DiskFormatCode(flag)
		default:
			return convert.Options{}, fmt.Errorf("unsupported disk format %q", diskFormat)
		}
	}
	if flag := strings.TrimSpace(table); flag != "" {
		if len(flag) != 2 || flag[0] != '0' || flag[1] < '0' || flag[1] > '4' {
			return convert.Options{}, fmt.Errorf("unsupported character code table %q", table)
		}
		charTable = stl.CharacterCodeTable(flag[1])
	}

	return convert.Options{
		DiskFormat:       format,
		CharacterTable:   charTable,
		CodePage:         codePage,
		MaxRowChars:      cfg.Output.MaxRowChars,
		MaxRows:          cfg.Output.MaxRows,
		Justification:    uint8(cfg.Format.Justification),
		VerticalPosition: uint8(cfg.Format.VerticalPosition),
		DoubleHeight:     doubleHeight || cfg.Format.DoubleHeight,
		ProgramTitle:     cfg.Metadata.ProgramTitle,
		LanguageCode:     cfg.Metadata.LanguageCode,
		Publisher:        cfg.Metadata.Publisher,
		EditorName:       cfg.Metadata.EditorName,
	}, nil
}

// recordConversion logs failures instead of failing the conversion; a
// written output file outranks a history entry.
func recordConversion(cmd *cobra.Command, logger *slog.Logger, cfg *config.Config, source, target string, result *convert.Result) {
	store, err := catalog.Open(cfg.Catalog.Dir)
	if err != nil {
		logger.Warn("open catalog", logging.Error(err))
		return
	}
	defer func() { _ = store.Close() }()

	_, err = store.Record(cmd.Context(), catalog.Conversion{
		SourcePath:     source,
		OutputPath:     target,
		DiskFormat:     string(result.Document.GSI.DiskFormat),
		SubtitleCount:  result.Document.GSI.SubtitleCount,
		TruncatedCount: len(result.Diagnostics),
	})
	if err != nil {
		logger.Warn("record conversion", logging.Error(err))
	}
}

func replaceExtension(path, ext string) string {
	if idx := strings.LastIndexByte(path, '.'); idx > strings.LastIndexByte(path, '/') {
		return path[:idx] + ext
	}
	return path + ext
}
