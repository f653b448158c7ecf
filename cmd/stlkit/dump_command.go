package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stlkit/internal/stl"
)

type dumpHeaderView struct {
	CodePage        int    `json:"code_page"`
	DiskFormat      string `json:"disk_format"`
	DisplayStandard string `json:"display_standard"`
	CharacterTable  string `json:"character_table"`
	LanguageCode    string `json:"language_code"`
	ProgramTitle    string `json:"program_title,omitempty"`
	EpisodeTitle    string `json:"episode_title,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	EditorName      string `json:"editor_name,omitempty"`
	CreationDate    string `json:"creation_date"`
	RevisionDate    string `json:"revision_date"`
	BlockCount      int    `json:"block_count"`
	SubtitleCount   int    `json:"subtitle_count"`
	MaxRowChars     int    `json:"max_row_chars"`
	MaxRows         int    `json:"max_rows"`
}

type dumpSubtitleView struct {
	Number       uint16 `json:"number"`
	TimeCodeIn   string `json:"in"`
	TimeCodeOut  string `json:"out"`
	Vertical     uint8  `json:"vertical_position"`
	DoubleHeight bool   `json:"double_height"`
	Text         string `json:"text"`
}

type dumpView struct {
	Header    dumpHeaderView     `json:"header"`
	Subtitles []dumpSubtitleView `json:"subtitles"`
}

func newDumpCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var headerOnly bool

	cmd := &cobra.Command{
		Use:         "dump <file.stl>",
		Short:       "Print the header and subtitles of an STL file",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := stl.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			view := buildDumpView(doc)
			if headerOnly {
				view.Subtitles = nil
			}
			if jsonOutput {
				return writeJSON(cmd, view)
			}
			renderDump(cmd, view, headerOnly)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of tables")
	cmd.Flags().BoolVar(&headerOnly, "header", false, "Show only the file header")
	return cmd
}

func buildDumpView(doc *stl.Document) dumpView {
	gsi := doc.GSI
	view := dumpView{
		Header: dumpHeaderView{
			CodePage:        int(gsi.CodePage),
			DiskFormat:      string(gsi.DiskFormat),
			DisplayStandard: displayStandardLabel(gsi.DisplayStandard),
			CharacterTable:  gsi.CharacterTable.String(),
			LanguageCode:    gsi.LanguageCode,
			ProgramTitle:    gsi.OriginalProgramTitle,
			EpisodeTitle:    gsi.OriginalEpisodeTitle,
			Publisher:       gsi.Publisher,
			EditorName:      gsi.EditorName,
			CreationDate:    gsi.CreationDate,
			RevisionDate:    gsi.RevisionDate,
			BlockCount:      gsi.BlockCount,
			SubtitleCount:   gsi.SubtitleCount,
			MaxRowChars:     gsi.MaxRowChars,
			MaxRows:         gsi.MaxRows,
		},
	}

	for _, tti := range doc.TTIs {
		view.Subtitles = append(view.Subtitles, dumpSubtitleView{
			Number:       tti.SubtitleNumber,
			TimeCodeIn:   tti.TimeCodeIn.String(),
			TimeCodeOut:  tti.TimeCodeOut.String(),
			Vertical:     tti.VerticalPosition,
			DoubleHeight: tti.DoubleHeight(),
			Text:         strings.TrimRight(tti.Text(), "\r\n"),
		})
	}
	return view
}

func renderDump(cmd *cobra.Command, view dumpView, headerOnly bool) {
	out := cmd.OutOrStdout()

	headerRows := [][]string{
		{"Disk format", view.Header.DiskFormat},
		{"Display standard", view.Header.DisplayStandard},
		{"Character table", view.Header.CharacterTable},
		{"Code page", fmt.Sprintf("%d", view.Header.CodePage)},
		{"Language code", view.Header.LanguageCode},
		{"Program title", view.Header.ProgramTitle},
		{"Publisher", view.Header.Publisher},
		{"Created", view.Header.CreationDate},
		{"Revised", view.Header.RevisionDate},
		{"Blocks", fmt.Sprintf("%d", view.Header.BlockCount)},
		{"Subtitles", fmt.Sprintf("%d", view.Header.SubtitleCount)},
		{"Display limits", fmt.Sprintf("%d cols x %d rows", view.Header.MaxRowChars, view.Header.MaxRows)},
	}
	fmt.Fprintln(out, renderTable(out, []string{"Field", "Value"}, headerRows, nil))

	if headerOnly {
		return
	}

	rows := make([][]string, 0, len(view.Subtitles))
	for _, sub := range view.Subtitles {
		text := strings.ReplaceAll(sub.Text, "\r\n", " / ")
		rows = append(rows, []string{
			fmt.Sprintf("%d", sub.Number),
			sub.TimeCodeIn,
			sub.TimeCodeOut,
			fmt.Sprintf("%d", sub.Vertical),
			text,
		})
	}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft}
	fmt.Fprintln(out, renderTable(out, []string{"#", "In", "Out", "Row", "Text"}, rows, aligns))
}

func displayStandardLabel(d stl.DisplayStandardCode) string {
	switch d {
	case stl.DisplayStandardOpenSubtitling:
		return "Open subtitling"
	case stl.DisplayStandardLevel1Teletext:
		return "Level-1 teletext"
	case stl.DisplayStandardLevel2Teletext:
		return "Level-2 teletext"
	case stl.DisplayStandardBlank:
		return "Unspecified"
	default:
		return fmt.Sprintf("0x%02X", byte(d))
	}
}
