// Package convert turns parsed SRT cues into STL documents, remapping
// millisecond timestamps onto the target frame rate and stamping header
// metadata from the caller's options.
package convert

import (
	"fmt"

	"stlkit/internal/srt"
	"stlkit/internal/stl"
)

// Options selects the output format and the presentation applied to
// every subtitle.
type Options struct {
	DiskFormat     stl.DiskFormatCode
	CharacterTable stl.CharacterCodeTable
	CodePage       stl.CodePageNumber
	MaxRowChars    int
	MaxRows        int

	Justification    uint8
	VerticalPosition uint8
	DoubleHeight     bool

	ProgramTitle string
	LanguageCode string
	Publisher    string
	EditorName   string
}

// Result is the converted document plus every non-fatal diagnostic the
// conversion produced (text truncated to the 112-byte slot).
type Result struct {
	Document    *stl.Document
	Diagnostics []stl.Diagnostic
}

// FromCues builds an STL document from SRT cues. Cue order is
// preserved; subtitle numbers are assigned from one.
func FromCues(cues []srt.Cue, opts Options) (*Result, error) {
	if len(cues) == 0 {
		return nil, fmt.Errorf("convert: no cues to convert")
	}

	doc := stl.New()
	applyHeader(doc.GSI, opts)

	fps := doc.GSI.DiskFormat.FPS()
	format := stl.Format{
		Justification:    opts.Justification,
		VerticalPosition: opts.VerticalPosition,
		DoubleHeight:     opts.DoubleHeight,
	}

	var diags []stl.Diagnostic
	for _, cue := range cues {
		d := doc.Append(timecodeFor(cue.Start, fps), timecodeFor(cue.End, fps), cue.Text, format)
		diags = append(diags, d...)
	}
	return &Result{Document: doc, Diagnostics: diags}, nil
}

func applyHeader(gsi *stl.GSIBlock, opts Options) {
	if opts.DiskFormat != "" {
		gsi.DiskFormat = opts.DiskFormat
	}
	if opts.CharacterTable != 0 {
		gsi.CharacterTable = opts.CharacterTable
	}
	if opts.CodePage != 0 {
		gsi.CodePage = opts.CodePage
	}
	if opts.MaxRowChars > 0 {
		gsi.MaxRowChars = opts.MaxRowChars
	}
	if opts.MaxRows > 0 {
		gsi.MaxRows = opts.MaxRows
	}
	if opts.ProgramTitle != "" {
		gsi.OriginalProgramTitle = opts.ProgramTitle
	}
	if opts.LanguageCode != "" {
		gsi.LanguageCode = opts.LanguageCode
	}
	if opts.Publisher != "" {
		gsi.Publisher = opts.Publisher
	}
	if opts.EditorName != "" {
		gsi.EditorName = opts.EditorName
	}
}

// timecodeFor maps a millisecond timestamp onto frames at the target
// rate. Milliseconds always round down to a whole frame.
func timecodeFor(ts srt.Timestamp, fps int) stl.Timecode {
	return stl.Timecode{
		Hours:   uint8(ts.Hours),
		Minutes: uint8(ts.Minutes),
		Seconds: uint8(ts.Seconds),
		Frames:  uint8(ts.Millis * fps / 1000),
	}
}
