package stl

import (
	"fmt"
	"os"
)

// Document is one GSI header plus its subtitle blocks in presentation
// order. A parsed Document always has at least one subtitle block.
type Document struct {
	GSI  *GSIBlock
	TTIs []*TTIBlock
}

// New returns an empty Document with default header values. Append at
// least one subtitle before serializing; a file with zero TTI blocks
// does not parse back.
func New() *Document {
	return &Document{GSI: NewGSIBlock()}
}

// Parse decodes a fully buffered STL file. The first failing field
// aborts the parse; there is no partial result.
func Parse(data []byte) (*Document, error) {
	cur := newCursor(data)
	gsi, err := parseGSI(cur)
	if err != nil {
		return nil, err
	}
	var ttis []*TTIBlock
	for cur.remaining() > 0 {
		tti, err := parseTTI(cur, gsi.CharacterTable)
		if err != nil {
			return nil, err
		}
		ttis = append(ttis, tti)
	}
	if len(ttis) == 0 {
		return nil, ErrNoSubtitles
	}
	return &Document{GSI: gsi, TTIs: ttis}, nil
}

// ParseFile reads and parses an STL file from disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stl: %w", err)
	}
	return Parse(data)
}

// Append adds a subtitle at the end of the document. The header's block
// counter supplies the new subtitle number (first append on a fresh
// document yields number 1) and the subtitle counter tracks it. Text
// that overflows the framed slot is truncated, reported through the
// returned diagnostics, and never an error.
func (d *Document) Append(in, out Timecode, text string, format Format) []Diagnostic {
	d.GSI.BlockCount++
	d.GSI.SubtitleCount++
	tti, truncated := newTTIBlock(uint16(d.GSI.BlockCount), in, out, text, format, d.GSI.CharacterTable)
	d.TTIs = append(d.TTIs, tti)
	if truncated {
		return []Diagnostic{{
			Field:  fmt.Sprintf("subtitle %d text", tti.SubtitleNumber),
			Limit:  textFieldLength - 3,
			Actual: len(encodeTextLines(text, d.GSI.CharacterTable.Codec())),
		}}
	}
	return nil
}

// Serialize renders the whole document: 1024 header bytes followed by
// 128 bytes per subtitle block.
func (d *Document) Serialize() ([]byte, []Diagnostic) {
	out, diags := d.GSI.Serialize()
	for _, tti := range d.TTIs {
		out = append(out, tti.Serialize()...)
	}
	return out, diags
}

// WriteFile serializes the document to disk.
func (d *Document) WriteFile(path string) ([]Diagnostic, error) {
	data, diags := d.Serialize()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return diags, fmt.Errorf("write stl: %w", err)
	}
	return diags, nil
}
