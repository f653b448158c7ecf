package stl_test

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"stlkit/internal/stl"
)

func buildDocument(t *testing.T, texts ...string) *stl.Document {
	t.Helper()
	doc := stl.New()
	for i, text := range texts {
		diags := doc.Append(
			stl.Timecode{Seconds: uint8(i * 4)},
			stl.Timecode{Seconds: uint8(i*4 + 3)},
			text,
			stl.Format{Justification: 2, VerticalPosition: 20},
		)
		if len(diags) != 0 {
			t.Fatalf("unexpected diagnostics: %v", diags)
		}
	}
	return doc
}

func TestParseRequiresAtLeastOneSubtitle(t *testing.T) {
	data, diags := stl.NewGSIBlock().Serialize()
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if _, err := stl.Parse(data); !errors.Is(err, stl.ErrNoSubtitles) {
		t.Fatal("expected ErrNoSubtitles for header-only file")
	}
}

func TestParsePreservesSubtitleOrder(t *testing.T) {
	doc := buildDocument(t, "first", "second")
	data, _ := doc.Serialize()
	if len(data) != 1024+2*128 {
		t.Fatalf("unexpected file length %d", len(data))
	}

	parsed, err := stl.Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(parsed.TTIs) != 2 {
		t.Fatalf("expected 2 subtitle blocks, got %d", len(parsed.TTIs))
	}
	if parsed.TTIs[0].SubtitleNumber != 1 || parsed.TTIs[1].SubtitleNumber != 2 {
		t.Fatalf("subtitle numbers changed: %d, %d",
			parsed.TTIs[0].SubtitleNumber, parsed.TTIs[1].SubtitleNumber)
	}
	if got := parsed.TTIs[0].Text(); got != "first\r\n" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestParseRejectsTrailingPartialBlock(t *testing.T) {
	doc := buildDocument(t, "only")
	data, _ := doc.Serialize()
	data = append(data, make([]byte, 64)...)

	if _, err := stl.Parse(data); !errors.Is(err, stl.ErrIncomplete) {
		t.Fatal("expected ErrIncomplete for trailing partial block")
	}
}

func TestParseRejectsInvalidCumulativeStatus(t *testing.T) {
	doc := buildDocument(t, "only")
	data, _ := doc.Serialize()
	data[1024+4] = 9

	if _, err := stl.Parse(data); !errors.Is(err, stl.ErrCumulativeStatus) {
		t.Fatal("expected ErrCumulativeStatus")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := buildDocument(t, "one\ntwo", "three")
	data, _ := doc.Serialize()

	parsed, err := stl.Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(parsed, doc) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", parsed, doc)
	}

	again, _ := parsed.Serialize()
	if !reflect.DeepEqual(again, data) {
		t.Fatal("second serialization differs from first")
	}
}

func TestAppendNumbersSubtitlesFromOne(t *testing.T) {
	doc := stl.New()
	doc.Append(stl.Timecode{}, stl.Timecode{Seconds: 1}, "a", stl.Format{})
	doc.Append(stl.Timecode{Seconds: 2}, stl.Timecode{Seconds: 3}, "b", stl.Format{})

	if doc.TTIs[0].SubtitleNumber != 1 || doc.TTIs[1].SubtitleNumber != 2 {
		t.Fatalf("unexpected numbering: %d, %d",
			doc.TTIs[0].SubtitleNumber, doc.TTIs[1].SubtitleNumber)
	}
	if doc.GSI.BlockCount != 2 || doc.GSI.SubtitleCount != 2 {
		t.Fatalf("counters not advanced: tnb=%d tns=%d",
			doc.GSI.BlockCount, doc.GSI.SubtitleCount)
	}
	if doc.TTIs[0].ExtensionBlock != 0xFF {
		t.Fatalf("extension block not defaulted: 0x%02X", doc.TTIs[0].ExtensionBlock)
	}
}

func TestAppendReportsTruncation(t *testing.T) {
	doc := stl.New()
	diags := doc.Append(stl.Timecode{}, stl.Timecode{Seconds: 2},
		strings.Repeat("y", 200), stl.Format{})
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %v", diags)
	}
	if diags[0].Actual != 200 {
		t.Fatalf("unexpected diagnostic: %+v", diags[0])
	}
	// Truncation is not an error: the document still serializes and
	// parses cleanly.
	data, _ := doc.Serialize()
	if _, err := stl.Parse(data); err != nil {
		t.Fatalf("Parse after truncation failed: %v", err)
	}
}

func TestWriteAndParseFile(t *testing.T) {
	doc := buildDocument(t, "on disk")
	path := filepath.Join(t.TempDir(), "out.stl")

	if _, err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	parsed, err := stl.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if got := parsed.TTIs[0].Text(); got != "on disk\r\n" {
		t.Fatalf("unexpected text: %q", got)
	}
}
