package srt_test

import (
	"testing"

	"stlkit/internal/srt"
)

const sample = "1\n00:00:01,000 --> 00:00:03,500\nFirst line\nSecond line\n\n2\n00:00:04,000 --> 00:00:05,000\nBye\n"

func TestParse(t *testing.T) {
	cues, err := srt.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	first := cues[0]
	if first.Index != 1 {
		t.Fatalf("unexpected index %d", first.Index)
	}
	if first.Start != (srt.Timestamp{Seconds: 1}) {
		t.Fatalf("unexpected start %+v", first.Start)
	}
	if first.End != (srt.Timestamp{Seconds: 3, Millis: 500}) {
		t.Fatalf("unexpected end %+v", first.End)
	}
	if first.Text != "First line\nSecond line" {
		t.Fatalf("unexpected text %q", first.Text)
	}
}

func TestParseCRLFAndBOM(t *testing.T) {
	crlf := "\ufeff1\r\n00:01:00,250 --> 00:01:02,000\r\nHi\r\n"
	cues, err := srt.Parse([]byte(crlf))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cues) != 1 || cues[0].Text != "Hi" {
		t.Fatalf("unexpected cues: %+v", cues)
	}
	if cues[0].Start != (srt.Timestamp{Minutes: 1, Millis: 250}) {
		t.Fatalf("unexpected start %+v", cues[0].Start)
	}
}

func TestParseMissingTimingLine(t *testing.T) {
	if _, err := srt.Parse([]byte("1\nno timing here\n")); err == nil {
		t.Fatal("expected error for missing timing line")
	}
}

func TestParseEmptyInput(t *testing.T) {
	if _, err := srt.Parse([]byte("\n\n\n")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestParsePeriodMilliseconds(t *testing.T) {
	cues, err := srt.Parse([]byte("1\n00:00:01.500 --> 00:00:02.000\nok\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cues[0].Start.Millis != 500 {
		t.Fatalf("unexpected millis %d", cues[0].Start.Millis)
	}
}
