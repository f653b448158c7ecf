package convert_test

import (
	"strings"
	"testing"

	"stlkit/internal/convert"
	"stlkit/internal/srt"
	"stlkit/internal/stl"
)

func cue(start, end srt.Timestamp, text string) srt.Cue {
	return srt.Cue{Start: start, End: end, Text: text}
}

func TestFromCuesRemapsFrames(t *testing.T) {
	cues := []srt.Cue{
		cue(srt.Timestamp{Hours: 1, Minutes: 2, Seconds: 3, Millis: 500},
			srt.Timestamp{Hours: 1, Minutes: 2, Seconds: 4}, "hello"),
	}
	result, err := convert.FromCues(cues, convert.Options{DiskFormat: stl.DiskFormat25})
	if err != nil {
		t.Fatalf("FromCues failed: %v", err)
	}
	tti := result.Document.TTIs[0]
	want := stl.Timecode{Hours: 1, Minutes: 2, Seconds: 3, Frames: 12}
	if tti.TimeCodeIn != want {
		t.Fatalf("unexpected timecode in: %v", tti.TimeCodeIn)
	}
	if tti.TimeCodeOut.Frames != 0 {
		t.Fatalf("unexpected timecode out frames: %d", tti.TimeCodeOut.Frames)
	}
}

func TestFromCuesThirtyFPS(t *testing.T) {
	cues := []srt.Cue{cue(srt.Timestamp{Millis: 500}, srt.Timestamp{Seconds: 1}, "x")}
	result, err := convert.FromCues(cues, convert.Options{DiskFormat: stl.DiskFormat30})
	if err != nil {
		t.Fatalf("FromCues failed: %v", err)
	}
	if got := result.Document.TTIs[0].TimeCodeIn.Frames; got != 15 {
		t.Fatalf("expected frame 15 at 30 fps, got %d", got)
	}
	if result.Document.GSI.DiskFormat != stl.DiskFormat30 {
		t.Fatal("disk format not applied to header")
	}
}

func TestFromCuesStampsMetadata(t *testing.T) {
	cues := []srt.Cue{cue(srt.Timestamp{}, srt.Timestamp{Seconds: 1}, "x")}
	result, err := convert.FromCues(cues, convert.Options{
		ProgramTitle: "Night Watch",
		LanguageCode: "09",
		Publisher:    "Channel 9",
	})
	if err != nil {
		t.Fatalf("FromCues failed: %v", err)
	}
	gsi := result.Document.GSI
	if gsi.OriginalProgramTitle != "Night Watch" || gsi.LanguageCode != "09" || gsi.Publisher != "Channel 9" {
		t.Fatalf("metadata not stamped: %+v", gsi)
	}
	if gsi.SubtitleCount != 1 {
		t.Fatalf("subtitle counter: %d", gsi.SubtitleCount)
	}
}

func TestFromCuesCollectsTruncationDiagnostics(t *testing.T) {
	cues := []srt.Cue{
		cue(srt.Timestamp{}, srt.Timestamp{Seconds: 1}, strings.Repeat("a", 300)),
		cue(srt.Timestamp{Seconds: 2}, srt.Timestamp{Seconds: 3}, "fine"),
	}
	result, err := convert.FromCues(cues, convert.Options{})
	if err != nil {
		t.Fatalf("FromCues failed: %v", err)
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %v", result.Diagnostics)
	}
	if len(result.Document.TTIs) != 2 {
		t.Fatalf("truncation must not drop subtitles: %d", len(result.Document.TTIs))
	}
}

func TestFromCuesRejectsEmptyInput(t *testing.T) {
	if _, err := convert.FromCues(nil, convert.Options{}); err == nil {
		t.Fatal("expected error for empty cue list")
	}
}
