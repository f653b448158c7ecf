// Package srt parses SubRip (.srt) subtitle files into cues for
// conversion into other formats.
package srt

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Timestamp is an SRT cue boundary with millisecond precision.
type Timestamp struct {
	Hours   int
	Minutes int
	Seconds int
	Millis  int
}

// Cue is one subtitle: an index, a display interval, and the text with
// internal line breaks normalized to \n.
type Cue struct {
	Index int
	Start Timestamp
	End   Timestamp
	Text  string
}

// Parse reads a whole SRT buffer into cues. Blocks are separated by
// blank lines; each block carries an optional numeric index, a
// "start --> end" line, and one or more text lines.
func Parse(data []byte) ([]Cue, error) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimPrefix(content, "\ufeff")

	var cues []Cue
	for _, block := range strings.Split(content, "\n\n") {
		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		index := len(cues) + 1
		if parsed, err := strconv.Atoi(strings.TrimSpace(lines[0])); err == nil {
			index = parsed
			lines = lines[1:]
		}
		if len(lines) == 0 || !strings.Contains(lines[0], "-->") {
			return nil, fmt.Errorf("srt: cue %d: missing timing line", index)
		}

		parts := strings.SplitN(lines[0], "-->", 2)
		start, err := parseTimestamp(parts[0])
		if err != nil {
			return nil, fmt.Errorf("srt: cue %d: %w", index, err)
		}
		end, err := parseTimestamp(parts[1])
		if err != nil {
			return nil, fmt.Errorf("srt: cue %d: %w", index, err)
		}

		cues = append(cues, Cue{
			Index: index,
			Start: start,
			End:   end,
			Text:  strings.Join(lines[1:], "\n"),
		})
	}
	if len(cues) == 0 {
		return nil, fmt.Errorf("srt: no cues found")
	}
	return cues, nil
}

// ParseFile reads and parses an SRT file from disk.
func ParseFile(path string) ([]Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	return Parse(data)
}

func nonEmptyLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func parseTimestamp(value string) (Timestamp, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Timestamp{}, fmt.Errorf("empty timestamp")
	}
	// SRT uses a comma before the milliseconds; a period shows up in
	// the wild often enough to tolerate.
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q", value)
	}
	return Timestamp{Hours: hours, Minutes: minutes, Seconds: seconds, Millis: millis}, nil
}
