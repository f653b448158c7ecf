package stl

import "errors"

// Parse failures are reported through sentinel errors so callers can
// classify them with errors.Is. Every sentinel aborts the whole parse;
// no partial Document is ever returned.
var (
	// ErrIncomplete reports a buffer too short for the field being read.
	ErrIncomplete = errors.New("stl: incomplete or truncated input")

	// ErrNoSubtitles reports a file whose GSI block is not followed by
	// at least one TTI block.
	ErrNoSubtitles = errors.New("stl: file contains no subtitle blocks")

	ErrCodePageNumber      = errors.New("stl: invalid code page number")
	ErrDiskFormatCode      = errors.New("stl: invalid disk format code")
	ErrDisplayStandardCode = errors.New("stl: invalid display standard code")
	ErrCharacterCodeTable  = errors.New("stl: invalid character code table")
	ErrTimeCodeStatus      = errors.New("stl: invalid time code status")
	ErrCumulativeStatus    = errors.New("stl: invalid cumulative status")
)
