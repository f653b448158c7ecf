package stl

import "fmt"

// Diagnostic reports a non-fatal condition noticed while encoding, such
// as text truncated to fit a fixed-width field. Encoding always produces
// a well-formed file; diagnostics tell the caller what was lost.
type Diagnostic struct {
	Field  string
	Limit  int
	Actual int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %d encoded bytes truncated to %d", d.Field, d.Actual, d.Limit)
}
