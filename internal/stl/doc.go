// Package stl reads and writes EBU STL subtitle files (Tech 3264).
//
// A file is a single 1024-byte GSI header block followed by one or more
// 128-byte TTI subtitle blocks. The package parses a fully buffered file
// into a Document, serializes a Document back to bytes, and owns the
// teletext text-field framing and the legacy character-set conversions
// both directions depend on.
package stl
