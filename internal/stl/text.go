package stl

import "strings"

// textFieldLength is the fixed size of every TTI text field.
const textFieldLength = 112

// Teletext control bytes used by the text-field framing.
const (
	ctrlDoubleHeight = 0x0D // start double height
	ctrlStartBox     = 0x0B // doubled at start of text
	ctrlEndBox       = 0x0A // doubled before the newline marker
	ctrlNewline      = 0x8A // line terminator, decodes to CRLF
	ctrlFill         = 0x8F // pads the slot, terminates decoding
)

// encodeTextField frames encoded text into a 112-byte slot:
// optional double-height marker, doubled start-box, content, doubled
// end-box plus newline marker, then fill bytes. Line breaks in the
// text become newline markers. Content that does not fit after
// reserving the three trailing control bytes is dropped; the returned
// flag reports the loss.
func encodeTextField(text string, doubleHeight bool, codec TextCodec) ([textFieldLength]byte, bool) {
	var field [textFieldLength]byte

	buf := make([]byte, 0, textFieldLength)
	if doubleHeight {
		buf = append(buf, ctrlDoubleHeight)
	}
	buf = append(buf, ctrlStartBox, ctrlStartBox)

	encoded := encodeTextLines(text, codec)
	budget := textFieldLength - 3 - len(buf)
	truncated := len(encoded) > budget
	if truncated {
		encoded = encoded[:budget]
	}
	buf = append(buf, encoded...)
	buf = append(buf, ctrlEndBox, ctrlEndBox, ctrlNewline)

	n := copy(field[:], buf)
	for i := n; i < textFieldLength; i++ {
		field[i] = ctrlFill
	}
	return field, truncated
}

// encodeTextLines encodes text with line breaks replaced by the
// newline marker. Bare LF and CRLF are equivalent.
func encodeTextLines(text string, codec TextCodec) []byte {
	var encoded []byte
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		if i > 0 {
			encoded = append(encoded, ctrlNewline)
		}
		encoded = append(encoded, codec.Encode(line)...)
	}
	return encoded
}

// decodeTextField unframes a text field. Bytes in the control ranges
// delimit content runs: 0x8A appends a CRLF, 0x8F ends the field, and
// every other control byte is consumed silently. Decoding is total; a
// malformed field yields an empty or partial string, never an error.
func decodeTextField(field []byte, codec TextCodec) string {
	var sb strings.Builder
	start := 0
	for i := 0; i < len(field); i++ {
		b := field[i]
		if !isControlByte(b) {
			continue
		}
		if start != i {
			sb.WriteString(codec.Decode(field[start:i]))
		}
		if b == ctrlFill {
			return sb.String()
		}
		if b == ctrlNewline {
			sb.WriteString("\r\n")
		}
		start = i + 1
	}
	return sb.String()
}

func isControlByte(b byte) bool {
	return b <= 0x1F || (b >= 0x80 && b <= 0x9F)
}
