package stl

import (
	"golang.org/x/text/encoding/charmap"
)

// TextCodec converts between one of the legacy 8-bit character sets and
// UTF-8 text. Both directions are total: Decode substitutes U+FFFD for
// undefined bytes and Encode substitutes replacementByte for runes the
// target set cannot represent.
type TextCodec interface {
	Decode(data []byte) string
	Encode(text string) []byte
}

// replacementByte stands in for unrepresentable runes on encode. '?' is
// printable content in every supported set, so the substitution survives
// the teletext framing untouched.
const replacementByte = 0x3F

// charmapCodec adapts an x/text single-byte charmap to TextCodec.
type charmapCodec struct {
	cm *charmap.Charmap
}

func (c charmapCodec) Decode(data []byte) string {
	// Charmap decoders are total; undefined bytes come back as U+FFFD.
	out, _ := c.cm.NewDecoder().Bytes(data)
	return string(out)
}

func (c charmapCodec) Encode(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		b, ok := c.cm.EncodeRune(r)
		if !ok {
			b = replacementByte
		}
		out = append(out, b)
	}
	return out
}
