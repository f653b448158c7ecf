package stl_test

import (
	"bytes"
	"testing"

	"stlkit/internal/stl"
)

func TestCodecRoundTripPerTable(t *testing.T) {
	cases := []struct {
		name  string
		table stl.CharacterCodeTable
		text  string
	}{
		{"latin", stl.TableLatin, "No act of kindness is ever wasted."},
		{"latin accents", stl.TableLatin, "Déjà vu: garçon, œuvre, ½ naïve"},
		{"cyrillic", stl.TableLatinCyrillic, "Привет, мир"},
		{"arabic", stl.TableLatinArabic, "مرحبا"},
		{"greek", stl.TableLatinGreek, "Καλημέρα κόσμε"},
		{"hebrew", stl.TableLatinHebrew, "שלום עולם"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			codec := tc.table.Codec()
			got := codec.Decode(codec.Encode(tc.text))
			if got != tc.text {
				t.Fatalf("round trip mismatch: %q != %q", got, tc.text)
			}
		})
	}
}

func TestLatinCombiningCharactersUseDiacriticPairs(t *testing.T) {
	codec := stl.TableLatin.Codec()

	encoded := codec.Encode("Č")
	if !bytes.Equal(encoded, []byte{0xCF, 0x43}) {
		t.Fatalf("expected caron pair, got % X", encoded)
	}
	if got := codec.Decode(encoded); got != "Č" {
		t.Fatalf("decode pair: got %q", got)
	}
}

func TestEncodeSubstitutesUnrepresentableRunes(t *testing.T) {
	codec := stl.TableLatin.Codec()
	encoded := codec.Encode("a€b")
	if !bytes.Equal(encoded, []byte{'a', '?', 'b'}) {
		t.Fatalf("expected replacement byte, got % X", encoded)
	}

	cyr := stl.TableLatinCyrillic.Codec()
	if got := cyr.Encode("é"); !bytes.Equal(got, []byte{'?'}) {
		t.Fatalf("expected replacement for rune outside 8859-5, got % X", got)
	}
}

func TestDecodeSubstitutesUndefinedBytes(t *testing.T) {
	codec := stl.TableLatin.Codec()
	if got := codec.Decode([]byte{'a', 0xA6, 'b'}); got != "a�b" {
		t.Fatalf("expected U+FFFD substitution, got %q", got)
	}
	// A diacritic with no valid base letter decodes as a substitution
	// without eating the byte that follows it.
	if got := codec.Decode([]byte{0xCF, '1'}); got != "�1" {
		t.Fatalf("expected dangling diacritic substitution, got %q", got)
	}
}

func TestLatinCurrencyQuirk(t *testing.T) {
	// ISO 6937 keeps the currency sign at 0x24 and moves the dollar
	// into the supplementary set.
	codec := stl.TableLatin.Codec()
	if got := codec.Encode("¤$"); !bytes.Equal(got, []byte{0x24, 0xA4}) {
		t.Fatalf("unexpected encoding: % X", got)
	}
	if got := codec.Decode([]byte{0x24, 0xA4}); got != "¤$" {
		t.Fatalf("unexpected decoding: %q", got)
	}
}
