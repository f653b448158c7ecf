package stl

import (
	"strings"
	"unicode/utf8"
)

// iso6937Codec implements the Latin character table. EBU Tech 3264
// points at ISO 6937/2, which x/text does not ship: the set is not a
// plain single-byte map because bytes 0xC1-0xCF are non-spacing
// diacritics that combine with the following letter into one character.
type iso6937Codec struct{}

func (iso6937Codec) Decode(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b >= 0xC0 && b <= 0xCF {
			if i+1 < len(data) {
				if r, ok := iso6937Combined[combineKey(b, data[i+1])]; ok {
					sb.WriteRune(r)
					i++
					continue
				}
			}
			// Dangling or unknown diacritic pair. Drop only the
			// diacritic so the base letter still decodes.
			sb.WriteRune(utf8.RuneError)
			continue
		}
		r := iso6937Runes[b]
		if r == 0 {
			sb.WriteRune(utf8.RuneError)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (iso6937Codec) Encode(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if b, ok := iso6937Bytes[r]; ok {
			out = append(out, b)
			continue
		}
		if pair, ok := iso6937Pairs[r]; ok {
			out = append(out, pair[0], pair[1])
			continue
		}
		out = append(out, replacementByte)
	}
	return out
}

func combineKey(diacritic, base byte) uint16 {
	return uint16(diacritic)<<8 | uint16(base)
}

// iso6937Runes maps single bytes to runes. Zero marks an undefined
// position, which also covers NUL. 0x01-0x1F pass through so embedded
// ASCII control bytes survive encoding; the teletext framing layer
// owns their meaning.
var iso6937Runes = [256]rune{
	0x01: 0x01, 0x02: 0x02, 0x03: 0x03,
	0x04: 0x04, 0x05: 0x05, 0x06: 0x06, 0x07: 0x07,
	0x08: 0x08, 0x09: 0x09, 0x0A: 0x0A, 0x0B: 0x0B,
	0x0C: 0x0C, 0x0D: 0x0D, 0x0E: 0x0E, 0x0F: 0x0F,
	0x10: 0x10, 0x11: 0x11, 0x12: 0x12, 0x13: 0x13,
	0x14: 0x14, 0x15: 0x15, 0x16: 0x16, 0x17: 0x17,
	0x18: 0x18, 0x19: 0x19, 0x1A: 0x1A, 0x1B: 0x1B,
	0x1C: 0x1C, 0x1D: 0x1D, 0x1E: 0x1E, 0x1F: 0x1F,

	0x20: ' ', 0x21: '!', 0x22: '"', 0x23: '#',
	0x24: '¤', 0x25: '%', 0x26: '&', 0x27: '\'',
	0x28: '(', 0x29: ')', 0x2A: '*', 0x2B: '+',
	0x2C: ',', 0x2D: '-', 0x2E: '.', 0x2F: '/',
	0x30: '0', 0x31: '1', 0x32: '2', 0x33: '3',
	0x34: '4', 0x35: '5', 0x36: '6', 0x37: '7',
	0x38: '8', 0x39: '9', 0x3A: ':', 0x3B: ';',
	0x3C: '<', 0x3D: '=', 0x3E: '>', 0x3F: '?',
	0x40: '@', 0x41: 'A', 0x42: 'B', 0x43: 'C',
	0x44: 'D', 0x45: 'E', 0x46: 'F', 0x47: 'G',
	0x48: 'H', 0x49: 'I', 0x4A: 'J', 0x4B: 'K',
	0x4C: 'L', 0x4D: 'M', 0x4E: 'N', 0x4F: 'O',
	0x50: 'P', 0x51: 'Q', 0x52: 'R', 0x53: 'S',
	0x54: 'T', 0x55: 'U', 0x56: 'V', 0x57: 'W',
	0x58: 'X', 0x59: 'Y', 0x5A: 'Z', 0x5B: '[',
	0x5C: '\\', 0x5D: ']', 0x5E: '^', 0x5F: '_',
	0x60: '`', 0x61: 'a', 0x62: 'b', 0x63: 'c',
	0x64: 'd', 0x65: 'e', 0x66: 'f', 0x67: 'g',
	0x68: 'h', 0x69: 'i', 0x6A: 'j', 0x6B: 'k',
	0x6C: 'l', 0x6D: 'm', 0x6E: 'n', 0x6F: 'o',
	0x70: 'p', 0x71: 'q', 0x72: 'r', 0x73: 's',
	0x74: 't', 0x75: 'u', 0x76: 'v', 0x77: 'w',
	0x78: 'x', 0x79: 'y', 0x7A: 'z', 0x7B: '{',
	0x7C: '|', 0x7D: '}', 0x7E: '~',

	0xA0: ' ', 0xA1: '¡', 0xA2: '¢', 0xA3: '£',
	0xA4: '$', 0xA5: '¥', 0xA7: '§',
	0xA9: '‘', 0xAA: '“', 0xAB: '«',
	0xAC: '←', 0xAD: '↑', 0xAE: '→', 0xAF: '↓',

	0xB0: '°', 0xB1: '±', 0xB2: '²', 0xB3: '³',
	0xB4: '×', 0xB5: 'µ', 0xB6: '¶', 0xB7: '·',
	0xB8: '÷', 0xB9: '’', 0xBA: '”', 0xBB: '»',
	0xBC: '¼', 0xBD: '½', 0xBE: '¾', 0xBF: '¿',

	0xD0: '―', 0xD1: '¹', 0xD2: '®', 0xD3: '©',
	0xD4: '™', 0xD5: '♪', 0xD6: '¬', 0xD7: '¦',
	0xDC: '⅛', 0xDD: '⅜', 0xDE: '⅝', 0xDF: '⅞',

	0xE0: 'Ω', 0xE1: 'Æ', 0xE2: 'Đ', 0xE3: 'ª',
	0xE4: 'Ħ', 0xE6: 'Ĳ', 0xE7: 'Ŀ',
	0xE8: 'Ł', 0xE9: 'Ø', 0xEA: 'Œ', 0xEB: 'º',
	0xEC: 'Þ', 0xED: 'Ŧ', 0xEE: 'Ŋ', 0xEF: 'ŉ',

	0xF0: 'ĸ', 0xF1: 'æ', 0xF2: 'đ', 0xF3: 'ð',
	0xF4: 'ħ', 0xF5: 'ı', 0xF6: 'ĳ', 0xF7: 'ŀ',
	0xF8: 'ł', 0xF9: 'ø', 0xFA: 'œ', 0xFB: 'ß',
	0xFC: 'þ', 0xFD: 'ŧ', 0xFE: 'ŋ', 0xFF: '­',
}

// iso6937Combined maps (diacritic byte << 8 | base byte) to the
// precomposed character. Only combinations the standard defines are
// present; anything else decodes as a substitution.
var iso6937Combined = map[uint16]rune{
	// 0xC1 grave
	0xC141: 'À', 0xC145: 'È', 0xC149: 'Ì', 0xC14F: 'Ò', 0xC155: 'Ù',
	0xC161: 'à', 0xC165: 'è', 0xC169: 'ì', 0xC16F: 'ò', 0xC175: 'ù',
	// 0xC2 acute
	0xC241: 'Á', 0xC243: 'Ć', 0xC245: 'É', 0xC249: 'Í', 0xC24C: 'Ĺ',
	0xC24E: 'Ń', 0xC24F: 'Ó', 0xC252: 'Ŕ', 0xC253: 'Ś', 0xC255: 'Ú',
	0xC259: 'Ý', 0xC25A: 'Ź',
	0xC261: 'á', 0xC263: 'ć', 0xC265: 'é', 0xC267: 'ǵ', 0xC269: 'í',
	0xC26C: 'ĺ', 0xC26E: 'ń', 0xC26F: 'ó', 0xC272: 'ŕ', 0xC273: 'ś',
	0xC275: 'ú', 0xC279: 'ý', 0xC27A: 'ź',
	// 0xC3 circumflex
	0xC341: 'Â', 0xC343: 'Ĉ', 0xC345: 'Ê', 0xC347: 'Ĝ', 0xC348: 'Ĥ',
	0xC349: 'Î', 0xC34A: 'Ĵ', 0xC34F: 'Ô', 0xC353: 'Ŝ', 0xC355: 'Û',
	0xC357: 'Ŵ', 0xC359: 'Ŷ',
	0xC361: 'â', 0xC363: 'ĉ', 0xC365: 'ê', 0xC367: 'ĝ', 0xC368: 'ĥ',
	0xC369: 'î', 0xC36A: 'ĵ', 0xC36F: 'ô', 0xC373: 'ŝ', 0xC375: 'û',
	0xC377: 'ŵ', 0xC379: 'ŷ',
	// 0xC4 tilde
	0xC441: 'Ã', 0xC449: 'Ĩ', 0xC44E: 'Ñ', 0xC44F: 'Õ', 0xC455: 'Ũ',
	0xC461: 'ã', 0xC469: 'ĩ', 0xC46E: 'ñ', 0xC46F: 'õ', 0xC475: 'ũ',
	// 0xC5 macron
	0xC541: 'Ā', 0xC545: 'Ē', 0xC549: 'Ī', 0xC54F: 'Ō', 0xC555: 'Ū',
	0xC561: 'ā', 0xC565: 'ē', 0xC569: 'ī', 0xC56F: 'ō', 0xC575: 'ū',
	// 0xC6 breve
	0xC641: 'Ă', 0xC647: 'Ğ', 0xC655: 'Ŭ',
	0xC661: 'ă', 0xC667: 'ğ', 0xC675: 'ŭ',
	// 0xC7 dot above
	0xC743: 'Ċ', 0xC745: 'Ė', 0xC747: 'Ġ', 0xC749: 'İ', 0xC75A: 'Ż',
	0xC763: 'ċ', 0xC765: 'ė', 0xC767: 'ġ', 0xC77A: 'ż',
	// 0xC8 diaeresis
	0xC841: 'Ä', 0xC845: 'Ë', 0xC849: 'Ï', 0xC84F: 'Ö', 0xC855: 'Ü',
	0xC859: 'Ÿ',
	0xC861: 'ä', 0xC865: 'ë', 0xC869: 'ï', 0xC86F: 'ö', 0xC875: 'ü',
	0xC879: 'ÿ',
	// 0xCA ring above
	0xCA41: 'Å', 0xCA55: 'Ů',
	0xCA61: 'å', 0xCA75: 'ů',
	// 0xCB cedilla
	0xCB43: 'Ç', 0xCB47: 'Ģ', 0xCB4B: 'Ķ', 0xCB4C: 'Ļ', 0xCB4E: 'Ņ',
	0xCB52: 'Ŗ', 0xCB53: 'Ş', 0xCB54: 'Ţ',
	0xCB63: 'ç', 0xCB67: 'ģ', 0xCB6B: 'ķ', 0xCB6C: 'ļ', 0xCB6E: 'ņ',
	0xCB72: 'ŗ', 0xCB73: 'ş', 0xCB74: 'ţ',
	// 0xCD double acute
	0xCD4F: 'Ő', 0xCD55: 'Ű',
	0xCD6F: 'ő', 0xCD75: 'ű',
	// 0xCE ogonek
	0xCE41: 'Ą', 0xCE45: 'Ę', 0xCE49: 'Į', 0xCE55: 'Ų',
	0xCE61: 'ą', 0xCE65: 'ę', 0xCE69: 'į', 0xCE75: 'ų',
	// 0xCF caron
	0xCF43: 'Č', 0xCF44: 'Ď', 0xCF45: 'Ě', 0xCF4C: 'Ľ', 0xCF4E: 'Ň',
	0xCF52: 'Ř', 0xCF53: 'Š', 0xCF54: 'Ť', 0xCF5A: 'Ž',
	0xCF63: 'č', 0xCF64: 'ď', 0xCF65: 'ě', 0xCF6C: 'ľ', 0xCF6E: 'ň',
	0xCF72: 'ř', 0xCF73: 'š', 0xCF74: 'ť', 0xCF7A: 'ž',
}

// Reverse lookups for Encode, derived once from the forward tables.
var (
	iso6937Bytes = make(map[rune]byte, 256)
	iso6937Pairs = make(map[rune][2]byte, len(iso6937Combined))
)

func init() {
	for b, r := range iso6937Runes {
		if r == 0 {
			continue
		}
		if _, exists := iso6937Bytes[r]; !exists {
			iso6937Bytes[r] = byte(b)
		}
	}
	for key, r := range iso6937Combined {
		iso6937Pairs[r] = [2]byte{byte(key >> 8), byte(key)}
	}
}
