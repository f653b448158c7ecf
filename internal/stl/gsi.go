package stl

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
)

// gsiBlockLength is the fixed size of the header block.
const gsiBlockLength = 1024

// CodePageNumber selects the IBM code page used for the GSI block's own
// free-text fields. This is independent of the CharacterCodeTable that
// governs subtitle text.
type CodePageNumber int

const (
	CodePage437 CodePageNumber = 437
	CodePage850 CodePageNumber = 850
	CodePage860 CodePageNumber = 860
	CodePage863 CodePageNumber = 863
	CodePage865 CodePageNumber = 865
)

func parseCodePageNumber(data []byte) (CodePageNumber, error) {
	value, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCodePageNumber, string(data))
	}
	cpn := CodePageNumber(value)
	if cpn.charmap() == nil {
		return 0, fmt.Errorf("%w: %q", ErrCodePageNumber, string(data))
	}
	return cpn, nil
}

func (c CodePageNumber) charmap() *charmap.Charmap {
	switch c {
	case CodePage437:
		return charmap.CodePage437
	case CodePage850:
		return charmap.CodePage850
	case CodePage860:
		return charmap.CodePage860
	case CodePage863:
		return charmap.CodePage863
	case CodePage865:
		return charmap.CodePage865
	}
	return nil
}

// Codec returns the text codec for the GSI free-text fields.
func (c CodePageNumber) Codec() TextCodec {
	cm := c.charmap()
	if cm == nil {
		cm = charmap.CodePage850
	}
	return charmapCodec{cm: cm}
}

func (c CodePageNumber) serialize() []byte {
	return []byte(fmt.Sprintf("%03d", int(c)))
}

// DiskFormatCode identifies the file's frame rate.
type DiskFormatCode string

const (
	DiskFormat25 DiskFormatCode = "STL25.01"
	DiskFormat30 DiskFormatCode = "STL30.01"
)

func parseDiskFormatCode(data []byte) (DiskFormatCode, error) {
	switch code := DiskFormatCode(data); code {
	case DiskFormat25, DiskFormat30:
		return code, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrDiskFormatCode, string(data))
	}
}

// FPS returns the frame rate the format encodes.
func (d DiskFormatCode) FPS() int {
	if d == DiskFormat30 {
		return 30
	}
	return 25
}

// DisplayStandardCode declares the display standard subtitles target.
type DisplayStandardCode byte

const (
	DisplayStandardBlank          DisplayStandardCode = 0x20
	DisplayStandardOpenSubtitling DisplayStandardCode = 0x30
	DisplayStandardLevel1Teletext DisplayStandardCode = 0x31
	DisplayStandardLevel2Teletext DisplayStandardCode = 0x32
)

func parseDisplayStandardCode(b byte) (DisplayStandardCode, error) {
	switch code := DisplayStandardCode(b); code {
	case DisplayStandardBlank, DisplayStandardOpenSubtitling,
		DisplayStandardLevel1Teletext, DisplayStandardLevel2Teletext:
		return code, nil
	default:
		return 0, fmt.Errorf("%w: 0x%02X", ErrDisplayStandardCode, b)
	}
}

// TimeCodeStatus declares whether the GSI timecodes are meaningful.
type TimeCodeStatus byte

const (
	TimeCodeNotIntendedForUse TimeCodeStatus = 0x30
	TimeCodeIntendedForUse    TimeCodeStatus = 0x31
)

func parseTimeCodeStatus(b byte) (TimeCodeStatus, error) {
	switch status := TimeCodeStatus(b); status {
	case TimeCodeNotIntendedForUse, TimeCodeIntendedForUse:
		return status, nil
	default:
		return 0, fmt.Errorf("%w: 0x%02X", ErrTimeCodeStatus, b)
	}
}

// CharacterCodeTable selects the character set for subtitle text.
type CharacterCodeTable byte

const (
	TableLatin         CharacterCodeTable = 0x30 // ISO 6937/2
	TableLatinCyrillic CharacterCodeTable = 0x31 // ISO 8859-5
	TableLatinArabic   CharacterCodeTable = 0x32 // ISO 8859-6
	TableLatinGreek    CharacterCodeTable = 0x33 // ISO 8859-7
	TableLatinHebrew   CharacterCodeTable = 0x34 // ISO 8859-8
)

func parseCharacterCodeTable(data []byte) (CharacterCodeTable, error) {
	if len(data) != 2 || data[0] != '0' {
		return 0, fmt.Errorf("%w: %q", ErrCharacterCodeTable, string(data))
	}
	switch table := CharacterCodeTable(data[1]); table {
	case TableLatin, TableLatinCyrillic, TableLatinArabic,
		TableLatinGreek, TableLatinHebrew:
		return table, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrCharacterCodeTable, string(data))
	}
}

// Codec returns the text codec for subtitle text in this table.
func (t CharacterCodeTable) Codec() TextCodec {
	switch t {
	case TableLatinCyrillic:
		return charmapCodec{cm: charmap.ISO8859_5}
	case TableLatinArabic:
		return charmapCodec{cm: charmap.ISO8859_6}
	case TableLatinGreek:
		return charmapCodec{cm: charmap.ISO8859_7}
	case TableLatinHebrew:
		return charmapCodec{cm: charmap.ISO8859_8}
	default:
		return iso6937Codec{}
	}
}

func (t CharacterCodeTable) serialize() [2]byte {
	return [2]byte{'0', byte(t)}
}

// String returns the two-digit field value, e.g. "00" for Latin.
func (t CharacterCodeTable) String() string {
	return string([]byte{'0', byte(t)})
}

// GSIBlock is the 1024-byte file header. Free-text fields hold decoded
// text; serialization re-encodes them through the code page codec and
// right-pads with spaces to each field's fixed width.
type GSIBlock struct {
	CodePage        CodePageNumber
	DiskFormat      DiskFormatCode
	DisplayStandard DisplayStandardCode
	CharacterTable  CharacterCodeTable

	LanguageCode           string // 2 bytes
	OriginalProgramTitle   string // 32 bytes
	OriginalEpisodeTitle   string // 32 bytes
	TranslatedProgramTitle string // 32 bytes
	TranslatedEpisodeTitle string // 32 bytes
	TranslatorName         string // 32 bytes
	TranslatorContact      string // 32 bytes
	SubtitleListReference  string // 16 bytes
	CreationDate           string // 6 bytes, YYMMDD
	RevisionDate           string // 6 bytes, YYMMDD
	RevisionNumber         string // 2 bytes

	BlockCount    int // TNB, 5 digits
	SubtitleCount int // TNS, 5 digits
	GroupCount    int // TNG, 3 digits
	MaxRowChars   int // MNC, 2 digits
	MaxRows       int // MNR, 2 digits

	TimeCodeStatus   TimeCodeStatus
	StartOfProgramme string // 8 bytes, HHMMSSFF
	FirstInCue       string // 8 bytes, HHMMSSFF

	DiskCount    int // 1 digit
	DiskSequence int // 1 digit

	CountryOfOrigin string // 3 bytes
	Publisher       string // 32 bytes
	EditorName      string // 32 bytes
	EditorContact   string // 32 bytes
	Spare           string // 75 bytes
	UserDefinedArea string // 576 bytes
}

// NewGSIBlock returns a header with the defaults used for files this
// package creates: CP 850 metadata, 25 fps, level-1 teletext, Latin
// subtitle text, and creation/revision dates stamped with today.
func NewGSIBlock() *GSIBlock {
	today := time.Now().Format("060102")
	return &GSIBlock{
		CodePage:         CodePage850,
		DiskFormat:       DiskFormat25,
		DisplayStandard:  DisplayStandardLevel1Teletext,
		CharacterTable:   TableLatin,
		LanguageCode:     "0F",
		CreationDate:     today,
		RevisionDate:     today,
		RevisionNumber:   "00",
		GroupCount:       1,
		MaxRowChars:      40,
		MaxRows:          23,
		TimeCodeStatus:   TimeCodeIntendedForUse,
		StartOfProgramme: "00000000",
		FirstInCue:       "00000000",
		DiskCount:        1,
		DiskSequence:     1,
	}
}

func parseGSI(cur *cursor) (*GSIBlock, error) {
	block, err := cur.take(gsiBlockLength)
	if err != nil {
		return nil, err
	}
	c := newCursor(block)
	g := &GSIBlock{}

	raw, _ := c.take(3)
	if g.CodePage, err = parseCodePageNumber(raw); err != nil {
		return nil, err
	}
	codec := g.CodePage.Codec()

	raw, _ = c.take(8)
	if g.DiskFormat, err = parseDiskFormatCode(raw); err != nil {
		return nil, err
	}
	b, _ := c.takeByte()
	if g.DisplayStandard, err = parseDisplayStandardCode(b); err != nil {
		return nil, err
	}
	raw, _ = c.take(2)
	if g.CharacterTable, err = parseCharacterCodeTable(raw); err != nil {
		return nil, err
	}

	text := func(n int) string {
		raw, _ := c.take(n)
		return strings.TrimRight(codec.Decode(raw), " ")
	}
	g.LanguageCode = text(2)
	g.OriginalProgramTitle = text(32)
	g.OriginalEpisodeTitle = text(32)
	g.TranslatedProgramTitle = text(32)
	g.TranslatedEpisodeTitle = text(32)
	g.TranslatorName = text(32)
	g.TranslatorContact = text(32)
	g.SubtitleListReference = text(16)
	g.CreationDate = text(6)
	g.RevisionDate = text(6)
	g.RevisionNumber = text(2)

	if g.BlockCount, err = c.takeASCIIUint("total blocks", 5); err != nil {
		return nil, err
	}
	if g.SubtitleCount, err = c.takeASCIIUint("total subtitles", 5); err != nil {
		return nil, err
	}
	if g.GroupCount, err = c.takeASCIIUint("total groups", 3); err != nil {
		return nil, err
	}
	if g.MaxRowChars, err = c.takeASCIIUint("max row chars", 2); err != nil {
		return nil, err
	}
	if g.MaxRows, err = c.takeASCIIUint("max rows", 2); err != nil {
		return nil, err
	}

	b, _ = c.takeByte()
	if g.TimeCodeStatus, err = parseTimeCodeStatus(b); err != nil {
		return nil, err
	}
	g.StartOfProgramme = text(8)
	g.FirstInCue = text(8)

	if g.DiskCount, err = c.takeASCIIUint("total disks", 1); err != nil {
		return nil, err
	}
	if g.DiskSequence, err = c.takeASCIIUint("disk sequence", 1); err != nil {
		return nil, err
	}

	g.CountryOfOrigin = text(3)
	g.Publisher = text(32)
	g.EditorName = text(32)
	g.EditorContact = text(32)
	g.Spare = text(75)
	g.UserDefinedArea = text(576)

	return g, nil
}

// Serialize renders the header to exactly 1024 bytes. Free text longer
// than its field is truncated at the byte level and reported through a
// diagnostic rather than an error, matching the subtitle text policy.
func (g *GSIBlock) Serialize() ([]byte, []Diagnostic) {
	var diags []Diagnostic
	codec := g.CodePage.Codec()
	buf := bytes.NewBuffer(make([]byte, 0, gsiBlockLength))

	buf.Write(g.CodePage.serialize())
	buf.WriteString(string(g.DiskFormat))
	buf.WriteByte(byte(g.DisplayStandard))
	cct := g.CharacterTable.serialize()
	buf.Write(cct[:])

	text := func(field, value string, width int) {
		encoded := codec.Encode(value)
		if len(encoded) > width {
			diags = append(diags, Diagnostic{Field: field, Limit: width, Actual: len(encoded)})
			encoded = encoded[:width]
		}
		buf.Write(encoded)
		for i := len(encoded); i < width; i++ {
			buf.WriteByte(' ')
		}
	}
	text("language code", g.LanguageCode, 2)
	text("original program title", g.OriginalProgramTitle, 32)
	text("original episode title", g.OriginalEpisodeTitle, 32)
	text("translated program title", g.TranslatedProgramTitle, 32)
	text("translated episode title", g.TranslatedEpisodeTitle, 32)
	text("translator name", g.TranslatorName, 32)
	text("translator contact", g.TranslatorContact, 32)
	text("subtitle list reference", g.SubtitleListReference, 16)
	text("creation date", g.CreationDate, 6)
	text("revision date", g.RevisionDate, 6)
	text("revision number", g.RevisionNumber, 2)

	fmt.Fprintf(buf, "%05d", g.BlockCount)
	fmt.Fprintf(buf, "%05d", g.SubtitleCount)
	fmt.Fprintf(buf, "%03d", g.GroupCount)
	fmt.Fprintf(buf, "%02d", g.MaxRowChars)
	fmt.Fprintf(buf, "%02d", g.MaxRows)

	buf.WriteByte(byte(g.TimeCodeStatus))
	text("start of programme", g.StartOfProgramme, 8)
	text("first in cue", g.FirstInCue, 8)
	fmt.Fprintf(buf, "%1d", g.DiskCount)
	fmt.Fprintf(buf, "%1d", g.DiskSequence)

	text("country of origin", g.CountryOfOrigin, 3)
	text("publisher", g.Publisher, 32)
	text("editor name", g.EditorName, 32)
	text("editor contact", g.EditorContact, 32)
	text("spare", g.Spare, 75)
	text("user defined area", g.UserDefinedArea, 576)

	return buf.Bytes(), diags
}
