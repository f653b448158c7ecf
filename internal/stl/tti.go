package stl

import "fmt"

// ttiBlockLength is the fixed size of every subtitle block.
const ttiBlockLength = 128

// CumulativeStatus marks whether a subtitle stands alone or belongs to
// a cumulative set.
type CumulativeStatus byte

const (
	CumulativeNone         CumulativeStatus = 0
	CumulativeFirst        CumulativeStatus = 1
	CumulativeIntermediate CumulativeStatus = 2
	CumulativeLast         CumulativeStatus = 3
)

func parseCumulativeStatus(b byte) (CumulativeStatus, error) {
	if b > 3 {
		return 0, fmt.Errorf("%w: 0x%02X", ErrCumulativeStatus, b)
	}
	return CumulativeStatus(b), nil
}

// Format carries the presentation options applied when building a
// subtitle block.
type Format struct {
	Justification    uint8
	VerticalPosition uint8
	DoubleHeight     bool
}

// TTIBlock is one 128-byte subtitle record. The text field is kept as
// the raw framed bytes and decoded on demand; the block carries its own
// copy of the character table so it can decode without its header.
type TTIBlock struct {
	GroupNumber      uint8
	SubtitleNumber   uint16
	ExtensionBlock   uint8
	Cumulative       CumulativeStatus
	TimeCodeIn       Timecode
	TimeCodeOut      Timecode
	VerticalPosition uint8
	Justification    uint8
	CommentFlag      uint8

	textField [112]byte
	table     CharacterCodeTable
}

// newTTIBlock builds a block the way Append hands them out: group 0,
// extension 0xFF, not part of a cumulative set, comment flag clear.
func newTTIBlock(number uint16, in, out Timecode, text string, format Format, table CharacterCodeTable) (*TTIBlock, bool) {
	field, truncated := encodeTextField(text, format.DoubleHeight, table.Codec())
	return &TTIBlock{
		GroupNumber:      0,
		SubtitleNumber:   number,
		ExtensionBlock:   0xFF,
		Cumulative:       CumulativeNone,
		TimeCodeIn:       in,
		TimeCodeOut:      out,
		VerticalPosition: format.VerticalPosition,
		Justification:    format.Justification,
		CommentFlag:      0,
		textField:        field,
		table:            table,
	}, truncated
}

// Text decodes the framed text field through the block's character
// table. Decoding is total and may return a partial string for a
// malformed field.
func (t *TTIBlock) Text() string {
	return decodeTextField(t.textField[:], t.table.Codec())
}

// TextField exposes the raw 112 framed bytes.
func (t *TTIBlock) TextField() [112]byte {
	return t.textField
}

// SetTextField replaces the raw framed bytes, for callers that manage
// framing themselves.
func (t *TTIBlock) SetTextField(field [112]byte) {
	t.textField = field
}

// DoubleHeight reports whether the text field opens with the
// double-height control code.
func (t *TTIBlock) DoubleHeight() bool {
	return t.textField[0] == ctrlDoubleHeight
}

// CharacterTable reports the table the block decodes its text with.
func (t *TTIBlock) CharacterTable() CharacterCodeTable {
	return t.table
}

func parseTTI(cur *cursor, table CharacterCodeTable) (*TTIBlock, error) {
	block, err := cur.take(ttiBlockLength)
	if err != nil {
		return nil, err
	}
	c := newCursor(block)
	t := &TTIBlock{table: table}

	t.GroupNumber, _ = c.takeByte()
	t.SubtitleNumber, _ = c.takeUint16LE()
	t.ExtensionBlock, _ = c.takeByte()

	b, _ := c.takeByte()
	if t.Cumulative, err = parseCumulativeStatus(b); err != nil {
		return nil, err
	}
	if t.TimeCodeIn, err = parseTimecode(c); err != nil {
		return nil, err
	}
	if t.TimeCodeOut, err = parseTimecode(c); err != nil {
		return nil, err
	}
	t.VerticalPosition, _ = c.takeByte()
	t.Justification, _ = c.takeByte()
	t.CommentFlag, _ = c.takeByte()

	raw, _ := c.take(textFieldLength)
	copy(t.textField[:], raw)
	return t, nil
}

// Serialize renders the block to exactly 128 bytes. The text field is
// written as stored; framing happened when the block was built.
func (t *TTIBlock) Serialize() []byte {
	out := make([]byte, 0, ttiBlockLength)
	out = append(out,
		t.GroupNumber,
		byte(t.SubtitleNumber),
		byte(t.SubtitleNumber>>8),
		t.ExtensionBlock,
		byte(t.Cumulative),
	)
	in := t.TimeCodeIn.serialize()
	out = append(out, in[:]...)
	tc := t.TimeCodeOut.serialize()
	out = append(out, tc[:]...)
	out = append(out, t.VerticalPosition, t.Justification, t.CommentFlag)
	out = append(out, t.textField[:]...)
	return out
}
