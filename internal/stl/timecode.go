package stl

import "fmt"

// Timecode is the four raw bytes of a TTI time field: hours, minutes,
// seconds, and a frame count relative to the file's frame rate. The
// codec never converts frames; values pass through parse and serialize
// untouched.
type Timecode struct {
	Hours   uint8
	Minutes uint8
	Seconds uint8
	Frames  uint8
}

// Milliseconds converts the frame portion at the given frame rate and
// returns the full timecode as elapsed milliseconds.
func (t Timecode) Milliseconds(fps int) int {
	ms := (int(t.Hours)*3600 + int(t.Minutes)*60 + int(t.Seconds)) * 1000
	if fps > 0 {
		ms += int(t.Frames) * 1000 / fps
	}
	return ms
}

func (t Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds, t.Frames)
}

func parseTimecode(cur *cursor) (Timecode, error) {
	b, err := cur.take(4)
	if err != nil {
		return Timecode{}, err
	}
	return Timecode{Hours: b[0], Minutes: b[1], Seconds: b[2], Frames: b[3]}, nil
}

func (t Timecode) serialize() [4]byte {
	return [4]byte{t.Hours, t.Minutes, t.Seconds, t.Frames}
}
