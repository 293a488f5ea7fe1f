package replay

import (
	"encoding/binary"
	"fmt"
)

// Size is the wire length of an encoded replay position.
const Size = 8

// ErrInvalidLength reports a buffer whose length is not exactly Size bytes.
var ErrInvalidLength = fmt.Errorf("replay: buffer must be exactly %d bytes", Size)

// Encode returns the 8-byte big-endian representation of pos.
func Encode(pos uint64) []byte {
	var b [Size]byte
	binary.BigEndian.PutUint64(b[:], pos)
	return b[:]
}

// Decode parses an 8-byte big-endian buffer into a replay position.
// It returns ErrInvalidLength if b is not exactly 8 bytes.
func Decode(b []byte) (uint64, error) {
	if len(b) != Size {
		return 0, fmt.Errorf("%w (got %d)", ErrInvalidLength, len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}

// DecodeLenient is Decode for contexts where a position is advisory, such as
// diagnostics on a failed event. It returns 0 for malformed buffers instead
// of an error.
func DecodeLenient(b []byte) uint64 {
	pos, err := Decode(b)
	if err != nil {
		return 0
	}
	return pos
}
