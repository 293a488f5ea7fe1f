package replay

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 255, 256, 1<<32 - 1, 1 << 32, 1<<53 - 1, 1 << 62, math.MaxUint64}
	for _, pos := range cases {
		got, err := Decode(Encode(pos))
		if err != nil {
			t.Fatalf("decode(encode(%d)): %v", pos, err)
		}
		if got != pos {
			t.Fatalf("round trip: got %d want %d", got, pos)
		}
	}
}

func TestEncodeBigEndian(t *testing.T) {
	b := Encode(0x0102030405060708)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if !bytes.Equal(b, want) {
		t.Fatalf("encode: got %v want %v", b, want)
	}
}

func TestDecodeRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, 1, 7, 9, 16} {
		if _, err := Decode(make([]byte, n)); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("len %d: expected ErrInvalidLength, got %v", n, err)
		}
	}
}

func TestDecodeLenient(t *testing.T) {
	if got := DecodeLenient(Encode(42)); got != 42 {
		t.Fatalf("lenient decode: got %d", got)
	}
	if got := DecodeLenient([]byte{1, 2}); got != 0 {
		t.Fatalf("lenient on malformed: got %d want 0", got)
	}
	if got := DecodeLenient(nil); got != 0 {
		t.Fatalf("lenient on nil: got %d want 0", got)
	}
}
