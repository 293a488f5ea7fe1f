package decode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gonzalojpv/pubsub-api-client/internal/schema"
)

// hexPrefix marks a top-level bitmap entry.
const hexPrefix = "0x"

// BitmapError reports a change bitmap entry that cannot be resolved against
// the schema's field list.
type BitmapError struct {
	Entry  string
	Reason string
}

func (e *BitmapError) Error() string {
	return fmt.Sprintf("decode: bitmap entry %q: %s", e.Entry, e.Reason)
}

// ResolveBitmapFields expands one change-tracking attribute's bitmap entries
// into field names against the schema's ordered field list.
//
// The first entry, when it carries the hex prefix, is the top-level bitmap.
// Remaining entries of the form "parentIndex-childHex" address fields of the
// parent's record-typed branches and resolve to "Parent.Child" names. Bit
// positions beyond the field list are wire padding and are ignored.
func ResolveBitmapFields(fields []schema.Field, bitmaps []string) ([]string, error) {
	if len(bitmaps) == 0 {
		return nil, nil
	}
	var names []string
	rest := bitmaps
	if strings.HasPrefix(bitmaps[0], hexPrefix) {
		positions, err := bitPositions(strings.TrimPrefix(bitmaps[0], hexPrefix))
		if err != nil {
			return nil, &BitmapError{Entry: bitmaps[0], Reason: err.Error()}
		}
		for _, i := range positions {
			if i < len(fields) {
				names = append(names, fields[i].Name)
			}
		}
		rest = bitmaps[1:]
	}
	for _, entry := range rest {
		idxStr, childHex, ok := strings.Cut(entry, "-")
		if !ok {
			continue
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 || idx >= len(fields) {
			return nil, &BitmapError{Entry: entry, Reason: "parent field index out of range"}
		}
		parent := fields[idx]
		if len(parent.Children) == 0 {
			return nil, &BitmapError{Entry: entry, Reason: fmt.Sprintf("field %q has no record-typed branch", parent.Name)}
		}
		positions, err := bitPositions(strings.TrimPrefix(childHex, hexPrefix))
		if err != nil {
			return nil, &BitmapError{Entry: entry, Reason: err.Error()}
		}
		for _, i := range positions {
			if i < len(parent.Children) {
				names = append(names, parent.Name+"."+parent.Children[i].Name)
			}
		}
	}
	return names, nil
}

// bitPositions returns the indexes of the set bits of a hex bitmap in scan
// order: each hex digit expands to its 4-bit form, the digits concatenate,
// and the whole bit string is reversed so the least-significant bit of the
// last digit becomes index 0.
func bitPositions(hexStr string) ([]int, error) {
	bits := make([]byte, 0, len(hexStr)*4)
	for _, r := range hexStr {
		v, err := strconv.ParseUint(string(r), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex digit %q", r)
		}
		for shift := 3; shift >= 0; shift-- {
			if v>>uint(shift)&1 == 1 {
				bits = append(bits, 1)
			} else {
				bits = append(bits, 0)
			}
		}
	}
	var positions []int
	n := len(bits)
	for i := 0; i < n; i++ {
		if bits[n-1-i] == 1 {
			positions = append(positions, i)
		}
	}
	return positions, nil
}
