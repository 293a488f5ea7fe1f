package decode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonzalojpv/pubsub-api-client/internal/schema"
)

func bitmapFields() []schema.Field {
	return []schema.Field{
		{Name: "A"},
		{Name: "B", Children: []schema.Field{{Name: "X"}, {Name: "Y"}}},
		{Name: "C"},
		{Name: "D"},
	}
}

func TestResolveBitmapFields(t *testing.T) {
	fields := bitmapFields()

	tests := []struct {
		name    string
		bitmaps []string
		want    []string
	}{
		{name: "empty list", bitmaps: nil, want: nil},
		{name: "top-level 0x05 selects bits 0 and 2", bitmaps: []string{"0x05"}, want: []string{"A", "C"}},
		{name: "top-level 0x01 selects first field", bitmaps: []string{"0x01"}, want: []string{"A"}},
		{name: "padding beyond field list ignored", bitmaps: []string{"0xFF"}, want: []string{"A", "B", "C", "D"}},
		{name: "multi-digit bitmap", bitmaps: []string{"0x0A"}, want: []string{"B", "D"}},
		{name: "compound entry", bitmaps: []string{"1-03"}, want: []string{"B.X", "B.Y"}},
		{name: "compound child bit 0 only", bitmaps: []string{"1-01"}, want: []string{"B.X"}},
		{name: "top-level then compound, input order", bitmaps: []string{"0x05", "1-02"}, want: []string{"A", "C", "B.Y"}},
		{name: "entry without separator skipped", bitmaps: []string{"0x01", "garbage"}, want: []string{"A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveBitmapFields(fields, tt.bitmaps)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveBitmapFieldsErrors(t *testing.T) {
	fields := bitmapFields()

	tests := []struct {
		name    string
		bitmaps []string
		entry   string
	}{
		{name: "parent index out of range", bitmaps: []string{"9-01"}, entry: "9-01"},
		{name: "negative parent index", bitmaps: []string{"-1-01"}, entry: "-1-01"},
		{name: "parent without record branch", bitmaps: []string{"0-01"}, entry: "0-01"},
		{name: "invalid hex in top-level bitmap", bitmaps: []string{"0xZZ"}, entry: "0xZZ"},
		{name: "invalid hex in child bitmap", bitmaps: []string{"1-GG"}, entry: "1-GG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveBitmapFields(fields, tt.bitmaps)
			var bErr *BitmapError
			require.True(t, errors.As(err, &bErr), "expected BitmapError, got %v", err)
			assert.Equal(t, tt.entry, bErr.Entry)
		})
	}
}

func TestFlattenValue(t *testing.T) {
	in := map[string]interface{}{
		"Name": map[string]interface{}{"string": "Acme"},
		"Nested": map[string]interface{}{
			"com.example.Inner": map[string]interface{}{
				"City": map[string]interface{}{"string": "Springfield"},
				"Zip":  "12345",
			},
		},
		"List":  []interface{}{map[string]interface{}{"int": 7}, "plain"},
		"Plain": "value",
	}
	got := flattenValue(in).(map[string]interface{})

	assert.Equal(t, "Acme", got["Name"])
	nested := got["Nested"].(map[string]interface{})
	assert.Equal(t, "Springfield", nested["City"])
	assert.Equal(t, "12345", nested["Zip"])
	assert.Equal(t, []interface{}{7, "plain"}, got["List"])
	assert.Equal(t, "value", got["Plain"])

	// purity: the input must be untouched
	assert.Equal(t, map[string]interface{}{"string": "Acme"}, in["Name"])
}
