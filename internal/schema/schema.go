package schema

import (
	"encoding/json"
	"fmt"

	"github.com/linkedin/goavro/v2"
)

// Field describes one schema field in declaration order. Children holds the
// fields of record-typed branches of the field's type, used to resolve
// compound change bitmaps one level deep.
type Field struct {
	Name     string
	Children []Field
}

// Schema is an immutable handle for one payload schema: its id, the ordered
// field descriptors, and the Avro codec for the binary payload encoding.
type Schema struct {
	ID     string
	Fields []Field

	codec *goavro.Codec
}

// Parse builds a Schema from a content-addressed id and its Avro JSON
// definition.
func Parse(id, definition string) (*Schema, error) {
	codec, err := goavro.NewCodec(definition)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", id, err)
	}
	fields, err := parseFields(definition)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", id, err)
	}
	return &Schema{ID: id, Fields: fields, codec: codec}, nil
}

// Decode decodes a binary payload into its structured form.
func (s *Schema) Decode(payload []byte) (map[string]interface{}, error) {
	native, _, err := s.codec.NativeFromBinary(payload)
	if err != nil {
		return nil, err
	}
	m, ok := native.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("schema %s: payload root is %T, want record", s.ID, native)
	}
	return m, nil
}

// Encode encodes a structured value into the binary payload form. Used on the
// publish path.
func (s *Schema) Encode(value map[string]interface{}) ([]byte, error) {
	return s.codec.BinaryFromNative(nil, value)
}

type rawRecord struct {
	Type   json.RawMessage `json:"type"`
	Name   string          `json:"name"`
	Fields []rawField      `json:"fields"`
}

type rawField struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

// parseFields extracts the ordered field descriptors from an Avro record
// definition. Only record-typed branches contribute children; scalar, named
// reference and non-record union branches have none.
func parseFields(definition string) ([]Field, error) {
	var root rawRecord
	if err := json.Unmarshal([]byte(definition), &root); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}
	fields := make([]Field, 0, len(root.Fields))
	for _, f := range root.Fields {
		fields = append(fields, Field{Name: f.Name, Children: childFields(f.Type)})
	}
	return fields, nil
}

// childFields returns the fields of the record type (or record union
// branches) encoded in a field's type declaration.
func childFields(typ json.RawMessage) []Field {
	if len(typ) == 0 {
		return nil
	}
	switch typ[0] {
	case '{':
		return recordFields(typ)
	case '[':
		var branches []json.RawMessage
		if err := json.Unmarshal(typ, &branches); err != nil {
			return nil
		}
		var out []Field
		for _, b := range branches {
			out = append(out, recordFields(b)...)
		}
		return out
	}
	return nil
}

func recordFields(typ json.RawMessage) []Field {
	if len(typ) == 0 || typ[0] != '{' {
		return nil
	}
	var rec rawRecord
	if err := json.Unmarshal(typ, &rec); err != nil {
		return nil
	}
	var kind string
	if err := json.Unmarshal(rec.Type, &kind); err != nil || kind != "record" {
		return nil
	}
	out := make([]Field, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		out = append(out, Field{Name: f.Name})
	}
	return out
}
