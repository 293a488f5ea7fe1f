package decode

import (
	"errors"
	"fmt"

	"github.com/gonzalojpv/pubsub-api-client/internal/schema"
	"github.com/gonzalojpv/pubsub-api-client/pkg/replay"
)

// ChangeEventHeaderField is the payload attribute carrying change-tracking
// metadata. It is exempt from wrapper collapsing.
const ChangeEventHeaderField = "ChangeEventHeader"

// bitmapAttrs are the header attributes encoded as field bitmaps. Each is
// resolved independently.
var bitmapAttrs = []string{"nulledFields", "diffFields", "changedFields"}

// ErrMissingPayload reports an event delivered without payload bytes.
var ErrMissingPayload = errors.New("decode: event has no payload")

// RawEvent is one event as delivered by the bus, before decoding.
type RawEvent struct {
	EventID  string
	SchemaID string
	ReplayID []byte
	Payload  []byte
}

// Event is a decoded event: the replay position plus the structured payload
// with change bitmaps resolved to field names and union wrappers collapsed.
type Event struct {
	ReplayID uint64
	EventID  string
	SchemaID string
	Payload  map[string]interface{}
}

// EventError wraps a per-event decode failure with the best-effort replay
// position recovered from the raw event.
type EventError struct {
	ReplayID uint64
	Err      error
}

func (e *EventError) Error() string {
	return fmt.Sprintf("decode event (replay %d): %v", e.ReplayID, e.Err)
}

func (e *EventError) Unwrap() error { return e.Err }

// DecodeEvent decodes one raw event against its schema. Failures after the
// payload check are returned as *EventError so the caller can surface them
// with the recovered replay position and continue the batch.
func DecodeEvent(s *schema.Schema, raw RawEvent) (*Event, error) {
	if len(raw.Payload) == 0 {
		return nil, ErrMissingPayload
	}
	pos := replay.DecodeLenient(raw.ReplayID)

	decoded, err := s.Decode(raw.Payload)
	if err != nil {
		return nil, &EventError{ReplayID: pos, Err: err}
	}

	payload := make(map[string]interface{}, len(decoded))
	for k, v := range decoded {
		if k == ChangeEventHeaderField {
			hdr, err := resolveChangeHeader(s.Fields, v)
			if err != nil {
				return nil, &EventError{ReplayID: pos, Err: err}
			}
			payload[k] = hdr
			continue
		}
		payload[k] = flattenValue(v)
	}

	return &Event{
		ReplayID: pos,
		EventID:  raw.EventID,
		SchemaID: raw.SchemaID,
		Payload:  payload,
	}, nil
}

// resolveChangeHeader returns a copy of the change-tracking header with each
// bitmap-bearing attribute replaced by its resolved field-name list. The
// three attributes resolve independently; the first failure aborts the event.
func resolveChangeHeader(fields []schema.Field, v interface{}) (interface{}, error) {
	hdr, ok := v.(map[string]interface{})
	if !ok {
		return v, nil
	}
	out := make(map[string]interface{}, len(hdr))
	for k, vv := range hdr {
		out[k] = vv
	}
	for _, attr := range bitmapAttrs {
		raw, ok := out[attr]
		if !ok {
			continue
		}
		names, err := ResolveBitmapFields(fields, bitmapStrings(raw))
		if err != nil {
			return nil, err
		}
		if names == nil {
			names = []string{}
		}
		out[attr] = names
	}
	return out, nil
}

// bitmapStrings extracts the bitmap entries from a decoded array attribute.
// Non-string elements are wire noise and are skipped.
func bitmapStrings(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
