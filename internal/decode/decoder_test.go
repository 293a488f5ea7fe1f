package decode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonzalojpv/pubsub-api-client/internal/schema"
	"github.com/gonzalojpv/pubsub-api-client/pkg/replay"
)

const changeEventSchema = `{
  "type": "record",
  "name": "AccountChangeEvent",
  "fields": [
    {"name": "ChangeEventHeader", "type": {
      "type": "record",
      "name": "ChangeEventHeader",
      "fields": [
        {"name": "changeType", "type": "string"},
        {"name": "changedFields", "type": {"type": "array", "items": "string"}},
        {"name": "diffFields", "type": {"type": "array", "items": "string"}},
        {"name": "nulledFields", "type": {"type": "array", "items": "string"}}
      ]
    }},
    {"name": "Name", "type": ["null", "string"], "default": null},
    {"name": "Owner", "type": ["null", {
      "type": "record",
      "name": "Owner",
      "fields": [
        {"name": "FirstName", "type": "string"},
        {"name": "LastName", "type": "string"}
      ]
    }], "default": null},
    {"name": "AnnualRevenue", "type": ["null", "double"], "default": null}
  ]
}`

func changeEventPayload(t *testing.T, s *schema.Schema, changed []interface{}) []byte {
	t.Helper()
	bin, err := s.Encode(map[string]interface{}{
		"ChangeEventHeader": map[string]interface{}{
			"changeType":    "UPDATE",
			"changedFields": changed,
			"diffFields":    []interface{}{},
			"nulledFields":  []interface{}{},
		},
		"Name": map[string]interface{}{"string": "Acme"},
		"Owner": map[string]interface{}{"Owner": map[string]interface{}{
			"FirstName": "Jean",
			"LastName":  "Moulin",
		}},
		"AnnualRevenue": nil,
	})
	require.NoError(t, err)
	return bin
}

func TestDecodeEvent(t *testing.T) {
	s, err := schema.Parse("sid-1", changeEventSchema)
	require.NoError(t, err)

	// fields: ChangeEventHeader(0) Name(1) Owner(2) AnnualRevenue(3)
	// 0x06 -> bits 1,2 -> Name, Owner; 2-01 -> Owner.FirstName
	raw := RawEvent{
		EventID:  "evt-1",
		SchemaID: "sid-1",
		ReplayID: replay.Encode(77),
		Payload:  changeEventPayload(t, s, []interface{}{"0x06", "2-01"}),
	}
	ev, err := DecodeEvent(s, raw)
	require.NoError(t, err)

	assert.Equal(t, uint64(77), ev.ReplayID)
	assert.Equal(t, "evt-1", ev.EventID)
	assert.Equal(t, "sid-1", ev.SchemaID)

	// union wrappers collapsed
	assert.Equal(t, "Acme", ev.Payload["Name"])
	owner := ev.Payload["Owner"].(map[string]interface{})
	assert.Equal(t, "Jean", owner["FirstName"])
	assert.Nil(t, ev.Payload["AnnualRevenue"])

	// header resolved but not flattened
	hdr := ev.Payload[ChangeEventHeaderField].(map[string]interface{})
	assert.Equal(t, "UPDATE", hdr["changeType"])
	assert.Equal(t, []string{"Name", "Owner", "Owner.FirstName"}, hdr["changedFields"])
	assert.Equal(t, []string{}, hdr["diffFields"])
	assert.Equal(t, []string{}, hdr["nulledFields"])
}

func TestDecodeEventMissingPayload(t *testing.T) {
	s, err := schema.Parse("sid-1", changeEventSchema)
	require.NoError(t, err)
	_, err = DecodeEvent(s, RawEvent{ReplayID: replay.Encode(1)})
	assert.ErrorIs(t, err, ErrMissingPayload)
}

func TestDecodeEventCorruptPayload(t *testing.T) {
	s, err := schema.Parse("sid-1", changeEventSchema)
	require.NoError(t, err)
	_, err = DecodeEvent(s, RawEvent{
		ReplayID: replay.Encode(42),
		Payload:  []byte{0xde, 0xad, 0xbe, 0xef},
	})
	var evErr *EventError
	require.True(t, errors.As(err, &evErr), "expected EventError, got %v", err)
	assert.Equal(t, uint64(42), evErr.ReplayID)
}

func TestDecodeEventBitmapFailure(t *testing.T) {
	s, err := schema.Parse("sid-1", changeEventSchema)
	require.NoError(t, err)
	raw := RawEvent{
		ReplayID: replay.Encode(9),
		Payload:  changeEventPayload(t, s, []interface{}{"99-01"}),
	}
	_, err = DecodeEvent(s, raw)
	var evErr *EventError
	require.True(t, errors.As(err, &evErr))
	var bErr *BitmapError
	require.True(t, errors.As(err, &bErr))
	assert.Equal(t, "99-01", bErr.Entry)
	assert.Equal(t, uint64(9), evErr.ReplayID)
}

func TestDecodeEventWithoutChangeHeader(t *testing.T) {
	plain := `{
	  "type": "record",
	  "name": "OrderPlaced",
	  "fields": [
	    {"name": "OrderId", "type": "string"},
	    {"name": "Amount", "type": ["null", "double"], "default": null}
	  ]
	}`
	s, err := schema.Parse("sid-2", plain)
	require.NoError(t, err)
	bin, err := s.Encode(map[string]interface{}{
		"OrderId": "o-1",
		"Amount":  map[string]interface{}{"double": 12.5},
	})
	require.NoError(t, err)

	ev, err := DecodeEvent(s, RawEvent{ReplayID: replay.Encode(5), Payload: bin})
	require.NoError(t, err)
	assert.Equal(t, "o-1", ev.Payload["OrderId"])
	assert.Equal(t, 12.5, ev.Payload["Amount"])
}
