// Package decode turns raw bus events into consumer-facing decoded events.
//
// # Overview
//
// Decoding an event is three steps: decode the binary payload against its
// schema, expand the change-tracking header's hex bitmaps into field names,
// and collapse the single-key wrapper objects the union encoding leaves
// behind ({"string": "Acme"} becomes "Acme"). The change-tracking header
// itself is exempt from wrapper collapsing.
//
// Bitmaps index into the schema's ordered field list after bit reversal, so
// the least-significant bit selects the first field. Compound entries of the
// form "parentIndex-childHex" select nested fields of record-typed branches,
// emitted as "Parent.Child".
//
// Per-event failures are reported as *EventError (or *BitmapError inside it)
// carrying the best-effort replay position; callers surface them without
// aborting the rest of the batch.
package decode
