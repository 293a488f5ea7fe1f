// Package replay implements the wire codec for replay positions.
//
// # Overview
//
// A replay position is a server-assigned, monotonically increasing cursor
// identifying a point in a topic's retained event history. On the wire it is
// an 8-byte big-endian unsigned integer. Positions are carried as uint64
// end-to-end, so every wire value round-trips exactly:
//
//	b := replay.Encode(pos)
//	pos2, _ := replay.Decode(b)  // pos2 == pos
//
// Decode rejects buffers that are not exactly 8 bytes.
package replay
