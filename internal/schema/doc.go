// Package schema maintains the client's registry of event payload schemas.
//
// # Overview
//
// The bus identifies every payload schema by a content-addressed id and serves
// the Avro JSON definition on demand. A Schema pairs the decoder codec with the
// ordered field descriptors the change-bitmap resolver needs, including one
// nested level for compound fields. Schemas are immutable once built: a given
// id always names the same content, so the cache never invalidates.
//
// Cache misses go through an injected Resolver. Concurrent misses for the same
// id may each resolve; the store is advisory and the last writer wins, which
// costs a duplicate fetch but never correctness.
package schema
