// Package transport is the gRPC implementation of the pubsub transport
// interfaces.
//
// # Overview
//
// A Transport dials the event bus endpoint once per Open and hands back a
// session bound to that connection. Authentication rides on per-RPC metadata:
// either a static access token or an OAuth2 client-credentials token source,
// plus an optional tenant id. Streams opened from a session share the
// connection; closing the session closes them all.
package transport
