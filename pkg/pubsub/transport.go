package pubsub

import (
	"context"

	eventbusv1 "github.com/gonzalojpv/pubsub-api-client/api/eventbus/v1"
)

// Transport establishes sessions with the event bus. The gRPC implementation
// lives in internal/transport; tests substitute in-memory fakes.
type Transport interface {
	Open(ctx context.Context) (Session, error)
}

// Session is one authenticated connection to the bus.
type Session interface {
	// OpenStream opens the bidirectional event stream for a topic.
	OpenStream(ctx context.Context, topic string) (Stream, error)
	// GetSchema fetches the raw schema definition for a schema id.
	GetSchema(ctx context.Context, schemaID string) (string, error)
	// GetTopic fetches topic metadata, including its current schema id.
	GetTopic(ctx context.Context, topic string) (*eventbusv1.TopicInfo, error)
	// Publish publishes a batch of encoded events.
	Publish(ctx context.Context, req *eventbusv1.PublishRequest) (*eventbusv1.PublishResponse, error)
	Close() error
}

// Stream is one open bidirectional event stream.
type Stream interface {
	Send(*eventbusv1.FetchRequest) error
	Recv() (*eventbusv1.FetchResponse, error)
	Close() error
}
