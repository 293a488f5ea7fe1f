package pubsub

import (
	"errors"
	"fmt"

	eventbusv1 "github.com/gonzalojpv/pubsub-api-client/api/eventbus/v1"
)

var (
	// ErrNotConnected reports an operation that needs a transport session
	// before Connect succeeded (or after Disconnect).
	ErrNotConnected = errors.New("pubsub: not connected")

	// ErrNoActiveSubscription reports a flow-control request for a topic with
	// no open stream.
	ErrNoActiveSubscription = errors.New("pubsub: no active subscription")

	// ErrInvalidRequest reports invalid caller-supplied arguments.
	ErrInvalidRequest = errors.New("pubsub: invalid request")
)

// DecodeFailure is delivered on the subscription channel when one event of a
// batch cannot be decoded. It carries everything recoverable for diagnostics;
// the rest of the batch is unaffected.
type DecodeFailure struct {
	Topic string
	// ReplayID is the failed event's own position, best effort.
	ReplayID uint64
	// LatestReplayID is the batch's latest position.
	LatestReplayID uint64
	// Raw is the undecoded event as delivered.
	Raw *eventbusv1.ConsumerEvent
	Err error
}

func (f *DecodeFailure) Error() string {
	return fmt.Sprintf("pubsub: decode event on %s (replay %d): %v", f.Topic, f.ReplayID, f.Err)
}

func (f *DecodeFailure) Unwrap() error { return f.Err }
