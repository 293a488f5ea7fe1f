package pubsub

import (
	"sync"
	"sync/atomic"

	eventbusv1 "github.com/gonzalojpv/pubsub-api-client/api/eventbus/v1"
)

// Subscription is the per-topic event source. Exactly one live Subscription
// exists per topic name; it is created on the first Subscribe for the topic
// and torn down when the stream ends, errors, or the client disconnects.
type Subscription struct {
	topic  string
	stream Stream
	ch     chan Message

	// sendMu serializes writes to the stream. gRPC forbids concurrent
	// SendMsg calls on one stream, and forbids CloseSend concurrent with
	// SendMsg; both the receive goroutine (batch re-requests) and caller
	// goroutines (re-subscribe, manual requests, disconnect) write.
	sendMu sync.Mutex

	// Flow-control accounting. received <= requested between re-request
	// cycles; when they meet, either a new batch is issued (unbounded) or
	// lastevent fires (bounded).
	unbounded     atomic.Bool
	requested     atomic.Int64
	received      atomic.Int64
	lastEventSent atomic.Bool

	// filter may be swapped by a re-subscribe while the receive goroutine is
	// reading it.
	filter atomic.Pointer[eventFilter]
}

// Topic returns the subscribed topic name.
func (s *Subscription) Topic() string { return s.topic }

// C returns the channel the subscription's messages are delivered on. The
// channel is closed after the terminal end or stream-error message.
func (s *Subscription) C() <-chan Message { return s.ch }

// Requested returns the current batch target.
func (s *Subscription) Requested() int64 { return s.requested.Load() }

// Received returns the events received in the current batch cycle.
func (s *Subscription) Received() int64 { return s.received.Load() }

// rearm resets the accounting for a new batch cycle.
func (s *Subscription) rearm(requested int64, unbounded bool) {
	s.requested.Store(requested)
	s.received.Store(0)
	s.unbounded.Store(unbounded)
	s.lastEventSent.Store(false)
}

// send writes one flow-control request to the stream.
func (s *Subscription) send(req *eventbusv1.FetchRequest) error {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	return s.stream.Send(req)
}

// closeStream closes the stream's send side, waiting out any in-flight send.
func (s *Subscription) closeStream() error {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	return s.stream.Close()
}

// emit delivers one message. Only the stream's receive goroutine emits, so
// sends never race the close.
func (s *Subscription) emit(msg Message) {
	s.ch <- msg
}
