package pubsub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/grpc/status"

	eventbusv1 "github.com/gonzalojpv/pubsub-api-client/api/eventbus/v1"
	"github.com/gonzalojpv/pubsub-api-client/internal/decode"
	"github.com/gonzalojpv/pubsub-api-client/internal/metrics"
	"github.com/gonzalojpv/pubsub-api-client/internal/schema"
	logpkg "github.com/gonzalojpv/pubsub-api-client/pkg/log"
	"github.com/gonzalojpv/pubsub-api-client/pkg/replay"
)

// MaxBatchSize is the largest event count the bus accepts per flow-control
// request. Unbounded subscriptions cycle batches of this size.
const MaxBatchSize = 100

// defaultBuffer is the per-subscription channel capacity.
const defaultBuffer = 256

// ReplayPreset selects where a subscription starts in the topic's retained
// history.
type ReplayPreset int

const (
	// ReplayLatest starts at the tip: only events published after subscribe.
	ReplayLatest ReplayPreset = iota
	// ReplayEarliest starts at the oldest retained event.
	ReplayEarliest
	// ReplayCustom starts just after an explicit replay position.
	ReplayCustom
)

func (p ReplayPreset) wire() eventbusv1.ReplayPreset {
	switch p {
	case ReplayEarliest:
		return eventbusv1.ReplayPreset_EARLIEST
	case ReplayCustom:
		return eventbusv1.ReplayPreset_CUSTOM
	default:
		return eventbusv1.ReplayPreset_LATEST
	}
}

// SubscribeOptions describes one subscribe call.
type SubscribeOptions struct {
	Topic string
	// NumRequested bounds the subscription. Zero means unbounded: the client
	// cycles batches of MaxBatchSize indefinitely. Values above MaxBatchSize
	// are passed through; the bus enforces its own cap.
	NumRequested int
	Replay       ReplayPreset
	// ReplayID is the start position for ReplayCustom.
	ReplayID uint64
	// Filter is an optional CEL expression evaluated against decoded events.
	// Non-matching events are dropped client-side but still count toward
	// flow control.
	Filter string
	// Buffer overrides the delivery channel capacity.
	Buffer int
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(logger logpkg.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// Client is the subscription and flow-control engine. It owns one transport
// session and at most one open stream per topic.
type Client struct {
	transport Transport
	logger    logpkg.Logger

	mu      sync.Mutex
	session Session
	subs    map[string]*Subscription
	schemas *schema.Cache
}

// New returns a disconnected client over the given transport.
func New(transport Transport, opts ...Option) *Client {
	c := &Client{
		transport: transport,
		logger:    logpkg.NewLogger(),
		subs:      make(map[string]*Subscription),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithComponent("pubsub")
	c.schemas = schema.NewCache(sessionResolver{c}, c.logger)
	return c
}

// sessionResolver adapts the live session to the schema cache's Resolver.
type sessionResolver struct{ c *Client }

func (r sessionResolver) ResolveSchema(ctx context.Context, schemaID string) (string, error) {
	sess := r.c.currentSession()
	if sess == nil {
		return "", ErrNotConnected
	}
	return sess.GetSchema(ctx, schemaID)
}

func (c *Client) currentSession() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Connect opens the transport session. Connecting an already connected client
// is a no-op. The dial happens outside the client lock so other operations
// are not blocked for its duration.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.session != nil {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	sess, err := c.transport.Open(ctx)
	if err != nil {
		return fmt.Errorf("pubsub: connect: %w", err)
	}

	c.mu.Lock()
	if c.session != nil {
		// lost a concurrent connect; keep the established session
		c.mu.Unlock()
		_ = sess.Close()
		return nil
	}
	c.session = sess
	c.mu.Unlock()
	c.logger.Info("connected")
	return nil
}

// Subscribe opens (or reuses) the topic's stream and writes the initial
// flow-control request. It returns once the request is written, not once
// events arrive.
func (c *Client) Subscribe(ctx context.Context, opts SubscribeOptions) (*Subscription, error) {
	if opts.Topic == "" {
		return nil, fmt.Errorf("%w: empty topic", ErrInvalidRequest)
	}
	if opts.NumRequested < 0 {
		return nil, fmt.Errorf("%w: negative event count %d", ErrInvalidRequest, opts.NumRequested)
	}
	if opts.NumRequested > math.MaxInt32 {
		return nil, fmt.Errorf("%w: event count %d exceeds the wire limit", ErrInvalidRequest, opts.NumRequested)
	}
	unbounded := opts.NumRequested == 0
	requested := int64(opts.NumRequested)
	if unbounded {
		requested = MaxBatchSize
	} else if opts.NumRequested > MaxBatchSize {
		c.logger.Warn("requested count above max batch size; the bus enforces its own cap",
			logpkg.Str("topic", opts.Topic), logpkg.Int("requested", opts.NumRequested), logpkg.Int("max", MaxBatchSize))
	}

	filter, err := newEventFilter(opts.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: filter: %v", ErrInvalidRequest, err)
	}

	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return nil, ErrNotConnected
	}

	if sub, ok := c.subs[opts.Topic]; ok {
		// Existing open stream for the topic: re-arm it instead of opening a
		// second stream.
		sub.rearm(requested, unbounded)
		sub.filter.Store(filter)
		c.mu.Unlock()
		if err := sub.send(subscribeRequest(opts, requested)); err != nil {
			return nil, fmt.Errorf("pubsub: subscribe %s: %w", opts.Topic, err)
		}
		metrics.BatchesRequested.WithLabelValues(opts.Topic).Inc()
		c.logger.Debug("reused stream", logpkg.Str("topic", opts.Topic), logpkg.Int64("requested", requested))
		return sub, nil
	}
	sess := c.session
	c.mu.Unlock()

	stream, err := sess.OpenStream(ctx, opts.Topic)
	if err != nil {
		return nil, fmt.Errorf("pubsub: open stream %s: %w", opts.Topic, err)
	}

	buffer := opts.Buffer
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	sub := &Subscription{
		topic:  opts.Topic,
		stream: stream,
		ch:     make(chan Message, buffer),
	}
	sub.filter.Store(filter)
	sub.rearm(requested, unbounded)

	if err := sub.send(subscribeRequest(opts, requested)); err != nil {
		_ = sub.closeStream()
		return nil, fmt.Errorf("pubsub: subscribe %s: %w", opts.Topic, err)
	}
	metrics.BatchesRequested.WithLabelValues(opts.Topic).Inc()

	c.mu.Lock()
	c.subs[opts.Topic] = sub
	c.mu.Unlock()

	go c.receive(sub)

	c.logger.Info("subscribed",
		logpkg.Str("topic", opts.Topic),
		logpkg.Int64("requested", requested),
		logpkg.Bool("unbounded", unbounded))
	return sub, nil
}

func subscribeRequest(opts SubscribeOptions, requested int64) *eventbusv1.FetchRequest {
	req := &eventbusv1.FetchRequest{
		TopicName:    opts.Topic,
		ReplayPreset: opts.Replay.wire(),
		NumRequested: int32(requested),
	}
	if opts.Replay == ReplayCustom {
		req.ReplayId = replay.Encode(opts.ReplayID)
	}
	return req
}

// RequestAdditionalEvents issues a manual flow-control request on an existing
// stream, resetting the subscription's batch accounting to count events.
func (c *Client) RequestAdditionalEvents(sub *Subscription, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: event count must be positive", ErrInvalidRequest)
	}
	if count > math.MaxInt32 {
		return fmt.Errorf("%w: event count %d exceeds the wire limit", ErrInvalidRequest, count)
	}
	c.mu.Lock()
	active, ok := c.subs[sub.topic]
	c.mu.Unlock()
	if !ok || active != sub {
		return fmt.Errorf("%w: topic %s", ErrNoActiveSubscription, sub.topic)
	}
	sub.rearm(int64(count), false)
	if err := sub.send(&eventbusv1.FetchRequest{
		TopicName:    sub.topic,
		NumRequested: int32(count),
	}); err != nil {
		return fmt.Errorf("pubsub: request events %s: %w", sub.topic, err)
	}
	metrics.BatchesRequested.WithLabelValues(sub.topic).Inc()
	c.logger.Debug("requested additional events", logpkg.Str("topic", sub.topic), logpkg.Int("count", count))
	return nil
}

// receive is the single message handler for one stream. All batch accounting
// for the topic happens here.
func (c *Client) receive(sub *Subscription) {
	defer close(sub.ch)
	for {
		resp, err := sub.stream.Recv()
		if err != nil {
			c.drop(sub)
			if errors.Is(err, io.EOF) {
				c.logger.Info("stream ended", logpkg.Str("topic", sub.topic))
				sub.emit(Message{Kind: KindEnd})
				return
			}
			if st, ok := status.FromError(err); ok {
				sub.emit(Message{Kind: KindStatus, Status: &Status{Code: st.Code().String(), Message: st.Message()}})
			}
			c.logger.Error("stream failed", logpkg.Str("topic", sub.topic), logpkg.Err(err))
			sub.emit(Message{Kind: KindError, Err: fmt.Errorf("pubsub: stream %s: %w", sub.topic, err)})
			return
		}
		c.handleResponse(sub, resp)
	}
}

func (c *Client) handleResponse(sub *Subscription, resp *eventbusv1.FetchResponse) {
	latest := replay.DecodeLenient(resp.GetLatestReplayId())

	if len(resp.GetEvents()) == 0 {
		metrics.Keepalives.WithLabelValues(sub.topic).Inc()
		sub.emit(Message{Kind: KindKeepalive, Keepalive: &Keepalive{
			LatestReplayID:      latest,
			PendingNumRequested: resp.GetPendingNumRequested(),
		}})
		return
	}

	for _, ce := range resp.GetEvents() {
		c.handleEvent(sub, ce, latest)

		received := sub.received.Add(1)
		if received < sub.requested.Load() {
			continue
		}
		if sub.unbounded.Load() {
			sub.received.Store(0)
			if err := sub.send(&eventbusv1.FetchRequest{
				TopicName:    sub.topic,
				NumRequested: MaxBatchSize,
			}); err != nil {
				c.logger.Error("batch re-request failed", logpkg.Str("topic", sub.topic), logpkg.Err(err))
				continue
			}
			metrics.BatchesRequested.WithLabelValues(sub.topic).Inc()
			c.logger.Debug("batch exhausted, re-requested", logpkg.Str("topic", sub.topic), logpkg.Int("count", MaxBatchSize))
		} else if sub.lastEventSent.CompareAndSwap(false, true) {
			sub.emit(Message{Kind: KindLastEvent})
		}
	}
}

func (c *Client) handleEvent(sub *Subscription, ce *eventbusv1.ConsumerEvent, latest uint64) {
	fail := func(replayID uint64, err error) {
		metrics.DecodeFailures.WithLabelValues(sub.topic).Inc()
		sub.emit(Message{Kind: KindError, Err: &DecodeFailure{
			Topic:          sub.topic,
			ReplayID:       replayID,
			LatestReplayID: latest,
			Raw:            ce,
			Err:            err,
		}})
	}

	inner := ce.GetEvent()
	if inner == nil {
		fail(replay.DecodeLenient(ce.GetReplayId()), decode.ErrMissingPayload)
		return
	}
	s, err := c.schemas.Get(context.Background(), inner.GetSchemaId())
	if err != nil {
		fail(replay.DecodeLenient(ce.GetReplayId()), err)
		return
	}
	metrics.SchemasCached.Set(float64(c.schemas.Len()))

	ev, err := decode.DecodeEvent(s, decode.RawEvent{
		EventID:  inner.GetId(),
		SchemaID: inner.GetSchemaId(),
		ReplayID: ce.GetReplayId(),
		Payload:  inner.GetPayload(),
	})
	if err != nil {
		replayID := replay.DecodeLenient(ce.GetReplayId())
		var evErr *decode.EventError
		if errors.As(err, &evErr) {
			replayID = evErr.ReplayID
		}
		fail(replayID, err)
		return
	}

	out := &Event{
		ReplayID: ev.ReplayID,
		EventID:  ev.EventID,
		SchemaID: ev.SchemaID,
		Payload:  ev.Payload,
	}
	metrics.EventsReceived.WithLabelValues(sub.topic).Inc()
	if filter := sub.filter.Load(); filter != nil && !filter.Eval(sub.topic, out) {
		c.logger.Debug("event filtered", logpkg.Str("topic", sub.topic), logpkg.Uint64("replay_id", out.ReplayID))
		return
	}
	sub.emit(Message{Kind: KindData, Event: out})
}

// drop removes the per-topic state if sub still owns it.
func (c *Client) drop(sub *Subscription) {
	c.mu.Lock()
	if c.subs[sub.topic] == sub {
		delete(c.subs, sub.topic)
	}
	c.mu.Unlock()
}

// PublishResult is the outcome for one published event, in input order.
type PublishResult struct {
	ReplayID       uint64
	CorrelationKey string
	Err            error
}

// Publish encodes each payload against the topic's current schema and
// publishes the batch. Event ids are generated. Per-event failures are
// reported in the results, not as a call error.
func (c *Client) Publish(ctx context.Context, topic string, payloads []map[string]interface{}) ([]PublishResult, error) {
	if topic == "" {
		return nil, fmt.Errorf("%w: empty topic", ErrInvalidRequest)
	}
	if len(payloads) == 0 {
		return nil, fmt.Errorf("%w: no payloads", ErrInvalidRequest)
	}
	sess := c.currentSession()
	if sess == nil {
		return nil, ErrNotConnected
	}

	info, err := sess.GetTopic(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("pubsub: topic %s: %w", topic, err)
	}
	s, err := c.schemas.Get(ctx, info.GetSchemaId())
	if err != nil {
		return nil, err
	}

	events := make([]*eventbusv1.ProducerEvent, 0, len(payloads))
	for i, p := range payloads {
		bin, err := s.Encode(p)
		if err != nil {
			return nil, fmt.Errorf("pubsub: encode payload %d: %w", i, err)
		}
		events = append(events, &eventbusv1.ProducerEvent{
			Id:       uuid.NewString(),
			SchemaId: s.ID,
			Payload:  bin,
		})
	}

	resp, err := sess.Publish(ctx, &eventbusv1.PublishRequest{TopicName: topic, Events: events})
	if err != nil {
		return nil, fmt.Errorf("pubsub: publish %s: %w", topic, err)
	}

	results := make([]PublishResult, 0, len(resp.GetResults()))
	for _, r := range resp.GetResults() {
		res := PublishResult{
			ReplayID:       replay.DecodeLenient(r.GetReplayId()),
			CorrelationKey: r.GetCorrelationKey(),
		}
		if e := r.GetError(); e != nil {
			res.Err = fmt.Errorf("pubsub: publish rejected (%s): %s", e.GetCode(), e.GetMsg())
		} else {
			metrics.EventsPublished.WithLabelValues(topic).Inc()
		}
		results = append(results, res)
	}
	return results, nil
}

// GetTopic fetches topic metadata.
func (c *Client) GetTopic(ctx context.Context, topic string) (*eventbusv1.TopicInfo, error) {
	sess := c.currentSession()
	if sess == nil {
		return nil, ErrNotConnected
	}
	return sess.GetTopic(ctx, topic)
}

// GetSchemaJSON fetches the raw schema definition for a schema id, bypassing
// the cache.
func (c *Client) GetSchemaJSON(ctx context.Context, schemaID string) (string, error) {
	sess := c.currentSession()
	if sess == nil {
		return "", ErrNotConnected
	}
	return sess.GetSchema(ctx, schemaID)
}

// Disconnect closes every open stream and the transport session. It is
// idempotent: disconnecting a disconnected client is reported, not an error.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	sess := c.session
	subs := make([]*Subscription, 0, len(c.subs))
	for _, sub := range c.subs {
		subs = append(subs, sub)
	}
	c.session = nil
	c.subs = make(map[string]*Subscription)
	c.mu.Unlock()

	if sess == nil {
		c.logger.Info("disconnect: no active session")
		return nil
	}
	for _, sub := range subs {
		if err := sub.closeStream(); err != nil {
			c.logger.Warn("stream close failed", logpkg.Str("topic", sub.topic), logpkg.Err(err))
		}
	}
	if err := sess.Close(); err != nil {
		return fmt.Errorf("pubsub: disconnect: %w", err)
	}
	c.logger.Info("disconnected", logpkg.Int("streams_closed", len(subs)))
	return nil
}
