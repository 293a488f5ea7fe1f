package transport_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	eventbusv1 "github.com/gonzalojpv/pubsub-api-client/api/eventbus/v1"
	"github.com/gonzalojpv/pubsub-api-client/internal/schema"
	"github.com/gonzalojpv/pubsub-api-client/internal/transport"
	logpkg "github.com/gonzalojpv/pubsub-api-client/pkg/log"
	"github.com/gonzalojpv/pubsub-api-client/pkg/pubsub"
	"github.com/gonzalojpv/pubsub-api-client/pkg/replay"
)

const orderSchema = `{
  "type": "record",
  "name": "OrderPlaced",
  "fields": [
    {"name": "OrderId", "type": "string"},
    {"name": "Amount", "type": "double"}
  ]
}`

// busServer is an in-process bus serving one topic with one schema.
type busServer struct {
	eventbusv1.UnimplementedPubSubServer

	mu      sync.Mutex
	md      metadata.MD
	payload []byte
}

func (b *busServer) captureMD(ctx context.Context) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		b.mu.Lock()
		b.md = md
		b.mu.Unlock()
	}
}

func (b *busServer) header(key string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	vals := b.md.Get(key)
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func (b *busServer) GetSchema(ctx context.Context, req *eventbusv1.SchemaRequest) (*eventbusv1.SchemaInfo, error) {
	b.captureMD(ctx)
	if req.GetSchemaId() != "sid-1" {
		return nil, status.Errorf(codes.NotFound, "schema %s not found", req.GetSchemaId())
	}
	return &eventbusv1.SchemaInfo{SchemaJson: orderSchema, SchemaId: "sid-1"}, nil
}

func (b *busServer) GetTopic(ctx context.Context, req *eventbusv1.TopicRequest) (*eventbusv1.TopicInfo, error) {
	b.captureMD(ctx)
	return &eventbusv1.TopicInfo{
		TopicName:    req.GetTopicName(),
		SchemaId:     "sid-1",
		CanPublish:   true,
		CanSubscribe: true,
	}, nil
}

func (b *busServer) Publish(ctx context.Context, req *eventbusv1.PublishRequest) (*eventbusv1.PublishResponse, error) {
	b.captureMD(ctx)
	results := make([]*eventbusv1.PublishResult, len(req.GetEvents()))
	for i := range results {
		results[i] = &eventbusv1.PublishResult{ReplayId: replay.Encode(uint64(i + 1))}
	}
	return &eventbusv1.PublishResponse{Results: results, SchemaId: "sid-1"}, nil
}

// Subscribe answers every fetch request with exactly the requested number of
// events.
func (b *busServer) Subscribe(st eventbusv1.PubSub_SubscribeServer) error {
	b.captureMD(st.Context())
	for {
		req, err := st.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		n := int(req.GetNumRequested())
		events := make([]*eventbusv1.ConsumerEvent, n)
		for i := range events {
			events[i] = &eventbusv1.ConsumerEvent{
				Event: &eventbusv1.ProducerEvent{
					Id:       fmt.Sprintf("evt-%d", i+1),
					SchemaId: "sid-1",
					Payload:  b.payload,
				},
				ReplayId: replay.Encode(uint64(i + 1)),
			}
		}
		if err := st.Send(&eventbusv1.FetchResponse{Events: events, LatestReplayId: replay.Encode(uint64(n))}); err != nil {
			return err
		}
	}
}

func startBus(t *testing.T) (*busServer, *transport.Transport) {
	t.Helper()

	s, err := schema.Parse("sid-1", orderSchema)
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	payload, err := s.Encode(map[string]interface{}{"OrderId": "o-1", "Amount": 12.5})
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}
	bus := &busServer{payload: payload}

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	eventbusv1.RegisterPubSubServer(srv, bus)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	tr, err := transport.New(transport.Options{
		Endpoint:  "passthrough:///bufnet",
		Insecure:  true,
		AuthToken: "tok-1",
		TenantID:  "tenant-9",
		Logger:    logpkg.NewLogger(logpkg.WithOutput(logpkg.NullOutput{})),
		DialOptions: []grpc.DialOption{
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return lis.DialContext(ctx)
			}),
		},
	})
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}
	return bus, tr
}

func TestNewValidation(t *testing.T) {
	if _, err := transport.New(transport.Options{}); err == nil {
		t.Fatalf("expected error for missing endpoint")
	}
	if _, err := transport.New(transport.Options{
		Endpoint: "bus:7011",
		OAuth:    &transport.OAuthConfig{ClientSecret: "s"},
	}); err == nil {
		t.Fatalf("expected error for incomplete oauth config")
	}
}

func TestSessionRPCs(t *testing.T) {
	bus, tr := startBus(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sess, err := tr.Open(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer sess.Close()

	def, err := sess.GetSchema(ctx, "sid-1")
	if err != nil {
		t.Fatalf("get schema: %v", err)
	}
	if def != orderSchema {
		t.Fatalf("schema json mismatch")
	}
	// auth metadata rides on every RPC
	if got := bus.header("accesstoken"); got != "tok-1" {
		t.Fatalf("accesstoken header: %q", got)
	}
	if got := bus.header("tenantid"); got != "tenant-9" {
		t.Fatalf("tenantid header: %q", got)
	}

	if _, err := sess.GetSchema(ctx, "sid-missing"); status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}

	info, err := sess.GetTopic(ctx, "/event/Order")
	if err != nil {
		t.Fatalf("get topic: %v", err)
	}
	if info.GetSchemaId() != "sid-1" || !info.GetCanSubscribe() {
		t.Fatalf("topic info: %+v", info)
	}

	resp, err := sess.Publish(ctx, &eventbusv1.PublishRequest{
		TopicName: "/event/Order",
		Events:    []*eventbusv1.ProducerEvent{{Id: "evt-1", SchemaId: "sid-1", Payload: []byte{1}}},
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(resp.GetResults()) != 1 {
		t.Fatalf("publish results: %+v", resp)
	}
}

func TestStreamFetch(t *testing.T) {
	_, tr := startBus(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sess, err := tr.Open(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer sess.Close()

	st, err := sess.OpenStream(ctx, "/event/Order")
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	if err := st.Send(&eventbusv1.FetchRequest{TopicName: "/event/Order", NumRequested: 2}); err != nil {
		t.Fatalf("send: %v", err)
	}
	resp, err := st.Recv()
	if err != nil {
		t.Fatalf("recv: %v", err)
	}
	if len(resp.GetEvents()) != 2 {
		t.Fatalf("events: got %d want 2", len(resp.GetEvents()))
	}
	if got, err := replay.Decode(resp.GetLatestReplayId()); err != nil || got != 2 {
		t.Fatalf("latest replay id: %d, %v", got, err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close stream: %v", err)
	}
}

// The engine, transport, schema cache and decoder working against a live
// in-process bus.
func TestEndToEndSubscribe(t *testing.T) {
	_, tr := startBus(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := pubsub.New(tr, pubsub.WithLogger(logpkg.NewLogger(logpkg.WithOutput(logpkg.NullOutput{}))))
	if err := c.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer c.Disconnect()

	sub, err := c.Subscribe(ctx, pubsub.SubscribeOptions{Topic: "/event/Order", NumRequested: 2})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	want := []pubsub.Kind{pubsub.KindData, pubsub.KindData, pubsub.KindLastEvent}
	for i, kind := range want {
		select {
		case msg := <-sub.C():
			if msg.Kind != kind {
				t.Fatalf("message %d: got %s want %s", i, msg.Kind, kind)
			}
			if kind == pubsub.KindData && msg.Event.Payload["OrderId"] != "o-1" {
				t.Fatalf("message %d payload: %v", i, msg.Event.Payload)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("timeout waiting for message %d", i)
		}
	}
}
