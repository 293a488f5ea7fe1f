package transport

import (
	"context"
	"crypto/tls"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	eventbusv1 "github.com/gonzalojpv/pubsub-api-client/api/eventbus/v1"
	logpkg "github.com/gonzalojpv/pubsub-api-client/pkg/log"
	"github.com/gonzalojpv/pubsub-api-client/pkg/pubsub"
)

// Metadata keys the bus reads on every RPC.
const (
	tokenHeader  = "accesstoken"
	tenantHeader = "tenantid"
)

// OAuthConfig holds client-credentials settings for token-based auth.
type OAuthConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// Options configures a Transport.
type Options struct {
	// Endpoint is the host:port of the bus.
	Endpoint string
	// Insecure disables transport security. Local development only.
	Insecure bool
	// TLSConfig overrides the default TLS settings.
	TLSConfig *tls.Config
	// AuthToken is a static access token sent with every RPC.
	AuthToken string
	// OAuth, when set, takes precedence over AuthToken: tokens are fetched
	// and refreshed through the client-credentials flow.
	OAuth *OAuthConfig
	// TenantID is attached to every RPC when non-empty.
	TenantID string
	// DialOptions are appended to the computed gRPC dial options.
	DialOptions []grpc.DialOption

	Logger logpkg.Logger
}

// Transport dials the bus over gRPC. It implements pubsub.Transport.
type Transport struct {
	opts   Options
	logger logpkg.Logger
}

// New validates opts and returns a Transport. No connection is made until
// Open.
func New(opts Options) (*Transport, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("transport: endpoint is required")
	}
	if opts.OAuth != nil {
		if opts.OAuth.TokenURL == "" || opts.OAuth.ClientID == "" {
			return nil, fmt.Errorf("transport: oauth requires token url and client id")
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewLogger()
	}
	return &Transport{opts: opts, logger: logger.WithComponent("transport")}, nil
}

// Open dials the endpoint and returns a session bound to the connection.
func (t *Transport) Open(ctx context.Context) (pubsub.Session, error) {
	dialOpts := make([]grpc.DialOption, 0, 3+len(t.opts.DialOptions))

	if t.opts.Insecure {
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	} else {
		cfg := t.opts.TLSConfig
		if cfg == nil {
			cfg = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(cfg)))
	}

	if creds := t.perRPCCredentials(ctx); creds != nil {
		dialOpts = append(dialOpts, grpc.WithPerRPCCredentials(creds))
	}
	dialOpts = append(dialOpts, t.opts.DialOptions...)

	conn, err := grpc.DialContext(ctx, t.opts.Endpoint, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", t.opts.Endpoint, err)
	}
	t.logger.Info("session opened", logpkg.Str("endpoint", t.opts.Endpoint))
	return &session{
		conn:   conn,
		client: eventbusv1.NewPubSubClient(conn),
		logger: t.logger,
	}, nil
}

func (t *Transport) perRPCCredentials(ctx context.Context) credentials.PerRPCCredentials {
	creds := &authCreds{
		tenantID: t.opts.TenantID,
		secure:   !t.opts.Insecure,
	}
	switch {
	case t.opts.OAuth != nil:
		cc := &clientcredentials.Config{
			TokenURL:     t.opts.OAuth.TokenURL,
			ClientID:     t.opts.OAuth.ClientID,
			ClientSecret: t.opts.OAuth.ClientSecret,
			Scopes:       t.opts.OAuth.Scopes,
		}
		creds.tokens = cc.TokenSource(ctx)
	case t.opts.AuthToken != "":
		creds.static = t.opts.AuthToken
	default:
		if t.opts.TenantID == "" {
			return nil
		}
	}
	return creds
}

// authCreds attaches the access token and tenant id to every RPC.
type authCreds struct {
	tokens   oauth2.TokenSource
	static   string
	tenantID string
	secure   bool
}

func (a *authCreds) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	md := make(map[string]string, 2)
	token := a.static
	if a.tokens != nil {
		tok, err := a.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("transport: fetch token: %w", err)
		}
		token = tok.AccessToken
	}
	if token != "" {
		md[tokenHeader] = token
	}
	if a.tenantID != "" {
		md[tenantHeader] = a.tenantID
	}
	return md, nil
}

func (a *authCreds) RequireTransportSecurity() bool { return a.secure }

// session implements pubsub.Session over a single client connection.
type session struct {
	conn   *grpc.ClientConn
	client eventbusv1.PubSubClient
	logger logpkg.Logger
}

// OpenStream starts the bidirectional subscribe RPC. The topic binds at the
// first fetch request, not at stream open.
func (s *session) OpenStream(ctx context.Context, topic string) (pubsub.Stream, error) {
	streamCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	rpc, err := s.client.Subscribe(streamCtx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("transport: subscribe %s: %w", topic, err)
	}
	s.logger.Debug("stream opened", logpkg.Str("topic", topic))
	return &stream{rpc: rpc, cancel: cancel}, nil
}

func (s *session) GetSchema(ctx context.Context, schemaID string) (string, error) {
	info, err := s.client.GetSchema(ctx, &eventbusv1.SchemaRequest{SchemaId: schemaID})
	if err != nil {
		return "", fmt.Errorf("transport: get schema %s: %w", schemaID, err)
	}
	return info.GetSchemaJson(), nil
}

func (s *session) GetTopic(ctx context.Context, topic string) (*eventbusv1.TopicInfo, error) {
	info, err := s.client.GetTopic(ctx, &eventbusv1.TopicRequest{TopicName: topic})
	if err != nil {
		return nil, fmt.Errorf("transport: get topic %s: %w", topic, err)
	}
	return info, nil
}

func (s *session) Publish(ctx context.Context, req *eventbusv1.PublishRequest) (*eventbusv1.PublishResponse, error) {
	resp, err := s.client.Publish(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("transport: publish %s: %w", req.GetTopicName(), err)
	}
	return resp, nil
}

func (s *session) Close() error {
	return s.conn.Close()
}

// stream implements pubsub.Stream over the subscribe RPC. Close cancels the
// stream context, which unblocks any pending Recv.
type stream struct {
	rpc    eventbusv1.PubSub_SubscribeClient
	cancel context.CancelFunc
}

func (s *stream) Send(req *eventbusv1.FetchRequest) error {
	return s.rpc.Send(req)
}

func (s *stream) Recv() (*eventbusv1.FetchResponse, error) {
	return s.rpc.Recv()
}

func (s *stream) Close() error {
	err := s.rpc.CloseSend()
	s.cancel()
	return err
}
