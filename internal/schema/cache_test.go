package schema

import (
	"context"
	"errors"
	"testing"

	logpkg "github.com/gonzalojpv/pubsub-api-client/pkg/log"
)

type fakeResolver struct {
	defs  map[string]string
	calls int
	err   error
}

func (r *fakeResolver) ResolveSchema(_ context.Context, id string) (string, error) {
	r.calls++
	if r.err != nil {
		return "", r.err
	}
	def, ok := r.defs[id]
	if !ok {
		return "", errors.New("not found")
	}
	return def, nil
}

func testLogger() logpkg.Logger {
	return logpkg.NewLogger(logpkg.WithOutput(logpkg.NullOutput{}))
}

func TestCacheGetResolvesOnce(t *testing.T) {
	r := &fakeResolver{defs: map[string]string{"sid-1": accountSchema}}
	c := NewCache(r, testLogger())

	s1, err := c.Get(context.Background(), "sid-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	s2, err := c.Get(context.Background(), "sid-1")
	if err != nil {
		t.Fatalf("get cached: %v", err)
	}
	if s1 != s2 {
		t.Fatalf("expected cached handle to be reused")
	}
	if r.calls != 1 {
		t.Fatalf("resolver calls: got %d want 1", r.calls)
	}
	if c.Len() != 1 {
		t.Fatalf("len: got %d want 1", c.Len())
	}
}

func TestCacheGetFailureNotCached(t *testing.T) {
	boom := errors.New("boom")
	r := &fakeResolver{err: boom}
	c := NewCache(r, testLogger())

	_, err := c.Get(context.Background(), "sid-x")
	var resErr *ResolutionError
	if !errors.As(err, &resErr) || resErr.SchemaID != "sid-x" {
		t.Fatalf("expected ResolutionError for sid-x, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("cause not wrapped: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("failed resolution must not be cached")
	}

	// recovery: resolver starts working, a retry succeeds
	r.err = nil
	r.defs = map[string]string{"sid-x": accountSchema}
	if _, err := c.Get(context.Background(), "sid-x"); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if r.calls != 2 {
		t.Fatalf("resolver calls: got %d want 2", r.calls)
	}
}

func TestCacheGetBadDefinition(t *testing.T) {
	r := &fakeResolver{defs: map[string]string{"sid-bad": `{"not": "avro"}`}}
	c := NewCache(r, testLogger())
	_, err := c.Get(context.Background(), "sid-bad")
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("bad definition must not be cached")
	}
}
