package schema

import (
	"context"
	"fmt"
	"sync"

	logpkg "github.com/gonzalojpv/pubsub-api-client/pkg/log"
)

// Resolver fetches the raw schema definition for a schema id.
type Resolver interface {
	ResolveSchema(ctx context.Context, schemaID string) (string, error)
}

// ResolutionError reports a failed schema fetch or parse. The failed result is
// never cached, so a retry of the event re-fetches the schema.
type ResolutionError struct {
	SchemaID string
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("schema: resolve %s: %v", e.SchemaID, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Cache is the lazily built schema registry, keyed by content-addressed id.
type Cache struct {
	resolver Resolver
	logger   logpkg.Logger

	mu      sync.RWMutex
	entries map[string]*Schema
}

// NewCache returns an empty cache backed by resolver.
func NewCache(resolver Resolver, logger logpkg.Logger) *Cache {
	return &Cache{
		resolver: resolver,
		logger:   logger.WithComponent("schema"),
		entries:  make(map[string]*Schema),
	}
}

// Get returns the cached schema for id, resolving and storing it on a miss.
// Concurrent misses for the same id may each invoke the resolver; the last
// writer wins, which is harmless because schema ids are content-addressed.
func (c *Cache) Get(ctx context.Context, id string) (*Schema, error) {
	c.mu.RLock()
	s := c.entries[id]
	c.mu.RUnlock()
	if s != nil {
		return s, nil
	}

	definition, err := c.resolver.ResolveSchema(ctx, id)
	if err != nil {
		return nil, &ResolutionError{SchemaID: id, Err: err}
	}
	s, err = Parse(id, definition)
	if err != nil {
		return nil, &ResolutionError{SchemaID: id, Err: err}
	}

	c.mu.Lock()
	c.entries[id] = s
	c.mu.Unlock()
	c.logger.Debug("schema cached", logpkg.Str("schema_id", id), logpkg.Int("fields", len(s.Fields)))
	return s, nil
}

// Len returns the number of cached schemas.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
