package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/internal/utils"
)

// DefaultTTL is the lifetime of an entry when none is configured.
const DefaultTTL = 24 * time.Hour

// Backend is the key-value store behind [Cache]. Implementations keep a
// secondary index from every tag to the keys stored with it so that
// Invalidate can drop them without scanning the keyspace.
//
// Invalidate also advances a generation counter per tag and a global epoch.
// A reader takes a [Stamp] before running its query and hands it to Set,
// which stores nothing if any of the entry's tags was invalidated since.
//
//go:generate mockgen -source=cache.go -destination=../mock/cache_backend_mock.go -package=mock
type Backend interface {
	// Get returns the stored value or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Stamp records the current generation of every tag in tags and the
	// global epoch.
	Stamp(ctx context.Context, tags []string) (Stamp, error)
	// Set stores value under key for ttl and adds key to the index of every
	// tag in tags. It returns ErrStale and stores nothing when a tag in
	// stamp changed generation, or, for a tag stamp does not cover, when
	// the epoch moved.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags []string, stamp Stamp) error
	// Invalidate deletes every key indexed under tag, then the index itself.
	Invalidate(ctx context.Context, tag string) error
	// Flush drops every entry.
	Flush(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// Stamp is the invalidation state a reader observed before its query ran.
type Stamp struct {
	Epoch       int64
	Generations map[string]int64
}

// Cache is the read-through query cache. A nil *Cache is valid and caches
// nothing.
type Cache struct {
	backend Backend
	ttl     time.Duration
	logger  *logger.Logger
}

// New returns a Cache over backend. A non-positive ttl selects DefaultTTL.
func New(backend Backend, ttl time.Duration, logger *logger.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if backend == nil {
		backend = NopBackend{}
	}

	logger.Debug().Str("backend", fmt.Sprintf("%T", backend)).Dur("ttl", ttl).Msg("creating query cache")
	return &Cache{
		backend: backend,
		ttl:     ttl,
		logger:  logger,
	}
}

// Fetch returns the cached result of q, or runs compute, caches its result
// and returns it. The entry is indexed by the arguments of q.
func Fetch[T any](ctx context.Context, c *Cache, q Query, compute func(ctx context.Context) (T, error)) (T, error) {
	return FetchTagged(ctx, c, q, nil, compute)
}

// FetchTagged is Fetch with extra identifiers the entry must be indexed by.
// tags may be computed from the result; it is called only on a miss.
func FetchTagged[T any](ctx context.Context, c *Cache, q Query, tags func(T) []string, compute func(ctx context.Context) (T, error)) (T, error) {
	if c == nil {
		return compute(ctx)
	}

	key := q.Key()
	log := logger.FromContext(ctx)

	data, err := c.backend.Get(ctx, key)
	switch {
	case err == nil:
		var cached T
		if err = unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		log.Warn().Err(err).Str("func", "cache.Fetch").Str("key", key).Msg("undecodable cache entry, treating as miss")
	case errors.Is(err, ErrMiss):
	default:
		log.Warn().Err(err).Str("func", "cache.Fetch").Str("key", key).Msg("cache read failed, treating as miss")
	}

	// Taken before compute: an invalidation racing with the query must
	// stop the result from being stored.
	stamp, stampErr := c.backend.Stamp(ctx, q.tags(nil))

	result, err := compute(ctx)
	if err != nil {
		return result, err
	}

	if stampErr != nil {
		log.Warn().Err(stampErr).Str("func", "cache.Fetch").Str("key", key).Msg("cache stamp failed, result not cached")
		return result, nil
	}

	var extra []string
	if tags != nil {
		extra = tags(result)
	}

	data, err = marshal(result)
	if err != nil {
		log.Warn().Err(err).Str("func", "cache.Fetch").Str("key", key).Msg("result is not cacheable")
		return result, nil
	}

	err = c.backend.Set(ctx, key, data, c.ttl, q.tags(extra), stamp)
	switch {
	case err == nil:
	case errors.Is(err, ErrStale):
		log.Debug().Str("func", "cache.Fetch").Str("key", key).Msg("invalidated while reading, result not cached")
	default:
		log.Warn().Err(err).Str("func", "cache.Fetch").Str("key", key).Msg("cache write failed")
	}

	return result, nil
}

// Invalidate drops every entry that references any of identifiers. Empty
// identifiers are skipped.
func (c *Cache) Invalidate(ctx context.Context, identifiers ...string) {
	if c == nil {
		return
	}

	log := logger.FromContext(ctx)
	for _, id := range identifiers {
		if id == "" {
			continue
		}
		tag := utils.NormalizeUUID(id)
		if err := c.backend.Invalidate(ctx, tag); err != nil {
			log.Warn().Err(err).Str("func", "cache.Invalidate").Str("tag", tag).Msg("cache invalidation failed")
		}
	}
}

// Flush drops every entry.
func (c *Cache) Flush(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.backend.Flush(ctx)
}

// Ping checks the backend connection.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.backend.Ping(ctx)
}

// Close releases the backend.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.backend.Close()
}
