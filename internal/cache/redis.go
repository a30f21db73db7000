package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/help-me-shop/internal/config"
	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	entryPrefix      = "q:"
	indexPrefix      = "idx:"
	generationPrefix = "gen:"
	epochKey         = "epoch"
)

// invalidateScript bumps the generation of the tag (KEYS[2]) and the global
// epoch (KEYS[3]), then deletes every key listed in the index set KEYS[1]
// and the set itself, in one server-side step.
var invalidateScript = redis.NewScript(`
redis.call('INCR', KEYS[2])
redis.call('INCR', KEYS[3])
local keys = redis.call('SMEMBERS', KEYS[1])
for i = 1, #keys do
	redis.call('DEL', keys[i])
end
redis.call('DEL', KEYS[1])
return #keys
`)

// setScript stores an entry only if no tag was invalidated since the reader
// took its stamp.
//
//	KEYS: entry, epoch, then index and generation key of each tag
//	ARGV: value, ttl in ms, stamped epoch, tag count, then the stamped
//	      generation of each tag ("" when the stamp does not cover it)
//
// Returns 1 when stored, 0 when stale.
var setScript = redis.NewScript(`
local n = tonumber(ARGV[4])
local uncovered = false
for i = 1, n do
	local want = ARGV[4 + i]
	if want == '' then
		uncovered = true
	elseif (redis.call('GET', KEYS[2 + 2 * i]) or '0') ~= want then
		return 0
	end
end
if uncovered and (redis.call('GET', KEYS[2]) or '0') ~= ARGV[3] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
for i = 1, n do
	redis.call('SADD', KEYS[1 + 2 * i], KEYS[1])
	redis.call('PEXPIRE', KEYS[1 + 2 * i], ARGV[2])
end
return 1
`)

// RedisBackend is a [Backend] on a Redis server. Entries live under "q:<key>";
// the index of a tag is the set "idx:<tag>".
type RedisBackend struct {
	client redis.UniversalClient
}

// NewRedisBackend connects to the server described by cfg and verifies the
// connection. Unless cfg.KeepOnStart is set the selected database is flushed,
// since entries written by a previous process may predate writes it never
// saw.
func NewRedisBackend(ctx context.Context, cfg config.Cache, log *logger.Logger) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	backend := &RedisBackend{client: client}

	if err := backend.Ping(ctx); err != nil {
		log.Err(err).Str("func", "NewRedisBackend").Msg("error connecting cache (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting cache: %w", err)
	}

	if !cfg.KeepOnStart {
		if err := backend.Flush(ctx); err != nil {
			log.Err(err).Str("func", "NewRedisBackend").Msg("error flushing cache")
			_ = client.Close()
			return nil, fmt.Errorf("error flushing cache: %w", err)
		}
	}

	log.Info().Str("func", "NewRedisBackend").Str("address", cfg.Address).Msg("connected to cache successfully")
	return backend, nil
}

// NewRedisBackendFromClient wraps an existing client.
func NewRedisBackendFromClient(client redis.UniversalClient) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, entryPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	return data, nil
}

// Stamp reads the generation counters of tags and the epoch with one MGET.
// Counters that were never bumped read as zero.
func (b *RedisBackend) Stamp(ctx context.Context, tags []string) (Stamp, error) {
	keys := make([]string, 0, len(tags)+1)
	keys = append(keys, epochKey)
	for _, tag := range tags {
		keys = append(keys, generationPrefix+tag)
	}

	values, err := b.client.MGet(ctx, keys...).Result()
	if err != nil {
		return Stamp{}, fmt.Errorf("redis stamp: %w", err)
	}

	counters := make([]int64, len(values))
	for i, v := range values {
		if counters[i], err = parseCounter(v); err != nil {
			return Stamp{}, fmt.Errorf("redis stamp %s: %w", keys[i], err)
		}
	}

	stamp := Stamp{Epoch: counters[0], Generations: make(map[string]int64, len(tags))}
	for i, tag := range tags {
		stamp.Generations[tag] = counters[i+1]
	}

	return stamp, nil
}

// Set writes the entry and its index memberships through setScript. Index
// sets get the entry TTL as well so they do not outlive their members for
// long.
func (b *RedisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags []string, stamp Stamp) error {
	keys := make([]string, 0, 2+2*len(tags))
	keys = append(keys, entryPrefix+key, epochKey)
	args := make([]any, 0, 4+len(tags))
	args = append(args, value, ttl.Milliseconds(), stamp.Epoch, len(tags))
	for _, tag := range tags {
		keys = append(keys, indexPrefix+tag, generationPrefix+tag)
		if gen, ok := stamp.Generations[tag]; ok {
			args = append(args, strconv.FormatInt(gen, 10))
		} else {
			args = append(args, "")
		}
	}

	stored, err := setScript.Run(ctx, b.client, keys, args...).Int()
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	if stored == 0 {
		return ErrStale
	}

	return nil
}

func (b *RedisBackend) Invalidate(ctx context.Context, tag string) error {
	keys := []string{indexPrefix + tag, generationPrefix + tag, epochKey}
	if err := invalidateScript.Run(ctx, b.client, keys).Err(); err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}

	return nil
}

func (b *RedisBackend) Flush(ctx context.Context) error {
	return b.client.FlushDB(ctx).Err()
}

func (b *RedisBackend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}

func parseCounter(v any) (int64, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected counter value %T", v)
	}
}
