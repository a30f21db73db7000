package cache

import (
	"context"
	"time"
)

// NopBackend stores nothing: every Get misses. It is used when no cache
// server is configured.
type NopBackend struct{}

func (NopBackend) Get(context.Context, string) ([]byte, error) { return nil, ErrMiss }

func (NopBackend) Stamp(context.Context, []string) (Stamp, error) { return Stamp{}, nil }

func (NopBackend) Set(context.Context, string, []byte, time.Duration, []string, Stamp) error {
	return nil
}

func (NopBackend) Invalidate(context.Context, string) error { return nil }

func (NopBackend) Flush(context.Context) error { return nil }

func (NopBackend) Ping(context.Context) error { return nil }

func (NopBackend) Close() error { return nil }
