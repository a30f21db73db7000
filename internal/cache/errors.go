package cache

import "errors"

var (
	// ErrMiss is returned by [Backend.Get] when no entry exists for a key.
	ErrMiss = errors.New("cache miss")
	// ErrStale is returned by [Backend.Set] when the entry was invalidated
	// after its stamp was taken.
	ErrStale = errors.New("cache entry invalidated while being read")
)
