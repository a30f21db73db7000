package cache

import (
	"context"

	"github.com/MKhiriev/help-me-shop/internal/config"
	"github.com/MKhiriev/help-me-shop/internal/logger"
)

// Connect builds the Cache described by cfg: a Redis backed cache when an
// address is configured, otherwise one that caches nothing.
func Connect(ctx context.Context, cfg config.Cache, log *logger.Logger) (*Cache, error) {
	if cfg.Address == "" {
		log.Warn().Str("func", "cache.Connect").Msg("no cache address configured, query caching is disabled")
		return New(NopBackend{}, cfg.TTL, log), nil
	}

	backend, err := NewRedisBackend(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return New(backend, cfg.TTL, log), nil
}
