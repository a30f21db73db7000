package config

import (
	"time"

	"github.com/MKhiriev/help-me-shop/models"
)

const (
	defaultTokenIssuer    = "help-me-shop"
	defaultTokenDuration  = 24 * time.Hour
	defaultVersion        = "dev"
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultMaxOpenConns   = 10
	defaultMaxIdleConns   = 4
	defaultCacheTTL       = 24 * time.Hour
	defaultHealthInterval = 15 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			Version:       defaultVersion,
			DefaultRole:   models.RoleRegular,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: defaultMaxOpenConns,
				MaxIdleConns: defaultMaxIdleConns,
			},
			Cache: Cache{
				TTL: defaultCacheTTL,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			HealthInterval: defaultHealthInterval,
		},
	}
}
