package store

import (
	"github.com/MKhiriev/help-me-shop/internal/cache"
	"github.com/MKhiriev/help-me-shop/internal/logger"
)

// IDGenerator produces new canonical ids for users, lists and revisions.
type IDGenerator interface {
	Generate() string
}

// Storages bundles the cached storages handed to the service layer.
type Storages struct {
	IdentityStorage IdentityStorage
	ListStorage     ListStorage
}

// NewStorages wires the repositories over db behind c.
func NewStorages(db *DB, c *cache.Cache, ids IDGenerator, logger *logger.Logger) *Storages {
	return &Storages{
		IdentityStorage: NewIdentityStorage(NewIdentityRepository(db, logger), c, ids, logger),
		ListStorage:     NewListStorage(NewListRepository(db, logger), c, ids, logger),
	}
}
