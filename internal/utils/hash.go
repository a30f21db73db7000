package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers.
// Each hasher in the pool is configured with the provided hash key, which is
// the secret shared with the trusted login front-end.
//
// Example usage:
//
//	utils.InitHasherPool(cfg.App.HashKey)
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 signature over data using a hasher pulled
// from the global pool.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()
	h.Write(data)
	sum := h.Sum(nil)
	h.Reset()
	hasherPool.Put(h)
	return sum
}

// HashHex is Hash with the digest hex encoded, the form carried in the
// HashSHA256 request header.
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// VerifyHash reports whether hexSum is the hex HMAC of data. The comparison
// is constant time.
func VerifyHash(data []byte, hexSum string) bool {
	sum, err := hex.DecodeString(hexSum)
	if err != nil {
		return false
	}

	return hmac.Equal(Hash(data), sum)
}
