package utils

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// ErrInvalidID is returned by DecodeID and EncodeID when the input is not a
// well-formed identifier.
var ErrInvalidID = errors.New("invalid id")

// externalIDPattern is the alphabet accepted for ids coming from the outside:
// the URL-safe base64 alphabet plus padding.
var externalIDPattern = regexp.MustCompile(`^[A-Za-z0-9\-_=]+$`)

// UUIDGenerator produces time-ordered (v7) ids in canonical storage form.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new id as 32 lowercase hex characters without dashes.
// Falls back to a random v4 id if the v7 clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return canonical(uuid.New())
	}

	return canonical(v7)
}

// NormalizeUUID returns the canonical dash-free lowercase hex form of s when
// s parses as a UUID in any of its textual forms. Any other input is returned
// unchanged.
func NormalizeUUID(s string) string {
	u, err := uuid.Parse(s)
	if err != nil {
		return s
	}

	return canonical(u)
}

// EncodeID converts a stored id (hex, with or without dashes) into its
// external URL-safe base64 form.
func EncodeID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidID, err)
	}

	return base64.URLEncoding.EncodeToString(u[:]), nil
}

// DecodeID converts an external URL-safe base64 id back into the canonical
// hex storage form. Input outside the URL-safe alphabet, undecodable input and
// input that does not decode to exactly 16 bytes are rejected with ErrInvalidID.
func DecodeID(encoded string) (string, error) {
	if !externalIDPattern.MatchString(encoded) {
		return "", fmt.Errorf("%w: unexpected characters in %q", ErrInvalidID, encoded)
	}

	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		// clients sometimes strip the padding
		raw, err = base64.RawURLEncoding.DecodeString(encoded)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidID, err)
		}
	}

	if len(raw) != len(uuid.UUID{}) {
		return "", fmt.Errorf("%w: decoded length %d", ErrInvalidID, len(raw))
	}

	return hex.EncodeToString(raw), nil
}

func canonical(u uuid.UUID) string {
	return hex.EncodeToString(u[:])
}
