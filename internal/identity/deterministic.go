package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// AuthorUUID derives the identifier for a seeded author record.
func AuthorUUID(role string) uuid.UUID {
	return UUID("go-scribe:author:" + strings.ToLower(strings.TrimSpace(role)))
}

// JobUUID derives the identifier for a generation job keyed by its external
// index reference.
func JobUUID(indexID string) uuid.UUID {
	return UUID("go-scribe:job:" + strings.TrimSpace(indexID))
}
