package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const namespace = "go-cookbook"

// UUID derives a deterministic UUID from key with go-hashid, falling back to
// a SHA1 name based UUID if hashing fails. Keys are case sensitive.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(false))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// RecipeUUID is the stable UID of the recipe directory id in owner/store.
func RecipeUUID(owner, store, id string) uuid.UUID {
	id = strings.TrimSpace(id)
	if id == "" {
		return uuid.Nil
	}
	return UUID(namespace + ":recipe:" + strings.TrimSpace(owner) + "/" + strings.TrimSpace(store) + ":" + id)
}

// RequestID returns a random id for correlating log entries of one request.
func RequestID() string {
	return uuid.NewString()
}
