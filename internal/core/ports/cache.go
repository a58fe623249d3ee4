package ports

import "context"

// Cache invalidation tags. A mutation declaring a tag removes every entry a
// query produced under that tag.
const (
	TagStores = "stores"
	TagUsers  = "users"
)

// Cache stores raw query responses keyed by (endpoint, serialized args,
// session). Entries carry tags for write invalidation and a session scope
// so sign-out can purge everything one session saw.
type Cache interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, indexed by tags and session scope.
	// A later Set for the same key wins (a refetch supersedes an earlier
	// fetch).
	Set(ctx context.Context, key string, value []byte, tags []string, session string) error

	// Invalidate removes every entry tagged with any of tags.
	Invalidate(ctx context.Context, tags ...string) error

	// PurgeSession removes every entry stored under the session scope.
	PurgeSession(ctx context.Context, session string) error
}
