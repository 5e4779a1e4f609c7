package blocklist

import (
	"context"
	"time"
)

// default duration an identifier stays blocked
const DefaultBlockTTL = time.Hour

// temporary denial set for client identifiers (IPs or fingerprint ids).
// Implementations must treat lookup failures as "not blocked" upstream;
// the shield fails open on store errors.
type Store interface {
	// puts an identifier under temporary denial
	Block(ctx context.Context, identifier string, ttl time.Duration) error

	// reports whether an identifier is currently denied
	IsBlocked(ctx context.Context, identifier string) (bool, error)

	// lifts a denial early
	Unblock(ctx context.Context, identifier string) error
}

// optionally implemented by stores that can report their size cheaply
type Counter interface {
	Count(ctx context.Context) (int, error)
}
