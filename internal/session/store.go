package session

import (
	"context"
)

// Store is the opaque per-client session state. The storefront core reads
// and writes a single field: the serialized guest user.
type Store interface {
	GetGuestUser(ctx context.Context, token string) ([]byte, error)
	SetGuestUser(ctx context.Context, token string, raw []byte) error
}
