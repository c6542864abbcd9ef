// Package credstore persists the single bearer token the client holds
// between runs. It is pure storage: no validation of the token shape is
// performed here, and every reader fetches fresh; there is no caching
// layer in front of the database.
package credstore

import "context"

// Store is the credential store contract. Get returns an empty string when
// no token is stored.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
