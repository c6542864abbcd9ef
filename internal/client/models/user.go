// Package models holds the client-side domain types returned by the
// Research Assistant backend.
package models

// User is the identity the backend resolves from a bearer token. It is
// never mutated locally: the client replaces it wholesale on every
// successful resolution and drops it on logout or resolution failure.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	IsActive bool   `json:"is_active"`
}
