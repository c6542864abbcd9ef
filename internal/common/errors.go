// Package common defines shared constants and sentinel errors used across
// the raclient layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Password protocol errors. Any non-success login response maps to
	// ErrInvalidCredentials so the client never reveals which of
	// email/password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Bearer token errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Magic-link protocol errors.
	ErrMissingToken       = errors.New("missing magic link token")
	ErrVerificationFailed = errors.New("magic link verification failed")
	ErrLinkRequestFailed  = errors.New("magic link request failed")

	// Admin action errors, e.g. a self-deactivation attempt.
	ErrActionDenied = errors.New("action denied")

	// Generic backend/network failure. Transport and decoding errors are
	// folded into this at the gateway boundary and never surface raw.
	ErrUpstream = errors.New("upstream error")

	// ErrBusy is returned when a login or session resolution is already
	// in flight on the same controller.
	ErrBusy = errors.New("another request is already in flight")
)
