// Package api is the boundary to the Research Assistant backend. It turns
// HTTP round trips into typed outcomes: every call is a single
// request/response with no retry, and transport or non-success responses are
// classified into the sentinel errors of internal/common before they reach
// any caller. The gateway holds no state between calls.
package api

import (
	"context"

	"github.com/psemenov/raclient/internal/client/models"
)

// Client defines the remote operations consumed by the services layer.
type Client interface {
	// Login exchanges email/password for a bearer token. Any non-success
	// response maps to common.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)

	// Signup self-registers a new account and returns the created identity.
	// It does not log the user in.
	Signup(ctx context.Context, name, email, password string) (models.User, error)

	// ResolveIdentity confirms a stored token with the backend and returns
	// the identity it belongs to. Fails with common.ErrUnauthorized when the
	// token is stale or revoked.
	ResolveIdentity(ctx context.Context, token string) (models.User, error)

	// ListUsers returns all users. Admin-only; fails with common.ErrForbidden.
	ListUsers(ctx context.Context, token string) ([]models.User, error)

	// SetUserActive toggles a user's active flag and returns the updated
	// identity. Fails with common.ErrActionDenied.
	SetUserActive(ctx context.Context, token string, userID int64) (models.User, error)

	// CreateUser creates a user or admin account. Admin-only.
	CreateUser(ctx context.Context, token, name, email, password string, isAdmin bool) (models.User, error)

	// SubmitQuestion sends a research question and returns the generated
	// answer with its sources. Fails with common.ErrUpstream.
	SubmitQuestion(ctx context.Context, token, question string) (models.Answer, error)

	// RequestMagicLink asks the backend to dispatch a one-time login link
	// out of band. Produces no token.
	RequestMagicLink(ctx context.Context, email string) error

	// VerifyMagicLink exchanges a single-use code for a bearer token.
	// Fails with common.ErrVerificationFailed; the code must not be reused.
	VerifyMagicLink(ctx context.Context, code string) (string, error)
}
