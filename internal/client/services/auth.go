// Package services contains the application services of the raclient CLI,
// sitting between the interactive command layer and the API gateway.
// This file defines the authentication service: the password protocol, the
// two-phase magic-link protocol, and self-registration.
package services

import (
	"context"
	"strings"

	"github.com/psemenov/raclient/internal/client/api"
	"github.com/psemenov/raclient/internal/client/credstore"
	"github.com/psemenov/raclient/internal/client/models"
	"github.com/psemenov/raclient/internal/client/session"
	"github.com/psemenov/raclient/internal/common"
)

// AuthService implements the two login protocols. Both produce a bearer
// token that is handed to the credential store and confirmed through the
// session controller; the service itself keeps no token state.
//
// Contract:
//   - PasswordLogin: email/password exchange; the caller is authenticated
//     only after the session controller confirms the identity.
//   - RequestMagicLink: first phase of the passwordless flow. Produces no
//     token, only an out-of-band message dispatch.
//   - VerifyMagicLink: second phase, reachable with no prior client state.
//     Consumes the single-use code exactly once.
//   - Signup: self-registration; does not log the user in.
type AuthService interface {
	PasswordLogin(ctx context.Context, email, password string) error
	RequestMagicLink(ctx context.Context, email string) error
	VerifyMagicLink(ctx context.Context, code string) error
	Signup(ctx context.Context, name, email, password string) (models.User, error)
}

type authService struct {
	client  api.Client
	store   credstore.Store
	session *session.Controller
}

// NewAuthService constructs an AuthService bound to the given API client,
// credential store and session controller.
func NewAuthService(client api.Client, store credstore.Store, controller *session.Controller) AuthService {
	return &authService{client: client, store: store, session: controller}
}

// PasswordLogin exchanges credentials for a bearer token and completes the
// login through the session controller. Empty email or password fail with
// common.ErrInvalidCredentials before any network call; no further local
// validation is done, the server is the authority.
func (a *authService) PasswordLogin(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return common.ErrInvalidCredentials
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	return a.session.CompleteLogin(ctx, token)
}

// RequestMagicLink asks the backend to send a one-time login link to email.
// Success leaves no local state behind; the verify phase is a separate
// entry point keyed only by the code from the link.
func (a *authService) RequestMagicLink(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return common.ErrLinkRequestFailed
	}
	return a.client.RequestMagicLink(ctx, email)
}

// VerifyMagicLink exchanges the single-use code for a bearer token, stores
// it, and re-runs the full startup resolution. The verify flow starts from
// scratch, so the session is rebuilt from the store rather than mutated in
// place. A missing code fails with common.ErrMissingToken without
// contacting the backend; a failed code is never retried.
func (a *authService) VerifyMagicLink(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" {
		return common.ErrMissingToken
	}

	token, err := a.client.VerifyMagicLink(ctx, code)
	if err != nil {
		return err
	}

	if err := a.store.Set(ctx, token); err != nil {
		return err
	}

	return a.session.Restore(ctx)
}

// Signup creates a new account and returns it. The user still has to log
// in afterwards.
func (a *authService) Signup(ctx context.Context, name, email, password string) (models.User, error) {
	return a.client.Signup(ctx, name, email, password)
}
