// Package session owns the authentication lifecycle of the client: it
// restores a prior session from the stored token on startup, confirms every
// freshly acquired token with the backend before reporting the user as
// authenticated, and is the single place deciding whether admin surfaces
// are reachable.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/psemenov/raclient/internal/client/api"
	"github.com/psemenov/raclient/internal/client/credstore"
	"github.com/psemenov/raclient/internal/client/models"
	"github.com/psemenov/raclient/internal/common"
	"github.com/psemenov/raclient/internal/logging"
)

// State is the session lifecycle state. Exactly one holds at any instant.
type State string

const (
	// StateLoading only occupies the window between construction and the
	// first Restore completing.
	StateLoading       State = "loading"
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Controller is the session state machine. All dependencies are injected:
// it never touches ambient globals, so tests can run it against fakes.
type Controller struct {
	store  credstore.Store
	api    api.Client
	logger logging.Logger

	mu    sync.Mutex
	state State
	user  models.User
	busy  bool
}

func NewController(store credstore.Store, apiClient api.Client, logger logging.Logger) *Controller {
	return &Controller{
		store:  store,
		api:    apiClient,
		logger: logger.With("component", "session"),
		state:  StateLoading,
	}
}

// tryBegin marks a resolution or login as in flight. It fails when another
// one has not settled yet, so callers cannot double-submit.
func (c *Controller) tryBegin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return false
	}
	c.busy = true
	return true
}

func (c *Controller) end() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

func (c *Controller) setAnonymous() {
	c.mu.Lock()
	c.state = StateAnonymous
	c.user = models.User{}
	c.mu.Unlock()
}

func (c *Controller) setAuthenticated(user models.User) {
	c.mu.Lock()
	c.state = StateAuthenticated
	c.user = user
	c.mu.Unlock()
}

// Restore runs the startup path: read the stored token and, if one exists,
// confirm it with the backend. A missing token means Anonymous without any
// backend call. A rejected token is treated as "never logged in": the store
// is cleared silently and no error is returned. Only infrastructure
// failures (store I/O, network) surface to the caller; even then the state
// ends up Anonymous, never stuck in Loading.
func (c *Controller) Restore(ctx context.Context) error {
	if !c.tryBegin() {
		return common.ErrBusy
	}
	defer c.end()

	token, err := c.store.Get(ctx)
	if err != nil {
		c.setAnonymous()
		return err
	}
	if token == "" {
		c.setAnonymous()
		return nil
	}

	user, err := c.api.ResolveIdentity(ctx, token)
	if err != nil {
		// Identity is never assumed from token presence alone; a token
		// that failed resolution is dropped rather than retried.
		_ = c.store.Clear(ctx)
		c.setAnonymous()
		if errors.Is(err, common.ErrUnauthorized) {
			c.logger.Info(ctx, "stored token rejected, session reset")
			return nil
		}
		return err
	}

	c.setAuthenticated(user)
	c.logger.Info(ctx, "session restored", "email", user.Email, "is_admin", user.IsAdmin)
	return nil
}

// CompleteLogin persists a freshly acquired token and then confirms it with
// the backend. The user is not considered authenticated until the identity
// resolution succeeds; on any resolution failure the token is discarded and
// the error is returned.
func (c *Controller) CompleteLogin(ctx context.Context, token string) error {
	if !c.tryBegin() {
		return common.ErrBusy
	}
	defer c.end()

	if err := c.store.Set(ctx, token); err != nil {
		return err
	}

	user, err := c.api.ResolveIdentity(ctx, token)
	if err != nil {
		_ = c.store.Clear(ctx)
		c.setAnonymous()
		return err
	}

	c.setAuthenticated(user)
	c.logger.Info(ctx, "login confirmed", "email", user.Email, "is_admin", user.IsAdmin)
	return nil
}

// Logout clears the stored credential and transitions to Anonymous
// unconditionally; no backend call is involved.
func (c *Controller) Logout(ctx context.Context) error {
	err := c.store.Clear(ctx)
	c.setAnonymous()
	return err
}

// Refresh re-resolves the current identity in place, e.g. after an admin
// action that may have changed it. It has no effect when anonymous.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	authenticated := c.state == StateAuthenticated
	c.mu.Unlock()
	if !authenticated {
		return nil
	}
	return c.Restore(ctx)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentUser returns the confirmed identity, if any.
func (c *Controller) CurrentUser() (models.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAuthenticated {
		return models.User{}, false
	}
	return c.user, true
}

// CanAccessAdmin is the single capability check gating every admin surface.
func (c *Controller) CanAccessAdmin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateAuthenticated && c.user.IsAdmin
}

// IsSelf reports whether id is the currently authenticated user.
func (c *Controller) IsSelf(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateAuthenticated && c.user.ID == id
}
