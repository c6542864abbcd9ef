package cli

import (
	"context"
	"testing"

	"github.com/psemenov/raclient/internal/client/models"
	"github.com/psemenov/raclient/internal/client/session"
	"github.com/psemenov/raclient/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	restore := stubInputs(t, []string{"alice@example.com"}, []byte("secret"))
	defer restore()

	ctrl, _ := newTestSession(t, nil)
	auth := &fakeAuthService{}
	app := &App{session: ctrl, authService: auth, reader: newReader()}

	err := app.Login(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", auth.loginEmail)
	assert.Equal(t, "secret", auth.loginPassword)
}

func TestLoginFailure(t *testing.T) {
	restore := stubInputs(t, []string{"alice@example.com"}, []byte("wrong"))
	defer restore()

	ctrl, _ := newTestSession(t, nil)
	auth := &fakeAuthService{loginErr: common.ErrInvalidCredentials}
	app := &App{session: ctrl, authService: auth, reader: newReader()}

	err := app.Login(context.Background())

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Equal(t, session.StateAnonymous, ctrl.State())
}

func TestLogout(t *testing.T) {
	ctrl, store := newTestSession(t, &models.User{ID: 1, Email: "alice@example.com", IsActive: true})
	require.Equal(t, session.StateAuthenticated, ctrl.State())

	app := &App{session: ctrl, reader: newReader()}
	err := app.Logout(context.Background())

	require.NoError(t, err)
	assert.Equal(t, session.StateAnonymous, ctrl.State())
	assert.Empty(t, store.token)
}

func TestSignup(t *testing.T) {
	restore := stubInputs(t, []string{"Alice", "alice@example.com"}, []byte("secret"))
	defer restore()

	ctrl, _ := newTestSession(t, nil)
	auth := &fakeAuthService{}
	app := &App{session: ctrl, authService: auth, reader: newReader()}

	err := app.Signup(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Alice", auth.signupName)
	assert.Equal(t, "alice@example.com", auth.signupEmail)
}

func TestSignupFailure(t *testing.T) {
	restore := stubInputs(t, []string{"Alice", "taken@example.com"}, []byte("secret"))
	defer restore()

	ctrl, _ := newTestSession(t, nil)
	auth := &fakeAuthService{signupErr: common.ErrUpstream}
	app := &App{session: ctrl, authService: auth, reader: newReader()}

	err := app.Signup(context.Background())

	assert.ErrorIs(t, err, common.ErrUpstream)
}
