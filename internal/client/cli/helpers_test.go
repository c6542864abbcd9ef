package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/psemenov/raclient/internal/client/models"
	"github.com/psemenov/raclient/internal/client/services"
	"github.com/psemenov/raclient/internal/client/session"
	"github.com/psemenov/raclient/internal/logging"

	"github.com/stretchr/testify/require"
)

// stubInputs swaps the interactive input seams. Successive calls to the
// text prompt return the given lines in order.
func stubInputs(t *testing.T, lines []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}

	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

// ---- fake session dependencies ----

type memStore struct{ token string }

func (m *memStore) Get(context.Context) (string, error) { return m.token, nil }
func (m *memStore) Set(_ context.Context, token string) error {
	m.token = token
	return nil
}
func (m *memStore) Clear(context.Context) error {
	m.token = ""
	return nil
}

type stubAPI struct {
	user       models.User
	resolveErr error
}

func (s *stubAPI) ResolveIdentity(context.Context, string) (models.User, error) {
	return s.user, s.resolveErr
}
func (s *stubAPI) Login(context.Context, string, string) (string, error) { return "", nil }
func (s *stubAPI) Signup(context.Context, string, string, string) (models.User, error) {
	return models.User{}, nil
}
func (s *stubAPI) ListUsers(context.Context, string) ([]models.User, error) {
	return nil, nil
}
func (s *stubAPI) SetUserActive(context.Context, string, int64) (models.User, error) {
	return models.User{}, nil
}
func (s *stubAPI) CreateUser(context.Context, string, string, string, string, bool) (models.User, error) {
	return models.User{}, nil
}
func (s *stubAPI) SubmitQuestion(context.Context, string, string) (models.Answer, error) {
	return models.Answer{}, nil
}
func (s *stubAPI) RequestMagicLink(context.Context, string) error { return nil }
func (s *stubAPI) VerifyMagicLink(context.Context, string) (string, error) {
	return "", nil
}

// newTestSession returns a controller; when user is non-nil the session is
// authenticated as that user.
func newTestSession(t *testing.T, user *models.User) (*session.Controller, *memStore) {
	t.Helper()
	store := &memStore{}
	api := &stubAPI{}
	if user != nil {
		store.token = "tok"
		api.user = *user
	}
	logger := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	c := session.NewController(store, api, logger)
	require.NoError(t, c.Restore(context.Background()))
	return c, store
}

// ---- fake services ----

type fakeAuthService struct {
	loginEmail    string
	loginPassword string
	loginErr      error

	magicEmail string
	magicErr   error

	verifyCode  string
	verifyErr   error
	verifyCalls int

	signupName  string
	signupEmail string
	signupUser  models.User
	signupErr   error
}

func (f *fakeAuthService) PasswordLogin(_ context.Context, email, password string) error {
	f.loginEmail, f.loginPassword = email, password
	return f.loginErr
}
func (f *fakeAuthService) RequestMagicLink(_ context.Context, email string) error {
	f.magicEmail = email
	return f.magicErr
}
func (f *fakeAuthService) VerifyMagicLink(_ context.Context, code string) error {
	f.verifyCalls++
	f.verifyCode = code
	return f.verifyErr
}
func (f *fakeAuthService) Signup(_ context.Context, name, email, _ string) (models.User, error) {
	f.signupName, f.signupEmail = name, email
	return f.signupUser, f.signupErr
}

type fakeUserService struct {
	users      []models.User
	listErr    error
	lastFilter services.StatusFilter
	listCalls  int

	toggled    models.User
	toggleErr  error
	lastToggle int64

	created   models.User
	createErr error
}

func (f *fakeUserService) List(_ context.Context, filter services.StatusFilter) ([]models.User, error) {
	f.listCalls++
	f.lastFilter = filter
	return f.users, f.listErr
}
func (f *fakeUserService) SetActive(_ context.Context, id int64) (models.User, error) {
	f.lastToggle = id
	return f.toggled, f.toggleErr
}
func (f *fakeUserService) Create(context.Context, string, string, string, bool) (models.User, error) {
	return f.created, f.createErr
}

type fakeQueryService struct {
	answer    models.Answer
	askErr    error
	lastAsked string
}

func (f *fakeQueryService) Ask(_ context.Context, question string) (models.Answer, error) {
	f.lastAsked = question
	return f.answer, f.askErr
}

func newReader() *bufio.Reader {
	return bufio.NewReader(strings.NewReader(""))
}
