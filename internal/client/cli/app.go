package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/psemenov/raclient/internal/client/api"
	"github.com/psemenov/raclient/internal/client/config"
	"github.com/psemenov/raclient/internal/client/credstore"
	"github.com/psemenov/raclient/internal/client/services"
	"github.com/psemenov/raclient/internal/client/session"
	"github.com/psemenov/raclient/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config       *config.Config
	session      *session.Controller
	authService  services.AuthService
	userService  services.UserService
	queryService services.QueryService
	reader       *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := credstore.Open(ctx, c.CredentialsDBPath)
	if err != nil {
		return nil, err
	}

	store := credstore.NewSQLiteStore(db)

	apiClient, err := api.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}

	controller := session.NewController(store, apiClient, logger)

	return &App{
		config:       c,
		session:      controller,
		authService:  services.NewAuthService(apiClient, store, controller),
		userService:  services.NewUserService(apiClient, store, controller),
		queryService: services.NewQueryService(apiClient, store),
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the prior session, if any, and enters the REPL.
func (a *App) Run(ctx context.Context) {
	a.restore(ctx)
	a.Root(ctx)
}

// RunVerify is the dedicated magic-link entry point: it consumes the
// single-use code with no prior client state, then proceeds into the REPL
// with the freshly resolved session. When verification fails, the normal
// startup resolution still runs so the shell never stays in Loading.
func (a *App) RunVerify(ctx context.Context, code string) {
	if err := a.Verify(ctx, code); err != nil {
		a.restore(ctx)
	}
	a.Root(ctx)
}
