package services

import (
	"context"

	"github.com/psemenov/raclient/internal/client/api"
	"github.com/psemenov/raclient/internal/client/credstore"
	"github.com/psemenov/raclient/internal/client/models"
	"github.com/psemenov/raclient/internal/client/session"
	"github.com/psemenov/raclient/internal/common"
)

// StatusFilter narrows a user listing by active flag.
type StatusFilter string

const (
	FilterAll      StatusFilter = "all"
	FilterActive   StatusFilter = "active"
	FilterInactive StatusFilter = "inactive"
)

// UserService exposes the admin-only user administration operations. Every
// operation re-checks the admin capability locally before going to the
// network, so a non-admin session can never trigger these calls.
type UserService interface {
	List(ctx context.Context, filter StatusFilter) ([]models.User, error)
	SetActive(ctx context.Context, userID int64) (models.User, error)
	Create(ctx context.Context, name, email, password string, isAdmin bool) (models.User, error)
}

type userService struct {
	client  api.Client
	store   credstore.Store
	session *session.Controller
}

func NewUserService(client api.Client, store credstore.Store, controller *session.Controller) UserService {
	return &userService{client: client, store: store, session: controller}
}

// token fetches the current bearer token fresh from the store; no copy is
// kept in service state.
func (s *userService) token(ctx context.Context) (string, error) {
	return s.store.Get(ctx)
}

// List returns users filtered by status. The filtering is purely local.
func (s *userService) List(ctx context.Context, filter StatusFilter) ([]models.User, error) {
	if !s.session.CanAccessAdmin() {
		return nil, common.ErrForbidden
	}

	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.client.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}

	if filter == FilterAll || filter == "" {
		return users, nil
	}

	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if (filter == FilterActive) == u.IsActive {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

// SetActive toggles the active flag of the given user. Toggling yourself is
// rejected locally before any network call.
func (s *userService) SetActive(ctx context.Context, userID int64) (models.User, error) {
	if !s.session.CanAccessAdmin() {
		return models.User{}, common.ErrForbidden
	}
	if s.session.IsSelf(userID) {
		return models.User{}, common.ErrActionDenied
	}

	token, err := s.token(ctx)
	if err != nil {
		return models.User{}, err
	}

	return s.client.SetUserActive(ctx, token, userID)
}

// Create adds a user or admin account.
func (s *userService) Create(ctx context.Context, name, email, password string, isAdmin bool) (models.User, error) {
	if !s.session.CanAccessAdmin() {
		return models.User{}, common.ErrForbidden
	}

	token, err := s.token(ctx)
	if err != nil {
		return models.User{}, err
	}

	return s.client.CreateUser(ctx, token, name, email, password, isAdmin)
}
