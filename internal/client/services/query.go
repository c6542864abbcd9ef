package services

import (
	"context"
	"errors"
	"strings"

	"github.com/psemenov/raclient/internal/client/api"
	"github.com/psemenov/raclient/internal/client/credstore"
	"github.com/psemenov/raclient/internal/client/models"
)

var errEmptyQuestion = errors.New("question is required")

// QueryService submits research questions to the backend.
type QueryService interface {
	Ask(ctx context.Context, question string) (models.Answer, error)
}

type queryService struct {
	client api.Client
	store  credstore.Store
}

func NewQueryService(client api.Client, store credstore.Store) QueryService {
	return &queryService{client: client, store: store}
}

func (s *queryService) Ask(ctx context.Context, question string) (models.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.Answer{}, errEmptyQuestion
	}

	token, err := s.store.Get(ctx)
	if err != nil {
		return models.Answer{}, err
	}

	return s.client.SubmitQuestion(ctx, token, question)
}
