package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psemenov/raclient/internal/client/models"
)

func TestAsk_EmptyQuestionFailsLocally(t *testing.T) {
	client := &fakeClient{}
	svc := NewQueryService(client, &fakeStore{})

	_, err := svc.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, errEmptyQuestion)
	assert.Empty(t, client.lastAsked)
}

func TestAsk_UsesFreshTokenFromStore(t *testing.T) {
	client := &fakeClient{
		answer: models.Answer{
			Answer:  "42",
			Sources: []models.Source{{Name: "paper.pdf"}},
		},
	}
	store := &fakeStore{token: "current-tok"}
	svc := NewQueryService(client, store)

	answer, err := svc.Ask(context.Background(), "what is the answer?")
	require.NoError(t, err)

	assert.Equal(t, "current-tok", client.askedToken)
	assert.Equal(t, "what is the answer?", client.lastAsked)
	assert.Equal(t, "42", answer.Answer)
	require.Len(t, answer.Sources, 1)
}
