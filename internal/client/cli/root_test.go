package cli

import (
	"testing"

	"github.com/psemenov/raclient/internal/client/models"

	"github.com/stretchr/testify/assert"
)

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want string
	}{
		{"anonymous", nil, ""},
		{"regular user", &models.User{ID: 2, Email: "bob@example.com", IsActive: true}, "(bob@example.com)"},
		{"admin", adminUser(), "(admin@example.com admin)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, _ := newTestSession(t, tt.user)
			app := &App{session: ctrl, reader: newReader()}
			assert.Equal(t, tt.want, app.getStatus())
		})
	}
}
