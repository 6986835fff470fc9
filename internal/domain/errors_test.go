package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", &ErrNotFound{Entity: "contact", ID: "c1"}, "contact not found with ID: c1"},
		{"validation", NewValidationError("Missing required fields"), "validation error: Missing required fields"},
		{"user exists", &ErrUserExists{Email: "a@b.com"}, "User already exists"},
		{"contact exists", &ErrContactExists{WorkspaceID: "w", Email: "a@b.com"}, "Contact with this email already exists"},
		{"conflict", &ErrConflict{Constraint: "users_email_key"}, "unique constraint violation: users_email_key"},
		{"conflict without constraint", &ErrConflict{}, "unique constraint violation"},
		{"invalid credentials", &ErrInvalidCredentials{}, "Invalid credentials"},
		{"unauthorized default", &ErrUnauthorized{}, "Unauthorized"},
		{"forbidden custom", &ErrForbidden{Message: "not a member"}, "not a member"},
		{"transition", &ErrInvalidTransition{From: CampaignStatusSent, To: CampaignStatusDraft}, "cannot change campaign status from sent to draft"},
		{"not configured", &ErrDatabaseNotConfigured{}, "DATABASE_URL is not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("connection refused")

	wrapped := fmt.Errorf("failed to list contacts: %w", &ErrDatabaseUnavailable{Err: cause})
	var unavailable *ErrDatabaseUnavailable
	assert.True(t, errors.As(wrapped, &unavailable))
	assert.ErrorIs(t, wrapped, cause)

	conflict := fmt.Errorf("failed to create user: %w", &ErrConflict{Constraint: "users_email_key", Err: cause})
	var c *ErrConflict
	assert.True(t, errors.As(conflict, &c))
	assert.Equal(t, "users_email_key", c.Constraint)

	var validation ValidationError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", NewValidationError("bad")), &validation))
	assert.Equal(t, "bad", validation.Message)
}
