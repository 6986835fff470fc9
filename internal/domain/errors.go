package domain

import (
	"fmt"
)

// ErrNotFound is returned when an entity does not exist, or exists in
// another workspace
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// ErrUserExists is returned when signing up with a registered email
type ErrUserExists struct {
	Email string
}

func (e *ErrUserExists) Error() string {
	return "User already exists"
}

// ErrContactExists is returned when (workspace, email) is already taken
type ErrContactExists struct {
	WorkspaceID string
	Email       string
}

func (e *ErrContactExists) Error() string {
	return "Contact with this email already exists"
}

// ErrConflict is a unique constraint violation reported by the store
type ErrConflict struct {
	Constraint string
	Err        error
}

func (e *ErrConflict) Error() string {
	if e.Constraint == "" {
		return "unique constraint violation"
	}
	return fmt.Sprintf("unique constraint violation: %s", e.Constraint)
}

func (e *ErrConflict) Unwrap() error {
	return e.Err
}

// ErrInvalidCredentials is the single outcome for unknown email and wrong password
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "Invalid credentials"
}

type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	if e.Message == "" {
		return "Unauthorized"
	}
	return e.Message
}

// ErrForbidden is returned when an authenticated user acts outside their workspaces or role
type ErrForbidden struct {
	Message string
}

func (e *ErrForbidden) Error() string {
	if e.Message == "" {
		return "Forbidden"
	}
	return e.Message
}

// ErrInvalidTransition is returned when a campaign status would move backwards
type ErrInvalidTransition struct {
	From CampaignStatus
	To   CampaignStatus
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot change campaign status from %s to %s", e.From, e.To)
}

// ErrDatabaseNotConfigured is returned when no connection string was provided
type ErrDatabaseNotConfigured struct{}

func (e *ErrDatabaseNotConfigured) Error() string {
	return "DATABASE_URL is not configured"
}

// ErrDatabaseUnavailable wraps store failures caused by connectivity
type ErrDatabaseUnavailable struct {
	Err error
}

func (e *ErrDatabaseUnavailable) Error() string {
	if e.Err == nil {
		return "database unavailable"
	}
	return fmt.Sprintf("database unavailable: %v", e.Err)
}

func (e *ErrDatabaseUnavailable) Unwrap() error {
	return e.Err
}
