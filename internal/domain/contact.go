package domain

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_contact_repository.go -package mocks github.com/sagestone/sagestone/internal/domain ContactRepository
//go:generate mockgen -destination mocks/mock_contact_service.go -package mocks github.com/sagestone/sagestone/internal/domain ContactService

type ContactStatus string

const (
	ContactStatusActive       ContactStatus = "active"
	ContactStatusUnsubscribed ContactStatus = "unsubscribed"
	ContactStatusBounced      ContactStatus = "bounced"
)

func (s ContactStatus) IsValid() bool {
	switch s {
	case ContactStatusActive, ContactStatusUnsubscribed, ContactStatusBounced:
		return true
	}
	return false
}

// Contact is a person tracked inside a workspace; (WorkspaceID, Email) is unique
type Contact struct {
	ID          string        `json:"id" db:"id"`
	WorkspaceID string        `json:"workspaceId" db:"workspace_id"`
	Email       string        `json:"email" db:"email"`
	FirstName   string        `json:"firstName" db:"first_name"`
	LastName    string        `json:"lastName" db:"last_name"`
	Phone       string        `json:"phone" db:"phone"`
	Company     string        `json:"company" db:"company"`
	Status      ContactStatus `json:"status" db:"status"`
	Tags        []*Tag        `json:"tags"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}

// Validate ensures that the contact has all required fields and valid values
func (c *Contact) Validate() error {
	if c.WorkspaceID == "" {
		return NewValidationError("Workspace ID is required")
	}
	if c.Email == "" {
		return NewValidationError("Email is required")
	}
	if !govalidator.IsEmail(c.Email) {
		return NewValidationError("Invalid email address")
	}
	if !c.Status.IsValid() {
		return NewValidationError("Invalid contact status")
	}
	return nil
}

// CreateContactRequest is the body of POST /api/contacts
type CreateContactRequest struct {
	WorkspaceID string   `json:"workspaceId"`
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Phone       string   `json:"phone"`
	Company     string   `json:"company"`
	Tags        []string `json:"tags"`
}

// Validate requires the workspace and email
func (r *CreateContactRequest) Validate() error {
	if strings.TrimSpace(r.WorkspaceID) == "" || strings.TrimSpace(r.Email) == "" {
		return NewValidationError("Workspace ID and email are required")
	}
	if !govalidator.IsEmail(strings.TrimSpace(r.Email)) {
		return NewValidationError("Invalid email address")
	}
	return nil
}

// UpdateContactRequest replaces the editable fields. A nil Tags leaves the
// tag set unchanged; an empty slice clears it.
type UpdateContactRequest struct {
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Phone     string        `json:"phone"`
	Company   string        `json:"company"`
	Status    ContactStatus `json:"status"`
	Tags      *[]string     `json:"tags"`
}

func (r *UpdateContactRequest) Validate() error {
	if r.Status != "" && !r.Status.IsValid() {
		return NewValidationError("Invalid contact status")
	}
	return nil
}

// NormalizeTagNames trims names, drops empty ones and removes duplicates,
// keeping first-seen order
func NormalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}

// ListContactsParams filters a contact listing. Search matches first name,
// last name or email case-insensitively.
type ListContactsParams struct {
	WorkspaceID string
	Search      string
	Page        int
	Limit       int
}

type ListContactsResponse struct {
	Contacts   []*Contact `json:"contacts"`
	Pagination Pagination `json:"pagination"`
}

type ContactService interface {
	ListContacts(ctx context.Context, params ListContactsParams) (*ListContactsResponse, error)
	CreateContact(ctx context.Context, req CreateContactRequest) (*Contact, error)
	GetContact(ctx context.Context, workspaceID, id string) (*Contact, error)
	UpdateContact(ctx context.Context, workspaceID, id string, req UpdateContactRequest) (*Contact, error)
	DeleteContact(ctx context.Context, workspaceID, id string) error
}

type ContactRepository interface {
	List(ctx context.Context, params ListContactsParams) ([]*Contact, error)
	Count(ctx context.Context, params ListContactsParams) (int, error)
	GetByID(ctx context.Context, workspaceID, id string) (*Contact, error)
	GetByEmailTx(ctx context.Context, tx *sql.Tx, workspaceID, email string) (*Contact, error)
	CreateTx(ctx context.Context, tx *sql.Tx, contact *Contact) error
	UpdateTx(ctx context.Context, tx *sql.Tx, contact *Contact) error
	Delete(ctx context.Context, workspaceID, id string) error
	// SetTagsTx links the tags by id, replacing any existing links when replace is true
	SetTagsTx(ctx context.Context, tx *sql.Tx, contactID string, tagIDs []string, replace bool) error
}
