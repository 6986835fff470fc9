package domain

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_tag_repository.go -package mocks github.com/sagestone/sagestone/internal/domain TagRepository
//go:generate mockgen -destination mocks/mock_tag_service.go -package mocks github.com/sagestone/sagestone/internal/domain TagService

// Tag labels contacts; (WorkspaceID, Name) is unique
type Tag struct {
	ID          string    `json:"id" db:"id"`
	WorkspaceID string    `json:"workspaceId" db:"workspace_id"`
	Name        string    `json:"name" db:"name"`
	Color       string    `json:"color" db:"color"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

func (t *Tag) Validate() error {
	if t.WorkspaceID == "" {
		return NewValidationError("Workspace ID is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return NewValidationError("Tag name is required")
	}
	if len(t.Name) > 100 {
		return NewValidationError("Tag name must be at most 100 characters")
	}
	if t.Color != "" && !govalidator.IsHexcolor(t.Color) {
		return NewValidationError("Tag color must be a hex color")
	}
	return nil
}

type CreateTagRequest struct {
	WorkspaceID string `json:"workspaceId"`
	Name        string `json:"name"`
	Color       string `json:"color"`
}

type TagService interface {
	ListTags(ctx context.Context, workspaceID string) ([]*Tag, error)
	CreateTag(ctx context.Context, req CreateTagRequest) (*Tag, error)
	DeleteTag(ctx context.Context, workspaceID, id string) error
}

type TagRepository interface {
	List(ctx context.Context, workspaceID string) ([]*Tag, error)
	Create(ctx context.Context, tag *Tag) error
	// UpsertByNameTx returns the existing tag when (workspace, name) is taken
	UpsertByNameTx(ctx context.Context, tx *sql.Tx, workspaceID, name string) (*Tag, error)
	Delete(ctx context.Context, workspaceID, id string) error
	// ListForContacts returns tags keyed by contact id
	ListForContacts(ctx context.Context, contactIDs []string) (map[string][]*Tag, error)
}
