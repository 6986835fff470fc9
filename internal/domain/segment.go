package domain

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

//go:generate mockgen -destination mocks/mock_segment_service.go -package mocks github.com/sagestone/sagestone/internal/domain SegmentService
//go:generate mockgen -destination mocks/mock_segment_repository.go -package mocks github.com/sagestone/sagestone/internal/domain SegmentRepository

// Segment is a saved filter expression over contacts. Filters are stored as
// opaque JSON and never evaluated.
type Segment struct {
	ID          string          `json:"id" db:"id"`
	WorkspaceID string          `json:"workspaceId" db:"workspace_id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Filters     json.RawMessage `json:"filters" db:"filters"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

func (s *Segment) Validate() error {
	if s.WorkspaceID == "" {
		return NewValidationError("Workspace ID is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("Segment name is required")
	}
	if len(s.Filters) == 0 {
		return NewValidationError("Segment filters are required")
	}
	if err := ValidateJSONObject("filters", s.Filters); err != nil {
		return err
	}
	return nil
}

// ValidateJSONObject requires raw to be a JSON object
func ValidateJSONObject(field string, raw json.RawMessage) error {
	if !gjson.ValidBytes(raw) {
		return NewValidationError(field + " must be valid JSON")
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return NewValidationError(field + " must be a JSON object")
	}
	return nil
}

type SegmentRequest struct {
	WorkspaceID string          `json:"workspaceId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Filters     json.RawMessage `json:"filters"`
}

type SegmentService interface {
	ListSegments(ctx context.Context, workspaceID string) ([]*Segment, error)
	CreateSegment(ctx context.Context, req SegmentRequest) (*Segment, error)
	GetSegment(ctx context.Context, workspaceID, id string) (*Segment, error)
	UpdateSegment(ctx context.Context, id string, req SegmentRequest) (*Segment, error)
	DeleteSegment(ctx context.Context, workspaceID, id string) error
}

type SegmentRepository interface {
	List(ctx context.Context, workspaceID string) ([]*Segment, error)
	Create(ctx context.Context, segment *Segment) error
	GetByID(ctx context.Context, workspaceID, id string) (*Segment, error)
	Update(ctx context.Context, segment *Segment) error
	Delete(ctx context.Context, workspaceID, id string) error
}
