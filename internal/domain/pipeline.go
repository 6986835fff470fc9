package domain

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_pipeline_service.go -package mocks github.com/sagestone/sagestone/internal/domain PipelineService
//go:generate mockgen -destination mocks/mock_pipeline_repository.go -package mocks github.com/sagestone/sagestone/internal/domain PipelineRepository

// Pipeline is an ordered list of sales stages
type Pipeline struct {
	ID          string           `json:"id" db:"id"`
	WorkspaceID string           `json:"workspaceId" db:"workspace_id"`
	Name        string           `json:"name" db:"name"`
	Stages      []*PipelineStage `json:"stages"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time        `json:"updatedAt" db:"updated_at"`
}

// PipelineStage is one column of a pipeline; (PipelineID, Order) is unique
type PipelineStage struct {
	ID         string    `json:"id" db:"id"`
	PipelineID string    `json:"pipelineId" db:"pipeline_id"`
	Name       string    `json:"name" db:"name"`
	Order      int       `json:"order" db:"stage_order"`
	Color      string    `json:"color" db:"color"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type PipelineStageInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CreatePipelineRequest lists stages in display order; a stage's order is its index
type CreatePipelineRequest struct {
	WorkspaceID string               `json:"workspaceId"`
	Name        string               `json:"name"`
	Stages      []PipelineStageInput `json:"stages"`
}

func (r *CreatePipelineRequest) Validate() error {
	if strings.TrimSpace(r.WorkspaceID) == "" {
		return NewValidationError("Workspace ID is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("Pipeline name is required")
	}
	for i, stage := range r.Stages {
		if strings.TrimSpace(stage.Name) == "" {
			return NewValidationError("Stage name is required at position " + strconv.Itoa(i))
		}
	}
	return nil
}

type PipelineService interface {
	ListPipelines(ctx context.Context, workspaceID string) ([]*Pipeline, error)
	CreatePipeline(ctx context.Context, req CreatePipelineRequest) (*Pipeline, error)
	GetPipeline(ctx context.Context, workspaceID, id string) (*Pipeline, error)
	DeletePipeline(ctx context.Context, workspaceID, id string) error
}

type PipelineRepository interface {
	List(ctx context.Context, workspaceID string) ([]*Pipeline, error)
	CreateTx(ctx context.Context, tx *sql.Tx, pipeline *Pipeline) error
	CreateStageTx(ctx context.Context, tx *sql.Tx, stage *PipelineStage) error
	GetByID(ctx context.Context, workspaceID, id string) (*Pipeline, error)
	// ListStages returns stages keyed by pipeline id, ordered by stage order
	ListStages(ctx context.Context, pipelineIDs []string) (map[string][]*PipelineStage, error)
	Delete(ctx context.Context, workspaceID, id string) error
}
