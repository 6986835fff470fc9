package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/sagestone/sagestone/internal/domain"
)

type pipelineRepository struct {
	db *sql.DB
}

// NewPipelineRepository creates a new PostgreSQL pipeline repository
func NewPipelineRepository(db *sql.DB) domain.PipelineRepository {
	return &pipelineRepository{db: db}
}

func (r *pipelineRepository) List(ctx context.Context, workspaceID string) ([]*domain.Pipeline, error) {
	query, args, err := psql.
		Select("id", "workspace_id", "name", "created_at", "updated_at").
		From("pipelines").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipelines: %w", classifyError(err))
	}
	defer rows.Close()

	pipelines := make([]*domain.Pipeline, 0)
	for rows.Next() {
		var p domain.Pipeline
		if err := rows.Scan(&p.ID, &p.WorkspaceID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pipeline: %w", err)
		}
		p.Stages = []*domain.PipelineStage{}
		pipelines = append(pipelines, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pipelines: %w", classifyError(err))
	}
	return pipelines, nil
}

func (r *pipelineRepository) CreateTx(ctx context.Context, tx *sql.Tx, pipeline *domain.Pipeline) error {
	if pipeline.ID == "" {
		pipeline.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	pipeline.CreatedAt = now
	pipeline.UpdatedAt = now

	query, args, err := psql.
		Insert("pipelines").
		Columns("id", "workspace_id", "name", "created_at", "updated_at").
		Values(pipeline.ID, pipeline.WorkspaceID, pipeline.Name, pipeline.CreatedAt, pipeline.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := pick(r.db, tx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create pipeline: %w", classifyError(err))
	}
	return nil
}

func (r *pipelineRepository) CreateStageTx(ctx context.Context, tx *sql.Tx, stage *domain.PipelineStage) error {
	if stage.ID == "" {
		stage.ID = uuid.New().String()
	}
	stage.CreatedAt = time.Now().UTC()

	query, args, err := psql.
		Insert("pipeline_stages").
		Columns("id", "pipeline_id", "name", "stage_order", "color", "created_at").
		Values(stage.ID, stage.PipelineID, stage.Name, stage.Order, stage.Color, stage.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := pick(r.db, tx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create pipeline stage: %w", classifyError(err))
	}
	return nil
}

func (r *pipelineRepository) GetByID(ctx context.Context, workspaceID, id string) (*domain.Pipeline, error) {
	query, args, err := psql.
		Select("id", "workspace_id", "name", "created_at", "updated_at").
		From("pipelines").
		Where(sq.Eq{"id": id, "workspace_id": workspaceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var p domain.Pipeline
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.WorkspaceID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "pipeline", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline: %w", classifyError(err))
	}
	p.Stages = []*domain.PipelineStage{}
	return &p, nil
}

func (r *pipelineRepository) ListStages(ctx context.Context, pipelineIDs []string) (map[string][]*domain.PipelineStage, error) {
	result := make(map[string][]*domain.PipelineStage, len(pipelineIDs))
	if len(pipelineIDs) == 0 {
		return result, nil
	}

	query, args, err := psql.
		Select("id", "pipeline_id", "name", "stage_order", "color", "created_at").
		From("pipeline_stages").
		Where(sq.Eq{"pipeline_id": pipelineIDs}).
		OrderBy("pipeline_id", "stage_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipeline stages: %w", classifyError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.PipelineStage
		if err := rows.Scan(&s.ID, &s.PipelineID, &s.Name, &s.Order, &s.Color, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pipeline stage: %w", err)
		}
		result[s.PipelineID] = append(result[s.PipelineID], &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pipeline stages: %w", classifyError(err))
	}
	return result, nil
}

func (r *pipelineRepository) Delete(ctx context.Context, workspaceID, id string) error {
	return deleteScoped(ctx, r.db, "pipelines", "pipeline", workspaceID, id)
}
