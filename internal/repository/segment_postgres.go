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

var segmentColumns = []string{"id", "workspace_id", "name", "description", "filters", "created_at", "updated_at"}

// segmentRepository implements domain.SegmentRepository for PostgreSQL
type segmentRepository struct {
	db *sql.DB
}

// NewSegmentRepository creates a new PostgreSQL segment repository
func NewSegmentRepository(db *sql.DB) domain.SegmentRepository {
	return &segmentRepository{db: db}
}

func scanSegment(row rowScanner) (*domain.Segment, error) {
	var s domain.Segment
	var filters []byte
	if err := row.Scan(&s.ID, &s.WorkspaceID, &s.Name, &s.Description, &filters, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Filters = filters
	return &s, nil
}

func (r *segmentRepository) List(ctx context.Context, workspaceID string) ([]*domain.Segment, error) {
	query, args, err := psql.
		Select(segmentColumns...).
		From("segments").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", classifyError(err))
	}
	defer rows.Close()

	segments := make([]*domain.Segment, 0)
	for rows.Next() {
		segment, err := scanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		segments = append(segments, segment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating segments: %w", classifyError(err))
	}
	return segments, nil
}

// Create persists a new segment
func (r *segmentRepository) Create(ctx context.Context, segment *domain.Segment) error {
	if segment.ID == "" {
		segment.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	segment.CreatedAt = now
	segment.UpdatedAt = now

	query, args, err := psql.
		Insert("segments").
		Columns(segmentColumns...).
		Values(segment.ID, segment.WorkspaceID, segment.Name, segment.Description, string(segment.Filters), segment.CreatedAt, segment.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create segment: %w", classifyError(err))
	}
	return nil
}

func (r *segmentRepository) GetByID(ctx context.Context, workspaceID, id string) (*domain.Segment, error) {
	query, args, err := psql.
		Select(segmentColumns...).
		From("segments").
		Where(sq.Eq{"id": id, "workspace_id": workspaceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	segment, err := scanSegment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "segment", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get segment: %w", classifyError(err))
	}
	return segment, nil
}

func (r *segmentRepository) Update(ctx context.Context, segment *domain.Segment) error {
	segment.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update("segments").
		SetMap(map[string]interface{}{
			"name":        segment.Name,
			"description": segment.Description,
			"filters":     string(segment.Filters),
			"updated_at":  segment.UpdatedAt,
		}).
		Where(sq.Eq{"id": segment.ID, "workspace_id": segment.WorkspaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update segment: %w", classifyError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "segment", ID: segment.ID}
	}
	return nil
}

func (r *segmentRepository) Delete(ctx context.Context, workspaceID, id string) error {
	return deleteScoped(ctx, r.db, "segments", "segment", workspaceID, id)
}
