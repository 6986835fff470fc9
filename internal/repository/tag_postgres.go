package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/sagestone/sagestone/internal/domain"
)

type tagRepository struct {
	db *sql.DB
}

// NewTagRepository creates a new PostgreSQL tag repository
func NewTagRepository(db *sql.DB) domain.TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context, workspaceID string) ([]*domain.Tag, error) {
	query, args, err := psql.
		Select("id", "workspace_id", "name", "color", "created_at").
		From("tags").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", classifyError(err))
	}
	defer rows.Close()

	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.WorkspaceID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", classifyError(err))
	}
	return tags, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}
	tag.CreatedAt = time.Now().UTC()

	query, args, err := psql.
		Insert("tags").
		Columns("id", "workspace_id", "name", "color", "created_at").
		Values(tag.ID, tag.WorkspaceID, tag.Name, tag.Color, tag.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create tag: %w", classifyError(err))
	}
	return nil
}

// UpsertByNameTx relies on the (workspace_id, name) unique constraint. The
// no-op update makes RETURNING yield the existing row on conflict.
func (r *tagRepository) UpsertByNameTx(ctx context.Context, tx *sql.Tx, workspaceID, name string) (*domain.Tag, error) {
	query, args, err := psql.
		Insert("tags").
		Columns("id", "workspace_id", "name", "color", "created_at").
		Values(uuid.New().String(), workspaceID, name, "", time.Now().UTC()).
		Suffix("ON CONFLICT (workspace_id, name) DO UPDATE SET name = EXCLUDED.name RETURNING id, workspace_id, name, color, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var t domain.Tag
	err = pick(r.db, tx).QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.WorkspaceID, &t.Name, &t.Color, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert tag: %w", classifyError(err))
	}
	return &t, nil
}

func (r *tagRepository) Delete(ctx context.Context, workspaceID, id string) error {
	return deleteScoped(ctx, r.db, "tags", "tag", workspaceID, id)
}

func (r *tagRepository) ListForContacts(ctx context.Context, contactIDs []string) (map[string][]*domain.Tag, error) {
	result := make(map[string][]*domain.Tag, len(contactIDs))
	if len(contactIDs) == 0 {
		return result, nil
	}

	query, args, err := psql.
		Select("ct.contact_id", "t.id", "t.workspace_id", "t.name", "t.color", "t.created_at").
		From("contact_tags ct").
		Join("tags t ON t.id = ct.tag_id").
		Where(sq.Eq{"ct.contact_id": contactIDs}).
		OrderBy("t.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact tags: %w", classifyError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var contactID string
		var t domain.Tag
		if err := rows.Scan(&contactID, &t.ID, &t.WorkspaceID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact tag: %w", err)
		}
		result[contactID] = append(result[contactID], &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact tags: %w", classifyError(err))
	}
	return result, nil
}
