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

var workspaceColumns = []string{
	"id", "name", "slug", "website", "industry", "business_goal",
	"default_from_name", "default_from_email", "created_at", "updated_at",
}

func prefixed(prefix string, columns []string) []string {
	result := make([]string, len(columns))
	for i, c := range columns {
		result[i] = prefix + c
	}
	return result
}

type workspaceRepository struct {
	db *sql.DB
}

// NewWorkspaceRepository creates a new PostgreSQL workspace repository
func NewWorkspaceRepository(db *sql.DB) domain.WorkspaceRepository {
	return &workspaceRepository{db: db}
}

func workspaceScanTargets(w *domain.Workspace) []interface{} {
	return []interface{}{
		&w.ID, &w.Name, &w.Slug, &w.Website, &w.Industry, &w.BusinessGoal,
		&w.DefaultFromName, &w.DefaultFromEmail, &w.CreatedAt, &w.UpdatedAt,
	}
}

func (r *workspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) error {
	return r.CreateTx(ctx, nil, workspace)
}

func (r *workspaceRepository) CreateTx(ctx context.Context, tx *sql.Tx, workspace *domain.Workspace) error {
	if workspace.ID == "" {
		workspace.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	workspace.CreatedAt = now
	workspace.UpdatedAt = now

	query, args, err := psql.
		Insert("workspaces").
		Columns(workspaceColumns...).
		Values(
			workspace.ID, workspace.Name, workspace.Slug, workspace.Website, workspace.Industry,
			workspace.BusinessGoal, workspace.DefaultFromName, workspace.DefaultFromEmail,
			workspace.CreatedAt, workspace.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := pick(r.db, tx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create workspace: %w", classifyError(err))
	}
	return nil
}

func (r *workspaceRepository) GetByID(ctx context.Context, id string) (*domain.Workspace, error) {
	query, args, err := psql.Select(workspaceColumns...).From("workspaces").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var workspace domain.Workspace
	err = r.db.QueryRowContext(ctx, query, args...).Scan(workspaceScanTargets(&workspace)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "workspace", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", classifyError(err))
	}
	return &workspace, nil
}

func (r *workspaceRepository) Update(ctx context.Context, workspace *domain.Workspace) error {
	workspace.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update("workspaces").
		SetMap(map[string]interface{}{
			"name":               workspace.Name,
			"website":            workspace.Website,
			"industry":           workspace.Industry,
			"business_goal":      workspace.BusinessGoal,
			"default_from_name":  workspace.DefaultFromName,
			"default_from_email": workspace.DefaultFromEmail,
			"updated_at":         workspace.UpdatedAt,
		}).
		Where(sq.Eq{"id": workspace.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update workspace: %w", classifyError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "workspace", ID: workspace.ID}
	}
	return nil
}

func (r *workspaceRepository) AddMember(ctx context.Context, member *domain.WorkspaceMember) error {
	return r.AddMemberTx(ctx, nil, member)
}

func (r *workspaceRepository) AddMemberTx(ctx context.Context, tx *sql.Tx, member *domain.WorkspaceMember) error {
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now().UTC()
	}

	query, args, err := psql.
		Insert("workspace_members").
		Columns("user_id", "workspace_id", "role", "joined_at").
		Values(member.UserID, member.WorkspaceID, member.Role, member.JoinedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := pick(r.db, tx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to add workspace member: %w", classifyError(err))
	}
	return nil
}

func (r *workspaceRepository) GetMember(ctx context.Context, workspaceID, userID string) (*domain.WorkspaceMember, error) {
	query, args, err := psql.
		Select("user_id", "workspace_id", "role", "joined_at").
		From("workspace_members").
		Where(sq.Eq{"workspace_id": workspaceID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var member domain.WorkspaceMember
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&member.UserID, &member.WorkspaceID, &member.Role, &member.JoinedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "workspace member", ID: userID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace member: %w", classifyError(err))
	}
	return &member, nil
}

func (r *workspaceRepository) ListMembers(ctx context.Context, workspaceID string) ([]*domain.WorkspaceMemberWithUser, error) {
	query, args, err := psql.
		Select("m.user_id", "m.workspace_id", "m.role", "m.joined_at", "u.email", "u.first_name", "u.last_name").
		From("workspace_members m").
		Join("users u ON u.id = m.user_id").
		Where(sq.Eq{"m.workspace_id": workspaceID}).
		OrderBy("m.joined_at ASC", "m.user_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace members: %w", classifyError(err))
	}
	defer rows.Close()

	members := make([]*domain.WorkspaceMemberWithUser, 0)
	for rows.Next() {
		var m domain.WorkspaceMemberWithUser
		if err := rows.Scan(&m.UserID, &m.WorkspaceID, &m.Role, &m.JoinedAt, &m.Email, &m.FirstName, &m.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan workspace member: %w", err)
		}
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workspace members: %w", classifyError(err))
	}
	return members, nil
}

// userWorkspacesQuery orders memberships by join time with the workspace id
// as tie-break, so the first row is the user's primary workspace
func userWorkspacesQuery(userID string) sq.SelectBuilder {
	columns := append(prefixed("w.", workspaceColumns), "m.role", "m.joined_at")
	return psql.
		Select(columns...).
		From("workspace_members m").
		Join("workspaces w ON w.id = m.workspace_id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("m.joined_at ASC", "m.workspace_id ASC")
}

func (r *workspaceRepository) ListUserWorkspaces(ctx context.Context, userID string) ([]*domain.UserWorkspace, error) {
	query, args, err := userWorkspacesQuery(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list user workspaces: %w", classifyError(err))
	}
	defer rows.Close()

	workspaces := make([]*domain.UserWorkspace, 0)
	for rows.Next() {
		var uw domain.UserWorkspace
		targets := append(workspaceScanTargets(&uw.Workspace), &uw.Role, &uw.JoinedAt)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, &uw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user workspaces: %w", classifyError(err))
	}
	return workspaces, nil
}

func (r *workspaceRepository) GetPrimaryWorkspace(ctx context.Context, userID string) (*domain.Workspace, error) {
	query, args, err := userWorkspacesQuery(userID).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var uw domain.UserWorkspace
	targets := append(workspaceScanTargets(&uw.Workspace), &uw.Role, &uw.JoinedAt)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(targets...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get primary workspace: %w", classifyError(err))
	}
	return &uw.Workspace, nil
}
