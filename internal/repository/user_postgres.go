package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.opencensus.io/trace"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/tracing"
)

var userColumns = []string{"id", "email", "password_hash", "first_name", "last_name", "role", "created_at", "updated_at"}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{db: db}
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return r.CreateUserTx(ctx, nil, user)
}

// CreateUserTx inserts the user. A duplicate email surfaces as ErrUserExists.
func (r *userRepository) CreateUserTx(ctx context.Context, tx *sql.Tx, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = domain.UserRoleUser
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	query, args, err := psql.
		Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := pick(r.db, tx).ExecContext(ctx, query, args...); err != nil {
		classified := classifyError(err)
		if isUniqueViolation(classified, "") {
			return &domain.ErrUserExists{Email: user.Email}
		}
		return fmt.Errorf("failed to create user: %w", classified)
	}
	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "UserRepository", "GetUserByID")
	defer span.End()

	span.AddAttributes(trace.StringAttribute("user.id", id))

	query, args, err := psql.Select(userColumns...).From("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(trace.Status{Code: trace.StatusCodeNotFound, Message: "user not found"})
		return nil, &domain.ErrNotFound{Entity: "user", ID: id}
	}
	if err != nil {
		span.SetStatus(trace.Status{Code: trace.StatusCodeUnknown, Message: err.Error()})
		return nil, fmt.Errorf("failed to get user: %w", classifyError(err))
	}
	return user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query, args, err := psql.
		Select(userColumns...).
		From("users").
		Where(sq.Expr("LOWER(email) = LOWER(?)", email)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "user", ID: email}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", classifyError(err))
	}
	return user, nil
}

// adminUserQuery joins each user with their earliest membership
func adminUserQuery(params domain.ListUsersParams) sq.SelectBuilder {
	builder := psql.
		Select(
			"u.id", "u.email", "u.password_hash", "u.first_name", "u.last_name", "u.role", "u.created_at", "u.updated_at",
			"pw.workspace_id", "pw.name",
		).
		From("users u").
		LeftJoin(`LATERAL (
			SELECT w.id AS workspace_id, w.name
			FROM workspace_members m
			JOIN workspaces w ON w.id = m.workspace_id
			WHERE m.user_id = u.id
			ORDER BY m.joined_at ASC, m.workspace_id ASC
			LIMIT 1
		) pw ON TRUE`)
	return applyUserSearch(builder, params.Search, "u.")
}

func applyUserSearch(builder sq.SelectBuilder, search, prefix string) sq.SelectBuilder {
	if search == "" {
		return builder
	}
	pattern := containsPattern(search)
	return builder.Where(sq.Or{
		sq.ILike{prefix + "email": pattern},
		sq.ILike{prefix + "first_name": pattern},
		sq.ILike{prefix + "last_name": pattern},
	})
}

func (r *userRepository) ListUsers(ctx context.Context, params domain.ListUsersParams) ([]*domain.AdminUser, error) {
	query, args, err := adminUserQuery(params).
		OrderBy("u.created_at DESC").
		Limit(uint64(params.Limit)).
		Offset(uint64(domain.Offset(params.Page, params.Limit))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", classifyError(err))
	}
	defer rows.Close()

	users := make([]*domain.AdminUser, 0)
	for rows.Next() {
		var u domain.AdminUser
		var workspaceID, workspaceName sql.NullString
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt, &u.UpdatedAt,
			&workspaceID, &workspaceName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if workspaceID.Valid {
			u.WorkspaceID = &workspaceID.String
			u.WorkspaceName = &workspaceName.String
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", classifyError(err))
	}
	return users, nil
}

func (r *userRepository) CountUsers(ctx context.Context, params domain.ListUsersParams) (int, error) {
	query, args, err := applyUserSearch(psql.Select("COUNT(*)").From("users"), params.Search, "").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", classifyError(err))
	}
	return count, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	query, args, err := psql.Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", classifyError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "user", ID: id}
	}
	return nil
}
