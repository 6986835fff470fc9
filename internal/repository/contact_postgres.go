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

var contactColumns = []string{
	"id", "workspace_id", "email", "first_name", "last_name", "phone", "company", "status", "created_at", "updated_at",
}

type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new PostgreSQL contact repository
func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{db: db}
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(
		&c.ID, &c.WorkspaceID, &c.Email, &c.FirstName, &c.LastName,
		&c.Phone, &c.Company, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Tags = []*domain.Tag{}
	return &c, nil
}

// contactFilter scopes to the workspace and applies the optional search
func contactFilter(params domain.ListContactsParams) sq.Sqlizer {
	where := sq.And{sq.Eq{"workspace_id": params.WorkspaceID}}
	if params.Search != "" {
		pattern := containsPattern(params.Search)
		where = append(where, sq.Or{
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
			sq.ILike{"email": pattern},
		})
	}
	return where
}

func (r *contactRepository) List(ctx context.Context, params domain.ListContactsParams) ([]*domain.Contact, error) {
	query, args, err := psql.
		Select(contactColumns...).
		From("contacts").
		Where(contactFilter(params)).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(params.Limit)).
		Offset(uint64(domain.Offset(params.Page, params.Limit))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", classifyError(err))
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", classifyError(err))
	}
	return contacts, nil
}

func (r *contactRepository) Count(ctx context.Context, params domain.ListContactsParams) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From("contacts").Where(contactFilter(params)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", classifyError(err))
	}
	return count, nil
}

func (r *contactRepository) GetByID(ctx context.Context, workspaceID, id string) (*domain.Contact, error) {
	query, args, err := psql.
		Select(contactColumns...).
		From("contacts").
		Where(sq.Eq{"id": id, "workspace_id": workspaceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "contact", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", classifyError(err))
	}
	return contact, nil
}

// GetByEmailTx returns nil, nil when no contact matches
func (r *contactRepository) GetByEmailTx(ctx context.Context, tx *sql.Tx, workspaceID, email string) (*domain.Contact, error) {
	query, args, err := psql.
		Select(contactColumns...).
		From("contacts").
		Where(sq.Eq{"workspace_id": workspaceID, "email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	contact, err := scanContact(pick(r.db, tx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact by email: %w", classifyError(err))
	}
	return contact, nil
}

func (r *contactRepository) CreateTx(ctx context.Context, tx *sql.Tx, contact *domain.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.Status == "" {
		contact.Status = domain.ContactStatusActive
	}
	now := time.Now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	query, args, err := psql.
		Insert("contacts").
		Columns(contactColumns...).
		Values(
			contact.ID, contact.WorkspaceID, contact.Email, contact.FirstName, contact.LastName,
			contact.Phone, contact.Company, contact.Status, contact.CreatedAt, contact.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := pick(r.db, tx).ExecContext(ctx, query, args...); err != nil {
		classified := classifyError(err)
		if isUniqueViolation(classified, "") {
			return &domain.ErrContactExists{WorkspaceID: contact.WorkspaceID, Email: contact.Email}
		}
		return fmt.Errorf("failed to create contact: %w", classified)
	}
	return nil
}

func (r *contactRepository) UpdateTx(ctx context.Context, tx *sql.Tx, contact *domain.Contact) error {
	contact.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update("contacts").
		SetMap(map[string]interface{}{
			"first_name": contact.FirstName,
			"last_name":  contact.LastName,
			"phone":      contact.Phone,
			"company":    contact.Company,
			"status":     contact.Status,
			"updated_at": contact.UpdatedAt,
		}).
		Where(sq.Eq{"id": contact.ID, "workspace_id": contact.WorkspaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := pick(r.db, tx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", classifyError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "contact", ID: contact.ID}
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, workspaceID, id string) error {
	return deleteScoped(ctx, r.db, "contacts", "contact", workspaceID, id)
}

func (r *contactRepository) SetTagsTx(ctx context.Context, tx *sql.Tx, contactID string, tagIDs []string, replace bool) error {
	conn := pick(r.db, tx)

	if replace {
		query, args, err := psql.Delete("contact_tags").Where(sq.Eq{"contact_id": contactID}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}
		if _, err := conn.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to clear contact tags: %w", classifyError(err))
		}
	}

	if len(tagIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	insert := psql.Insert("contact_tags").Columns("contact_id", "tag_id", "created_at")
	for _, tagID := range tagIDs {
		insert = insert.Values(contactID, tagID, now)
	}
	query, args, err := insert.Suffix("ON CONFLICT (contact_id, tag_id) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to link contact tags: %w", classifyError(err))
	}
	return nil
}
