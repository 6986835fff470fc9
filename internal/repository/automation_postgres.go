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

var automationColumns = []string{"id", "workspace_id", "name", "description", "trigger", "is_active", "created_at", "updated_at"}

// automationRepository implements domain.AutomationRepository
type automationRepository struct {
	db *sql.DB
}

// NewAutomationRepository creates a new PostgreSQL automation repository
func NewAutomationRepository(db *sql.DB) domain.AutomationRepository {
	return &automationRepository{db: db}
}

func scanAutomation(row rowScanner) (*domain.Automation, error) {
	var a domain.Automation
	var trigger []byte
	if err := row.Scan(&a.ID, &a.WorkspaceID, &a.Name, &a.Description, &trigger, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Trigger = trigger
	a.Steps = []*domain.AutomationStep{}
	return &a, nil
}

func (r *automationRepository) List(ctx context.Context, workspaceID string) ([]*domain.Automation, error) {
	query, args, err := psql.
		Select(automationColumns...).
		From("automations").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list automations: %w", classifyError(err))
	}
	defer rows.Close()

	automations := make([]*domain.Automation, 0)
	for rows.Next() {
		automation, err := scanAutomation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan automation: %w", err)
		}
		automations = append(automations, automation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating automations: %w", classifyError(err))
	}
	return automations, nil
}

// CreateTx adds a new automation within a transaction
func (r *automationRepository) CreateTx(ctx context.Context, tx *sql.Tx, automation *domain.Automation) error {
	if automation.ID == "" {
		automation.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	automation.CreatedAt = now
	automation.UpdatedAt = now

	query, args, err := psql.
		Insert("automations").
		Columns(automationColumns...).
		Values(
			automation.ID, automation.WorkspaceID, automation.Name, automation.Description,
			jsonOrEmpty(automation.Trigger), automation.IsActive, automation.CreatedAt, automation.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := pick(r.db, tx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create automation: %w", classifyError(err))
	}
	return nil
}

func (r *automationRepository) CreateStepTx(ctx context.Context, tx *sql.Tx, step *domain.AutomationStep) error {
	if step.ID == "" {
		step.ID = uuid.New().String()
	}
	step.CreatedAt = time.Now().UTC()

	query, args, err := psql.
		Insert("automation_steps").
		Columns("id", "automation_id", "step_order", "type", "config", "created_at").
		Values(step.ID, step.AutomationID, step.StepOrder, step.Type, jsonOrEmpty(step.Config), step.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := pick(r.db, tx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create automation step: %w", classifyError(err))
	}
	return nil
}

// GetByID retrieves an automation by ID
func (r *automationRepository) GetByID(ctx context.Context, workspaceID, id string) (*domain.Automation, error) {
	query, args, err := psql.
		Select(automationColumns...).
		From("automations").
		Where(sq.Eq{"id": id, "workspace_id": workspaceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	automation, err := scanAutomation(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "automation", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get automation: %w", classifyError(err))
	}
	return automation, nil
}

func (r *automationRepository) ListSteps(ctx context.Context, automationIDs []string) (map[string][]*domain.AutomationStep, error) {
	result := make(map[string][]*domain.AutomationStep, len(automationIDs))
	if len(automationIDs) == 0 {
		return result, nil
	}

	query, args, err := psql.
		Select("id", "automation_id", "step_order", "type", "config", "created_at").
		From("automation_steps").
		Where(sq.Eq{"automation_id": automationIDs}).
		OrderBy("automation_id", "step_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list automation steps: %w", classifyError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.AutomationStep
		var config []byte
		if err := rows.Scan(&s.ID, &s.AutomationID, &s.StepOrder, &s.Type, &config, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan automation step: %w", err)
		}
		s.Config = config
		result[s.AutomationID] = append(result[s.AutomationID], &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating automation steps: %w", classifyError(err))
	}
	return result, nil
}

func (r *automationRepository) SetActive(ctx context.Context, workspaceID, id string, active bool) error {
	query, args, err := psql.
		Update("automations").
		Set("is_active", active).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "workspace_id": workspaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update automation: %w", classifyError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "automation", ID: id}
	}
	return nil
}

func (r *automationRepository) Delete(ctx context.Context, workspaceID, id string) error {
	return deleteScoped(ctx, r.db, "automations", "automation", workspaceID, id)
}
