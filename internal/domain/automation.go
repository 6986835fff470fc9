package domain

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

//go:generate mockgen -destination mocks/mock_automation_service.go -package mocks github.com/sagestone/sagestone/internal/domain AutomationService
//go:generate mockgen -destination mocks/mock_automation_repository.go -package mocks github.com/sagestone/sagestone/internal/domain AutomationRepository

// Automation is a persisted trigger plus ordered steps. Nothing executes it.
type Automation struct {
	ID          string            `json:"id" db:"id"`
	WorkspaceID string            `json:"workspaceId" db:"workspace_id"`
	Name        string            `json:"name" db:"name"`
	Description string            `json:"description" db:"description"`
	Trigger     json.RawMessage   `json:"trigger" db:"trigger"`
	IsActive    bool              `json:"isActive" db:"is_active"`
	Steps       []*AutomationStep `json:"steps"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`
}

// TriggerType returns the trigger's "type" member, or "" when absent
func (a *Automation) TriggerType() string {
	return gjson.GetBytes(a.Trigger, "type").String()
}

// AutomationStep is one step; (AutomationID, StepOrder) is unique
type AutomationStep struct {
	ID           string          `json:"id" db:"id"`
	AutomationID string          `json:"automationId" db:"automation_id"`
	StepOrder    int             `json:"stepOrder" db:"step_order"`
	Type         string          `json:"type" db:"type"`
	Config       json.RawMessage `json:"config" db:"config"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}

type AutomationStepInput struct {
	Type   string          `json:"type"`
	Config json.RawMessage `json:"config"`
}

// CreateAutomationRequest lists steps in order; step order starts at 1
type CreateAutomationRequest struct {
	WorkspaceID string                `json:"workspaceId"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Trigger     json.RawMessage       `json:"trigger"`
	IsActive    bool                  `json:"isActive"`
	Steps       []AutomationStepInput `json:"steps"`
}

func (r *CreateAutomationRequest) Validate() error {
	if strings.TrimSpace(r.WorkspaceID) == "" {
		return NewValidationError("Workspace ID is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("Automation name is required")
	}
	if len(r.Trigger) == 0 {
		return NewValidationError("Automation trigger is required")
	}
	if err := ValidateJSONObject("trigger", r.Trigger); err != nil {
		return err
	}
	if !gjson.GetBytes(r.Trigger, "type").Exists() {
		return NewValidationError("trigger type is required")
	}
	for i, step := range r.Steps {
		if strings.TrimSpace(step.Type) == "" {
			return NewValidationError("Step type is required at position " + strconv.Itoa(i))
		}
		if len(step.Config) > 0 {
			if err := ValidateJSONObject("step config", step.Config); err != nil {
				return err
			}
		}
	}
	return nil
}

type AutomationService interface {
	ListAutomations(ctx context.Context, workspaceID string) ([]*Automation, error)
	CreateAutomation(ctx context.Context, req CreateAutomationRequest) (*Automation, error)
	GetAutomation(ctx context.Context, workspaceID, id string) (*Automation, error)
	DeleteAutomation(ctx context.Context, workspaceID, id string) error
	SetAutomationActive(ctx context.Context, workspaceID, id string, active bool) (*Automation, error)
}

type AutomationRepository interface {
	List(ctx context.Context, workspaceID string) ([]*Automation, error)
	CreateTx(ctx context.Context, tx *sql.Tx, automation *Automation) error
	CreateStepTx(ctx context.Context, tx *sql.Tx, step *AutomationStep) error
	GetByID(ctx context.Context, workspaceID, id string) (*Automation, error)
	// ListSteps returns steps keyed by automation id, ordered by step order
	ListSteps(ctx context.Context, automationIDs []string) (map[string][]*AutomationStep, error)
	SetActive(ctx context.Context, workspaceID, id string, active bool) error
	Delete(ctx context.Context, workspaceID, id string) error
}
