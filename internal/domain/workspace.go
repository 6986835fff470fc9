package domain

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_workspace_repository.go -package mocks github.com/sagestone/sagestone/internal/domain WorkspaceRepository
//go:generate mockgen -destination mocks/mock_workspace_service.go -package mocks github.com/sagestone/sagestone/internal/domain WorkspaceServiceInterface

// Workspace is a tenant. Every contact, tag, segment, campaign, pipeline and
// automation belongs to exactly one workspace.
type Workspace struct {
	ID               string    `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Slug             string    `json:"slug" db:"slug"`
	Website          string    `json:"website" db:"website"`
	Industry         string    `json:"industry" db:"industry"`
	BusinessGoal     string    `json:"businessGoal" db:"business_goal"`
	DefaultFromName  string    `json:"defaultFromName" db:"default_from_name"`
	DefaultFromEmail string    `json:"defaultFromEmail" db:"default_from_email"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// Validate performs validation on the workspace fields
func (w *Workspace) Validate() error {
	if w.ID == "" {
		return NewValidationError("workspace id is required")
	}
	if strings.TrimSpace(w.Name) == "" {
		return NewValidationError("workspace name is required")
	}
	if len(w.Name) > 255 {
		return NewValidationError("workspace name must be at most 255 characters")
	}
	if w.Slug == "" {
		return NewValidationError("workspace slug is required")
	}
	if w.Website != "" && !govalidator.IsURL(w.Website) {
		return NewValidationError("invalid website URL")
	}
	if w.DefaultFromEmail != "" && !govalidator.IsEmail(w.DefaultFromEmail) {
		return NewValidationError("invalid default from email")
	}
	return nil
}

func (w *Workspace) Ref() *WorkspaceRef {
	return &WorkspaceRef{ID: w.ID, Name: w.Name, Slug: w.Slug}
}

// MemberRole is a user's role inside one workspace
type MemberRole string

const (
	MemberRoleOwner MemberRole = "owner"
	MemberRoleAdmin MemberRole = "admin"
	MemberRoleUser  MemberRole = "user"
)

func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleOwner, MemberRoleAdmin, MemberRoleUser:
		return true
	}
	return false
}

// CanManage reports whether the role may change workspace settings
func (r MemberRole) CanManage() bool {
	return r == MemberRoleOwner || r == MemberRoleAdmin
}

// WorkspaceMember joins a user into a workspace; (UserID, WorkspaceID) is unique
type WorkspaceMember struct {
	UserID      string     `json:"userId" db:"user_id"`
	WorkspaceID string     `json:"workspaceId" db:"workspace_id"`
	Role        MemberRole `json:"role" db:"role"`
	JoinedAt    time.Time  `json:"joinedAt" db:"joined_at"`
}

// WorkspaceMemberWithUser is a membership row joined with the user's profile
type WorkspaceMemberWithUser struct {
	WorkspaceMember
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UserWorkspace is a workspace seen through one user's membership
type UserWorkspace struct {
	Workspace
	Role     MemberRole `json:"role"`
	JoinedAt time.Time  `json:"joinedAt"`
}

// UpdateWorkspaceRequest carries the editable workspace settings
type UpdateWorkspaceRequest struct {
	Name             string `json:"name"`
	Website          string `json:"website"`
	Industry         string `json:"industry"`
	BusinessGoal     string `json:"businessGoal"`
	DefaultFromName  string `json:"defaultFromName"`
	DefaultFromEmail string `json:"defaultFromEmail"`
}

func (r *UpdateWorkspaceRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationError("workspace name is required")
	}
	return nil
}

type WorkspaceServiceInterface interface {
	ListWorkspaces(ctx context.Context) ([]*UserWorkspace, error)
	GetWorkspace(ctx context.Context, id string) (*Workspace, error)
	UpdateWorkspace(ctx context.Context, id string, req UpdateWorkspaceRequest) (*Workspace, error)
	ListMembers(ctx context.Context, id string) ([]*WorkspaceMemberWithUser, error)
}

type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *Workspace) error
	CreateTx(ctx context.Context, tx *sql.Tx, workspace *Workspace) error
	GetByID(ctx context.Context, id string) (*Workspace, error)
	Update(ctx context.Context, workspace *Workspace) error
	AddMember(ctx context.Context, member *WorkspaceMember) error
	AddMemberTx(ctx context.Context, tx *sql.Tx, member *WorkspaceMember) error
	GetMember(ctx context.Context, workspaceID, userID string) (*WorkspaceMember, error)
	ListMembers(ctx context.Context, workspaceID string) ([]*WorkspaceMemberWithUser, error)
	// ListUserWorkspaces is ordered by joined_at, then workspace id
	ListUserWorkspaces(ctx context.Context, userID string) ([]*UserWorkspace, error)
	// GetPrimaryWorkspace returns nil, nil when the user has no membership
	GetPrimaryWorkspace(ctx context.Context, userID string) (*Workspace, error)
}
