package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/sagestone/sagestone/internal/domain"
)

const slugSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// workspaceSlug derives a unique slug from the owner's first name
func workspaceSlug(firstName string) (string, error) {
	suffix, err := gonanoid.Generate(slugSuffixAlphabet, 8)
	if err != nil {
		return "", fmt.Errorf("failed to generate slug suffix: %w", err)
	}
	base := slug.Make(firstName)
	if base == "" {
		return "workspace-" + suffix, nil
	}
	return base + "-workspace-" + suffix, nil
}

// accountProvisioner creates a user together with the default workspace they own
type accountProvisioner struct {
	transactor    domain.Transactor
	userRepo      domain.UserRepository
	workspaceRepo domain.WorkspaceRepository
}

// provision inserts the user, the workspace and the owner membership in one
// transaction. user.PasswordHash must already be set.
func (p *accountProvisioner) provision(ctx context.Context, user *domain.User) (*domain.Workspace, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = domain.UserRoleUser
	}

	workspaceSlugValue, err := workspaceSlug(user.FirstName)
	if err != nil {
		return nil, err
	}
	workspace := &domain.Workspace{
		ID:   uuid.New().String(),
		Name: domain.DefaultWorkspaceName(user.FirstName),
		Slug: workspaceSlugValue,
	}
	if err := workspace.Validate(); err != nil {
		return nil, err
	}

	err = p.transactor.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := p.userRepo.CreateUserTx(ctx, tx, user); err != nil {
			return err
		}
		if err := p.workspaceRepo.CreateTx(ctx, tx, workspace); err != nil {
			return err
		}
		return p.workspaceRepo.AddMemberTx(ctx, tx, &domain.WorkspaceMember{
			UserID:      user.ID,
			WorkspaceID: workspace.ID,
			Role:        domain.MemberRoleOwner,
			JoinedAt:    time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}
	return workspace, nil
}
