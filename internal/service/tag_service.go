package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/logger"
)

type TagService struct {
	repo        domain.TagRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewTagService(repo domain.TagRepository, authService domain.AuthService, logger logger.Logger) *TagService {
	return &TagService{
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

var _ domain.TagService = (*TagService)(nil)

func (s *TagService) ListTags(ctx context.Context, workspaceID string) ([]*domain.Tag, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}

	tags, err := s.repo.List(ctx, workspaceID)
	if err != nil {
		s.logger.WithField("workspace_id", workspaceID).WithField("error", err.Error()).Error("Failed to list tags")
		return nil, err
	}
	return tags, nil
}

func (s *TagService) CreateTag(ctx context.Context, req domain.CreateTagRequest) (*domain.Tag, error) {
	tag := &domain.Tag{
		WorkspaceID: strings.TrimSpace(req.WorkspaceID),
		Name:        strings.TrimSpace(req.Name),
		Color:       strings.TrimSpace(req.Color),
	}
	if err := tag.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, tag.WorkspaceID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, tag); err != nil {
		var conflict *domain.ErrConflict
		if errors.As(err, &conflict) {
			return nil, domain.NewValidationError("Tag with this name already exists")
		}
		s.logger.WithField("workspace_id", tag.WorkspaceID).WithField("error", err.Error()).Error("Failed to create tag")
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes the tag and, through the foreign key, its contact links
func (s *TagService) DeleteTag(ctx context.Context, workspaceID, id string) error {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, workspaceID, id)
}
