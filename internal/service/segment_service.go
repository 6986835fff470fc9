package service

import (
	"context"
	"strings"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/logger"
)

// SegmentService stores segment filters without evaluating them
type SegmentService struct {
	repo        domain.SegmentRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewSegmentService(repo domain.SegmentRepository, authService domain.AuthService, logger logger.Logger) *SegmentService {
	return &SegmentService{
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

var _ domain.SegmentService = (*SegmentService)(nil)

func (s *SegmentService) ListSegments(ctx context.Context, workspaceID string) ([]*domain.Segment, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, workspaceID)
}

func (s *SegmentService) CreateSegment(ctx context.Context, req domain.SegmentRequest) (*domain.Segment, error) {
	segment := &domain.Segment{
		WorkspaceID: strings.TrimSpace(req.WorkspaceID),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Filters:     req.Filters,
	}
	if err := segment.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, segment.WorkspaceID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, segment); err != nil {
		s.logger.WithField("workspace_id", segment.WorkspaceID).WithField("error", err.Error()).Error("Failed to create segment")
		return nil, err
	}
	return segment, nil
}

func (s *SegmentService) GetSegment(ctx context.Context, workspaceID, id string) (*domain.Segment, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, workspaceID, id)
}

func (s *SegmentService) UpdateSegment(ctx context.Context, id string, req domain.SegmentRequest) (*domain.Segment, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, req.WorkspaceID); err != nil {
		return nil, err
	}

	segment, err := s.repo.GetByID(ctx, req.WorkspaceID, id)
	if err != nil {
		return nil, err
	}
	segment.Name = strings.TrimSpace(req.Name)
	segment.Description = strings.TrimSpace(req.Description)
	if len(req.Filters) > 0 {
		segment.Filters = req.Filters
	}
	if err := segment.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, segment); err != nil {
		s.logger.WithField("segment_id", id).WithField("error", err.Error()).Error("Failed to update segment")
		return nil, err
	}
	return segment, nil
}

func (s *SegmentService) DeleteSegment(ctx context.Context, workspaceID, id string) error {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, workspaceID, id)
}
