package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/logger"
)

type PipelineService struct {
	transactor  domain.Transactor
	repo        domain.PipelineRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewPipelineService(transactor domain.Transactor, repo domain.PipelineRepository, authService domain.AuthService, logger logger.Logger) *PipelineService {
	return &PipelineService{
		transactor:  transactor,
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

var _ domain.PipelineService = (*PipelineService)(nil)

func (s *PipelineService) ListPipelines(ctx context.Context, workspaceID string) ([]*domain.Pipeline, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}

	pipelines, err := s.repo.List(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if err := s.attachStages(ctx, pipelines); err != nil {
		return nil, err
	}
	return pipelines, nil
}

// CreatePipeline stores the pipeline and its stages; a stage's order is its position in the request
func (s *PipelineService) CreatePipeline(ctx context.Context, req domain.CreatePipelineRequest) (*domain.Pipeline, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, req.WorkspaceID); err != nil {
		return nil, err
	}

	pipeline := &domain.Pipeline{
		WorkspaceID: req.WorkspaceID,
		Name:        strings.TrimSpace(req.Name),
		Stages:      make([]*domain.PipelineStage, 0, len(req.Stages)),
	}

	err := s.transactor.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.repo.CreateTx(ctx, tx, pipeline); err != nil {
			return err
		}
		for i, input := range req.Stages {
			stage := &domain.PipelineStage{
				PipelineID: pipeline.ID,
				Name:       strings.TrimSpace(input.Name),
				Order:      i,
				Color:      input.Color,
			}
			if err := s.repo.CreateStageTx(ctx, tx, stage); err != nil {
				return err
			}
			pipeline.Stages = append(pipeline.Stages, stage)
		}
		return nil
	})
	if err != nil {
		s.logger.WithField("workspace_id", req.WorkspaceID).WithField("error", err.Error()).Error("Failed to create pipeline")
		return nil, err
	}
	return pipeline, nil
}

func (s *PipelineService) GetPipeline(ctx context.Context, workspaceID, id string) (*domain.Pipeline, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}

	pipeline, err := s.repo.GetByID(ctx, workspaceID, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachStages(ctx, []*domain.Pipeline{pipeline}); err != nil {
		return nil, err
	}
	return pipeline, nil
}

func (s *PipelineService) DeletePipeline(ctx context.Context, workspaceID, id string) error {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, workspaceID, id)
}

func (s *PipelineService) attachStages(ctx context.Context, pipelines []*domain.Pipeline) error {
	if len(pipelines) == 0 {
		return nil
	}
	ids := make([]string, len(pipelines))
	for i, p := range pipelines {
		ids[i] = p.ID
	}
	stages, err := s.repo.ListStages(ctx, ids)
	if err != nil {
		return err
	}
	for _, p := range pipelines {
		p.Stages = stages[p.ID]
		if p.Stages == nil {
			p.Stages = []*domain.PipelineStage{}
		}
	}
	return nil
}
