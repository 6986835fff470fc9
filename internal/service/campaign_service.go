package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/logger"
	"github.com/sagestone/sagestone/pkg/tracing"
)

// CampaignService manages campaign records and their statistics. Nothing is sent from here.
type CampaignService struct {
	transactor  domain.Transactor
	repo        domain.CampaignRepository
	segmentRepo domain.SegmentRepository
	authService domain.AuthService
	logger      logger.Logger
	now         func() time.Time
}

type CampaignServiceConfig struct {
	Transactor         domain.Transactor
	CampaignRepository domain.CampaignRepository
	SegmentRepository  domain.SegmentRepository
	AuthService        domain.AuthService
	Logger             logger.Logger
}

func NewCampaignService(cfg CampaignServiceConfig) *CampaignService {
	return &CampaignService{
		transactor:  cfg.Transactor,
		repo:        cfg.CampaignRepository,
		segmentRepo: cfg.SegmentRepository,
		authService: cfg.AuthService,
		logger:      cfg.Logger,
		now:         time.Now,
	}
}

var _ domain.CampaignService = (*CampaignService)(nil)

func (s *CampaignService) ListCampaigns(ctx context.Context, workspaceID string) ([]*domain.Campaign, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, workspaceID)
}

// CreateCampaign stores the campaign together with a zeroed statistics row
func (s *CampaignService) CreateCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.Campaign, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CampaignService", "CreateCampaign")
	campaign, err := s.createCampaign(ctx, req)
	tracing.EndSpan(span, err)
	return campaign, err
}

func (s *CampaignService) createCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.Campaign, error) {
	campaign := &domain.Campaign{
		WorkspaceID: strings.TrimSpace(req.WorkspaceID),
		Name:        strings.TrimSpace(req.Name),
		Type:        req.Type,
		Status:      req.Status,
		Subject:     req.Subject,
		FromName:    req.FromName,
		FromEmail:   strings.TrimSpace(req.FromEmail),
		Content:     req.Content,
		SegmentID:   req.SegmentID,
		ScheduledAt: req.ScheduledAt,
	}
	if campaign.Type == "" {
		campaign.Type = domain.CampaignTypeEmail
	}
	if campaign.Status == "" {
		campaign.Status = domain.CampaignStatusDraft
	}
	if campaign.Status == domain.CampaignStatusSent {
		sentAt := s.now().UTC()
		campaign.SentAt = &sentAt
	}
	if err := campaign.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, campaign.WorkspaceID); err != nil {
		return nil, err
	}
	if err := s.checkSegment(ctx, campaign); err != nil {
		return nil, err
	}

	err := s.transactor.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.repo.CreateTx(ctx, tx, campaign); err != nil {
			return err
		}
		return s.repo.CreateStatsTx(ctx, tx, &domain.CampaignStat{CampaignID: campaign.ID})
	})
	if err != nil {
		s.logger.WithField("workspace_id", campaign.WorkspaceID).WithField("error", err.Error()).Error("Failed to create campaign")
		return nil, err
	}
	return campaign, nil
}

func (s *CampaignService) GetCampaign(ctx context.Context, workspaceID, id string) (*domain.Campaign, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, workspaceID, id)
}

// UpdateCampaign replaces the editable fields. Status only moves forward and sentAt is
// stamped the first time the campaign becomes sent.
func (s *CampaignService) UpdateCampaign(ctx context.Context, id string, req domain.CampaignRequest) (*domain.Campaign, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CampaignService", "UpdateCampaign")
	campaign, err := s.updateCampaign(ctx, id, req)
	tracing.EndSpan(span, err)
	return campaign, err
}

func (s *CampaignService) updateCampaign(ctx context.Context, id string, req domain.CampaignRequest) (*domain.Campaign, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, req.WorkspaceID); err != nil {
		return nil, err
	}

	campaign, err := s.repo.GetByID(ctx, req.WorkspaceID, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" && req.Status != campaign.Status {
		if !campaign.Status.CanTransitionTo(req.Status) {
			return nil, &domain.ErrInvalidTransition{From: campaign.Status, To: req.Status}
		}
		if req.Status == domain.CampaignStatusSent && campaign.SentAt == nil {
			sentAt := s.now().UTC()
			campaign.SentAt = &sentAt
		}
		campaign.Status = req.Status
	}

	campaign.Name = strings.TrimSpace(req.Name)
	if req.Type != "" {
		campaign.Type = req.Type
	}
	campaign.Subject = req.Subject
	campaign.FromName = req.FromName
	campaign.FromEmail = strings.TrimSpace(req.FromEmail)
	if len(req.Content) > 0 {
		campaign.Content = req.Content
	}
	campaign.SegmentID = req.SegmentID
	if req.ScheduledAt != nil {
		campaign.ScheduledAt = req.ScheduledAt
	}
	if err := campaign.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkSegment(ctx, campaign); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, campaign); err != nil {
		s.logger.WithField("campaign_id", id).WithField("error", err.Error()).Error("Failed to update campaign")
		return nil, err
	}
	return campaign, nil
}

func (s *CampaignService) DeleteCampaign(ctx context.Context, workspaceID, id string) error {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, workspaceID, id)
}

func (s *CampaignService) GetCampaignStats(ctx context.Context, workspaceID, id string) (*domain.CampaignStatsResponse, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}

	// scope check: the stats table has no workspace column
	campaign, err := s.repo.GetByID(ctx, workspaceID, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.GetStats(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}
	return &domain.CampaignStatsResponse{
		Stats:     stats,
		OpenRate:  stats.OpenRate(),
		ClickRate: stats.ClickRate(),
	}, nil
}

// checkSegment rejects a segment id that does not belong to the campaign's workspace
func (s *CampaignService) checkSegment(ctx context.Context, campaign *domain.Campaign) error {
	if campaign.SegmentID == nil || *campaign.SegmentID == "" {
		campaign.SegmentID = nil
		return nil
	}
	_, err := s.segmentRepo.GetByID(ctx, campaign.WorkspaceID, *campaign.SegmentID)
	var notFound *domain.ErrNotFound
	if errors.As(err, &notFound) {
		return domain.NewValidationError("Segment not found in this workspace")
	}
	return err
}
