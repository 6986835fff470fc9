package domain

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_campaign_service.go -package mocks github.com/sagestone/sagestone/internal/domain CampaignService
//go:generate mockgen -destination mocks/mock_campaign_repository.go -package mocks github.com/sagestone/sagestone/internal/domain CampaignRepository

type CampaignType string

const (
	CampaignTypeEmail CampaignType = "email"
	CampaignTypeSMS   CampaignType = "sms"
)

func (t CampaignType) IsValid() bool {
	return t == CampaignTypeEmail || t == CampaignTypeSMS
}

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusSent      CampaignStatus = "sent"
)

var campaignStatusRank = map[CampaignStatus]int{
	CampaignStatusDraft:     0,
	CampaignStatusScheduled: 1,
	CampaignStatusSent:      2,
}

func (s CampaignStatus) IsValid() bool {
	_, ok := campaignStatusRank[s]
	return ok
}

// CanTransitionTo reports whether moving to next keeps the status moving forward.
// Staying on the same status is allowed.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	from, ok := campaignStatusRank[s]
	if !ok {
		return false
	}
	to, ok := campaignStatusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

// Campaign is a single broadcast. Content is opaque JSON and nothing is sent by this service.
type Campaign struct {
	ID          string          `json:"id" db:"id"`
	WorkspaceID string          `json:"workspaceId" db:"workspace_id"`
	Name        string          `json:"name" db:"name"`
	Type        CampaignType    `json:"type" db:"type"`
	Status      CampaignStatus  `json:"status" db:"status"`
	Subject     string          `json:"subject" db:"subject"`
	FromName    string          `json:"fromName" db:"from_name"`
	FromEmail   string          `json:"fromEmail" db:"from_email"`
	Content     json.RawMessage `json:"content" db:"content"`
	SegmentID   *string         `json:"segmentId" db:"segment_id"`
	ScheduledAt *time.Time      `json:"scheduledAt" db:"scheduled_at"`
	SentAt      *time.Time      `json:"sentAt" db:"sent_at"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

func (c *Campaign) Validate() error {
	if c.WorkspaceID == "" {
		return NewValidationError("Workspace ID is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("Campaign name is required")
	}
	if !c.Type.IsValid() {
		return NewValidationError("Campaign type must be email or sms")
	}
	if !c.Status.IsValid() {
		return NewValidationError("Invalid campaign status")
	}
	if c.FromEmail != "" && !govalidator.IsEmail(c.FromEmail) {
		return NewValidationError("Invalid from email")
	}
	if len(c.Content) > 0 {
		if err := ValidateJSONObject("content", c.Content); err != nil {
			return err
		}
	}
	if c.Status == CampaignStatusScheduled && c.ScheduledAt == nil {
		return NewValidationError("Scheduled campaigns require scheduledAt")
	}
	return nil
}

// CampaignStat holds delivery counters; exactly one row exists per campaign
type CampaignStat struct {
	ID           string    `json:"id" db:"id"`
	CampaignID   string    `json:"campaignId" db:"campaign_id"`
	Sent         int       `json:"sent" db:"sent"`
	Opened       int       `json:"opened" db:"opened"`
	Clicked      int       `json:"clicked" db:"clicked"`
	Bounced      int       `json:"bounced" db:"bounced"`
	Unsubscribed int       `json:"unsubscribed" db:"unsubscribed"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// OpenRate returns opened/sent, or 0 when nothing was sent
func (s *CampaignStat) OpenRate() float64 {
	if s.Sent == 0 {
		return 0
	}
	return float64(s.Opened) / float64(s.Sent)
}

func (s *CampaignStat) ClickRate() float64 {
	if s.Sent == 0 {
		return 0
	}
	return float64(s.Clicked) / float64(s.Sent)
}

type CampaignRequest struct {
	WorkspaceID string          `json:"workspaceId"`
	Name        string          `json:"name"`
	Type        CampaignType    `json:"type"`
	Status      CampaignStatus  `json:"status"`
	Subject     string          `json:"subject"`
	FromName    string          `json:"fromName"`
	FromEmail   string          `json:"fromEmail"`
	Content     json.RawMessage `json:"content"`
	SegmentID   *string         `json:"segmentId"`
	ScheduledAt *time.Time      `json:"scheduledAt"`
}

// CampaignStatsResponse is returned by the stats endpoint
type CampaignStatsResponse struct {
	Stats     *CampaignStat `json:"stats"`
	OpenRate  float64       `json:"openRate"`
	ClickRate float64       `json:"clickRate"`
}

type CampaignService interface {
	ListCampaigns(ctx context.Context, workspaceID string) ([]*Campaign, error)
	CreateCampaign(ctx context.Context, req CampaignRequest) (*Campaign, error)
	GetCampaign(ctx context.Context, workspaceID, id string) (*Campaign, error)
	UpdateCampaign(ctx context.Context, id string, req CampaignRequest) (*Campaign, error)
	DeleteCampaign(ctx context.Context, workspaceID, id string) error
	GetCampaignStats(ctx context.Context, workspaceID, id string) (*CampaignStatsResponse, error)
}

type CampaignRepository interface {
	List(ctx context.Context, workspaceID string) ([]*Campaign, error)
	CreateTx(ctx context.Context, tx *sql.Tx, campaign *Campaign) error
	CreateStatsTx(ctx context.Context, tx *sql.Tx, stat *CampaignStat) error
	GetByID(ctx context.Context, workspaceID, id string) (*Campaign, error)
	Update(ctx context.Context, campaign *Campaign) error
	Delete(ctx context.Context, workspaceID, id string) error
	GetStats(ctx context.Context, campaignID string) (*CampaignStat, error)
}
