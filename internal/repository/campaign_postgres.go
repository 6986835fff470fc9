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

var campaignColumns = []string{
	"id", "workspace_id", "name", "type", "status", "subject", "from_name", "from_email",
	"content", "segment_id", "scheduled_at", "sent_at", "created_at", "updated_at",
}

type campaignRepository struct {
	db *sql.DB
}

// NewCampaignRepository creates a new PostgreSQL campaign repository
func NewCampaignRepository(db *sql.DB) domain.CampaignRepository {
	return &campaignRepository{db: db}
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var c domain.Campaign
	var content []byte
	var segmentID sql.NullString
	var scheduledAt, sentAt sql.NullTime
	err := row.Scan(
		&c.ID, &c.WorkspaceID, &c.Name, &c.Type, &c.Status, &c.Subject, &c.FromName, &c.FromEmail,
		&content, &segmentID, &scheduledAt, &sentAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Content = content
	if segmentID.Valid {
		c.SegmentID = &segmentID.String
	}
	if scheduledAt.Valid {
		c.ScheduledAt = &scheduledAt.Time
	}
	if sentAt.Valid {
		c.SentAt = &sentAt.Time
	}
	return &c, nil
}

// jsonOrEmpty returns a JSON text for a JSONB column, defaulting to an empty object
func jsonOrEmpty(raw []byte) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}

func (r *campaignRepository) List(ctx context.Context, workspaceID string) ([]*domain.Campaign, error) {
	query, args, err := psql.
		Select(campaignColumns...).
		From("campaigns").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", classifyError(err))
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating campaigns: %w", classifyError(err))
	}
	return campaigns, nil
}

func (r *campaignRepository) CreateTx(ctx context.Context, tx *sql.Tx, campaign *domain.Campaign) error {
	if campaign.ID == "" {
		campaign.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now

	query, args, err := psql.
		Insert("campaigns").
		Columns(campaignColumns...).
		Values(
			campaign.ID, campaign.WorkspaceID, campaign.Name, campaign.Type, campaign.Status,
			campaign.Subject, campaign.FromName, campaign.FromEmail, jsonOrEmpty(campaign.Content),
			campaign.SegmentID, campaign.ScheduledAt, campaign.SentAt, campaign.CreatedAt, campaign.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := pick(r.db, tx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create campaign: %w", classifyError(err))
	}
	return nil
}

func (r *campaignRepository) CreateStatsTx(ctx context.Context, tx *sql.Tx, stat *domain.CampaignStat) error {
	if stat.ID == "" {
		stat.ID = uuid.New().String()
	}
	stat.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Insert("campaign_stats").
		Columns("id", "campaign_id", "sent", "opened", "clicked", "bounced", "unsubscribed", "updated_at").
		Values(stat.ID, stat.CampaignID, stat.Sent, stat.Opened, stat.Clicked, stat.Bounced, stat.Unsubscribed, stat.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := pick(r.db, tx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create campaign stats: %w", classifyError(err))
	}
	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, workspaceID, id string) (*domain.Campaign, error) {
	query, args, err := psql.
		Select(campaignColumns...).
		From("campaigns").
		Where(sq.Eq{"id": id, "workspace_id": workspaceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	campaign, err := scanCampaign(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "campaign", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", classifyError(err))
	}
	return campaign, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *domain.Campaign) error {
	campaign.UpdatedAt = time.Now().UTC()

	query, args, err := psql.
		Update("campaigns").
		SetMap(map[string]interface{}{
			"name":         campaign.Name,
			"type":         campaign.Type,
			"status":       campaign.Status,
			"subject":      campaign.Subject,
			"from_name":    campaign.FromName,
			"from_email":   campaign.FromEmail,
			"content":      jsonOrEmpty(campaign.Content),
			"segment_id":   campaign.SegmentID,
			"scheduled_at": campaign.ScheduledAt,
			"sent_at":      campaign.SentAt,
			"updated_at":   campaign.UpdatedAt,
		}).
		Where(sq.Eq{"id": campaign.ID, "workspace_id": campaign.WorkspaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", classifyError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrNotFound{Entity: "campaign", ID: campaign.ID}
	}
	return nil
}

func (r *campaignRepository) Delete(ctx context.Context, workspaceID, id string) error {
	return deleteScoped(ctx, r.db, "campaigns", "campaign", workspaceID, id)
}

func (r *campaignRepository) GetStats(ctx context.Context, campaignID string) (*domain.CampaignStat, error) {
	query, args, err := psql.
		Select("id", "campaign_id", "sent", "opened", "clicked", "bounced", "unsubscribed", "updated_at").
		From("campaign_stats").
		Where(sq.Eq{"campaign_id": campaignID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var s domain.CampaignStat
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.CampaignID, &s.Sent, &s.Opened, &s.Clicked, &s.Bounced, &s.Unsubscribed, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ErrNotFound{Entity: "campaign stats", ID: campaignID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign stats: %w", classifyError(err))
	}
	return &s, nil
}
