package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/sagestone/sagestone/pkg/crypto"
	"github.com/sagestone/sagestone/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// seedNamespace derives stable ids for rows that have no natural unique key
var seedNamespace = uuid.MustParse("5f0c7a3e-2b8d-4c61-9e47-a1d2b3c4e5f6")

const (
	DemoEmail    = "demo@sagestone.dev"
	DemoPassword = "password123"
	DemoSlug     = "demo-workspace"
)

type demoContact struct {
	email     string
	firstName string
	lastName  string
	company   string
	phone     string
	tags      []string
}

var demoTags = []string{"Customer", "VIP", "Lead", "Trial", "Churned"}

var demoContacts = []demoContact{
	{"john.doe@example.com", "John", "Doe", "Acme Inc", "+1 555 0100", []string{"Customer", "VIP"}},
	{"jane.smith@example.com", "Jane", "Smith", "Globex", "+1 555 0101", []string{"Customer"}},
	{"bob.wilson@example.com", "Bob", "Wilson", "Initech", "+1 555 0102", []string{"Lead"}},
	{"alice.brown@example.com", "Alice", "Brown", "Umbrella", "+1 555 0103", []string{"Trial"}},
	{"charlie.davis@example.com", "Charlie", "Davis", "Hooli", "+1 555 0104", []string{"Churned"}},
}

var demoStages = []string{"New", "Qualified", "Proposal", "Won", "Lost"}

// Seeder inserts the demo dataset. Every insert ignores conflicts so a rerun adds nothing.
type Seeder struct {
	db     *sql.DB
	hasher *crypto.PasswordHasher
	logger logger.Logger
}

func NewSeeder(db *sql.DB, hasher *crypto.PasswordHasher, logger logger.Logger) *Seeder {
	return &Seeder{db: db, hasher: hasher, logger: logger}
}

// seedID returns the same uuid for the same parts on every run
func seedID(parts ...string) string {
	key := ""
	for _, p := range parts {
		key += "/" + p
	}
	return uuid.NewSHA1(seedNamespace, []byte(key)).String()
}

func randomColor() string {
	return fmt.Sprintf("#%06x", rand.IntN(0x1000000))
}

func (s *Seeder) Run(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	userID, err := s.seedUser(ctx, tx)
	if err != nil {
		return err
	}

	workspaceID, err := s.seedWorkspace(ctx, tx, userID)
	if err != nil {
		return err
	}

	tagIDs, err := s.seedTags(ctx, tx, workspaceID)
	if err != nil {
		return err
	}

	if err := s.seedContacts(ctx, tx, workspaceID, tagIDs); err != nil {
		return err
	}

	segmentID, err := s.seedSegment(ctx, tx, workspaceID)
	if err != nil {
		return err
	}

	if err := s.seedCampaign(ctx, tx, workspaceID, segmentID); err != nil {
		return err
	}

	if err := s.seedPipeline(ctx, tx, workspaceID); err != nil {
		return err
	}

	if err := s.seedAutomation(ctx, tx, workspaceID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed data: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":      userID,
		"workspace_id": workspaceID,
	}).Info("Demo data seeded")
	return nil
}

func (s *Seeder) exec(ctx context.Context, tx *sql.Tx, builder sq.InsertBuilder, what string) error {
	query, args, err := builder.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build %s query: %w", what, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to seed %s: %w", what, err)
	}
	return nil
}

func (s *Seeder) lookupID(ctx context.Context, tx *sql.Tx, builder sq.SelectBuilder, what string) (string, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build %s lookup: %w", what, err)
	}
	var id string
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return "", fmt.Errorf("failed to look up %s: %w", what, err)
	}
	return id, nil
}

func (s *Seeder) seedUser(ctx context.Context, tx *sql.Tx) (string, error) {
	hash, err := s.hasher.Hash(DemoPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash demo password: %w", err)
	}

	insert := psql.Insert("users").
		Columns("id", "email", "password_hash", "first_name", "last_name", "role").
		Values(seedID("user", DemoEmail), DemoEmail, hash, "Demo", "User", "user")
	if err := s.exec(ctx, tx, insert, "user"); err != nil {
		return "", err
	}

	// The account may predate the seed with a different id
	return s.lookupID(ctx, tx, psql.Select("id").From("users").Where("LOWER(email) = LOWER(?)", DemoEmail), "user")
}

func (s *Seeder) seedWorkspace(ctx context.Context, tx *sql.Tx, userID string) (string, error) {
	insert := psql.Insert("workspaces").
		Columns("id", "name", "slug", "website", "industry", "business_goal", "default_from_name", "default_from_email").
		Values(seedID("workspace", DemoSlug), "Demo Company", DemoSlug, "https://demo.example.com",
			"Technology", "lead_gen", "Demo Company", "hello@demo.example.com")
	if err := s.exec(ctx, tx, insert, "workspace"); err != nil {
		return "", err
	}

	workspaceID, err := s.lookupID(ctx, tx, psql.Select("id").From("workspaces").Where(sq.Eq{"slug": DemoSlug}), "workspace")
	if err != nil {
		return "", err
	}

	member := psql.Insert("workspace_members").
		Columns("user_id", "workspace_id", "role").
		Values(userID, workspaceID, "owner")
	if err := s.exec(ctx, tx, member, "workspace member"); err != nil {
		return "", err
	}
	return workspaceID, nil
}

func (s *Seeder) seedTags(ctx context.Context, tx *sql.Tx, workspaceID string) (map[string]string, error) {
	ids := make(map[string]string, len(demoTags))
	for _, name := range demoTags {
		insert := psql.Insert("tags").
			Columns("id", "workspace_id", "name", "color").
			Values(seedID("tag", workspaceID, name), workspaceID, name, randomColor())
		if err := s.exec(ctx, tx, insert, "tag"); err != nil {
			return nil, err
		}

		id, err := s.lookupID(ctx, tx, psql.Select("id").From("tags").
			Where(sq.Eq{"workspace_id": workspaceID, "name": name}), "tag")
		if err != nil {
			return nil, err
		}
		ids[name] = id
	}
	return ids, nil
}

func (s *Seeder) seedContacts(ctx context.Context, tx *sql.Tx, workspaceID string, tagIDs map[string]string) error {
	for _, c := range demoContacts {
		insert := psql.Insert("contacts").
			Columns("id", "workspace_id", "email", "first_name", "last_name", "phone", "company", "status").
			Values(seedID("contact", workspaceID, c.email), workspaceID, c.email, c.firstName, c.lastName, c.phone, c.company, "active")
		if err := s.exec(ctx, tx, insert, "contact"); err != nil {
			return err
		}

		contactID, err := s.lookupID(ctx, tx, psql.Select("id").From("contacts").
			Where(sq.Eq{"workspace_id": workspaceID, "email": c.email}), "contact")
		if err != nil {
			return err
		}

		for _, tag := range c.tags {
			link := psql.Insert("contact_tags").
				Columns("contact_id", "tag_id").
				Values(contactID, tagIDs[tag])
			if err := s.exec(ctx, tx, link, "contact tag"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedSegment(ctx context.Context, tx *sql.Tx, workspaceID string) (string, error) {
	id := seedID("segment", workspaceID, "Active Customers")
	insert := psql.Insert("segments").
		Columns("id", "workspace_id", "name", "description", "filters").
		Values(id, workspaceID, "Active Customers", "Customers with an active status",
			`{"status":"active","tags":["Customer"]}`)
	if err := s.exec(ctx, tx, insert, "segment"); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Seeder) seedCampaign(ctx context.Context, tx *sql.Tx, workspaceID, segmentID string) error {
	id := seedID("campaign", workspaceID, "Welcome Email Series")
	sentAt := time.Now().UTC().Add(-7 * 24 * time.Hour)

	insert := psql.Insert("campaigns").
		Columns("id", "workspace_id", "name", "type", "status", "subject", "from_name", "from_email",
			"content", "segment_id", "sent_at").
		Values(id, workspaceID, "Welcome Email Series", "email", "sent", "Welcome to Demo Company!",
			"Demo Company", "hello@demo.example.com",
			`{"html":"<h1>Welcome!</h1><p>Thanks for joining us.</p>"}`, segmentID, sentAt)
	if err := s.exec(ctx, tx, insert, "campaign"); err != nil {
		return err
	}

	stats := psql.Insert("campaign_stats").
		Columns("id", "campaign_id", "sent", "opened", "clicked", "bounced", "unsubscribed").
		Values(seedID("campaign_stats", id), id, 2543, 812, 156, 12, 23)
	return s.exec(ctx, tx, stats, "campaign stats")
}

func (s *Seeder) seedPipeline(ctx context.Context, tx *sql.Tx, workspaceID string) error {
	id := seedID("pipeline", workspaceID, "Sales Pipeline")
	insert := psql.Insert("pipelines").
		Columns("id", "workspace_id", "name").
		Values(id, workspaceID, "Sales Pipeline")
	if err := s.exec(ctx, tx, insert, "pipeline"); err != nil {
		return err
	}

	for order, name := range demoStages {
		stage := psql.Insert("pipeline_stages").
			Columns("id", "pipeline_id", "name", "stage_order", "color").
			Values(seedID("stage", id, name), id, name, order, randomColor())
		if err := s.exec(ctx, tx, stage, "pipeline stage"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedAutomation(ctx context.Context, tx *sql.Tx, workspaceID string) error {
	id := seedID("automation", workspaceID, "Welcome Email Sequence")
	insert := psql.Insert("automations").
		Columns("id", "workspace_id", "name", "description", "trigger", "is_active").
		Values(id, workspaceID, "Welcome Email Sequence", "Onboarding emails for new customers",
			`{"type":"segment_joined","segmentName":"Active Customers"}`, true)
	if err := s.exec(ctx, tx, insert, "automation"); err != nil {
		return err
	}

	steps := []struct {
		kind   string
		config string
	}{
		{"send_email", `{"subject":"Welcome!","template":"welcome"}`},
		{"wait", `{"duration":"3d"}`},
		{"send_email", `{"subject":"Getting started","template":"getting_started"}`},
	}
	for i, step := range steps {
		order := i + 1
		row := psql.Insert("automation_steps").
			Columns("id", "automation_id", "step_order", "type", "config").
			Values(seedID("step", id, fmt.Sprint(order)), id, order, step.kind, step.config)
		if err := s.exec(ctx, tx, row, "automation step"); err != nil {
			return err
		}
	}
	return nil
}
