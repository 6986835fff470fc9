// Package schema defines the database schema.
//
// Tables are created with CREATE TABLE IF NOT EXISTS at startup so the
// statements must stay idempotent.
package schema

// TableNames lists every table in creation order
var TableNames = []string{
	"users",
	"workspaces",
	"workspace_members",
	"contacts",
	"tags",
	"contact_tags",
	"segments",
	"campaigns",
	"campaign_stats",
	"pipelines",
	"pipeline_stages",
	"automations",
	"automation_steps",
}

// TableDefinitions contains all the SQL statements to create the database tables.
// Child rows reference their parent with ON DELETE CASCADE so deleting a
// workspace, contact, campaign, pipeline or automation removes its dependents.
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		first_name VARCHAR(255) NOT NULL DEFAULT '',
		last_name VARCHAR(255) NOT NULL DEFAULT '',
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS workspaces (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		website VARCHAR(255) NOT NULL DEFAULT '',
		industry VARCHAR(255) NOT NULL DEFAULT '',
		business_goal VARCHAR(255) NOT NULL DEFAULT '',
		default_from_name VARCHAR(255) NOT NULL DEFAULT '',
		default_from_email VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS workspace_members (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		workspace_id UUID NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		joined_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, workspace_id)
	)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id UUID PRIMARY KEY,
		workspace_id UUID NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
		email VARCHAR(255) NOT NULL,
		first_name VARCHAR(255) NOT NULL DEFAULT '',
		last_name VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(50) NOT NULL DEFAULT '',
		company VARCHAR(255) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (workspace_id, email)
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id UUID PRIMARY KEY,
		workspace_id UUID NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		color VARCHAR(20) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (workspace_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS contact_tags (
		contact_id UUID NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
		tag_id UUID NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (contact_id, tag_id)
	)`,
	`CREATE TABLE IF NOT EXISTS segments (
		id UUID PRIMARY KEY,
		workspace_id UUID NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		filters JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id UUID PRIMARY KEY,
		workspace_id UUID NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		type VARCHAR(20) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'draft',
		subject VARCHAR(255) NOT NULL DEFAULT '',
		from_name VARCHAR(255) NOT NULL DEFAULT '',
		from_email VARCHAR(255) NOT NULL DEFAULT '',
		content JSONB NOT NULL DEFAULT '{}',
		segment_id UUID REFERENCES segments(id) ON DELETE SET NULL,
		scheduled_at TIMESTAMPTZ,
		sent_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS campaign_stats (
		id UUID PRIMARY KEY,
		campaign_id UUID NOT NULL UNIQUE REFERENCES campaigns(id) ON DELETE CASCADE,
		sent INTEGER NOT NULL DEFAULT 0,
		opened INTEGER NOT NULL DEFAULT 0,
		clicked INTEGER NOT NULL DEFAULT 0,
		bounced INTEGER NOT NULL DEFAULT 0,
		unsubscribed INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS pipelines (
		id UUID PRIMARY KEY,
		workspace_id UUID NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS pipeline_stages (
		id UUID PRIMARY KEY,
		pipeline_id UUID NOT NULL REFERENCES pipelines(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		stage_order INTEGER NOT NULL,
		color VARCHAR(20) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (pipeline_id, stage_order)
	)`,
	`CREATE TABLE IF NOT EXISTS automations (
		id UUID PRIMARY KEY,
		workspace_id UUID NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		trigger JSONB NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS automation_steps (
		id UUID PRIMARY KEY,
		automation_id UUID NOT NULL REFERENCES automations(id) ON DELETE CASCADE,
		step_order INTEGER NOT NULL,
		type VARCHAR(50) NOT NULL,
		config JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (automation_id, step_order)
	)`,
}

// IndexDefinitions run after the tables exist
var IndexDefinitions = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (LOWER(email))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS workspaces_slug_idx ON workspaces (slug)`,
	`CREATE INDEX IF NOT EXISTS workspace_members_user_joined_idx ON workspace_members (user_id, joined_at, workspace_id)`,
	`CREATE INDEX IF NOT EXISTS contacts_workspace_created_idx ON contacts (workspace_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS segments_workspace_idx ON segments (workspace_id)`,
	`CREATE INDEX IF NOT EXISTS campaigns_workspace_idx ON campaigns (workspace_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS pipelines_workspace_idx ON pipelines (workspace_id)`,
	`CREATE INDEX IF NOT EXISTS automations_workspace_idx ON automations (workspace_id)`,
}
