package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
	id                      TEXT PRIMARY KEY,
	name                    TEXT NOT NULL,
	description             TEXT NOT NULL DEFAULT '',
	sponsor                 TEXT NOT NULL DEFAULT '',
	project_manager         TEXT NOT NULL DEFAULT '',
	start_date              TEXT NOT NULL DEFAULT '',
	end_date                TEXT NOT NULL DEFAULT '',
	progress                INTEGER NOT NULL DEFAULT 0,
	next_milestone          TEXT NOT NULL DEFAULT '',
	milestone_date          TEXT NOT NULL DEFAULT '',
	status                  TEXT NOT NULL CHECK(status IN ('on-track', 'at-risk', 'blocked')),
	health_score            INTEGER NOT NULL DEFAULT 0,
	days_to_due             INTEGER NOT NULL DEFAULT 0,
	budget_planned          REAL NOT NULL DEFAULT 0,
	budget_actual           REAL NOT NULL DEFAULT 0,
	risk_level              TEXT NOT NULL CHECK(risk_level IN ('high', 'medium', 'low')),
	top_risks               TEXT NOT NULL DEFAULT '',
	key_dependencies        TEXT NOT NULL DEFAULT '',
	core_team               TEXT NOT NULL DEFAULT '',
	resource_load           INTEGER NOT NULL DEFAULT 0,
	last_updated            TEXT NOT NULL DEFAULT '',
	next_steering_committee TEXT NOT NULL DEFAULT '',
	stakeholders            TEXT NOT NULL DEFAULT '',
	created_at              DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at              DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS team_members (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	role         TEXT NOT NULL DEFAULT '',
	department   TEXT NOT NULL DEFAULT '',
	capacity     INTEGER NOT NULL DEFAULT 40,
	current_load INTEGER NOT NULL DEFAULT 0,
	created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS team_member_projects (
	team_member_id TEXT NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
	project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	allocation     INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (team_member_id, project_id)
);

CREATE TABLE IF NOT EXISTS resource_utilization (
	team_member_id TEXT NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
	week           TEXT NOT NULL,
	utilization    INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (team_member_id, week)
);

CREATE TABLE IF NOT EXISTS milestones (
	id          TEXT PRIMARY KEY,
	project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	start_date  TEXT NOT NULL DEFAULT '',
	end_date    TEXT NOT NULL DEFAULT '',
	progress    INTEGER NOT NULL DEFAULT 0,
	status      TEXT NOT NULL CHECK(status IN ('completed', 'in-progress', 'upcoming', 'delayed')),
	priority    TEXT NOT NULL CHECK(priority IN ('high', 'medium', 'low')),
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS milestone_assignees (
	milestone_id   TEXT NOT NULL REFERENCES milestones(id) ON DELETE CASCADE,
	team_member_id TEXT NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
	role           TEXT NOT NULL DEFAULT 'Team Member',
	PRIMARY KEY (milestone_id, team_member_id)
);

CREATE TABLE IF NOT EXISTS milestone_dependencies (
	milestone_id  TEXT NOT NULL REFERENCES milestones(id) ON DELETE CASCADE,
	dependency_id TEXT NOT NULL REFERENCES milestones(id) ON DELETE CASCADE,
	PRIMARY KEY (milestone_id, dependency_id)
);

CREATE TABLE IF NOT EXISTS share_invitations (
	id         TEXT PRIMARY KEY,
	project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	email      TEXT NOT NULL,
	role       TEXT NOT NULL CHECK(role IN ('viewer', 'editor')),
	message    TEXT NOT NULL DEFAULT '',
	inviter    TEXT NOT NULL DEFAULT '',
	sent_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
CREATE INDEX IF NOT EXISTS idx_milestones_project_id ON milestones(project_id);
CREATE INDEX IF NOT EXISTS idx_milestones_start_date ON milestones(start_date);
CREATE INDEX IF NOT EXISTS idx_tmp_project_id ON team_member_projects(project_id);
CREATE INDEX IF NOT EXISTS idx_invitations_project_id ON share_invitations(project_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
