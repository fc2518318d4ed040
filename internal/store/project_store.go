package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pdash/portfolio-dashboard/internal/model"
)

// GetProjects retrieves all projects ordered by id. The ordering is part
// of the contract: list views rely on it being deterministic.
func (s *SQLiteStore) GetProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := s.db.SelectContext(ctx, &projects, "SELECT * FROM projects ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	return projects, nil
}

// GetProjectByID retrieves a single project. A missing id reports
// ErrNotFound, which callers treat as a normal outcome.
func (s *SQLiteStore) GetProjectByID(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	err := s.db.GetContext(ctx, &p, "SELECT * FROM projects WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting project %s: %w", id, err)
	}
	return &p, nil
}

// CreateProject inserts a new project. The id is client-supplied and
// must be unique; a duplicate reports ErrConflict.
func (s *SQLiteStore) CreateProject(ctx context.Context, p model.Project) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("project id must not be empty")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name must not be empty")
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO projects (
			id, name, description, sponsor, project_manager,
			start_date, end_date, progress, next_milestone, milestone_date,
			status, health_score, days_to_due, budget_planned, budget_actual,
			risk_level, top_risks, key_dependencies, core_team, resource_load,
			last_updated, next_steering_committee, stakeholders,
			created_at, updated_at
		) VALUES (
			:id, :name, :description, :sponsor, :project_manager,
			:start_date, :end_date, :progress, :next_milestone, :milestone_date,
			:status, :health_score, :days_to_due, :budget_planned, :budget_actual,
			:risk_level, :top_risks, :key_dependencies, :core_team, :resource_load,
			:last_updated, :next_steering_committee, :stakeholders,
			:created_at, :updated_at
		)`, p)
	if err != nil {
		return fmt.Errorf("creating project %s: %w", p.ID, classifyError(err))
	}
	return nil
}

// UpdateProject overwrites every mutable column of an existing project
// and bumps updated_at. Callers merge partial changes into a full
// snapshot before calling; there is no field-level patching here.
func (s *SQLiteStore) UpdateProject(ctx context.Context, p model.Project) error {
	p.UpdatedAt = time.Now().UTC()

	result, err := s.db.NamedExecContext(ctx, `
		UPDATE projects SET
			name = :name, description = :description, sponsor = :sponsor,
			project_manager = :project_manager, start_date = :start_date,
			end_date = :end_date, progress = :progress,
			next_milestone = :next_milestone, milestone_date = :milestone_date,
			status = :status, health_score = :health_score,
			days_to_due = :days_to_due, budget_planned = :budget_planned,
			budget_actual = :budget_actual, risk_level = :risk_level,
			top_risks = :top_risks, key_dependencies = :key_dependencies,
			core_team = :core_team, resource_load = :resource_load,
			last_updated = :last_updated,
			next_steering_committee = :next_steering_committee,
			stakeholders = :stakeholders, updated_at = :updated_at
		WHERE id = :id`, p)
	if err != nil {
		return fmt.Errorf("updating project %s: %w", p.ID, classifyError(err))
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("project %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

// DeleteProject removes a project. Owned milestones, allocations, and
// invitations go with it via cascade. Deleting a missing id is a no-op.
func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}
	return nil
}

// GetProjectStats computes portfolio counts grouped by status, as four
// independent counting queries.
func (s *SQLiteStore) GetProjectStats(ctx context.Context) (model.ProjectStats, error) {
	var stats model.ProjectStats

	if err := s.db.GetContext(ctx, &stats.Total,
		"SELECT COUNT(*) FROM projects"); err != nil {
		return model.ProjectStats{}, fmt.Errorf("counting projects: %w", err)
	}

	counts := []struct {
		status string
		dest   *int
	}{
		{model.ProjectStatusOnTrack, &stats.OnTrack},
		{model.ProjectStatusAtRisk, &stats.AtRisk},
		{model.ProjectStatusBlocked, &stats.Blocked},
	}
	for _, c := range counts {
		if err := s.db.GetContext(ctx, c.dest,
			"SELECT COUNT(*) FROM projects WHERE status = ?", c.status); err != nil {
			return model.ProjectStats{}, fmt.Errorf("counting %s projects: %w", c.status, err)
		}
	}

	return stats, nil
}
