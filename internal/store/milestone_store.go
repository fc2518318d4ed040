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

// milestoneRow carries the joined project name alongside the milestone
// columns when scanning list/get queries.
type milestoneRow struct {
	model.Milestone
	JoinedProjectName string `db:"joined_project_name"`
}

// GetMilestones retrieves milestones ordered by start date, with the
// project name joined in and assignees/dependencies reshaped into flat
// lists. Assignees hold member display names; dependencies hold
// milestone ids.
func (s *SQLiteStore) GetMilestones(ctx context.Context, filter MilestoneFilter) ([]model.Milestone, error) {
	query := `
		SELECT m.*, p.name AS joined_project_name
		FROM milestones m
		JOIN projects p ON m.project_id = p.id`
	var args []interface{}
	if filter.ProjectID != nil {
		query += " WHERE m.project_id = ?"
		args = append(args, *filter.ProjectID)
	}
	query += " ORDER BY m.start_date"

	var rows []milestoneRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("querying milestones: %w", err)
	}

	milestones := make([]model.Milestone, 0, len(rows))
	for _, row := range rows {
		m := row.Milestone
		m.ProjectName = row.JoinedProjectName
		if err := s.loadMilestoneRelations(ctx, &m); err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	return milestones, nil
}

// GetMilestoneByID retrieves a single milestone with reshaped relations.
// A missing id reports ErrNotFound.
func (s *SQLiteStore) GetMilestoneByID(ctx context.Context, id string) (*model.Milestone, error) {
	var row milestoneRow
	err := s.db.GetContext(ctx, &row, `
		SELECT m.*, p.name AS joined_project_name
		FROM milestones m
		JOIN projects p ON m.project_id = p.id
		WHERE m.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("milestone %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting milestone %s: %w", id, err)
	}

	m := row.Milestone
	m.ProjectName = row.JoinedProjectName
	if err := s.loadMilestoneRelations(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// loadMilestoneRelations fills the assignee and dependency lists for a
// milestone via follow-up queries. The lists are always non-nil so they
// serialize as [] rather than null.
func (s *SQLiteStore) loadMilestoneRelations(ctx context.Context, m *model.Milestone) error {
	m.Assignees = []string{}
	err := s.db.SelectContext(ctx, &m.Assignees, `
		SELECT tm.name
		FROM milestone_assignees ma
		JOIN team_members tm ON ma.team_member_id = tm.id
		WHERE ma.milestone_id = ?
		ORDER BY tm.name`, m.ID)
	if err != nil {
		return fmt.Errorf("loading assignees for milestone %s: %w", m.ID, err)
	}
	if m.Assignees == nil {
		m.Assignees = []string{}
	}

	m.Dependencies = []string{}
	err = s.db.SelectContext(ctx, &m.Dependencies, `
		SELECT dependency_id
		FROM milestone_dependencies
		WHERE milestone_id = ?
		ORDER BY dependency_id`, m.ID)
	if err != nil {
		return fmt.Errorf("loading dependencies for milestone %s: %w", m.ID, err)
	}
	if m.Dependencies == nil {
		m.Dependencies = []string{}
	}
	return nil
}

// CreateMilestone inserts a new milestone and returns its id. When the
// id is blank a fresh one is synthesized. The project_id must reference
// an existing project; a dangling reference reports ErrConflict.
func (s *SQLiteStore) CreateMilestone(ctx context.Context, m model.Milestone) (string, error) {
	if strings.TrimSpace(m.Name) == "" {
		return "", fmt.Errorf("milestone name must not be empty")
	}
	if strings.TrimSpace(m.ProjectID) == "" {
		return "", fmt.Errorf("milestone project id must not be empty")
	}
	if strings.TrimSpace(m.ID) == "" {
		m.ID = model.NewMilestoneID()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO milestones (
			id, project_id, name, description, start_date, end_date,
			progress, status, priority, created_at, updated_at
		) VALUES (
			:id, :project_id, :name, :description, :start_date, :end_date,
			:progress, :status, :priority, :created_at, :updated_at
		)`, m)
	if err != nil {
		return "", fmt.Errorf("creating milestone %s: %w", m.ID, classifyError(err))
	}
	return m.ID, nil
}

// UpdateMilestone overwrites the scalar columns of an existing milestone
// and bumps updated_at. Assignee and dependency rows are untouched; they
// are managed through SetMilestoneAssignees/SetMilestoneDependencies.
func (s *SQLiteStore) UpdateMilestone(ctx context.Context, m model.Milestone) error {
	m.UpdatedAt = time.Now().UTC()

	result, err := s.db.NamedExecContext(ctx, `
		UPDATE milestones SET
			project_id = :project_id, name = :name, description = :description,
			start_date = :start_date, end_date = :end_date, progress = :progress,
			status = :status, priority = :priority, updated_at = :updated_at
		WHERE id = :id`, m)
	if err != nil {
		return fmt.Errorf("updating milestone %s: %w", m.ID, classifyError(err))
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("milestone %s: %w", m.ID, ErrNotFound)
	}
	return nil
}

// DeleteMilestone removes a milestone. Cascades clear its assignee rows
// and dependency rows in both directions, so other milestones never
// keep a dangling reference to it. Deleting a missing id is a no-op.
func (s *SQLiteStore) DeleteMilestone(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM milestones WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting milestone %s: %w", id, err)
	}
	return nil
}

// SetMilestoneAssignees replaces all assignee rows for a milestone.
func (s *SQLiteStore) SetMilestoneAssignees(ctx context.Context, milestoneID string, memberIDs []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM milestone_assignees WHERE milestone_id = ?", milestoneID); err != nil {
		return fmt.Errorf("clearing assignees for milestone %s: %w", milestoneID, err)
	}
	for _, memberID := range memberIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO milestone_assignees (milestone_id, team_member_id, role)
			VALUES (?, ?, 'Team Member')`,
			milestoneID, memberID); err != nil {
			return fmt.Errorf("assigning member %s to milestone %s: %w",
				memberID, milestoneID, classifyError(err))
		}
	}

	return tx.Commit()
}

// SetMilestoneDependencies replaces all dependency rows for a milestone.
// No cycle check is performed; dependency graphs are not guaranteed
// acyclic.
func (s *SQLiteStore) SetMilestoneDependencies(ctx context.Context, milestoneID string, dependencyIDs []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM milestone_dependencies WHERE milestone_id = ?", milestoneID); err != nil {
		return fmt.Errorf("clearing dependencies for milestone %s: %w", milestoneID, err)
	}
	for _, depID := range dependencyIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO milestone_dependencies (milestone_id, dependency_id)
			VALUES (?, ?)`,
			milestoneID, depID); err != nil {
			return fmt.Errorf("adding dependency %s to milestone %s: %w",
				depID, milestoneID, classifyError(err))
		}
	}

	return tx.Commit()
}
