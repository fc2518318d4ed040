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

// GetTeamMembers retrieves all team members ordered by name, each with
// its derived project-id list.
func (s *SQLiteStore) GetTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := s.db.SelectContext(ctx, &members, "SELECT * FROM team_members ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying team members: %w", err)
	}

	for i := range members {
		if err := s.loadMemberProjects(ctx, &members[i]); err != nil {
			return nil, err
		}
	}
	return members, nil
}

// GetTeamMemberByID retrieves a single team member with its derived
// project list. A missing id reports ErrNotFound.
func (s *SQLiteStore) GetTeamMemberByID(ctx context.Context, id string) (*model.TeamMember, error) {
	var m model.TeamMember
	err := s.db.GetContext(ctx, &m, "SELECT * FROM team_members WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team member %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting team member %s: %w", id, err)
	}
	if err := s.loadMemberProjects(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// loadMemberProjects fills the derived project-id list for a member.
// Always non-nil so it serializes as [] rather than null.
func (s *SQLiteStore) loadMemberProjects(ctx context.Context, m *model.TeamMember) error {
	m.Projects = []string{}
	err := s.db.SelectContext(ctx, &m.Projects, `
		SELECT project_id FROM team_member_projects
		WHERE team_member_id = ?
		ORDER BY project_id`, m.ID)
	if err != nil {
		return fmt.Errorf("loading projects for member %s: %w", m.ID, err)
	}
	if m.Projects == nil {
		m.Projects = []string{}
	}
	return nil
}

// CreateTeamMember inserts a new team member.
func (s *SQLiteStore) CreateTeamMember(ctx context.Context, m model.TeamMember) error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("team member id must not be empty")
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("team member name must not be empty")
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO team_members (id, name, role, department, capacity, current_load, created_at, updated_at)
		VALUES (:id, :name, :role, :department, :capacity, :current_load, :created_at, :updated_at)`, m)
	if err != nil {
		return fmt.Errorf("creating team member %s: %w", m.ID, classifyError(err))
	}
	return nil
}

// DeleteTeamMember removes a team member. Allocation, utilization, and
// milestone-assignee rows go with it via cascade. Deleting a missing id
// is a no-op.
func (s *SQLiteStore) DeleteTeamMember(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM team_members WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting team member %s: %w", id, err)
	}
	return nil
}

// AssignProject records a member's allocation percentage on a project,
// replacing any existing allocation for the pair.
func (s *SQLiteStore) AssignProject(ctx context.Context, memberID, projectID string, allocation int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO team_member_projects (team_member_id, project_id, allocation)
		VALUES (?, ?, ?)`,
		memberID, projectID, allocation)
	if err != nil {
		return fmt.Errorf("assigning member %s to project %s: %w",
			memberID, projectID, classifyError(err))
	}
	return nil
}

// SetUtilization records a member's utilization percentage for a week,
// replacing any existing fact for the pair. Values above 100 represent
// overload and are stored as-is.
func (s *SQLiteStore) SetUtilization(ctx context.Context, memberID, week string, utilization int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO resource_utilization (team_member_id, week, utilization)
		VALUES (?, ?, ?)`,
		memberID, week, utilization)
	if err != nil {
		return fmt.Errorf("setting utilization for member %s week %q: %w",
			memberID, week, classifyError(err))
	}
	return nil
}

// GetUtilizationMatrix materializes the dense member-by-week view from
// the sparse fact table. Every (member, week) cell is present; pairs
// with no fact row read as 0. That default is part of the contract.
func (s *SQLiteStore) GetUtilizationMatrix(ctx context.Context) (*model.UtilizationMatrix, error) {
	members, err := s.GetTeamMembers(ctx)
	if err != nil {
		return nil, err
	}

	type factRow struct {
		TeamMemberID string `db:"team_member_id"`
		Week         string `db:"week"`
		Utilization  int    `db:"utilization"`
	}
	var facts []factRow
	err = s.db.SelectContext(ctx, &facts,
		"SELECT team_member_id, week, utilization FROM resource_utilization")
	if err != nil {
		return nil, fmt.Errorf("querying utilization facts: %w", err)
	}

	byMemberWeek := make(map[string]map[string]int, len(members))
	for _, f := range facts {
		if byMemberWeek[f.TeamMemberID] == nil {
			byMemberWeek[f.TeamMemberID] = make(map[string]int)
		}
		byMemberWeek[f.TeamMemberID][f.Week] = f.Utilization
	}

	data := make(map[string]map[string]int, len(members))
	for _, m := range members {
		data[m.ID] = make(map[string]int, len(model.UtilizationWeeks))
		for _, week := range model.UtilizationWeeks {
			data[m.ID][week] = byMemberWeek[m.ID][week]
		}
	}

	if members == nil {
		members = []model.TeamMember{}
	}
	return &model.UtilizationMatrix{
		TeamMembers:     members,
		Weeks:           model.UtilizationWeeks,
		UtilizationData: data,
	}, nil
}
