package store

import (
	"context"
	"errors"

	"github.com/pdash/portfolio-dashboard/internal/model"
)

// Sentinel errors for the failure modes callers are expected to
// distinguish. Storage-layer errors outside these propagate unmodified.
var (
	// ErrNotFound marks a lookup or update against a missing id.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness or foreign-key violation.
	ErrConflict = errors.New("constraint violation")
)

// MilestoneFilter narrows milestone list queries.
type MilestoneFilter struct {
	// ProjectID limits results to one project when non-nil.
	ProjectID *string
}

// Store defines the persistence interface for projects, milestones,
// team members, utilization facts, and share invitations.
type Store interface {
	// === Lifecycle ===

	// Initialize seeds the canonical sample dataset when the projects
	// table is empty. Safe to call on every process start.
	Initialize(ctx context.Context) error
	// Reset clears every table and reseeds, all-or-nothing.
	Reset(ctx context.Context) error
	Close() error

	// === Projects ===

	GetProjects(ctx context.Context) ([]model.Project, error)
	GetProjectByID(ctx context.Context, id string) (*model.Project, error)
	CreateProject(ctx context.Context, p model.Project) error
	UpdateProject(ctx context.Context, p model.Project) error
	DeleteProject(ctx context.Context, id string) error
	GetProjectStats(ctx context.Context) (model.ProjectStats, error)

	// === Milestones ===

	GetMilestones(ctx context.Context, filter MilestoneFilter) ([]model.Milestone, error)
	GetMilestoneByID(ctx context.Context, id string) (*model.Milestone, error)
	CreateMilestone(ctx context.Context, m model.Milestone) (string, error)
	UpdateMilestone(ctx context.Context, m model.Milestone) error
	DeleteMilestone(ctx context.Context, id string) error
	SetMilestoneAssignees(ctx context.Context, milestoneID string, memberIDs []string) error
	SetMilestoneDependencies(ctx context.Context, milestoneID string, dependencyIDs []string) error

	// === Team members & utilization ===

	GetTeamMembers(ctx context.Context) ([]model.TeamMember, error)
	GetTeamMemberByID(ctx context.Context, id string) (*model.TeamMember, error)
	CreateTeamMember(ctx context.Context, m model.TeamMember) error
	DeleteTeamMember(ctx context.Context, id string) error
	AssignProject(ctx context.Context, memberID, projectID string, allocation int) error
	SetUtilization(ctx context.Context, memberID, week string, utilization int) error
	GetUtilizationMatrix(ctx context.Context) (*model.UtilizationMatrix, error)

	// === Share invitations ===

	CreateInvitation(ctx context.Context, inv model.ShareInvitation) (string, error)
	GetInvitationsForProject(ctx context.Context, projectID string) ([]model.ShareInvitation, error)
}
