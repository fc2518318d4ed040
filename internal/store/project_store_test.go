package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pdash/portfolio-dashboard/internal/model"
	"github.com/pdash/portfolio-dashboard/internal/store"
	"github.com/pdash/portfolio-dashboard/tests/testutil"
)

func sampleProject(id string) model.Project {
	return model.Project{
		ID:                    id,
		Name:                  "Test Project " + id,
		Description:           "A project used in tests",
		Sponsor:               "Jane Doe, CTO",
		ProjectManager:        "John Roe",
		StartDate:             "2024-01-01",
		EndDate:               "2024-12-31",
		Progress:              50,
		NextMilestone:         "Checkpoint",
		MilestoneDate:         "2024-06-01",
		Status:                model.ProjectStatusOnTrack,
		HealthScore:           80,
		DaysToDue:             30,
		BudgetPlanned:         1000,
		BudgetActual:          400,
		RiskLevel:             model.RiskMedium,
		TopRisks:              "None worth naming",
		KeyDependencies:       "Vendor delivery",
		CoreTeam:              "5 members",
		ResourceLoad:          70,
		LastUpdated:           "2024-05-01",
		NextSteeringCommittee: "2024-05-15",
		Stakeholders:          "IT, Finance",
	}
}

func TestProjectRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	want := sampleProject("PRJ-100")
	if err := s.CreateProject(ctx, want); err != nil {
		t.Fatalf("creating project: %v", err)
	}

	got, err := s.GetProjectByID(ctx, "PRJ-100")
	if err != nil {
		t.Fatalf("getting project: %v", err)
	}

	// Timestamps are server-set; compare everything else.
	want.CreatedAt = got.CreatedAt
	want.UpdatedAt = got.UpdatedAt
	if *got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, want)
	}
}

func TestGetProjectsOrderedByID(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"PRJ-300", "PRJ-100", "PRJ-200"} {
		if err := s.CreateProject(ctx, sampleProject(id)); err != nil {
			t.Fatalf("creating project %s: %v", id, err)
		}
	}

	projects, err := s.GetProjects(ctx)
	if err != nil {
		t.Fatalf("listing projects: %v", err)
	}
	wantOrder := []string{"PRJ-100", "PRJ-200", "PRJ-300"}
	if len(projects) != len(wantOrder) {
		t.Fatalf("got %d projects, want %d", len(projects), len(wantOrder))
	}
	for i, id := range wantOrder {
		if projects[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, projects[i].ID, id)
		}
	}
}

func TestCreateProjectDuplicateID(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.CreateProject(ctx, sampleProject("PRJ-100")); err != nil {
		t.Fatalf("creating project: %v", err)
	}
	err := s.CreateProject(ctx, sampleProject("PRJ-100"))
	if !errors.Is(err, store.ErrConflict) {
		t.Errorf("duplicate create: got %v, want ErrConflict", err)
	}
}

func TestGetProjectByIDAbsent(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.GetProjectByID(context.Background(), "PRJ-999")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing project: got %v, want ErrNotFound", err)
	}
}

func TestUpdateProjectAdvancesUpdatedAt(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	p := sampleProject("PRJ-100")
	if err := s.CreateProject(ctx, p); err != nil {
		t.Fatalf("creating project: %v", err)
	}
	before, err := s.GetProjectByID(ctx, "PRJ-100")
	if err != nil {
		t.Fatalf("getting project: %v", err)
	}

	p.Status = model.ProjectStatusBlocked
	if err := s.UpdateProject(ctx, p); err != nil {
		t.Fatalf("updating project: %v", err)
	}

	after, err := s.GetProjectByID(ctx, "PRJ-100")
	if err != nil {
		t.Fatalf("getting project after update: %v", err)
	}
	if after.Status != model.ProjectStatusBlocked {
		t.Errorf("status not updated: got %s", after.Status)
	}
	if after.UpdatedAt.Before(before.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v -> %v", before.UpdatedAt, after.UpdatedAt)
	}
}

func TestUpdateProjectMissing(t *testing.T) {
	s := testutil.NewTestStore(t)

	err := s.UpdateProject(context.Background(), sampleProject("PRJ-999"))
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("updating missing project: got %v, want ErrNotFound", err)
	}
}

func TestDeleteProjectCascadesMilestones(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.CreateProject(ctx, sampleProject("PRJ-100")); err != nil {
		t.Fatalf("creating project: %v", err)
	}
	if _, err := s.CreateMilestone(ctx, model.Milestone{
		ProjectID: "PRJ-100",
		Name:      "Kickoff",
		StartDate: "2024-02-01",
		Status:    model.MilestoneStatusUpcoming,
		Priority:  model.RiskLow,
	}); err != nil {
		t.Fatalf("creating milestone: %v", err)
	}

	if err := s.DeleteProject(ctx, "PRJ-100"); err != nil {
		t.Fatalf("deleting project: %v", err)
	}

	projectID := "PRJ-100"
	milestones, err := s.GetMilestones(ctx, store.MilestoneFilter{ProjectID: &projectID})
	if err != nil {
		t.Fatalf("listing milestones: %v", err)
	}
	if len(milestones) != 0 {
		t.Errorf("got %d milestones after project delete, want 0", len(milestones))
	}
}

func TestDeleteProjectMissingIsNoop(t *testing.T) {
	s := testutil.NewTestStore(t)

	if err := s.DeleteProject(context.Background(), "PRJ-999"); err != nil {
		t.Errorf("deleting missing project: got %v, want nil", err)
	}
}

func TestProjectStats(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	statuses := map[string]string{
		"PRJ-001": model.ProjectStatusOnTrack,
		"PRJ-002": model.ProjectStatusAtRisk,
		"PRJ-003": model.ProjectStatusBlocked,
		"PRJ-004": model.ProjectStatusAtRisk,
	}
	for id, status := range statuses {
		p := sampleProject(id)
		p.Status = status
		if err := s.CreateProject(ctx, p); err != nil {
			t.Fatalf("creating project %s: %v", id, err)
		}
	}

	before, err := s.GetProjectStats(ctx)
	if err != nil {
		t.Fatalf("getting stats: %v", err)
	}
	if before.Total != 4 || before.OnTrack != 1 || before.AtRisk != 2 || before.Blocked != 1 {
		t.Errorf("unexpected stats: %+v", before)
	}
	if before.Total != before.OnTrack+before.AtRisk+before.Blocked {
		t.Errorf("stats do not add up: %+v", before)
	}

	// Adding one on-track project increments onTrack by exactly 1.
	if err := s.CreateProject(ctx, sampleProject("PRJ-100")); err != nil {
		t.Fatalf("creating project: %v", err)
	}
	after, err := s.GetProjectStats(ctx)
	if err != nil {
		t.Fatalf("getting stats: %v", err)
	}
	if after.OnTrack != before.OnTrack+1 {
		t.Errorf("onTrack: got %d, want %d", after.OnTrack, before.OnTrack+1)
	}
	if after.Total != before.Total+1 {
		t.Errorf("total: got %d, want %d", after.Total, before.Total+1)
	}
}
