package store_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pdash/portfolio-dashboard/internal/model"
	"github.com/pdash/portfolio-dashboard/internal/store"
	"github.com/pdash/portfolio-dashboard/tests/testutil"
)

func sampleMilestone(id, projectID string) model.Milestone {
	return model.Milestone{
		ID:          id,
		ProjectID:   projectID,
		Name:        "Milestone " + id,
		Description: "A milestone used in tests",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-31",
		Progress:    0,
		Status:      model.MilestoneStatusUpcoming,
		Priority:    model.RiskMedium,
	}
}

func mustCreateProject(t *testing.T, s *store.SQLiteStore, id string) {
	t.Helper()
	if err := s.CreateProject(context.Background(), sampleProject(id)); err != nil {
		t.Fatalf("creating project %s: %v", id, err)
	}
}

func mustCreateMember(t *testing.T, s *store.SQLiteStore, id, name string) {
	t.Helper()
	err := s.CreateTeamMember(context.Background(), model.TeamMember{
		ID:          id,
		Name:        name,
		Role:        "Engineer",
		Department:  "Engineering",
		Capacity:    40,
		CurrentLoad: 30,
	})
	if err != nil {
		t.Fatalf("creating team member %s: %v", id, err)
	}
}

func TestCreateMilestoneGeneratesID(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	mustCreateProject(t, s, "PRJ-100")

	idPattern := regexp.MustCompile(`^ms\d+-[0-9a-z]{9}$`)

	m := sampleMilestone("", "PRJ-100")
	first, err := s.CreateMilestone(ctx, m)
	if err != nil {
		t.Fatalf("creating milestone: %v", err)
	}
	if !idPattern.MatchString(first) {
		t.Errorf("generated id %q does not match expected shape", first)
	}

	second, err := s.CreateMilestone(ctx, m)
	if err != nil {
		t.Fatalf("creating second milestone: %v", err)
	}
	if second == first {
		t.Errorf("generated ids collided: %q", first)
	}
}

func TestCreateMilestoneDanglingProject(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.CreateMilestone(context.Background(), sampleMilestone("ms1", "PRJ-999"))
	if !errors.Is(err, store.ErrConflict) {
		t.Errorf("dangling project reference: got %v, want ErrConflict", err)
	}
}

func TestGetMilestoneRelationsEmpty(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	mustCreateProject(t, s, "PRJ-100")

	if _, err := s.CreateMilestone(ctx, sampleMilestone("ms1", "PRJ-100")); err != nil {
		t.Fatalf("creating milestone: %v", err)
	}

	m, err := s.GetMilestoneByID(ctx, "ms1")
	if err != nil {
		t.Fatalf("getting milestone: %v", err)
	}
	if m.Assignees == nil || len(m.Assignees) != 0 {
		t.Errorf("assignees: got %#v, want empty non-nil slice", m.Assignees)
	}
	if m.Dependencies == nil || len(m.Dependencies) != 0 {
		t.Errorf("dependencies: got %#v, want empty non-nil slice", m.Dependencies)
	}
}

func TestGetMilestonesReshapesRelations(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	mustCreateProject(t, s, "PRJ-100")
	mustCreateMember(t, s, "tm1", "Bea Ortiz")
	mustCreateMember(t, s, "tm2", "Adam Lang")

	if _, err := s.CreateMilestone(ctx, sampleMilestone("ms1", "PRJ-100")); err != nil {
		t.Fatalf("creating milestone: %v", err)
	}
	dep := sampleMilestone("ms2", "PRJ-100")
	dep.StartDate = "2024-04-01"
	if _, err := s.CreateMilestone(ctx, dep); err != nil {
		t.Fatalf("creating milestone: %v", err)
	}
	if err := s.SetMilestoneAssignees(ctx, "ms2", []string{"tm1", "tm2"}); err != nil {
		t.Fatalf("setting assignees: %v", err)
	}
	if err := s.SetMilestoneDependencies(ctx, "ms2", []string{"ms1"}); err != nil {
		t.Fatalf("setting dependencies: %v", err)
	}

	m, err := s.GetMilestoneByID(ctx, "ms2")
	if err != nil {
		t.Fatalf("getting milestone: %v", err)
	}
	if m.ProjectName != "Test Project PRJ-100" {
		t.Errorf("project name: got %q", m.ProjectName)
	}
	// Assignees surface as display names ordered by name.
	if len(m.Assignees) != 2 || m.Assignees[0] != "Adam Lang" || m.Assignees[1] != "Bea Ortiz" {
		t.Errorf("assignees: got %#v", m.Assignees)
	}
	// Dependencies surface as milestone ids.
	if len(m.Dependencies) != 1 || m.Dependencies[0] != "ms1" {
		t.Errorf("dependencies: got %#v", m.Dependencies)
	}
}

func TestGetMilestonesOrderedByStartDate(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	mustCreateProject(t, s, "PRJ-100")
	mustCreateProject(t, s, "PRJ-200")

	dates := map[string]string{
		"ms1": "2024-06-01",
		"ms2": "2024-01-15",
		"ms3": "2024-03-10",
	}
	for id, start := range dates {
		project := "PRJ-100"
		if id == "ms3" {
			project = "PRJ-200"
		}
		m := sampleMilestone(id, project)
		m.StartDate = start
		if _, err := s.CreateMilestone(ctx, m); err != nil {
			t.Fatalf("creating milestone %s: %v", id, err)
		}
	}

	all, err := s.GetMilestones(ctx, store.MilestoneFilter{})
	if err != nil {
		t.Fatalf("listing milestones: %v", err)
	}
	wantOrder := []string{"ms2", "ms3", "ms1"}
	if len(all) != len(wantOrder) {
		t.Fatalf("got %d milestones, want %d", len(all), len(wantOrder))
	}
	for i, id := range wantOrder {
		if all[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, all[i].ID, id)
		}
	}

	projectID := "PRJ-100"
	filtered, err := s.GetMilestones(ctx, store.MilestoneFilter{ProjectID: &projectID})
	if err != nil {
		t.Fatalf("listing filtered milestones: %v", err)
	}
	if len(filtered) != 2 || filtered[0].ID != "ms2" || filtered[1].ID != "ms1" {
		t.Errorf("filtered milestones: got %#v", filtered)
	}
}

func TestUpdateMilestone(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	mustCreateProject(t, s, "PRJ-100")

	if _, err := s.CreateMilestone(ctx, sampleMilestone("ms1", "PRJ-100")); err != nil {
		t.Fatalf("creating milestone: %v", err)
	}

	m := sampleMilestone("ms1", "PRJ-100")
	m.Progress = 75
	m.Status = model.MilestoneStatusInProgress
	if err := s.UpdateMilestone(ctx, m); err != nil {
		t.Fatalf("updating milestone: %v", err)
	}

	got, err := s.GetMilestoneByID(ctx, "ms1")
	if err != nil {
		t.Fatalf("getting milestone: %v", err)
	}
	if got.Progress != 75 || got.Status != model.MilestoneStatusInProgress {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestUpdateMilestoneMissing(t *testing.T) {
	s := testutil.NewTestStore(t)
	mustCreateProject(t, s, "PRJ-100")

	err := s.UpdateMilestone(context.Background(), sampleMilestone("ms-absent", "PRJ-100"))
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("updating missing milestone: got %v, want ErrNotFound", err)
	}
}

func TestDeleteMilestoneClearsDependencyRows(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	mustCreateProject(t, s, "PRJ-100")

	for _, id := range []string{"ms1", "ms2", "ms3"} {
		if _, err := s.CreateMilestone(ctx, sampleMilestone(id, "PRJ-100")); err != nil {
			t.Fatalf("creating milestone %s: %v", id, err)
		}
	}
	// ms2 depends on ms1; ms1 depends on ms3. Deleting ms1 must clear
	// both the row where it is the dependent and the row where it is
	// the dependency.
	if err := s.SetMilestoneDependencies(ctx, "ms2", []string{"ms1"}); err != nil {
		t.Fatalf("setting dependencies: %v", err)
	}
	if err := s.SetMilestoneDependencies(ctx, "ms1", []string{"ms3"}); err != nil {
		t.Fatalf("setting dependencies: %v", err)
	}

	if err := s.DeleteMilestone(ctx, "ms1"); err != nil {
		t.Fatalf("deleting milestone: %v", err)
	}

	ms2, err := s.GetMilestoneByID(ctx, "ms2")
	if err != nil {
		t.Fatalf("getting milestone: %v", err)
	}
	if len(ms2.Dependencies) != 0 {
		t.Errorf("ms2 still references deleted milestone: %#v", ms2.Dependencies)
	}
}

func TestDeleteMilestoneMissingIsNoop(t *testing.T) {
	s := testutil.NewTestStore(t)

	if err := s.DeleteMilestone(context.Background(), "ms-absent"); err != nil {
		t.Errorf("deleting missing milestone: got %v, want nil", err)
	}
}

func TestSetMilestoneAssigneesReplaces(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	mustCreateProject(t, s, "PRJ-100")
	mustCreateMember(t, s, "tm1", "Bea Ortiz")
	mustCreateMember(t, s, "tm2", "Adam Lang")

	if _, err := s.CreateMilestone(ctx, sampleMilestone("ms1", "PRJ-100")); err != nil {
		t.Fatalf("creating milestone: %v", err)
	}
	if err := s.SetMilestoneAssignees(ctx, "ms1", []string{"tm1", "tm2"}); err != nil {
		t.Fatalf("setting assignees: %v", err)
	}
	if err := s.SetMilestoneAssignees(ctx, "ms1", []string{"tm2"}); err != nil {
		t.Fatalf("replacing assignees: %v", err)
	}

	m, err := s.GetMilestoneByID(ctx, "ms1")
	if err != nil {
		t.Fatalf("getting milestone: %v", err)
	}
	if len(m.Assignees) != 1 || m.Assignees[0] != "Adam Lang" {
		t.Errorf("assignees after replace: got %#v", m.Assignees)
	}
}
