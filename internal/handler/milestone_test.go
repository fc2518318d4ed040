package handler_test

import (
	"context"
	"net/http"
	"regexp"
	"testing"

	"github.com/pdash/portfolio-dashboard/internal/model"
	"github.com/pdash/portfolio-dashboard/internal/store"
)

func seedMilestone(t *testing.T, s *store.SQLiteStore, id, projectID, startDate string) {
	t.Helper()
	_, err := s.CreateMilestone(context.Background(), model.Milestone{
		ID:        id,
		ProjectID: projectID,
		Name:      "Milestone " + id,
		StartDate: startDate,
		EndDate:   "2024-12-31",
		Status:    model.MilestoneStatusUpcoming,
		Priority:  model.RiskMedium,
	})
	if err != nil {
		t.Fatalf("seeding milestone %s: %v", id, err)
	}
}

func TestMilestoneCreateGeneratesID(t *testing.T) {
	e, s := newTestRouter(t)
	seedProject(t, s, "PRJ-100")

	rec := doJSON(t, e, http.MethodPost, "/api/milestones", `{
		"projectId": "PRJ-100",
		"name": "Kickoff",
		"startDate": "2024-02-01",
		"status": "upcoming",
		"priority": "low"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &created)
	if !regexp.MustCompile(`^ms\d+-[0-9a-z]{9}$`).MatchString(created.ID) {
		t.Errorf("generated id %q does not match expected shape", created.ID)
	}
}

func TestMilestoneCreateDanglingProject(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := doJSON(t, e, http.MethodPost, "/api/milestones",
		`{"projectId": "PRJ-999", "name": "Orphan", "startDate": "2024-02-01", "status": "upcoming", "priority": "low"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("dangling project: got %d, want 409; body %s", rec.Code, rec.Body.String())
	}
}

func TestMilestoneListFilterAndShape(t *testing.T) {
	e, s := newTestRouter(t)
	seedProject(t, s, "PRJ-100")
	seedProject(t, s, "PRJ-200")
	seedMilestone(t, s, "ms1", "PRJ-100", "2024-05-01")
	seedMilestone(t, s, "ms2", "PRJ-100", "2024-02-01")
	seedMilestone(t, s, "ms3", "PRJ-200", "2024-03-01")

	rec := doJSON(t, e, http.MethodGet, "/api/milestones", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status: got %d", rec.Code)
	}
	var all []model.Milestone
	decodeBody(t, rec, &all)
	if len(all) != 3 || all[0].ID != "ms2" || all[1].ID != "ms3" || all[2].ID != "ms1" {
		t.Errorf("milestones not ordered by start date: %+v", all)
	}
	if all[0].ProjectName != "Project PRJ-100" {
		t.Errorf("project name: got %q", all[0].ProjectName)
	}
	if all[0].Assignees == nil || all[0].Dependencies == nil {
		t.Error("relations should serialize as empty arrays, not null")
	}

	rec = doJSON(t, e, http.MethodGet, "/api/milestones?projectId=PRJ-200", "")
	var filtered []model.Milestone
	decodeBody(t, rec, &filtered)
	if len(filtered) != 1 || filtered[0].ID != "ms3" {
		t.Errorf("filtered milestones: %+v", filtered)
	}
}

func TestMilestoneUpdateMergesPartialBody(t *testing.T) {
	e, s := newTestRouter(t)
	seedProject(t, s, "PRJ-100")
	seedMilestone(t, s, "ms1", "PRJ-100", "2024-02-01")

	rec := doJSON(t, e, http.MethodPut, "/api/milestones/ms1", `{"progress": 60, "status": "in-progress"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var merged model.Milestone
	decodeBody(t, rec, &merged)
	if merged.Progress != 60 || merged.Status != model.MilestoneStatusInProgress {
		t.Errorf("update not applied: %+v", merged)
	}
	if merged.Name != "Milestone ms1" || merged.StartDate != "2024-02-01" {
		t.Errorf("merge dropped stored fields: %+v", merged)
	}
}

func TestMilestoneDeleteMissing(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := doJSON(t, e, http.MethodDelete, "/api/milestones/ms-absent", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}
