package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/pdash/portfolio-dashboard/internal/model"
)

func TestTeamUtilizationEndpoint(t *testing.T) {
	e, s := newTestRouter(t)
	ctx := context.Background()

	err := s.CreateTeamMember(ctx, model.TeamMember{
		ID: "tm1", Name: "Adam Lang", Role: "Engineer",
		Department: "Engineering", Capacity: 40, CurrentLoad: 30,
	})
	if err != nil {
		t.Fatalf("creating member: %v", err)
	}
	if err := s.SetUtilization(ctx, "tm1", "Week 2", 95); err != nil {
		t.Fatalf("setting utilization: %v", err)
	}

	rec := doJSON(t, e, http.MethodGet, "/api/team-members", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var matrix model.UtilizationMatrix
	decodeBody(t, rec, &matrix)

	if len(matrix.TeamMembers) != 1 || matrix.TeamMembers[0].Name != "Adam Lang" {
		t.Errorf("team members: %+v", matrix.TeamMembers)
	}
	if len(matrix.Weeks) != 8 || matrix.Weeks[0] != "Week 1" {
		t.Errorf("weeks: %+v", matrix.Weeks)
	}
	cells := matrix.UtilizationData["tm1"]
	if cells["Week 2"] != 95 {
		t.Errorf("Week 2: got %d, want 95", cells["Week 2"])
	}
	if cells["Week 1"] != 0 {
		t.Errorf("Week 1: got %d, want 0", cells["Week 1"])
	}
}
