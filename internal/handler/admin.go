package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pdash/portfolio-dashboard/internal/model"
	"github.com/pdash/portfolio-dashboard/internal/store"
)

// AdminHandler serves maintenance operations: reset to the canonical
// dataset and a full data export.
type AdminHandler struct {
	store store.Store
}

// NewAdminHandler creates an AdminHandler backed by the given store.
func NewAdminHandler(s store.Store) *AdminHandler {
	return &AdminHandler{store: s}
}

// Reset clears every table and reseeds the canonical sample data.
func (h *AdminHandler) Reset(c echo.Context) error {
	if err := h.store.Reset(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Database reset successfully"})
}

// exportSnapshot bundles every entity list for a one-shot export.
type exportSnapshot struct {
	Projects    []model.Project    `json:"projects"`
	TeamMembers []model.TeamMember `json:"teamMembers"`
	Milestones  []model.Milestone  `json:"milestones"`
}

// Export returns all projects, team members, and milestones in one
// payload, with milestone relations reshaped the same way list views
// see them.
func (h *AdminHandler) Export(c echo.Context) error {
	ctx := c.Request().Context()

	projects, err := h.store.GetProjects(ctx)
	if err != nil {
		return err
	}
	members, err := h.store.GetTeamMembers(ctx)
	if err != nil {
		return err
	}
	milestones, err := h.store.GetMilestones(ctx, store.MilestoneFilter{})
	if err != nil {
		return err
	}

	if projects == nil {
		projects = []model.Project{}
	}
	if members == nil {
		members = []model.TeamMember{}
	}

	return c.JSON(http.StatusOK, exportSnapshot{
		Projects:    projects,
		TeamMembers: members,
		Milestones:  milestones,
	})
}
