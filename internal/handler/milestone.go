package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pdash/portfolio-dashboard/internal/model"
	"github.com/pdash/portfolio-dashboard/internal/store"
)

// MilestoneHandler serves milestone CRUD with reshaped relations.
type MilestoneHandler struct {
	store store.Store
}

// NewMilestoneHandler creates a MilestoneHandler backed by the given store.
func NewMilestoneHandler(s store.Store) *MilestoneHandler {
	return &MilestoneHandler{store: s}
}

// List returns milestones ordered by start date, optionally filtered by
// the projectId query parameter.
func (h *MilestoneHandler) List(c echo.Context) error {
	var filter store.MilestoneFilter
	if projectID := c.QueryParam("projectId"); projectID != "" {
		filter.ProjectID = &projectID
	}

	milestones, err := h.store.GetMilestones(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, milestones)
}

// Get returns a single milestone or 404.
func (h *MilestoneHandler) Get(c echo.Context) error {
	m, err := h.store.GetMilestoneByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Create inserts a new milestone. A blank id is replaced with a
// generated one, which is echoed back to the caller.
func (h *MilestoneHandler) Create(c echo.Context) error {
	var m model.Milestone
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := h.store.CreateMilestone(c.Request().Context(), m)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

// Update applies merge-at-caller semantics over the stored snapshot and
// replaces the scalar columns. Assignee and dependency rows are not
// touched through this path.
func (h *MilestoneHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	existing, err := h.store.GetMilestoneByID(ctx, id)
	if err != nil {
		return err
	}

	merged := *existing
	if err := c.Bind(&merged); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	merged.ID = id

	if err := h.store.UpdateMilestone(ctx, merged); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, merged)
}

// Delete removes a milestone after confirming it exists.
func (h *MilestoneHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if _, err := h.store.GetMilestoneByID(ctx, id); err != nil {
		return err
	}
	if err := h.store.DeleteMilestone(ctx, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Milestone deleted successfully"})
}
