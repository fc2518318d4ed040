package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pdash/portfolio-dashboard/internal/model"
	"github.com/pdash/portfolio-dashboard/internal/store"
)

// ProjectHandler serves project CRUD and portfolio statistics.
type ProjectHandler struct {
	store store.Store
}

// NewProjectHandler creates a ProjectHandler backed by the given store.
func NewProjectHandler(s store.Store) *ProjectHandler {
	return &ProjectHandler{store: s}
}

// List returns all projects ordered by id.
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.store.GetProjects(c.Request().Context())
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []model.Project{}
	}
	return c.JSON(http.StatusOK, projects)
}

// Get returns a single project or 404.
func (h *ProjectHandler) Get(c echo.Context) error {
	p, err := h.store.GetProjectByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create inserts a new project from the full request body. The id is
// client-supplied; a duplicate yields 409.
func (h *ProjectHandler) Create(c echo.Context) error {
	var p model.Project
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.store.CreateProject(c.Request().Context(), p); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "id": p.ID})
}

// Update applies merge-at-caller semantics: the stored snapshot is
// fetched, the partial body is layered over it, and the result replaces
// every column. Absent fields keep their stored values.
func (h *ProjectHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	existing, err := h.store.GetProjectByID(ctx, id)
	if err != nil {
		return err
	}

	merged := *existing
	if err := c.Bind(&merged); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	merged.ID = id

	if err := h.store.UpdateProject(ctx, merged); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, merged)
}

// Delete removes a project after confirming it exists, so callers get a
// 404 rather than a silent no-op.
func (h *ProjectHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if _, err := h.store.GetProjectByID(ctx, id); err != nil {
		return err
	}
	if err := h.store.DeleteProject(ctx, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

// Stats returns portfolio counts grouped by status.
func (h *ProjectHandler) Stats(c echo.Context) error {
	stats, err := h.store.GetProjectStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
