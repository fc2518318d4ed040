package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pdash/portfolio-dashboard/internal/store"
)

// TeamHandler serves the team-utilization view.
type TeamHandler struct {
	store store.Store
}

// NewTeamHandler creates a TeamHandler backed by the given store.
func NewTeamHandler(s store.Store) *TeamHandler {
	return &TeamHandler{store: s}
}

// Utilization returns every team member together with the dense
// member-by-week utilization matrix.
func (h *TeamHandler) Utilization(c echo.Context) error {
	matrix, err := h.store.GetUtilizationMatrix(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, matrix)
}
