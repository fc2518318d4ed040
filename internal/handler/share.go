package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pdash/portfolio-dashboard/internal/mail"
	"github.com/pdash/portfolio-dashboard/internal/model"
	"github.com/pdash/portfolio-dashboard/internal/store"
)

// shareRequest is the payload for sending a collaboration invitation.
type shareRequest struct {
	To          string `json:"to" validate:"required,email"`
	ProjectID   string `json:"projectId" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=viewer editor"`
	Message     string `json:"message"`
	InviterName string `json:"inviterName"`
}

// ShareHandler sends and records project share invitations.
type ShareHandler struct {
	store  store.Store
	mailer *mail.Mailer
}

// NewShareHandler creates a ShareHandler.
func NewShareHandler(s store.Store, m *mail.Mailer) *ShareHandler {
	return &ShareHandler{store: s, mailer: m}
}

// Share validates the request, emails the invitation, and persists a
// record of it. The project must exist.
func (h *ShareHandler) Share(c echo.Context) error {
	var req shareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	project, err := h.store.GetProjectByID(ctx, req.ProjectID)
	if err != nil {
		return err
	}

	inv := model.ShareInvitation{
		ProjectID: req.ProjectID,
		Email:     req.To,
		Role:      req.Role,
		Message:   req.Message,
		Inviter:   req.InviterName,
	}
	if err := h.mailer.SendShareInvitation(inv, project.Name); err != nil {
		return err
	}
	if _, err := h.store.CreateInvitation(ctx, inv); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Invitation sent successfully",
		"sentTo":  req.To,
	})
}
