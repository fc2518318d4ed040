package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pdash/portfolio-dashboard/internal/mail"
	"github.com/pdash/portfolio-dashboard/internal/store"
)

// NewRouter wires every handler onto an echo instance with the shared
// middleware stack, validator, and error mapper.
func NewRouter(s store.Store, mailer *mail.Mailer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewAppValidator()
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	projects := NewProjectHandler(s)
	milestones := NewMilestoneHandler(s)
	team := NewTeamHandler(s)
	share := NewShareHandler(s, mailer)
	admin := NewAdminHandler(s)

	api := e.Group("/api")

	api.GET("/projects", projects.List)
	api.POST("/projects", projects.Create)
	api.GET("/projects/stats", projects.Stats)
	api.POST("/projects/share", share.Share)
	api.GET("/projects/:id", projects.Get)
	api.PUT("/projects/:id", projects.Update)
	api.DELETE("/projects/:id", projects.Delete)

	api.GET("/milestones", milestones.List)
	api.POST("/milestones", milestones.Create)
	api.GET("/milestones/:id", milestones.Get)
	api.PUT("/milestones/:id", milestones.Update)
	api.DELETE("/milestones/:id", milestones.Delete)

	api.GET("/team-members", team.Utilization)

	api.POST("/admin/reset", admin.Reset)
	api.GET("/export", admin.Export)

	return e
}
