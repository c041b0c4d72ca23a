package app

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/catalogadmin/internal/middleware"
	"github.com/keyxmakerx/catalogadmin/internal/templates/pages"
)

// RegisterRoutes sets up all application routes. It registers the landing
// page and health check directly and delegates to each section's route
// registration.
//
// This is the single place where all routes are aggregated. When a new
// section is added, its routes are registered here and its entry goes into
// modules.Registry.
func (a *App) RegisterRoutes() {
	e := a.Echo

	// Landing page.
	e.GET("/", func(c echo.Context) error {
		return middleware.Render(c, http.StatusOK, pages.Landing())
	})

	// Health check endpoint for container health monitoring.
	e.GET("/healthz", a.healthz)

	// --- Sections ---
	a.Genres.RegisterRoutes(e)
	a.Directors.RegisterRoutes(e)
	a.Producers.RegisterRoutes(e)
	a.ContentTypes.RegisterRoutes(e)
	a.Medias.RegisterRoutes(e)
}

// healthz reports whether the dashboard's own dependencies are reachable.
// The catalog backend is not probed; its outages surface on the pages.
func (a *App) healthz(c echo.Context) error {
	status := map[string]string{"status": "ok", "redis": "disabled"}
	if a.Redis != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := a.Redis.Ping(ctx).Err(); err != nil {
			status["status"] = "degraded"
			status["redis"] = "unreachable"
			return c.JSON(http.StatusServiceUnavailable, status)
		}
		status["redis"] = "ok"
	}
	return c.JSON(http.StatusOK, status)
}
