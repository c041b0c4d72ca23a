// Package app is the application bootstrap and dependency injection root.
// It creates and holds all shared infrastructure (backend client, Redis
// client, Echo instance) and wires together the catalog sections.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/keyxmakerx/catalogadmin/internal/apperror"
	"github.com/keyxmakerx/catalogadmin/internal/backend"
	"github.com/keyxmakerx/catalogadmin/internal/catalog"
	"github.com/keyxmakerx/catalogadmin/internal/config"
	"github.com/keyxmakerx/catalogadmin/internal/middleware"
	"github.com/keyxmakerx/catalogadmin/internal/plugins/contenttypes"
	"github.com/keyxmakerx/catalogadmin/internal/plugins/directors"
	"github.com/keyxmakerx/catalogadmin/internal/plugins/genres"
	"github.com/keyxmakerx/catalogadmin/internal/plugins/medias"
	"github.com/keyxmakerx/catalogadmin/internal/plugins/producers"
	"github.com/keyxmakerx/catalogadmin/internal/templates/layouts"
	"github.com/keyxmakerx/catalogadmin/internal/templates/pages"
)

// App holds all shared dependencies and the Echo HTTP server instance.
// Created once at startup in main.go and used to register all routes.
type App struct {
	// Config holds the loaded application configuration.
	Config *config.Config

	// Redis is the optional Redis client used for rate limiting. Nil when
	// REDIS_URL is unset.
	Redis *redis.Client

	// Backend is the catalog REST backend shared by every section.
	Backend *backend.Backend

	// MemoryLimiter is the in-process rate limiter used when Redis is not
	// configured. Nil otherwise; main runs its sweeper.
	MemoryLimiter *middleware.MemoryLimiter

	// Echo is the HTTP server instance.
	Echo *echo.Echo

	// Sections.
	Genres       *genres.Plugin
	Directors    *directors.Plugin
	Producers    *producers.Plugin
	ContentTypes *contenttypes.Plugin
	Medias       *medias.Plugin
}

// New creates a new App instance with the given dependencies, builds every
// section and configures the Echo server with global middleware and error
// handling. It fails if the backend configuration is unusable.
func New(cfg *config.Config, rdb *redis.Client, reporter catalog.Reporter) (*App, error) {
	b, err := backend.New(backend.Config{
		BaseURL: cfg.Backend.URL,
		Routes:  cfg.Backend.Routes,
		Timeout: cfg.Backend.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("creating backend client: %w", err)
	}

	e := echo.New()

	// Disable Echo's default banner and startup message -- we log our own.
	e.HideBanner = true
	e.HidePort = true

	// Trust forwarding headers only from known proxies so c.RealIP() is the
	// client address the rate limiter keys on.
	proxies := cfg.TrustedProxies
	if len(proxies) == 0 {
		proxies = middleware.DefaultTrustedProxies
	}
	middleware.TrustedProxies(e, proxies)

	app := &App{
		Config:  cfg,
		Redis:   rdb,
		Backend: b,
		Echo:    e,
	}

	if err := app.setupPlugins(reporter); err != nil {
		return nil, err
	}

	// Register global middleware in order of execution.
	app.setupMiddleware()

	// Templates read per-request values from the Go context.
	middleware.LayoutInjector = injectLayoutData

	// Register the custom error handler that maps AppErrors to HTTP responses.
	e.HTTPErrorHandler = app.errorHandler

	// Serve static files (CSS).
	e.Static("/static", "static")

	return app, nil
}

// setupPlugins builds the five sections. The media section shares the
// lookup Stores of the other four.
func (a *App) setupPlugins(reporter catalog.Reporter) error {
	var err error
	if a.Genres, err = genres.New(a.Backend, reporter); err != nil {
		return err
	}
	if a.Directors, err = directors.New(a.Backend, reporter); err != nil {
		return err
	}
	if a.Producers, err = producers.New(a.Backend, reporter); err != nil {
		return err
	}
	if a.ContentTypes, err = contenttypes.New(a.Backend, reporter); err != nil {
		return err
	}
	a.Medias, err = medias.New(a.Backend, reporter, medias.Lookups{
		Genres:    a.Genres.Store,
		Directors: a.Directors.Store,
		Producers: a.Producers.Store,
		Types:     a.ContentTypes.Store,
	})
	return err
}

// setupMiddleware registers global middleware on the Echo instance.
// Order matters: outermost (recovery) runs first, innermost (CSRF) runs last.
func (a *App) setupMiddleware() {
	// Panic recovery -- must be outermost to catch panics from all other middleware.
	a.Echo.Use(middleware.Recovery())

	// Request logging -- log every request with method, path, status, latency.
	a.Echo.Use(middleware.RequestLogger())

	// Security headers -- CSP, X-Frame-Options, X-Content-Type-Options, etc.
	// HSTS only outside development, where the dashboard runs behind TLS.
	a.Echo.Use(middleware.SecurityHeaders(!a.Config.IsDevelopment()))

	// Rate limiting -- shared counters in Redis when available.
	if a.Config.RateLimit.Requests > 0 {
		var limiter middleware.Limiter
		if a.Redis != nil {
			limiter = middleware.NewRedisLimiter(a.Redis, a.Config.RateLimit.Requests, a.Config.RateLimit.Window)
		} else {
			a.MemoryLimiter = middleware.NewMemoryLimiter(a.Config.RateLimit.Requests, a.Config.RateLimit.Window)
			limiter = a.MemoryLimiter
		}
		a.Echo.Use(middleware.RateLimit(limiter))
	}

	// CSRF -- double-submit cookie pattern on all state-changing requests.
	a.Echo.Use(middleware.CSRF())
}

// injectLayoutData exposes the CSRF token, request id and active path to the
// layout components. Installed as middleware.LayoutInjector.
func injectLayoutData(c echo.Context, ctx context.Context) context.Context {
	ctx = layouts.SetCSRFToken(ctx, middleware.GetCSRFToken(c))
	ctx = layouts.SetRequestID(ctx, middleware.RequestID(c))
	return layouts.SetActivePath(ctx, c.Request().URL.Path)
}

// errorHandler is the custom Echo error handler. It maps domain errors
// (AppError) to appropriate HTTP responses, and renders error pages for
// browser requests or JSON for the health endpoint.
func (a *App) errorHandler(err error, c echo.Context) {
	// Don't double-write if response is already committed.
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := defaultErrorMessage(code)

	// Check if it's our domain error type.
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
		message = appErr.Message

		// Log internal errors with the underlying cause.
		if appErr.Internal != nil {
			slog.Error("internal error",
				slog.String("type", appErr.Type),
				slog.String("message", appErr.Message),
				slog.Any("internal", appErr.Internal),
				slog.String("path", c.Request().URL.Path),
			)
		}
	} else {
		// Check for Echo's built-in HTTP errors (e.g., 404 from router).
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			code = echoErr.Code
			if msg, ok := echoErr.Message.(string); ok && code == http.StatusTooManyRequests {
				message = msg
			} else {
				message = defaultErrorMessage(code)
			}
		} else {
			// Truly unexpected error -- log it.
			slog.Error("unhandled error",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
			)
		}
	}

	if isHealthRequest(c) {
		_ = c.JSON(code, map[string]string{
			"error":   http.StatusText(code),
			"message": message,
		})
		return
	}

	if rerr := middleware.Render(c, code, pages.ErrorPage(code, message)); rerr != nil {
		slog.Error("rendering error page", slog.Any("error", rerr))
	}
}

// defaultErrorMessage returns a user-friendly message for common HTTP status
// codes when no specific message was provided by the error.
func defaultErrorMessage(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "La solicitud no es válida."
	case http.StatusForbidden:
		return "La sesión del formulario expiró. Recargue la página e intente de nuevo."
	case http.StatusNotFound:
		return "La página solicitada no existe."
	case http.StatusMethodNotAllowed:
		return "Esta acción no está permitida."
	case http.StatusTooManyRequests:
		return "Demasiadas solicitudes. Intente nuevamente en unos momentos."
	case http.StatusBadGateway:
		return "El servicio de catálogo no respondió correctamente."
	case http.StatusServiceUnavailable:
		return "El servicio no está disponible temporalmente."
	default:
		return "Ocurrió un error inesperado."
	}
}

// isHealthRequest returns true for the JSON health endpoint.
func isHealthRequest(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/healthz")
}

// Start begins listening for HTTP requests on the configured port.
func (a *App) Start() error {
	addr := fmt.Sprintf(":%d", a.Config.Port)
	slog.Info("starting catalog admin server",
		slog.String("addr", addr),
		slog.String("env", a.Config.Env),
		slog.String("backend", a.Config.Backend.URL),
	)
	return a.Echo.Start(addr)
}
