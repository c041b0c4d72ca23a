// Package config handles loading application configuration from environment
// variables. All config is centralized here so no other package reads env
// vars directly. Sensible defaults are provided for development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/keyxmakerx/catalogadmin/internal/backend"
)

// Config holds all application configuration. Populated from environment
// variables at startup. Passed to other packages via dependency injection.
type Config struct {
	// Env is the runtime environment: "development" or "production".
	Env string

	// Port is the HTTP listen port (default: 8080).
	Port int

	// BaseURL is the public-facing URL of the dashboard.
	BaseURL string

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	// Empty means the environment default.
	LogLevel string

	// LogFile, when set, receives a rotated copy of the log output.
	LogFile string

	// TrustedProxies lists the CIDRs whose forwarding headers are believed.
	// Empty means the built-in private ranges.
	TrustedProxies []string

	// Redis holds Redis connection settings.
	Redis RedisConfig

	// RateLimit holds the per-IP request limit.
	RateLimit RateLimitConfig

	// Backend holds the catalog backend connection settings.
	Backend BackendConfig
}

// RedisConfig holds Redis connection parameters.
type RedisConfig struct {
	// URL is the Redis connection URL (e.g., "redis://localhost:6379").
	// Empty disables Redis; rate limiting then falls back to memory.
	URL string
}

// Enabled reports whether a Redis URL was configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != ""
}

// RateLimitConfig bounds how many requests one client IP may make per window.
type RateLimitConfig struct {
	// Requests is the maximum per window. Zero or less disables limiting.
	Requests int

	// Window is the length of one counting window.
	Window time.Duration
}

// BackendConfig locates the external catalog REST backend.
type BackendConfig struct {
	// URL is the backend root (default: "http://localhost:3000").
	URL string

	// Timeout bounds each backend request.
	Timeout time.Duration

	// RoutesFile optionally names a YAML/JSON/TOML file with resource paths.
	RoutesFile string

	// Routes maps every resource to its path. Always complete after Load.
	Routes backend.Routes
}

// RoutesConfig is the file/env shape of the backend route table. Every path
// has a default; BACKEND_ROUTE_* env vars override values read from the file.
type RoutesConfig struct {
	Generos     string `yaml:"generos" json:"generos" toml:"generos" env:"BACKEND_ROUTE_GENEROS" env-default:"/generos"`
	Directores  string `yaml:"directores" json:"directores" toml:"directores" env:"BACKEND_ROUTE_DIRECTORES" env-default:"/directores"`
	Productoras string `yaml:"productoras" json:"productoras" toml:"productoras" env:"BACKEND_ROUTE_PRODUCTORAS" env-default:"/productoras"`
	Tipos       string `yaml:"tipos" json:"tipos" toml:"tipos" env:"BACKEND_ROUTE_TIPOS" env-default:"/tipos"`
	Medias      string `yaml:"medias" json:"medias" toml:"medias" env:"BACKEND_ROUTE_MEDIAS" env-default:"/medias"`
}

// Routes converts the loaded paths into the backend route table.
func (r RoutesConfig) Routes() backend.Routes {
	return backend.Routes{
		backend.Genres:    r.Generos,
		backend.Directors: r.Directores,
		backend.Producers: r.Productoras,
		backend.Types:     r.Tipos,
		backend.Medias:    r.Medias,
	}
}

// Load reads configuration from environment variables with sensible defaults.
// Returns an error if the backend URL or any backend route is unusable, so a
// misconfigured dashboard fails at startup instead of on first request.
func Load() (*Config, error) {
	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		BaseURL:  getEnv("BASE_URL", "http://localhost:8080"),
		LogLevel: getEnv("LOG_LEVEL", ""),
		LogFile:  getEnv("LOG_FILE", ""),

		TrustedProxies: getEnvList("TRUSTED_PROXIES"),

		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},

		RateLimit: RateLimitConfig{
			Requests: getEnvInt("RATE_LIMIT_REQUESTS", 120),
			Window:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		},

		Backend: BackendConfig{
			URL:        getEnv("BACKEND_URL", "http://localhost:3000"),
			Timeout:    getEnvDuration("BACKEND_TIMEOUT", 10*time.Second),
			RoutesFile: getEnv("BACKEND_ROUTES_FILE", ""),
		},
	}

	routes, err := loadRoutes(cfg.Backend.RoutesFile)
	if err != nil {
		return nil, err
	}
	cfg.Backend.Routes = routes

	if _, err := backend.ParseBaseURL(cfg.Backend.URL); err != nil {
		return nil, fmt.Errorf("BACKEND_URL: %w", err)
	}
	if err := cfg.Backend.Routes.Validate(); err != nil {
		return nil, err
	}
	if cfg.Backend.Timeout <= 0 {
		return nil, fmt.Errorf("BACKEND_TIMEOUT must be positive, got %s", cfg.Backend.Timeout)
	}

	return cfg, nil
}

// loadRoutes reads the route table from path (when given) and the
// BACKEND_ROUTE_* env vars, falling back to the default paths.
func loadRoutes(path string) (backend.Routes, error) {
	var rc RoutesConfig
	if path != "" {
		if err := cleanenv.ReadConfig(path, &rc); err != nil {
			return nil, fmt.Errorf("loading backend routes from %s: %w", path, err)
		}
		return rc.Routes(), nil
	}
	if err := cleanenv.ReadEnv(&rc); err != nil {
		return nil, fmt.Errorf("loading backend routes from env: %w", err)
	}
	return rc.Routes(), nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Env)
	return env == "development" || env == "dev"
}

// --- Helper functions for reading environment variables ---

// getEnv reads a string env var or returns the default.
func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// getEnvInt reads an integer env var or returns the default.
func getEnvInt(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvList reads a comma-separated env var, dropping empty items.
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnvDuration reads a duration env var (e.g., "30s") or returns the default.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
