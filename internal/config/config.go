package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig collects the settings needed to run the site and its tooling.
type AppConfig struct {
	ListenAddr    string `env:"LISTEN_ADDR"`
	Port          string `env:"PORT" envDefault:"8080"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"financeforward.db"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"financeforward-dev-secret"`
	GinMode       string `env:"GIN_MODE" envDefault:"release"`
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"data/uploads"`
	UploadURLPath string `env:"UPLOAD_URL_PATH" envDefault:"/media"`
	SiteBaseURL   string `env:"SITE_BASE_URL" envDefault:"http://localhost:8080"`
	AdminUserName string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	LogLevel      string `env:"LOG_LEVEL"`
	LogDev        bool   `env:"LOG_DEV"`
	LogFile       string `env:"LOG_FILE"`
}

var defaults = AppConfig{
	Port:          "8080",
	DatabasePath:  "financeforward.db",
	SessionSecret: "financeforward-dev-secret",
	GinMode:       "release",
	UploadDir:     "data/uploads",
	UploadURLPath: "/media",
	SiteBaseURL:   "http://localhost:8080",
}

// Load reads configuration from the environment, loading a local .env file first when one exists.
func Load() (AppConfig, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize trims values and restores defaults for variables that are set but blank.
func (c *AppConfig) normalize() {
	c.Port = fallback(c.Port, defaults.Port)
	c.DatabasePath = fallback(c.DatabasePath, defaults.DatabasePath)
	c.SessionSecret = fallback(c.SessionSecret, defaults.SessionSecret)
	c.GinMode = fallback(c.GinMode, defaults.GinMode)
	c.UploadDir = fallback(c.UploadDir, defaults.UploadDir)
	c.UploadURLPath = "/" + strings.Trim(fallback(c.UploadURLPath, defaults.UploadURLPath), "/")
	c.SiteBaseURL = strings.TrimRight(fallback(c.SiteBaseURL, defaults.SiteBaseURL), "/")
	c.AdminUserName = strings.TrimSpace(c.AdminUserName)
	c.AdminPassword = strings.TrimSpace(c.AdminPassword)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFile = strings.TrimSpace(c.LogFile)

	c.ListenAddr = strings.TrimSpace(c.ListenAddr)
	if c.ListenAddr == "" {
		c.ListenAddr = fmt.Sprintf(":%s", c.Port)
	}
}

func fallback(value, def string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	return trimmed
}
