package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"codediffdemo/internal/domain"
	"codediffdemo/internal/domain/entities"
)

type Config struct {
	DatabaseURL     string
	PreferencesFile string
	FallbackLocale  entities.Locale
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment.
	}

	cfg := &Config{
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		PreferencesFile: strings.TrimSpace(os.Getenv("PREFERENCES_FILE")),
		FallbackLocale:  entities.Locale(strings.TrimSpace(os.Getenv("FALLBACK_LOCALE"))),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// UsesDatabase reports whether preferences live in PostgreSQL.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// validate fills defaults and checks the loaded values.
func (c *Config) validate() error {
	if c.FallbackLocale == "" {
		c.FallbackLocale = entities.LocaleChinese
	}
	if !c.FallbackLocale.IsSupported() {
		return fmt.Errorf("config: FALLBACK_LOCALE %q: %w", c.FallbackLocale, domain.ErrUnsupportedLocale)
	}

	if c.PreferencesFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("config: PREFERENCES_FILE is unset and no user config dir: %w", err)
		}
		c.PreferencesFile = filepath.Join(dir, "codediff-demo", "preferences.toml")
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	return nil
}
