/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Database backend selection for the run history store.
type DatabaseBackend string

const (
	DatabaseSQLite   DatabaseBackend = "sqlite"
	DatabasePostgres DatabaseBackend = "postgres"
	DatabaseMySQL    DatabaseBackend = "mysql"
)

// Config covers process level configuration read from environment variables,
// with optional overrides from a YAML file named by ARIS_CONFIG_FILE.
type Config struct {
	Environment string

	// Radiocult access
	APIBaseURL    string
	WebBaseURL    string
	StationID     string
	APIKey        string
	LoginEmail    string
	LoginPassword string

	// Planning window
	DayStartHour int // daily window opens (default 9)
	DayEndHour   int // daily window closes (default 23)
	PlanningDays int // days per planning run (default 7)
	WeeksBack    int // candidate lookback in weeks (default 3)

	// Matching
	MatchSeed int64 // 0 means seed from the clock per run

	// Run history store; empty DSN disables it
	DBBackend DatabaseBackend
	DBDSN     string

	// Browser automation
	Headless bool
}

// Load reads .env if present, then environment variables, applies the YAML
// override file when configured, and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment:   getEnvAny([]string{"ARIS_ENV"}, "development"),
		APIBaseURL:    getEnvAny([]string{"ARIS_API_BASE_URL"}, "https://api.radiocult.fm/api/station"),
		WebBaseURL:    getEnvAny([]string{"ARIS_WEB_BASE_URL"}, "https://app.radiocult.fm"),
		StationID:     getEnvAny([]string{"ARIS_STATION_ID"}, "eist-radio"),
		APIKey:        getEnvAny([]string{"ARIS_API_KEY", "API_KEY"}, ""),
		LoginEmail:    getEnvAny([]string{"ARIS_LOGIN_EMAIL", "RADIOCULT_USER"}, ""),
		LoginPassword: getEnvAny([]string{"ARIS_LOGIN_PASSWORD", "RADIOCULT_PW"}, ""),
		DayStartHour:  getEnvIntAny([]string{"ARIS_DAY_START_HOUR"}, 9),
		DayEndHour:    getEnvIntAny([]string{"ARIS_DAY_END_HOUR"}, 23),
		PlanningDays:  getEnvIntAny([]string{"ARIS_PLANNING_DAYS"}, 7),
		WeeksBack:     getEnvIntAny([]string{"ARIS_WEEKS_BACK"}, 3),
		MatchSeed:     int64(getEnvIntAny([]string{"ARIS_MATCH_SEED"}, 0)),
		DBBackend:     DatabaseBackend(getEnvAny([]string{"ARIS_DB_BACKEND"}, string(DatabaseSQLite))),
		DBDSN:         getEnvAny([]string{"ARIS_DB_DSN"}, ""),
		Headless:      getEnvBoolAny([]string{"ARIS_HEADLESS"}, true),
	}

	if path := os.Getenv("ARIS_CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ARIS_API_KEY (or API_KEY) must be provided")
	}
	if cfg.DayStartHour < 0 || cfg.DayEndHour > 24 || cfg.DayStartHour >= cfg.DayEndHour {
		return nil, fmt.Errorf("invalid day window %d:00-%d:00", cfg.DayStartHour, cfg.DayEndHour)
	}
	if cfg.PlanningDays <= 0 {
		return nil, fmt.Errorf("planning days must be positive, got %d", cfg.PlanningDays)
	}
	if cfg.WeeksBack <= 0 {
		return nil, fmt.Errorf("weeks back must be positive, got %d", cfg.WeeksBack)
	}
	if cfg.DBBackend != DatabaseSQLite && cfg.DBBackend != DatabasePostgres && cfg.DBBackend != DatabaseMySQL {
		return nil, fmt.Errorf("unsupported database backend %q", cfg.DBBackend)
	}

	return cfg, nil
}

// fileOverrides is the YAML override file schema. Only the planning window
// settings are file-configurable; credentials stay in the environment.
type fileOverrides struct {
	StationID    *string `yaml:"station_id"`
	DayStartHour *int    `yaml:"day_start_hour"`
	DayEndHour   *int    `yaml:"day_end_hour"`
	PlanningDays *int    `yaml:"planning_days"`
	WeeksBack    *int    `yaml:"weeks_back"`
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var overrides fileOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if overrides.StationID != nil {
		c.StationID = *overrides.StationID
	}
	if overrides.DayStartHour != nil {
		c.DayStartHour = *overrides.DayStartHour
	}
	if overrides.DayEndHour != nil {
		c.DayEndHour = *overrides.DayEndHour
	}
	if overrides.PlanningDays != nil {
		c.PlanningDays = *overrides.PlanningDays
	}
	if overrides.WeeksBack != nil {
		c.WeeksBack = *overrides.WeeksBack
	}
	return nil
}

// RequireLogin validates that browser credentials are configured.
func (c *Config) RequireLogin() error {
	if c.LoginEmail == "" || c.LoginPassword == "" {
		return fmt.Errorf("ARIS_LOGIN_EMAIL and ARIS_LOGIN_PASSWORD (or RADIOCULT_USER/RADIOCULT_PW) must be provided")
	}
	return nil
}

// getEnvAny returns the first non-empty environment variable value from keys, or def if none set.
func getEnvAny(keys []string, def string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

// getEnvIntAny returns the first set integer environment variable value from keys, or def.
func getEnvIntAny(keys []string, def int) int {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				return parsed
			}
		}
	}
	return def
}

// getEnvBoolAny returns the first set boolean environment variable value from keys, or def.
func getEnvBoolAny(keys []string, def bool) bool {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			v = strings.ToLower(strings.TrimSpace(v))
			if v == "true" || v == "1" || v == "yes" {
				return true
			}
			if v == "false" || v == "0" || v == "no" {
				return false
			}
		}
	}
	return def
}
