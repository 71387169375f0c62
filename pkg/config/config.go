// Package config reads the process configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/subosito/gotenv"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

var (
	ErrInvalidAPIURL  = errors.New("environment variable API_URL must be a valid URL")
	ErrInvalidStorage = errors.New("environment variable STORAGE must be one of sqlite, memory")
)

// Config is the configuration of the server process.
type Config struct {
	APIURL    *url.URL // Base URL the API is served under
	DataDir   string   // Directory for the SQLite database
	Storage   string   // Plan store backend
	FXAPIURL  string   // Base URL of the live exchange rate API. Empty disables live rates
	RulesFile string   // Path of the TOML budget rules file. Empty uses the defaults
}

// DSN returns the data source name of the SQLite database.
func (c Config) DSN() string {
	return filepath.Join(c.DataDir, "planner.db")
}

// Load reads the configuration from the environment.
//
// Variables from a .env file in the working directory are loaded first.
// Variables that are already set are not overwritten by it.
func Load() (Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	return FromEnv()
}

// FromEnv reads the configuration from the environment only.
func FromEnv() (Config, error) {
	c := Config{
		DataDir:   lookup("DATA_DIR", "data"),
		Storage:   strings.ToLower(lookup("STORAGE", StorageSQLite)),
		FXAPIURL:  strings.TrimSuffix(os.Getenv("FX_API_URL"), "/"),
		RulesFile: os.Getenv("BUDGET_RULES_FILE"),
	}

	u, err := url.Parse(lookup("API_URL", "http://localhost:8080"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, ErrInvalidAPIURL
	}
	c.APIURL = u

	if c.Storage != StorageSQLite && c.Storage != StorageMemory {
		return Config{}, fmt.Errorf("%w, got %q", ErrInvalidStorage, c.Storage)
	}

	return c, nil
}

func lookup(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}
