// Package config reads the Billtrail configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/billtrail/backend/internal/variability"
)

var (
	ErrAPIURLUnset   = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid = errors.New("environment variable API_URL must be a valid URL")
	ErrSeedInvalid   = errors.New("environment variable VARIABILITY_SEED must be an unsigned integer")
	ErrBoolInvalid   = errors.New("must be true or false")
)

// DatabaseFile is the name of the SQLite database in the data directory.
const DatabaseFile = "billtrail.db"

type Config struct {
	APIURL           *url.URL // Public URL of the API, used for links in responses
	Port             string
	DataDir          string
	GinMode          string
	LogFormat        string   // "human" or "json". Empty selects by gin mode
	CORSAllowOrigins []string // CORS is only enabled when this is set
	EnablePprof      bool
	SeedDemoData     bool
	VariabilitySeed  *uint64 // nil means a random seed
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return Config{}, ErrAPIURLUnset
	}

	u, err := url.Parse(apiURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, ErrAPIURLInvalid
	}

	// Links are built by appending paths
	u.Path = strings.TrimSuffix(u.Path, "/")

	cfg := Config{
		APIURL:    u,
		Port:      lookup("PORT", "8080"),
		DataDir:   lookup("DATA_DIR", "data"),
		GinMode:   lookup("GIN_MODE", "release"),
		LogFormat: os.Getenv("LOG_FORMAT"),
	}

	if origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		cfg.CORSAllowOrigins = strings.Fields(origins)
	}

	cfg.EnablePprof, err = boolean("ENABLE_PPROF")
	if err != nil {
		return Config{}, err
	}

	cfg.SeedDemoData, err = boolean("SEED_DEMO_DATA")
	if err != nil {
		return Config{}, err
	}

	if s, ok := os.LookupEnv("VARIABILITY_SEED"); ok && s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Config{}, ErrSeedInvalid
		}
		cfg.VariabilitySeed = &seed
	}

	return cfg, nil
}

func lookup(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

// boolean reads a boolean environment variable. Unset means false.
func boolean(key string) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("environment variable %s %w", key, ErrBoolInvalid)
	}

	return b, nil
}

// DatabasePath is the path of the SQLite database.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, DatabaseFile)
}

// Address is the address the HTTP server listens on.
func (c Config) Address() string {
	return ":" + c.Port
}

// Source returns the variability source for the configured seed.
func (c Config) Source() variability.Source {
	if c.VariabilitySeed == nil {
		return variability.Random()
	}

	return variability.New(*c.VariabilitySeed)
}

// HumanLogs reports if logs are written for humans instead of as JSON.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}
