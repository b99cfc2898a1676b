package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvEndpoint = "MYCELIA_ENDPOINT"
	EnvTimeout  = "MYCELIA_TIMEOUT"
	EnvDebug    = "MYCELIA_DEBUG"
	EnvAPIKey   = "MYCELIA_API_KEY"
)

// Defaults for environment driven settings
const (
	DefaultEndpoint = "https://mycelia.nel.re/api/messages"
	DefaultTimeout  = 30 * time.Second
)

// Env holds deployment knobs read from the environment
type Env struct {
	Endpoint string
	Timeout  time.Duration
	Debug    bool
	APIKey   string // optional override of the stored key
}

// LoadEnv reads the given dotenv files (".env" when none are named) into the
// process environment and returns the resulting settings. Missing files are
// not an error; variables already set in the environment win.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return EnvFromLookup(os.LookupEnv)
}

// EnvFromLookup builds Env from a lookup function such as os.LookupEnv
func EnvFromLookup(lookup func(string) (string, bool)) (Env, error) {
	env := Env{
		Endpoint: DefaultEndpoint,
		Timeout:  DefaultTimeout,
	}

	if v, ok := lookup(EnvEndpoint); ok && strings.TrimSpace(v) != "" {
		env.Endpoint = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvTimeout); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return Env{}, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		if d <= 0 {
			return Env{}, fmt.Errorf("%s must be positive, got %s", EnvTimeout, d)
		}
		env.Timeout = d
	}

	if v, ok := lookup(EnvDebug); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Env{}, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		env.Debug = b
	}

	if v, ok := lookup(EnvAPIKey); ok {
		env.APIKey = strings.TrimSpace(v)
	}

	return env, nil
}

// ResolveAPIKey picks the key to show at startup: the stored one, else the override
func ResolveAPIKey(stored string, env Env) string {
	if strings.TrimSpace(stored) != "" {
		return stored
	}
	return env.APIKey
}
