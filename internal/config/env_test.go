package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestEnvFromLookup_Defaults(t *testing.T) {
	env, err := EnvFromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultEndpoint, env.Endpoint)
	assert.Equal(t, DefaultTimeout, env.Timeout)
	assert.False(t, env.Debug)
	assert.Empty(t, env.APIKey)
}

func TestEnvFromLookup_Overrides(t *testing.T) {
	env, err := EnvFromLookup(lookupFrom(map[string]string{
		EnvEndpoint: " http://localhost:8080/api/messages ",
		EnvTimeout:  "5s",
		EnvDebug:    "true",
		EnvAPIKey:   "k",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/messages", env.Endpoint)
	assert.Equal(t, 5*time.Second, env.Timeout)
	assert.True(t, env.Debug)
	assert.Equal(t, "k", env.APIKey)
}

func TestEnvFromLookup_Invalid(t *testing.T) {
	bad := []map[string]string{
		{EnvTimeout: "soon"},
		{EnvTimeout: "-1s"},
		{EnvDebug: "maybe"},
	}
	for _, m := range bad {
		_, err := EnvFromLookup(lookupFrom(m))
		assert.Error(t, err, "%v", m)
	}
}

func TestLoadEnv_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MYCELIA_ENDPOINT=http://dotenv.local/api/messages\n"), 0o600))

	os.Unsetenv(EnvEndpoint)
	defer os.Unsetenv(EnvEndpoint)

	env, err := LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv.local/api/messages", env.Endpoint)
}

func TestLoadEnv_MissingFileIsFine(t *testing.T) {
	_, err := LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestResolveAPIKey(t *testing.T) {
	env := Env{APIKey: "from-env"}

	assert.Equal(t, "stored", ResolveAPIKey("stored", env))
	assert.Equal(t, "from-env", ResolveAPIKey("", env))
	assert.Equal(t, "from-env", ResolveAPIKey("   ", env))
	assert.Empty(t, ResolveAPIKey("", Env{}))
}
