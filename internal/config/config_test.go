package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RavuAlHemio/icingcake/internal/domain"
)

func TestLoad_Simple(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "testdata", "configs", "simple.yaml"))
	require.NoError(t, err)

	// defaults
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8431, cfg.Server.Port)
	assert.Equal(t, ".icingcake/history.db", cfg.History.Path)
	assert.False(t, cfg.History.Disabled)
	assert.Equal(t, 30*time.Second, cfg.IcingaTimeout())

	assert.Equal(t, "https://icinga.example.com:5665/v1/", cfg.Icinga.BaseURL)
	assert.Equal(t, "monitor", cfg.Icinga.Username)
	assert.Equal(t, "hunter2", cfg.Icinga.Password)
	assert.False(t, cfg.Icinga.InsecureSkipVerify)
}

func TestLoad_Expanded(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "testdata", "configs", "expanded.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.IcingaTimeout())
	assert.True(t, cfg.Icinga.InsecureSkipVerify)
	assert.Equal(t, "/tmp/icingcake-history.db", cfg.History.Path)
	assert.True(t, cfg.History.Disabled)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoad_EnvOverridesCredentials(t *testing.T) {
	t.Setenv("ICINGA_USERNAME", "env-user")
	t.Setenv("ICINGA_PASSWORD", "env-pass")

	cfg, err := Load(filepath.Join("..", "..", "testdata", "configs", "simple.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-user", cfg.Icinga.Username)
	assert.Equal(t, "env-pass", cfg.Icinga.Password)
}

func TestLoad_EnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set, even to "",
	// so make sure the ambient environment is clean.
	t.Setenv("ICINGA_PASSWORD", "placeholder")
	require.NoError(t, os.Unsetenv("ICINGA_PASSWORD"))

	dir := t.TempDir()
	envPath := filepath.Join(dir, "icinga.env")
	require.NoError(t, os.WriteFile(envPath, []byte("ICINGA_PASSWORD=from-file\n"), 0o600))

	cfgPath := filepath.Join(dir, "icingcake.yaml")
	data := "env_file: " + envPath + "\nicinga:\n  base_url: https://icinga.example.com:5665/v1/\n  password: from-yaml\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(data), 0o600))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Icinga.Password)
}

func TestValidate_MissingBaseURL(t *testing.T) {
	_, err := Load(filepath.Join("..", "..", "testdata", "configs", "invalid_no_url.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "base_url")
}

func TestValidate_InvalidPort(t *testing.T) {
	_, err := Load(filepath.Join("..", "..", "testdata", "configs", "invalid_port.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestValidate_InvalidTimeout(t *testing.T) {
	_, err := Load(filepath.Join("..", "..", "testdata", "configs", "invalid_timeout.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "icinga.timeout")
}

func TestValidate_InvalidScheme(t *testing.T) {
	_, err := Parse([]byte("icinga:\n  base_url: ftp://example.com/\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheme")
}
