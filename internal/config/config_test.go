package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `server:
  port: 4003

database:
  host: localhost
  port: 5432
  user: postgres
  password: postgres
  name: hospital_admin
  sslmode: disable

remote:
  pharmacy_url: http://localhost:4004/graphql

rate_limit:
  enabled: true
  rps: 50
  burst: 100

log:
  level: debug
  pretty: true
`

func writeConfig(t *testing.T, name, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config", name+".yaml"), []byte(content), 0o644,
	))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad(t *testing.T) {
	writeConfig(t, "admin", testYAML)

	cfg, err := Load("admin")
	require.NoError(t, err)

	assert.Equal(t, 4003, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "hospital_admin", cfg.Database.Name)
	assert.Equal(t, "http://localhost:4004/graphql", cfg.Remote.PharmacyURL)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, float64(50), cfg.RateLimit.RPS)
	assert.Equal(t, 100, cfg.RateLimit.Burst)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoadEnvOverrides(t *testing.T) {
	writeConfig(t, "admin", testYAML)

	t.Setenv("PORT", "9999")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("PHARMACY_SERVICE_URL", "http://pharmacy:4004/graphql")

	cfg, err := Load("admin")
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "http://pharmacy:4004/graphql", cfg.Remote.PharmacyURL)
	// Values without an override keep what the file says.
	assert.Equal(t, "hospital_admin", cfg.Database.Name)
}

func TestLoadMissingFile(t *testing.T) {
	writeConfig(t, "admin", testYAML)

	_, err := Load("nonexistent")
	assert.Error(t, err)
}
