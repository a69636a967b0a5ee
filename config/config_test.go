package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServer_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/social")
	t.Setenv("JWT_SECRET", "s3cret")

	c, err := LoadServer(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, 720*time.Hour, c.TokenTTL)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.Empty(t, c.NATSURL)
	assert.False(t, c.LogDebug)
}

func TestLoadServer_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "s3cret")
	os.Unsetenv("DATABASE_URL")

	_, err := LoadServer(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadServer_EnvFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("HTTP_ADDR", "")
	os.Unsetenv("HTTP_ADDR")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=postgres://db/social\nHTTP_ADDR=:9999\nJWT_SECRET=from-file\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("HTTP_ADDR")
	})

	c, err := LoadServer(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://db/social", c.DatabaseURL)
	assert.Equal(t, ":9999", c.HTTPAddr)
	assert.Equal(t, "from-env", c.JWTSecret)
}

func TestClientRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	c, err := LoadClient(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.ServerURL)

	c.Token = "tok"
	c.UserID = "usr-1"
	require.NoError(t, SaveClient(path, c))

	got, err := LoadClient(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
