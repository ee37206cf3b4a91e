package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
server:
  port: 9001

database:
  host: localhost
  port: 5432
  user: bunueleria
  password: "secret"
  database: bunueleria

rabbitmq:
  host: localhost
  port: 5672
  user: guest
  password: guest
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	// keep environment overrides out of the picture
	for _, k := range []string{"PORT", "DB_HOST", "DB_PASSWORD", "RABBITMQ_HOST", "RABBITMQ_PASSWORD"} {
		t.Setenv(k, "")
	}

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 9001, cfg.Server.Port)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, "secret", cfg.Database.Password)
	require.Equal(t, "bunueleria", cfg.Database.Database)
	require.Equal(t, "guest", cfg.RabbitMQ.User)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMissingDatabaseHost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
