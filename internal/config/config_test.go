package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

const validConfig = `
server:
  host: "127.0.0.1"
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "ecowaste"
  database: "ecowaste_test"
jwt:
  secret: "test-secret"
log:
  level: "info"
  format: "text"
`

func TestLoad(t *testing.T) {
	t.Run("AppliesSchedulerDefaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validConfig))
		assert.NoError(t, err)
		assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
		assert.Equal(t, "0 0 18 * * *", cfg.Scheduler.CollectionReminders)
		assert.Equal(t, "0 30 0 * * *", cfg.Scheduler.MarkMissedCollections)
		assert.Equal(t, 24, cfg.Scheduler.MissedGraceHours)
		assert.Equal(t, 1440, cfg.JWT.AccessTokenExpiry)
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "env-secret")
		t.Setenv("DB_HOST", "db.internal")

		cfg, err := Load(writeConfig(t, validConfig))
		assert.NoError(t, err)
		assert.Equal(t, "env-secret", cfg.JWT.Secret)
		assert.Equal(t, "db.internal", cfg.Database.Host)
	})

	t.Run("MissingSecretRejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
database:
  host: "localhost"
  user: "ecowaste"
  database: "ecowaste_test"
`))
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yaml")
		assert.Error(t, err)
	})
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "localhost", Port: 5432, User: "ecowaste", Password: "pw", Database: "ecowaste_test",
	}}
	assert.Equal(t,
		"host=localhost port=5432 user=ecowaste password=pw dbname=ecowaste_test sslmode=disable",
		cfg.GetDatabaseConnectionString())
}
