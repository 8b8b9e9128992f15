package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeEnvFile(t, ""))
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, cfg.StoreBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "tournament.db", cfg.SQLitePath)
	assert.Equal(t, 5*time.Second, cfg.DatabaseTimeout)
	assert.Equal(t, "floor", cfg.RoundPolicy)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Len(t, cfg.Players, 17)
	assert.Equal(t, "Anna", cfg.Players[0])
	assert.Equal(t, "Mary", cfg.Players[16])
	assert.False(t, cfg.Report.Enabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/swiss.db")
	t.Setenv("DICE_SEED", "42")
	t.Setenv("ROUND_POLICY", "ceil")
	t.Setenv("PLAYERS", "A, B ,,C")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(writeEnvFile(t, ""))
	require.NoError(t, err)

	assert.Equal(t, StoreSQLite, cfg.StoreBackend)
	assert.Equal(t, "/tmp/swiss.db", cfg.SQLitePath)
	assert.Equal(t, int64(42), cfg.DiceSeed)
	assert.Equal(t, "ceil", cfg.RoundPolicy)
	assert.Equal(t, []string{"A", "B", "C"}, cfg.Players)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	// godotenv leaves these behind in the process env; t.Setenv restores them afterwards
	t.Setenv("REPORT_BUCKET", "")
	t.Setenv("REPORT_ACCESS_KEY_ID", "")
	t.Setenv("REPORT_SECRET_ACCESS_KEY", "")
	os.Unsetenv("REPORT_BUCKET")
	os.Unsetenv("REPORT_ACCESS_KEY_ID")
	os.Unsetenv("REPORT_SECRET_ACCESS_KEY")

	path := writeEnvFile(t, "REPORT_BUCKET=results\nREPORT_ACCESS_KEY_ID=key\nREPORT_SECRET_ACCESS_KEY=secret\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Report.Enabled())
	assert.Equal(t, "results", cfg.Report.Bucket)
	assert.Equal(t, "Swiss Tournament", cfg.Report.Title)
}

func TestLoadRejectsUnknownTone(t *testing.T) {
	t.Setenv("MESSAGE_TONE", "funy")

	_, err := Load(writeEnvFile(t, ""))
	assert.ErrorContains(t, err, "MESSAGE_TONE")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("DICE_SEED", "not-a-number")

	_, err := Load(writeEnvFile(t, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{StoreBackend: StoreRedis, RoundPolicy: "floor", MessageTone: "neutral"}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.StoreBackend = "mongo"
	assert.ErrorContains(t, cfg.Validate(), "STORE_BACKEND")

	cfg = valid()
	cfg.StoreBackend = StorePostgres
	assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")
	cfg.DatabaseURL = "postgres://localhost/swiss"
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.RoundPolicy = "round"
	assert.ErrorContains(t, cfg.Validate(), "ROUND_POLICY")

	cfg = valid()
	cfg.MessageTone = "funy"
	assert.ErrorContains(t, cfg.Validate(), "MESSAGE_TONE")
	for _, tone := range []string{"funny", "celebration"} {
		cfg.MessageTone = tone
		assert.NoError(t, cfg.Validate())
	}

	cfg = valid()
	cfg.Report.Bucket = "results"
	assert.ErrorContains(t, cfg.Validate(), "REPORT_ACCESS_KEY_ID")
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
