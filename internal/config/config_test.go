package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("DEFAULT_TARGET_SCORE", "")
	os.Unsetenv("REDIS_ADDR")
	os.Unsetenv("DEFAULT_TARGET_SCORE")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 101, cfg.DefaultTargetScore)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DEFAULT_TARGET_SCORE", "50")
	t.Setenv("DICE_SEED", "42")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 50, cfg.DefaultTargetScore)
	assert.Equal(t, int64(42), cfg.DiceSeed)
	assert.NoError(t, cfg.RequireDiscord())
}

func TestLoad_DotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GUILD_ID=from-file\nAPPLICATION_ID=app-from-file\n"), 0o600))

	t.Setenv("GUILD_ID", "from-env")
	t.Setenv("APPLICATION_ID", "")
	os.Unsetenv("APPLICATION_ID")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.GuildID)
	assert.Equal(t, "app-from-file", cfg.ApplicationID)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("REDIS_DB", "three")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_NonPositiveTarget(t *testing.T) {
	t.Setenv("DEFAULT_TARGET_SCORE", "0")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestRequireDiscord(t *testing.T) {
	assert.ErrorIs(t, (&Config{}).RequireDiscord(), ErrMissingToken)
}
