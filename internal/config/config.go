// Package config reads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting of the bot and the terminal client
type Config struct {
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID registers commands in one guild for development
	GuildID string `env:"GUILD_ID"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	DefaultTargetScore int `env:"DEFAULT_TARGET_SCORE" envDefault:"101"`

	// DiceSeed makes dice reproducible; 0 seeds from the clock
	DiceSeed int64 `env:"DICE_SEED" envDefault:"0"`

	MessagesDir string `env:"MESSAGES_DIR"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	LogFile   string `env:"LOG_FILE"`
}

// ErrMissingToken is returned by RequireDiscord without DISCORD_TOKEN
var ErrMissingToken = errors.New("DISCORD_TOKEN environment variable is required")

// Load reads the optional env files and then parses the environment.
// Without files, ".env" is tried. Variables already set are not overridden.
func Load(files ...string) (*Config, error) {
	if err := loadDotEnv(files...); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DefaultTargetScore <= 0 {
		return nil, fmt.Errorf("DEFAULT_TARGET_SCORE must be positive, got %d", cfg.DefaultTargetScore)
	}

	return cfg, nil
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// RequireDiscord checks the settings the Discord bot cannot start without
func (c *Config) RequireDiscord() error {
	if c.DiscordToken == "" {
		return ErrMissingToken
	}
	return nil
}
