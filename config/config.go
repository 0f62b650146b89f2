package config

import (
	"io/fs"
	"kuhn/meta"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Config struct {
	Iterations int    `yaml:"iterations" toml:"iterations" env:"KUHN_ITERATIONS" env-default:"1000000" env-description:"Number of CFR iterations"`
	Seed       uint64 `yaml:"seed" toml:"seed" env:"KUHN_SEED" env-default:"1" env-description:"Seed for the deal sampler"`
	Checkpoint int    `yaml:"checkpoint" toml:"checkpoint" env:"KUHN_CHECKPOINT" env-default:"0" env-description:"Iterations between convergence checkpoints, 0 to derive from iterations"`
	LogLevel   string `yaml:"log_level" toml:"log_level" env:"KUHN_LOG_LEVEL" env-default:"info" env-description:"zerolog level"`
	ReportDir  string `yaml:"report_dir" toml:"report_dir" env:"KUHN_REPORT_DIR" env-description:"Directory for run artifacts, empty to skip"`
	Progress   bool   `yaml:"progress" toml:"progress" env:"KUHN_PROGRESS" env-default:"false" env-description:"Show a progress bar on stderr"`
}

// Load reads an optional .env file, then the config file at path (YAML or
// TOML, skipped when path is empty), then the environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	cfg := &Config{}
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to read environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default is the configuration with every default applied and nothing read
// from files or the environment.
func Default() *Config {
	return &Config{
		Iterations: meta.ITERATIONS,
		Seed:       meta.SEED,
		LogLevel:   "info",
	}
}

func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return errors.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Checkpoint < 0 {
		return errors.Errorf("checkpoint must not be negative, got %d", c.Checkpoint)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return nil
}

// Level is the parsed log level; call Validate first.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// CheckpointEvery is the checkpoint stride, derived from the iteration count
// when not set explicitly.
func (c *Config) CheckpointEvery(checkpoints int) int {
	if c.Checkpoint > 0 {
		return c.Checkpoint
	}
	return max(1, c.Iterations/checkpoints)
}
