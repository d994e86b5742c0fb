package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Audio    Audio  `yaml:"audio"`
}

type Audio struct {
	Enabled    bool `yaml:"enabled" env:"AUDIO_ENABLED" env-default:"false"`
	SampleRate int  `yaml:"sample-rate" env:"AUDIO_SAMPLE_RATE" env-default:"44100"`
	ToneMs     int  `yaml:"tone-ms" env:"AUDIO_TONE_MS" env-default:"60"`
}

// Load - reads configuration from the yml file at path, falling back to
// environment variables and defaults when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", apperror.ErrConfigLoad, path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("%w: environment: %w", apperror.ErrConfigLoad, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s: %w", apperror.ErrConfigLoad, path, err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
