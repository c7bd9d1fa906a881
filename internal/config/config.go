package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	NoColor  bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`

	// PlayerMark and FirstMark skip the matching prompt when set.
	PlayerMark string `yaml:"player-mark" env:"TICTACTOE_PLAYER_MARK"`
	FirstMark  string `yaml:"first-mark" env:"TICTACTOE_FIRST_MARK"`
}

// Load - reads the config file if it exists, the environment otherwise. Environment overrides the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
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

func (that *Config) Validate() error {
	for _, value := range []string{that.PlayerMark, that.FirstMark} {
		if value == "" {
			continue
		}

		if _, err := entity.ParseMark(value); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	return nil
}

// Marks - the configured marks, EmptyCell where unset.
func (that *Config) Marks() (player, first entity.Mark) {
	player, first = entity.EmptyCell, entity.EmptyCell
	if mark, err := entity.ParseMark(that.PlayerMark); err == nil {
		player = mark
	}
	if mark, err := entity.ParseMark(that.FirstMark); err == nil {
		first = mark
	}
	return player, first
}
