package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeConsole = "console"
	ModeBoard   = "board"
)

var ErrUnknownMode = errors.New("unknown mode")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE" env-description:"write logs to this file instead of stderr"`
	Mode     string  `yaml:"mode" env:"TICTACTOE_MODE" env-default:"console" env-description:"front-end: console or board"`
	Console  Console `yaml:"console"`
	Board    Board   `yaml:"board"`
}

type Console struct {
	NoPause         bool   `yaml:"no-pause" env:"TICTACTOE_CONSOLE_NO_PAUSE" env-description:"re-prompt immediately after invalid input"`
	EmptySymbol     string `yaml:"empty-symbol" env-default:"."`
	PlayerOneSymbol string `yaml:"player-one-symbol" env-default:"O"`
	PlayerTwoSymbol string `yaml:"player-two-symbol" env-default:"X"`
}

type Board struct {
	TileWidth  int    `yaml:"tile-width" env:"TICTACTOE_BOARD_TILE_WIDTH" env-default:"7" env-description:"tile width in terminal cells"`
	TileHeight int    `yaml:"tile-height" env:"TICTACTOE_BOARD_TILE_HEIGHT" env-default:"3" env-description:"tile height in terminal cells"`
	Title      string `yaml:"title" env-default:"TicTacToe"`
}

// MustLoad - load all configurations in config.yml file. A missing file falls back to
// environment variables and defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}

		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}

		return config, config.Validate()
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, config.Validate()
}

func (that *Config) Validate() error {
	switch that.Mode {
	case ModeConsole, ModeBoard:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	if that.Board.TileWidth < 3 || that.Board.TileHeight < 1 {
		return fmt.Errorf("board tiles too small: %dx%d", that.Board.TileWidth, that.Board.TileHeight)
	}

	return nil
}

// Symbols - console symbols indexed by entity.Mark.
func (that *Console) Symbols() [3]string {
	return [3]string{that.EmptySymbol, that.PlayerOneSymbol, that.PlayerTwoSymbol}
}
