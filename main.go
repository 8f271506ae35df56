package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	var (
		path string
		mode string
	)

	flag.StringVar(&path, "config", "config.yml", "path to the config file")
	flag.StringVar(&mode, "mode", "", "front-end: console or board (overrides the config)")

	header := "Environment variables:"
	flag.Usage = cleanenv.FUsage(flag.CommandLine.Output(), &config.Config{}, &header, flag.Usage)
	flag.Parse()

	conf := config.MustLoad(path)

	if mode != "" {
		conf.Mode = mode
		if err := conf.Validate(); err != nil {
			panic(fmt.Errorf("invalid -mode flag: %w", err))
		}
	}

	return conf
}

// initialize logger. Both front-ends own the terminal, so logs go to the log file when one is set.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var (
		out     io.Writer = os.Stderr
		closeFn           = func() {}
	)

	switch {
	case conf.LogFile != "":
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		out = file
		closeFn = func() {
			_ = file.Close()
		}
	case conf.Mode == config.ModeBoard:
		out = io.Discard
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeFn
}
