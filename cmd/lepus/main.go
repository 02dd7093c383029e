package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/1broseidon/lepus/internal/config"
	"github.com/1broseidon/lepus/internal/wm"
	"github.com/1broseidon/lepus/internal/x11"
)

var (
	logLevel string
	logJSON  bool
)

var rootCmd = &cobra.Command{
	Use:           "lepus",
	Short:         "A tiling X11 window manager",
	Long:          "Lepus manages X11 windows across workspaces and outputs with\npluggable tiling layouts and modal key bindings.",
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit structured JSON logs instead of console output")
}

func newLogger() (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("log level: %w", err)
	}
	var out = os.Stderr
	if logJSON {
		return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
	}
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}

func run() error {
	log, err := newLogger()
	if err != nil {
		return err
	}

	session, err := x11.Connect(log)
	if err != nil {
		return fmt.Errorf("connect to display: %w", err)
	}
	defer session.Close()

	if err := session.ManageRoot(); err != nil {
		return fmt.Errorf("acquire window management: %w", err)
	}

	cfg := config.Default()
	if err := session.AnnounceWM(cfg.Workspaces); err != nil {
		log.Warn().Err(err).Msg("ewmh announcement failed")
	}

	engine, err := wm.New(session, cfg, log)
	if err != nil {
		return fmt.Errorf("engine setup: %w", err)
	}
	return engine.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lepus:", err)
		os.Exit(1)
	}
}
