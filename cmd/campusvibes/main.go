// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

// campusvibes is a terminal client for the CampusVibes campus events
// platform. It talks to the backend REST API, keeps the signed-in
// session in a local file, and presents sign-in, event browsing,
// registration, dashboards, event management, and profile editing as
// a single full-screen TUI.
//
// Configuration is layered: built-in defaults, an optional .env file,
// an optional YAML config file (--config or CAMPUSVIBES_CONFIG),
// CAMPUSVIBES_* environment variables, and finally command-line flags.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/campusvibes/campusvibes/cmd/campusvibes/cli"
	"github.com/campusvibes/campusvibes/lib/api"
	"github.com/campusvibes/campusvibes/lib/appui"
	"github.com/campusvibes/campusvibes/lib/config"
	"github.com/campusvibes/campusvibes/lib/session"
	"github.com/campusvibes/campusvibes/lib/version"
)

func main() {
	if err := run(); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var apiURL string
	var sessionFile string
	var timeout time.Duration
	var logOutput string

	flagSet := pflag.NewFlagSet("campusvibes", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: $CAMPUSVIBES_CONFIG)")
	flagSet.StringVar(&apiURL, "api-url", "", "backend base URL (overrides config)")
	flagSet.StringVar(&sessionFile, "session-file", "", "path to the persisted session file (overrides config)")
	flagSet.DurationVar(&timeout, "timeout", 0, "per-request timeout (overrides config)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file in addition to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println(version.Full())
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		// pflag has already printed the parse error and usage.
		return &cli.ExitError{Code: 2}
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if apiURL != "" {
		cfg.API.URL = apiURL
	}
	if sessionFile != "" {
		cfg.SessionFile = sessionFile
	}
	if timeout > 0 {
		cfg.API.Timeout = timeout
	}
	if logOutput != "" {
		cfg.LogOutput = logOutput
	}

	logger := cli.NewCommandLogger()
	if cfg.LogOutput != "" {
		fileHandler, fileCloser, fileErr := openFileLogHandler(cfg.LogOutput)
		if fileErr != nil {
			return fmt.Errorf("cannot open log file %s: %w", cfg.LogOutput, fileErr)
		}
		defer fileCloser()
		logger = slog.New(fanoutHandler{logger.Handler(), fileHandler})
	}

	store, err := session.Open(cfg.SessionFile)
	if err != nil {
		return err
	}

	client := api.New(cfg.API.URL,
		api.WithTokenSource(store),
		api.WithTimeout(cfg.API.Timeout),
	)

	logger.Info("starting",
		"version", version.Info(),
		"api_url", cfg.API.URL,
		"session_file", cfg.SessionFile,
	)

	model := appui.NewModel(client, store)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	logger.Info("exited")
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `CampusVibes is a terminal client for the campus events platform.

Signs in against the backend API (default %s),
persists the session locally, and opens a full-screen UI for browsing
events, registering, and managing campus activity.

Usage:
  campusvibes [flags]

Examples:
  # Connect to the default local backend
  campusvibes

  # Point at a deployed backend
  campusvibes --api-url https://api.campusvibes.example

  # Use a named config file and capture logs
  campusvibes --config ./campusvibes.yaml --log-output /tmp/campusvibes.log

Flags:
`, config.DefaultAPIURL)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

// openFileLogHandler creates a slog.JSONHandler that writes to the
// given file path. Returns the handler, a cleanup function to close
// the file, and any error. The file is created or truncated.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
