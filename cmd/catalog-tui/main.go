// Package main runs the terminal catalog client.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/studiocast/catalog/config"
	"github.com/studiocast/catalog/internal/client"
	"github.com/studiocast/catalog/internal/tui"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	api := client.NewAPI(cfg.Client.BaseURL, nil)

	// The TUI confirms deletes with its own prompt, so the controller gets no
	// Confirmer. The form's success callback is the view controller's
	// hide-and-refetch capability.
	view := client.NewViewController(api, nil, logger)
	form := client.NewFormController(api, func() {
		view.OnSubmissionSuccess(context.Background())
	}, logger)
	app := tui.NewAppModel(view, form, logger)

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newLogger logs to a file; stderr would fight with the terminal UI.
func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"catalog-tui.log"}
	config.ErrorOutputPaths = []string{"catalog-tui.log"}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := config.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	return logger
}
