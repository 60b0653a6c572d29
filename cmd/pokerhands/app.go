package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/pokerhands/internal/config"
	"github.com/lox/pokerhands/poker"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
	styles styles
}

func newApp(cli *CLI, stdout, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.NoColor {
		noColor := false
		cfg.Output.Color = &noColor
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.New(stderr)
	logger.SetLevel(cfg.LogLevel())
	logger.Debug("Loaded configuration", "file", cli.Config, "workers", cfg.Harness.Workers)

	return &app{
		cfg:    cfg,
		logger: logger,
		out:    stdout,
		styles: newStyles(stdout, *cfg.Output.Color),
	}, nil
}

type styles struct {
	win      lipgloss.Style
	loss     lipgloss.Style
	tie      lipgloss.Style
	category lipgloss.Style
	hand     lipgloss.Style
}

func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		win:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		loss:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		tie:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		hand:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
	}
}

func (s styles) result(r poker.Result) string {
	switch r {
	case poker.Win:
		return s.win.Render(r.String())
	case poker.Loss:
		return s.loss.Render(r.String())
	default:
		return s.tie.Render(r.String())
	}
}
