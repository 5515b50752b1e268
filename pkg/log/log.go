package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
)

// Format is a log output format.
type Format string

const (
	FormatText   Format = "text"
	FormatLogfmt Format = "logfmt"
	FormatJSON   Format = "json"
)

var (
	ErrUnknownLevel  = errors.New("unknown log level")
	ErrUnknownFormat = errors.New("unknown log format")
)

// CreateHandler creates a [slog.Handler] writing to w.
func CreateHandler(w io.Writer, lvl slog.Level, f Format) slog.Handler {
	switch f {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	case FormatLogfmt:
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:     charmlog.Level(lvl),
			Formatter: charmlog.LogfmtFormatter,
		})
	default:
		l := charmlog.NewWithOptions(w, charmlog.Options{
			Level:     charmlog.Level(lvl),
			Formatter: charmlog.TextFormatter,
		})
		l.SetStyles(styles())

		return l
	}
}

// CreateHandlerWithStrings creates a [slog.Handler] by strings.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	lvl, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	f, err := GetFormat(logFormat)
	if err != nil {
		return nil, err
	}

	return CreateHandler(w, lvl, f), nil
}

// GetLevel parses a [slog.Level].
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
}

// GetFormat parses a [Format].
func GetFormat(format string) (Format, error) {
	switch f := Format(strings.ToLower(format)); f {
	case FormatText, FormatLogfmt, FormatJSON:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func styles() *charmlog.Styles {
	s := charmlog.DefaultStyles()
	s.Levels[charmlog.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))
	s.Levels[charmlog.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.Color("192"))

	return s
}
