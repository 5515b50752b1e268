// Package log creates [slog.Handler]s from command line settings.
//
// Text and logfmt output are rendered by charmbracelet/log; JSON output uses
// the standard library handler.
package log
