// Package logging builds the slog.Logger used by the guardwalk command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/guardwalk/internal/config"
)

// New returns a logger writing to w at level. With format "auto" the text
// handler is used when w is a terminal and JSON otherwise.
func New(w io.Writer, level slog.Level, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case config.FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case config.FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case config.FormatAuto, "":
		if IsTerminal(w) {
			return slog.New(slog.NewTextHandler(w, opts)), nil
		}
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("logging: unknown format %q", format)
}

// FromConfig is New with the level and format taken from cfg.
func FromConfig(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return New(w, lvl, cfg.LogFormat)
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
