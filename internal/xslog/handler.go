package xslog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level Level
	// File receives every record, rotated by size. Empty disables file output.
	File string
	// Quiet drops the stderr handler; the TUI owns the terminal.
	Quiet bool
	// JSON switches both handlers to slog's JSON handler.
	JSON bool
}

// Setup builds the process logger. The returned closer flushes and closes the log file.
func Setup(opts Options) (*slog.Logger, io.Closer, error) {
	var (
		level    = opts.Level.ToSlog()
		handlers []slog.Handler
		closer   io.Closer = nopCloser{}
	)

	if opts.File != "" {
		if dir := filepath.Dir(opts.File); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, nil, fmt.Errorf("create log dir: %w", err)
			}
		}

		fileWriter := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		closer = fileWriter

		if opts.JSON {
			handlers = append(handlers, slog.NewJSONHandler(fileWriter, &slog.HandlerOptions{Level: level}))
		} else {
			handlers = append(handlers, tint.NewHandler(fileWriter, &tint.Options{
				Level:      level,
				TimeFormat: time.RFC3339,
				NoColor:    true,
			}))
		}
	}

	if !opts.Quiet {
		handlers = append(handlers, NewStderrHandler(opts.Level, opts.JSON))
	}

	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler), closer, nil
	}
	if len(handlers) == 1 {
		return slog.New(handlers[0]), closer, nil
	}
	return slog.New(NewMultiHandler(handlers...)), closer, nil
}

func NewStderrHandler(level Level, json bool) slog.Handler {
	if json {
		return slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level.ToSlog()})
	}
	noColor := !isatty.IsTerminal(os.Stderr.Fd()) || os.Getenv("NO_COLOR") != ""
	return tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level.ToSlog(),
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// MultiHandler fans a record out to every handler that accepts its level.
type MultiHandler struct {
	handlers []slog.Handler
}

var _ slog.Handler = (*MultiHandler)(nil)

func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: next}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		next[i] = h.WithGroup(name)
	}
	return &MultiHandler{handlers: next}
}
