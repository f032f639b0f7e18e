package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/oauth2"

	"github.com/garrettladley/lyra/internal/client/lyra"
	"github.com/garrettladley/lyra/internal/config"
	"github.com/garrettladley/lyra/internal/paths"
	"github.com/garrettladley/lyra/internal/session"
	"github.com/garrettladley/lyra/internal/storage"
	"github.com/garrettladley/lyra/internal/xslog"
)

// app carries what every command needs: config, logger and the token store.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	store     storage.Store
	tokens    *session.TokenStore
	sessionID string

	logCloser io.Closer
}

// newApp loads config and opens the store. With quiet set, logs go only to
// the log file so the terminal stays free for the TUI.
func newApp(ctx context.Context, quiet bool) (*app, error) {
	cfgPath, err := paths.ConfigFile()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Read(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	logOpts, err := logOptions(cfg, quiet)
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := xslog.Setup(logOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	slog.SetDefault(logger)

	dsn := cfg.StoreDSN
	if dsn == "" {
		if _, err := paths.EnsureDir(); err != nil {
			_ = logCloser.Close()
			return nil, err
		}
		if dsn, err = paths.DB(); err != nil {
			_ = logCloser.Close()
			return nil, err
		}
	}

	store, err := storage.Open(ctx, dsn)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	sessionID := session.NewID()
	logger = logger.With(xslog.SessionID(sessionID), xslog.Version())
	logger.DebugContext(ctx, "store opened", xslog.Store(storage.Scheme(dsn)))

	return &app{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		tokens:    session.NewTokenStore(store),
		sessionID: sessionID,
		logCloser: logCloser,
	}, nil
}

// logOptions sends TUI runs to the log file and switches to JSON in production.
func logOptions(cfg config.Config, quiet bool) (xslog.Options, error) {
	logFile := cfg.LogFile
	if logFile == "" && quiet {
		var err error
		if logFile, err = paths.LogFile(); err != nil {
			return xslog.Options{}, err
		}
	}

	return xslog.Options{
		Level: cfg.LogLevel,
		File:  logFile,
		Quiet: quiet,
		JSON:  cfg.Environment.IsProduction(),
	}, nil
}

func (a *app) Close() error {
	return errors.Join(a.store.Close(), a.logCloser.Close())
}

func (a *app) clientOptions() []lyra.Option {
	return []lyra.Option{
		lyra.WithBaseURL(a.cfg.APIURL),
		lyra.WithSessionID(a.sessionID),
		lyra.WithLogger(a.logger),
		lyra.WithTimeout(a.cfg.RequestTimeout),
	}
}

// authedClient builds a client around the stored token.
func (a *app) authedClient(ctx context.Context) (*lyra.Client, error) {
	token, err := a.tokens.Load(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoToken) {
			return nil, errors.New("not logged in: run `lyra auth login` first")
		}
		return nil, err
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return lyra.New(ts, a.clientOptions()...), nil
}
