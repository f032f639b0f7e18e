package tui

import (
	"context"
	"log/slog"

	"github.com/garrettladley/lyra/internal/dashboard"
)

type TokenChecker interface {
	HasToken(ctx context.Context) bool
}

type Deps struct {
	Ctx          context.Context
	Logger       *slog.Logger
	Dashboard    *dashboard.Dashboard
	TokenChecker TokenChecker
	APIURL       string
}
