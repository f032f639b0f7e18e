package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/garrettladley/lyra/internal/xslog"
)

// Handle identifies a scheduled job. The zero Handle is never issued.
type Handle cron.EntryID

// Job runs on a cron goroutine; ctx is cancelled when the scheduler stops.
type Job func(ctx context.Context)

type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	names map[Handle]string
}

func New(logger *slog.Logger) *Scheduler {
	cl := cronLogger{logger: logger}
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl)),
		),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		names:  make(map[Handle]string),
	}
}

// Every runs job each interval, first firing one interval from now.
func (s *Scheduler) Every(name string, interval time.Duration, job Job) Handle {
	id := s.cron.Schedule(cron.Every(interval), cron.FuncJob(func() {
		ctx := xslog.WithAttrs(xslog.WithLogger(s.ctx, s.logger), xslog.Timer(name))
		logger := xslog.FromContext(ctx)

		start := time.Now()
		logger.DebugContext(ctx, "running job")
		job(ctx)
		logger.DebugContext(ctx, "job finished", xslog.Duration(time.Since(start)))
	}))

	h := Handle(id)

	s.mu.Lock()
	s.names[h] = name
	s.mu.Unlock()

	s.logger.Debug("scheduled job", xslog.Timer(name), xslog.Interval(interval))
	return h
}

// Cancel removes the job. Cancelling the zero Handle or an unknown one does nothing.
func (s *Scheduler) Cancel(h Handle) {
	if h == 0 {
		return
	}

	s.mu.Lock()
	name, ok := s.names[h]
	delete(s.names, h)
	s.mu.Unlock()

	if !ok {
		return
	}

	s.cron.Remove(cron.EntryID(h))
	s.logger.Debug("cancelled job", xslog.Timer(name))
}

// Next reports when h fires next; the zero time when h is not scheduled.
func (s *Scheduler) Next(h Handle) time.Time {
	if h == 0 {
		return time.Time{}
	}
	return s.cron.Entry(cron.EntryID(h)).Next
}

func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.names)
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for running jobs: %w", ctx.Err())
	}
}

type cronLogger struct {
	logger *slog.Logger
}

var _ cron.Logger = cronLogger{}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{xslog.Error(err)}, keysAndValues...)...)
}
