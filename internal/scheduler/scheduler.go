package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"FundScreener/internal/notifier"
	"FundScreener/internal/screener"
)

// ScreenRunner runs screens and remembers the latest result.
type ScreenRunner interface {
	Run(ctx context.Context) (*screener.RunResult, error)
	Last() *screener.RunResult
}

// Scheduler triggers screening runs on a cron schedule and answers chat
// commands.
type Scheduler struct {
	Cron     *cron.Cron
	Runner   ScreenRunner
	Notifier notifier.Notifier
	Ctx      context.Context
	log      zerolog.Logger
}

// NewScheduler creates a new Scheduler. The cron spec has a leading seconds
// field.
func NewScheduler(ctx context.Context, runner ScreenRunner, n notifier.Notifier, log zerolog.Logger) *Scheduler {
	if n == nil {
		n = notifier.NewNoopNotifier()
	}
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Runner:   runner,
		Notifier: n,
		Ctx:      ctx,
		log:      log.With().Str("component", "scheduler").Logger(),
	}
}

// Register adds the screening task under spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.screenTask); err != nil {
		return fmt.Errorf("register screen task: %w", err)
	}
	s.log.Info().Str("cron", spec).Msg("screen task registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running screen to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// RunNow executes the screen immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.screenTask()
}

func (s *Scheduler) screenTask() {
	if _, err := s.run(); err != nil {
		s.trySend(fmt.Sprintf("❌ Fund screen failed: %v", err))
	}
}

func (s *Scheduler) run() (*screener.RunResult, error) {
	s.log.Info().Msg("running screen task")
	res, err := s.Runner.Run(s.Ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("screen task failed")
		return nil, err
	}
	return res, nil
}

// HandleCommand processes a chat command and returns a reply.
func (s *Scheduler) HandleCommand(_ context.Context, command string) string {
	switch command {
	case "/screen":
		// The run itself sends the digest.
		if _, err := s.run(); err != nil {
			return fmt.Sprintf("❌ Fund screen failed: %v", err)
		}
		return ""
	case "/top":
		last := s.Runner.Last()
		if last == nil {
			return "No screen has run yet. Send /screen to run one."
		}
		return last.Digest
	default:
		return "Available commands:\n• /screen run a screen now\n• /top latest results"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.Send(s.Ctx, text); err != nil {
		s.log.Error().Err(err).Msg("send notification")
	}
}
