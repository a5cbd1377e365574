package screener

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"FundScreener/internal/collector"
	"FundScreener/internal/model"
	"FundScreener/internal/notifier"
	"FundScreener/internal/recorder"
	"FundScreener/internal/report"
	"FundScreener/internal/strategy"
)

// Publisher receives the rendered documents of every successful run.
type Publisher interface {
	Publish(html, json []byte, at time.Time)
}

// Options configures a Runner. Recorder, Notifier and Publisher may be nil.
type Options struct {
	Collector *collector.Collector
	Rules     strategy.Rules
	Renderer  *report.Renderer
	OutputDir string
	CSVFile   string
	TopN      int
	Location  *time.Location
	Recorder  recorder.Recorder
	Notifier  notifier.Notifier
	Publisher Publisher
}

// RunResult is what one screening run produced.
type RunResult struct {
	RunID       string
	GeneratedAt time.Time
	Funds       []model.RankedFund
	Rejected    []model.RejectedFund
	Summary     strategy.Summary
	Digest      string
	Files       []string
}

// Runner executes the linear screening pipeline: collect, screen, render,
// write, then the optional history, notification and publish steps.
type Runner struct {
	opts Options
	now  func() time.Time
	log  zerolog.Logger

	runMu sync.Mutex
	mu    sync.RWMutex
	last  *RunResult
}

// NewRunner creates a Runner, substituting no-op implementations for the
// optional collaborators.
func NewRunner(opts Options, log zerolog.Logger) *Runner {
	if opts.Recorder == nil {
		opts.Recorder = recorder.NewNoopRecorder()
	}
	if opts.Notifier == nil {
		opts.Notifier = notifier.NewNoopNotifier()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	return &Runner{
		opts: opts,
		now:  time.Now,
		log:  log.With().Str("component", "screener").Logger(),
	}
}

// Run performs one screen. Runs are serialized. Only data collection and
// report writing failures are returned; history and notification failures
// are logged.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	res := &RunResult{
		RunID:       uuid.NewString(),
		GeneratedAt: r.now().In(r.opts.Location),
	}
	log := r.log.With().Str("run_id", res.RunID).Logger()
	log.Info().Msg("Screening run started")

	ds, err := r.opts.Collector.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}

	screened := strategy.Screen(ds.Funds, r.opts.Rules)
	for _, rj := range screened.Rejected {
		log.Warn().Str("fund", rj.Fund.Name).Str("reason", rj.Reason).Msg("Fund record rejected")
	}
	res.Funds = screened.Ranked
	res.Rejected = screened.Rejected
	res.Summary = strategy.Summarize(screened.Ranked)

	out, err := r.opts.Renderer.Render(report.Input{
		Funds:       res.Funds,
		Market:      ds.Market,
		News:        ds.News,
		Rejected:    res.Rejected,
		Summary:     res.Summary,
		GeneratedAt: res.GeneratedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	files := map[string][]byte{
		report.HTMLFile: out.HTML,
		report.JSONFile: out.JSON,
	}
	if r.opts.CSVFile != "" {
		data, err := report.RenderCSV(res.Funds)
		if err != nil {
			return nil, fmt.Errorf("render csv: %w", err)
		}
		files[r.opts.CSVFile] = data
	}
	if err := report.WriteFiles(r.opts.OutputDir, files); err != nil {
		return nil, err
	}
	for name := range files {
		res.Files = append(res.Files, name)
	}
	sort.Strings(res.Files)

	log.Info().
		Int("screened", res.Summary.Count).
		Int("rejected", len(res.Rejected)).
		Float64("mean_score", res.Summary.MeanScore).
		Str("dir", r.opts.OutputDir).
		Msg("Report written")

	if err := r.opts.Recorder.RecordRun(&recorder.RunSnapshot{
		RunID:     res.RunID,
		Source:    r.opts.Collector.Provider.Name(),
		StartedAt: res.GeneratedAt,
		Summary:   res.Summary,
		Funds:     res.Funds,
		Rejected:  res.Rejected,
	}); err != nil {
		log.Error().Err(err).Msg("Failed to record run history")
	}

	res.Digest = report.FormatDigest(res.Funds, res.Summary, r.opts.TopN, res.GeneratedAt)
	if err := r.opts.Notifier.Send(ctx, res.Digest); err != nil {
		log.Error().Err(err).Msg("Failed to send notification")
	}

	if r.opts.Publisher != nil {
		r.opts.Publisher.Publish(out.HTML, out.JSON, res.GeneratedAt)
	}

	r.mu.Lock()
	r.last = res
	r.mu.Unlock()
	return res, nil
}

// Last returns the most recent successful run, or nil.
func (r *Runner) Last() *RunResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}
