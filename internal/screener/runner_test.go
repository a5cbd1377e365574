package screener

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundScreener/internal/collector"
	"FundScreener/internal/recorder"
	"FundScreener/internal/report"
	"FundScreener/internal/strategy"
)

type fakeRecorder struct {
	snaps []*recorder.RunSnapshot
	err   error
}

func (f *fakeRecorder) RecordRun(s *recorder.RunSnapshot) error {
	f.snaps = append(f.snaps, s)
	return f.err
}

func (f *fakeRecorder) Close() error { return nil }

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, text string) error {
	f.sent = append(f.sent, text)
	return f.err
}

type fakePublisher struct {
	mu   sync.Mutex
	html []byte
	at   time.Time
}

func (f *fakePublisher) Publish(html, _ []byte, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.html, f.at = html, at
}

var fixedNow = time.Date(2025, 9, 12, 4, 0, 0, 0, time.UTC)

func newTestRunner(t *testing.T, provider collector.Provider, opts Options) *Runner {
	t.Helper()
	opts.Collector = collector.NewCollector(provider, zerolog.Nop())
	opts.Rules = strategy.DefaultRules()
	opts.Renderer = report.NewRenderer("Screener", "Test", false)
	if opts.OutputDir == "" {
		opts.OutputDir = t.TempDir()
	}
	r := NewRunner(opts, zerolog.Nop())
	r.now = func() time.Time { return fixedNow }
	return r
}

func TestRun_WritesReport(t *testing.T) {
	dir := t.TempDir()
	rec := &fakeRecorder{}
	ntf := &fakeNotifier{}
	pub := &fakePublisher{}
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	r := newTestRunner(t, collector.NewSampleProvider(), Options{
		OutputDir: dir,
		CSVFile:   "funds.csv",
		TopN:      3,
		Location:  ist,
		Recorder:  rec,
		Notifier:  ntf,
		Publisher: pub,
	})
	res, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Funds, 8)
	assert.Equal(t, "SBI Small Cap Fund", res.Funds[0].Name)
	assert.Empty(t, res.Rejected)
	assert.Equal(t, 8, res.Summary.Count)
	assert.Equal(t, []string{report.JSONFile, "funds.csv", report.HTMLFile}, res.Files)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "+0530", res.GeneratedAt.Format("-0700"))

	data, err := os.ReadFile(filepath.Join(dir, report.JSONFile))
	require.NoError(t, err)
	doc, err := report.ParseAnalysis(data)
	require.NoError(t, err)
	require.Len(t, doc.ScreenedFunds, 8)
	for i := range doc.ScreenedFunds {
		assert.Equal(t, res.Funds[i].Name, doc.ScreenedFunds[i].Name)
		assert.Equal(t, res.Funds[i].Score, doc.ScreenedFunds[i].Score)
	}
	assert.True(t, fixedNow.Equal(doc.Timestamp))

	html, err := os.ReadFile(filepath.Join(dir, report.HTMLFile))
	require.NoError(t, err)
	assert.Contains(t, string(html), "SBI Small Cap Fund")
	assert.FileExists(t, filepath.Join(dir, "funds.csv"))

	require.Len(t, rec.snaps, 1)
	assert.Equal(t, res.RunID, rec.snaps[0].RunID)
	assert.Equal(t, "sample", rec.snaps[0].Source)

	require.Len(t, ntf.sent, 1)
	assert.Contains(t, ntf.sent[0], "Top 3")

	assert.Equal(t, html, pub.html)
	assert.Same(t, res, r.Last())
}

func TestRun_ProviderFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	ntf := &fakeNotifier{}
	r := newTestRunner(t, collector.NewFileProvider(filepath.Join(dir, "missing.yaml")), Options{
		OutputDir: dir,
		Notifier:  ntf,
	})

	_, err := r.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, collector.ErrDataUnavailable))
	assert.NoFileExists(t, filepath.Join(dir, report.HTMLFile))
	assert.Empty(t, ntf.sent)
	assert.Nil(t, r.Last())
}

func TestRun_WriteFailureIsFatal(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	r := newTestRunner(t, collector.NewSampleProvider(), Options{OutputDir: filepath.Join(blocker, "out")})
	_, err := r.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, report.ErrRender))
}

func TestRun_SideEffectFailuresAreLogged(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	ntf := &fakeNotifier{err: errors.New("telegram down")}
	r := newTestRunner(t, collector.NewSampleProvider(), Options{Recorder: rec, Notifier: ntf})

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Funds, 8)
	assert.Len(t, rec.snaps, 1)
	assert.Len(t, ntf.sent, 1)
}

func TestRun_DistinctRunIDs(t *testing.T) {
	r := newTestRunner(t, collector.NewSampleProvider(), Options{})
	a, err := r.Run(context.Background())
	require.NoError(t, err)
	b, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID, b.RunID)
}

const nonFiniteDataset = `
funds:
  - fund_name: Steady Flexi Cap Fund
    aum_cr: 12000
    1y_return: -6.4
    5y_return: 16.2
    current_nav: 55.0
    52w_high: 63.0
    52w_low: 51.0
    expense_ratio: 1.1
  - fund_name: Corrupt Feed Fund
    aum_cr: 5000
    1y_return: -.inf
    5y_return: 12.0
    current_nav: 40.0
    52w_high: 50.0
    52w_low: 35.0
    expense_ratio: 1.2
  - fund_name: Unbounded High Fund
    1y_return: -3.0
    current_nav: 40.0
    52w_high: .inf
    52w_low: 35.0
nifty_valuation:
  nifty_50_level: 24000
  nifty_50_pe: .nan
`

func TestRun_NonFiniteRecordsAreRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "funds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(nonFiniteDataset), 0o644))

	r := newTestRunner(t, collector.NewFileProvider(path), Options{OutputDir: dir})
	res, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Funds, 1)
	assert.Equal(t, "Steady Flexi Cap Fund", res.Funds[0].Name)
	require.Len(t, res.Rejected, 2)
	assert.Equal(t, "Corrupt Feed Fund", res.Rejected[0].Fund.Name)
	assert.Equal(t, "Unbounded High Fund", res.Rejected[1].Fund.Name)

	data, err := os.ReadFile(filepath.Join(dir, report.JSONFile))
	require.NoError(t, err)
	doc, err := report.ParseAnalysis(data)
	require.NoError(t, err)
	require.Len(t, doc.ScreenedFunds, 1)
	assert.Zero(t, doc.Market.Nifty50Level)
	assert.FileExists(t, filepath.Join(dir, report.HTMLFile))
}
