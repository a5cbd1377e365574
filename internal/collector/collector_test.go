package collector

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundScreener/internal/model"
)

// stubProvider fails the sections it is told to.
type stubProvider struct {
	funds     []model.FundRecord
	fundsErr  error
	marketErr error
	newsErr   error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) FetchFunds(context.Context) ([]model.FundRecord, error) {
	return s.funds, s.fundsErr
}

func (s *stubProvider) FetchMarket(context.Context) (model.MarketSnapshot, error) {
	if s.marketErr != nil {
		return model.MarketSnapshot{}, s.marketErr
	}
	return model.MarketSnapshot{Nifty50Level: 100}, nil
}

func (s *stubProvider) FetchNews(context.Context) ([]model.NewsItem, error) {
	if s.newsErr != nil {
		return nil, s.newsErr
	}
	return []model.NewsItem{{Headline: "h"}}, nil
}

func TestCollect_Sample(t *testing.T) {
	c := NewCollector(NewSampleProvider(), zerolog.Nop())
	ds, err := c.Collect(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Funds, 8)
	assert.Equal(t, "HDFC Mid Cap Opportunities Fund", ds.Funds[0].Name)
	assert.Equal(t, "TATA_SMALL_CAP", ds.Funds[7].Code)
	assert.Equal(t, 25125.0, ds.Market.Nifty50Level)
	assert.Equal(t, "Overvalued", ds.Market.CurrentVsHistorical)
	assert.Len(t, ds.News, 3)

	for _, f := range ds.Funds {
		assert.NoError(t, f.Validate(), f.Name)
	}
}

func TestCollect_FundsFailureIsFatal(t *testing.T) {
	c := NewCollector(&stubProvider{fundsErr: errors.New("boom")}, zerolog.Nop())
	_, err := c.Collect(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataUnavailable))
}

func TestCollect_MarketAndNewsFailuresDegrade(t *testing.T) {
	p := &stubProvider{
		funds:     []model.FundRecord{{Name: "x"}},
		marketErr: ErrDataUnavailable,
		newsErr:   ErrDataUnavailable,
	}
	ds, err := NewCollector(p, zerolog.Nop()).Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Funds, 1)
	assert.Zero(t, ds.Market)
	assert.Empty(t, ds.News)
}

func TestSampleProvider_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSampleProvider().FetchFunds(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

const datasetYAML = `
funds:
  - fund_name: Test Flexi Cap Fund
    fund_code: TEST_FLEXI
    category: Flexi Cap
    aum_cr: 15000
    1y_return: -6.4
    3y_return: 11.0
    5y_return: 16.5
    10y_return: 13.1
    current_nav: 54.2
    52w_high: 63.0
    52w_low: 51.0
    expense_ratio: 1.1
    fund_manager: A Manager
nifty_valuation:
  nifty_50_level: 24000
  nifty_50_pe: 21.5
  current_vs_historical: Fair
news_data:
  - headline: Budget day
    summary: Capex push
    impact: Positive
    date: "2026-02-01"
`

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(datasetYAML), 0o644))

	ds, err := NewCollector(NewFileProvider(path), zerolog.Nop()).Collect(context.Background())
	require.NoError(t, err)

	require.Len(t, ds.Funds, 1)
	f := ds.Funds[0]
	assert.Equal(t, "Test Flexi Cap Fund", f.Name)
	assert.Equal(t, -6.4, f.Return1Y)
	assert.Equal(t, 63.0, f.High52w)
	assert.Equal(t, 51.0, f.Low52w)
	assert.Equal(t, "A Manager", f.Manager)
	assert.Equal(t, 24000.0, ds.Market.Nifty50Level)
	assert.Equal(t, "Fair", ds.Market.CurrentVsHistorical)
	require.Len(t, ds.News, 1)
	assert.Equal(t, "2026-02-01", ds.News[0].Date)
}

func TestFileProvider_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funds.json")
	body := `{"funds":[{"fund_name":"J","1y_return":-1,"current_nav":10,"52w_high":12,"52w_low":8}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	funds, err := NewFileProvider(path).FetchFunds(context.Background())
	require.NoError(t, err)
	require.Len(t, funds, 1)
	assert.Equal(t, 12.0, funds[0].High52w)

	_, err = NewFileProvider(path).FetchMarket(context.Background())
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestFileProvider_Missing(t *testing.T) {
	_, err := NewFileProvider(filepath.Join(t.TempDir(), "nope.yaml")).FetchFunds(context.Background())
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestFileProvider_NoFunds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("news_data: []\n"), 0o644))
	_, err := NewFileProvider(path).FetchFunds(context.Background())
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestFileProvider_NonFiniteMarketDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funds.yaml")
	body := strings.Replace(datasetYAML, "nifty_50_pe: 21.5", "nifty_50_pe: .nan", 1)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := NewFileProvider(path).FetchMarket(context.Background())
	assert.ErrorIs(t, err, ErrDataUnavailable)

	ds, err := NewCollector(NewFileProvider(path), zerolog.Nop()).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.MarketSnapshot{}, ds.Market)
	assert.Len(t, ds.Funds, 1)
}
