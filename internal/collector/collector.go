package collector

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"FundScreener/internal/model"
)

// Dataset is everything one screening run needs.
type Dataset struct {
	Funds  []model.FundRecord
	Market model.MarketSnapshot
	News   []model.NewsItem
}

// Collector pulls a Dataset from a Provider.
type Collector struct {
	Provider Provider
	log      zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(provider Provider, log zerolog.Logger) *Collector {
	return &Collector{
		Provider: provider,
		log:      log.With().Str("component", "collector").Str("provider", provider.Name()).Logger(),
	}
}

// Collect fetches funds, market snapshot and news. Without funds there is
// nothing to screen, so that failure is returned; market and news failures
// are logged and leave their section empty.
func (c *Collector) Collect(ctx context.Context) (*Dataset, error) {
	funds, err := c.Provider.FetchFunds(ctx)
	if err != nil {
		if errors.Is(err, ErrDataUnavailable) {
			return nil, fmt.Errorf("fetch funds: %w", err)
		}
		return nil, fmt.Errorf("fetch funds: %w: %v", ErrDataUnavailable, err)
	}
	ds := &Dataset{Funds: funds}

	if m, err := c.Provider.FetchMarket(ctx); err != nil {
		c.log.Warn().Err(err).Msg("Market snapshot unavailable, continuing without it")
	} else {
		ds.Market = m
	}

	if news, err := c.Provider.FetchNews(ctx); err != nil {
		c.log.Warn().Err(err).Msg("News unavailable, continuing without it")
	} else {
		ds.News = news
	}

	c.log.Info().
		Int("funds", len(ds.Funds)).
		Int("news", len(ds.News)).
		Msg("Collected dataset")
	return ds, nil
}
