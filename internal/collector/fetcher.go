package collector

import (
	"context"
	"errors"

	"FundScreener/internal/model"
)

// ErrDataUnavailable is returned when a provider cannot supply a section.
var ErrDataUnavailable = errors.New("data unavailable")

// Provider supplies the raw inputs for one screening run.
type Provider interface {
	FetchFunds(ctx context.Context) ([]model.FundRecord, error)
	FetchMarket(ctx context.Context) (model.MarketSnapshot, error)
	FetchNews(ctx context.Context) ([]model.NewsItem, error)
	Name() string
}
