package collector

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"FundScreener/internal/model"
)

// datasetFile is the on-disk shape read by FileProvider. JSON files parse too.
type datasetFile struct {
	Funds  []model.FundRecord    `yaml:"funds"`
	Market *model.MarketSnapshot `yaml:"nifty_valuation"`
	News   []model.NewsItem      `yaml:"news_data"`
}

// FileProvider reads the fund universe, market snapshot and news from a
// YAML dataset file. The file is read on every fetch so edits are picked up
// by scheduled runs.
type FileProvider struct {
	Path string
}

// NewFileProvider creates a provider reading the dataset at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// Name identifies the provider in logs and run history.
func (p *FileProvider) Name() string { return "file:" + p.Path }

func (p *FileProvider) load(ctx context.Context) (*datasetFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read dataset: %v", ErrDataUnavailable, err)
	}
	var ds datasetFile
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: parse dataset: %v", ErrDataUnavailable, err)
	}
	return &ds, nil
}

// FetchFunds returns the funds section; an empty section is an error.
func (p *FileProvider) FetchFunds(ctx context.Context) ([]model.FundRecord, error) {
	ds, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(ds.Funds) == 0 {
		return nil, fmt.Errorf("%w: %s has no funds", ErrDataUnavailable, p.Path)
	}
	return ds.Funds, nil
}

// FetchMarket returns the nifty_valuation section. NaN or infinite values
// make the section unavailable.
func (p *FileProvider) FetchMarket(ctx context.Context) (model.MarketSnapshot, error) {
	ds, err := p.load(ctx)
	if err != nil {
		return model.MarketSnapshot{}, err
	}
	if ds.Market == nil {
		return model.MarketSnapshot{}, fmt.Errorf("%w: %s has no nifty_valuation section", ErrDataUnavailable, p.Path)
	}
	if err := ds.Market.Validate(); err != nil {
		return model.MarketSnapshot{}, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, p.Path, err)
	}
	return *ds.Market, nil
}

// FetchNews returns the news_data section, possibly empty.
func (p *FileProvider) FetchNews(ctx context.Context) ([]model.NewsItem, error) {
	ds, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	return ds.News, nil
}
