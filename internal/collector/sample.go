package collector

import (
	"context"

	"FundScreener/internal/model"
)

// SampleProvider returns a fixed universe of Indian small and mid cap funds,
// a NIFTY valuation snapshot and a handful of headlines.
type SampleProvider struct{}

// NewSampleProvider creates the built-in sample provider.
func NewSampleProvider() *SampleProvider { return &SampleProvider{} }

// Name identifies the provider in logs and run history.
func (p *SampleProvider) Name() string { return "sample" }

func (p *SampleProvider) FetchFunds(ctx context.Context) ([]model.FundRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []model.FundRecord{
		{
			Name: "HDFC Mid Cap Opportunities Fund", Code: "HDFC_MID_CAP", Category: "Mid Cap",
			AUMCrores: 83104, Return1Y: -2.5, Return3Y: 15.2, Return5Y: 18.3, Return10Y: 16.8,
			CurrentNAV: 142.5, High52w: 165.2, Low52w: 128.4, ExpenseRatio: 1.25, Manager: "Chirag Setalvad",
		},
		{
			Name: "SBI Small Cap Fund", Code: "SBI_SMALL_CAP", Category: "Small Cap",
			AUMCrores: 31227, Return1Y: -8.2, Return3Y: 12.8, Return5Y: 20.1, Return10Y: 18.5,
			CurrentNAV: 95.6, High52w: 118.9, Low52w: 89.3, ExpenseRatio: 1.45, Manager: "R Srinivasan",
		},
		{
			Name: "Axis Small Cap Fund", Code: "AXIS_SMALL_CAP", Category: "Small Cap",
			AUMCrores: 25568, Return1Y: -5.8, Return3Y: 16.2, Return5Y: 22.8, Return10Y: 17.9,
			CurrentNAV: 88.4, High52w: 102.7, Low52w: 82.1, ExpenseRatio: 1.35, Manager: "Shreyash Devalkar",
		},
		{
			Name: "Franklin India Smaller Cos Fund", Code: "FRANKLIN_SMALL_CAP", Category: "Small Cap",
			AUMCrores: 8245, Return1Y: -12.3, Return3Y: 8.9, Return5Y: 15.6, Return10Y: 14.2,
			CurrentNAV: 76.8, High52w: 94.5, Low52w: 72.1, ExpenseRatio: 1.55, Manager: "Anand Radhakrishnan",
		},
		{
			Name: "Nippon India Small Cap Fund", Code: "NIPPON_SMALL_CAP", Category: "Small Cap",
			AUMCrores: 57009, Return1Y: -3.2, Return3Y: 18.5, Return5Y: 24.1, Return10Y: 20.0,
			CurrentNAV: 156.3, High52w: 178.9, Low52w: 145.2, ExpenseRatio: 1.28, Manager: "Samir Rachh",
		},
		{
			Name: "Motilal Oswal Midcap Fund", Code: "MOTILAL_MIDCAP", Category: "Mid Cap",
			AUMCrores: 33608, Return1Y: -9.8, Return3Y: 14.2, Return5Y: 19.8, Return10Y: 17.4,
			CurrentNAV: 98.7, High52w: 124.5, Low52w: 92.3, ExpenseRatio: 1.42, Manager: "Rakesh Singh",
		},
		{
			Name: "Kotak Small Cap Fund", Code: "KOTAK_SMALL_CAP", Category: "Small Cap",
			AUMCrores: 18456, Return1Y: -7.1, Return3Y: 11.8, Return5Y: 17.9, Return10Y: 15.8,
			CurrentNAV: 145.8, High52w: 167.2, Low52w: 132.9, ExpenseRatio: 1.38, Manager: "Pankaj Tibrewal",
		},
		{
			Name: "Tata Small Cap Fund", Code: "TATA_SMALL_CAP", Category: "Small Cap",
			AUMCrores: 12348, Return1Y: -11.5, Return3Y: 9.2, Return5Y: 16.2, Return10Y: 13.8,
			CurrentNAV: 89.3, High52w: 108.7, Low52w: 84.1, ExpenseRatio: 1.48, Manager: "Meeta Shetty",
		},
	}, nil
}

func (p *SampleProvider) FetchMarket(ctx context.Context) (model.MarketSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.MarketSnapshot{}, err
	}
	return model.MarketSnapshot{
		Nifty50Level:        25125,
		Nifty50PE:           22.0,
		Nifty50PB:           3.34,
		Nifty500Level:       23182,
		Nifty500PE:          24.2,
		Nifty500PB:          3.58,
		MarketCapToGDP:      120.0,
		HistoricalAvgPE:     19.6,
		CurrentVsHistorical: "Overvalued",
		VolatilityIndex:     15.8,
		FIIOutflowsYTD:      -15000,
		DIIInflowsYTD:       125000,
	}, nil
}

func (p *SampleProvider) FetchNews(ctx context.Context) ([]model.NewsItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []model.NewsItem{
		{
			Headline: "Indian Markets Navigate US Trade Tensions",
			Summary:  "Markets remain resilient despite trade uncertainties. GST reforms expected to boost consumption.",
			Impact:   "Mixed",
			Date:     "2025-09-12",
		},
		{
			Headline: "Fed Rate Cut Expected This Month",
			Summary:  "US Fed likely to cut rates by 25bps, potentially boosting FII inflows to India.",
			Impact:   "Positive",
			Date:     "2025-09-12",
		},
		{
			Headline: "India GDP Growth Remains Strong at 7.8%",
			Summary:  "Q1 FY26 GDP growth beats estimates, supporting long-term investment thesis.",
			Impact:   "Positive",
			Date:     "2025-09-10",
		},
	}, nil
}
