package model

import (
	"fmt"
	"time"
)

// MarketSnapshot is the NIFTY valuation snapshot shown alongside the screen.
// Flows are in crores.
type MarketSnapshot struct {
	Nifty50Level        float64 `json:"nifty_50_level" yaml:"nifty_50_level" validate:"finite"`
	Nifty50PE           float64 `json:"nifty_50_pe" yaml:"nifty_50_pe" validate:"finite"`
	Nifty50PB           float64 `json:"nifty_50_pb" yaml:"nifty_50_pb" validate:"finite"`
	Nifty500Level       float64 `json:"nifty_500_level" yaml:"nifty_500_level" validate:"finite"`
	Nifty500PE          float64 `json:"nifty_500_pe" yaml:"nifty_500_pe" validate:"finite"`
	Nifty500PB          float64 `json:"nifty_500_pb" yaml:"nifty_500_pb" validate:"finite"`
	MarketCapToGDP      float64 `json:"market_cap_to_gdp" yaml:"market_cap_to_gdp" validate:"finite"`
	HistoricalAvgPE     float64 `json:"historical_avg_pe" yaml:"historical_avg_pe" validate:"finite"`
	CurrentVsHistorical string  `json:"current_vs_historical" yaml:"current_vs_historical"`
	VolatilityIndex     float64 `json:"volatility_index" yaml:"volatility_index" validate:"finite"`
	FIIOutflowsYTD      float64 `json:"fii_outflows_ytd" yaml:"fii_outflows_ytd" validate:"finite"`
	DIIInflowsYTD       float64 `json:"dii_inflows_ytd" yaml:"dii_inflows_ytd" validate:"finite"`
}

// Validate rejects snapshots carrying NaN or infinite values.
func (m MarketSnapshot) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("invalid market snapshot: %w", err)
	}
	return nil
}

// NewsItem is a market headline. Date is kept as the provider's string.
type NewsItem struct {
	Headline string `json:"headline" yaml:"headline"`
	Summary  string `json:"summary" yaml:"summary"`
	Impact   string `json:"impact" yaml:"impact"`
	Date     string `json:"date" yaml:"date"`
}

// Analysis is the JSON export document.
type Analysis struct {
	ScreenedFunds []RankedFund   `json:"screened_funds"`
	Market        MarketSnapshot `json:"nifty_valuation"`
	News          []NewsItem     `json:"news_data"`
	Timestamp     time.Time      `json:"analysis_timestamp"`
}
