package strategy

import (
	"fmt"

	"FundScreener/internal/model"
)

// Rules holds every threshold and point value used by the scorer. The zero
// value is not useful; start from DefaultRules and override.
type Rules struct {
	// ScreenBelowReturn keeps only funds whose 1-year return is below it.
	ScreenBelowReturn float64 `yaml:"screen_below_return"`

	Decline struct {
		SevereBelow  float64 `yaml:"severe_below"`
		SeverePoints int     `yaml:"severe_points"`
		MildBelow    float64 `yaml:"mild_below"`
		MildPoints   int     `yaml:"mild_points"`
	} `yaml:"decline"`

	History struct {
		StrongAbove  float64 `yaml:"strong_above"`
		StrongPoints int     `yaml:"strong_points"`
		GoodAbove    float64 `yaml:"good_above"`
		GoodPoints   int     `yaml:"good_points"`
	} `yaml:"history"`

	Positioning struct {
		NearHighAbove  float64 `yaml:"near_high_above"`
		NearHighPoints int     `yaml:"near_high_points"`
		NearLowBelow   float64 `yaml:"near_low_below"`
		NearLowPoints  int     `yaml:"near_low_points"`
		MidPoints      int     `yaml:"mid_points"`
	} `yaml:"positioning"`

	Quality struct {
		LargeAUMAbove    float64 `yaml:"large_aum_above"`
		LargeAUMPoints   int     `yaml:"large_aum_points"`
		LowExpenseBelow  float64 `yaml:"low_expense_below"`
		LowExpensePoints int     `yaml:"low_expense_points"`
	} `yaml:"quality"`

	MaxScore int `yaml:"max_score"`

	Levels struct {
		HighBelow   float64 `yaml:"high_below"`
		MediumBelow float64 `yaml:"medium_below"`
	} `yaml:"levels"`

	Tiers struct {
		StrongBuy int `yaml:"strong_buy"`
		Buy       int `yaml:"buy"`
		Hold      int `yaml:"hold"`
	} `yaml:"tiers"`
}

// DefaultRules returns the stock screening rules.
func DefaultRules() Rules {
	var r Rules
	r.ScreenBelowReturn = 0

	r.Decline.SevereBelow = -5
	r.Decline.SeverePoints = 30
	r.Decline.MildBelow = 0
	r.Decline.MildPoints = 20

	r.History.StrongAbove = 15
	r.History.StrongPoints = 25
	r.History.GoodAbove = 10
	r.History.GoodPoints = 15

	r.Positioning.NearHighAbove = 70
	r.Positioning.NearHighPoints = 10
	r.Positioning.NearLowBelow = 30
	r.Positioning.NearLowPoints = 25
	r.Positioning.MidPoints = 15

	r.Quality.LargeAUMAbove = 10000
	r.Quality.LargeAUMPoints = 10
	r.Quality.LowExpenseBelow = 1.5
	r.Quality.LowExpensePoints = 10

	r.MaxScore = 100

	r.Levels.HighBelow = -10
	r.Levels.MediumBelow = -5

	r.Tiers.StrongBuy = 80
	r.Tiers.Buy = 65
	r.Tiers.Hold = 50
	return r
}

// Validate checks that the rule ladders are ordered.
func (r Rules) Validate() error {
	if r.MaxScore <= 0 {
		return fmt.Errorf("scoring.max_score must be positive")
	}
	if r.Decline.SevereBelow > r.Decline.MildBelow {
		return fmt.Errorf("scoring.decline: severe_below must not exceed mild_below")
	}
	if r.History.GoodAbove > r.History.StrongAbove {
		return fmt.Errorf("scoring.history: good_above must not exceed strong_above")
	}
	if r.Positioning.NearLowBelow > r.Positioning.NearHighAbove {
		return fmt.Errorf("scoring.positioning: near_low_below must not exceed near_high_above")
	}
	if r.Levels.HighBelow > r.Levels.MediumBelow {
		return fmt.Errorf("scoring.levels: high_below must not exceed medium_below")
	}
	if !(r.Tiers.StrongBuy >= r.Tiers.Buy && r.Tiers.Buy >= r.Tiers.Hold) {
		return fmt.Errorf("scoring.tiers must satisfy strong_buy >= buy >= hold")
	}
	return nil
}

// Recommend maps a score to its recommendation, highest tier first.
func (r Rules) Recommend(score int) model.Recommendation {
	tiers := []struct {
		MinScore int
		Label    model.Recommendation
	}{
		{r.Tiers.StrongBuy, model.StrongBuy},
		{r.Tiers.Buy, model.Buy},
		{r.Tiers.Hold, model.Hold},
	}
	for _, t := range tiers {
		if score >= t.MinScore {
			return t.Label
		}
	}
	return model.Avoid
}

// Level grades the 1-year return.
func (r Rules) Level(return1Y float64) model.BeatenDownLevel {
	switch {
	case return1Y < r.Levels.HighBelow:
		return model.BeatenDownHigh
	case return1Y < r.Levels.MediumBelow:
		return model.BeatenDownMedium
	default:
		return model.BeatenDownLow
	}
}
