package strategy

import (
	"fmt"

	"FundScreener/internal/model"
)

// scoreDecline rewards a weak trailing year.
func scoreDecline(f model.FundRecord, r Rules) model.FactorScore {
	var points int
	switch {
	case f.Return1Y < r.Decline.SevereBelow:
		points = r.Decline.SeverePoints
	case f.Return1Y < r.Decline.MildBelow:
		points = r.Decline.MildPoints
	}
	return model.FactorScore{
		Name:       "Decline",
		Points:     points,
		Commentary: fmt.Sprintf("1Y %+.1f%%", f.Return1Y),
	}
}

// scoreHistory rewards strong 5-year performance.
func scoreHistory(f model.FundRecord, r Rules) model.FactorScore {
	var points int
	switch {
	case f.Return5Y > r.History.StrongAbove:
		points = r.History.StrongPoints
	case f.Return5Y > r.History.GoodAbove:
		points = r.History.GoodPoints
	}
	return model.FactorScore{
		Name:       "History",
		Points:     points,
		Commentary: fmt.Sprintf("5Y %.1f%%", f.Return5Y),
	}
}

// scorePositioning rewards a NAV sitting near its 52-week low.
// Anything between the two bands counts as mid-range.
func scorePositioning(recovery float64, r Rules) model.FactorScore {
	var points int
	var commentary string
	switch {
	case recovery > r.Positioning.NearHighAbove:
		points = r.Positioning.NearHighPoints
		commentary = "near 52w high"
	case recovery < r.Positioning.NearLowBelow:
		points = r.Positioning.NearLowPoints
		commentary = "near 52w low"
	default:
		points = r.Positioning.MidPoints
		commentary = "mid-range"
	}
	return model.FactorScore{
		Name:       "Positioning",
		Points:     points,
		Commentary: fmt.Sprintf("%s (%.0f%%)", commentary, recovery),
	}
}

// scoreQuality rewards size and low cost independently.
func scoreQuality(f model.FundRecord, r Rules) model.FactorScore {
	var points int
	if f.AUMCrores > r.Quality.LargeAUMAbove {
		points += r.Quality.LargeAUMPoints
	}
	if f.ExpenseRatio < r.Quality.LowExpenseBelow {
		points += r.Quality.LowExpensePoints
	}
	return model.FactorScore{
		Name:       "Quality",
		Points:     points,
		Commentary: fmt.Sprintf("AUM %.0fcr, TER %.2f%%", f.AUMCrores, f.ExpenseRatio),
	}
}
