package strategy

import (
	"fmt"
	"sort"

	"FundScreener/internal/calculator"
	"FundScreener/internal/model"
)

// Score computes the momentum result for one fund. Records that fail
// validation return an error wrapping model.ErrInvalidFundRecord.
func Score(f model.FundRecord, r Rules) (model.MomentumResult, error) {
	if err := f.Validate(); err != nil {
		return model.MomentumResult{}, err
	}
	drawdown, err := calculator.DrawdownFromHigh(f.CurrentNAV, f.High52w)
	if err != nil {
		return model.MomentumResult{}, fmt.Errorf("%w: %q: %v", model.ErrInvalidFundRecord, f.Name, err)
	}
	recovery, err := calculator.RangePosition(f.CurrentNAV, f.High52w, f.Low52w)
	if err != nil {
		return model.MomentumResult{}, fmt.Errorf("%w: %q: %v", model.ErrInvalidFundRecord, f.Name, err)
	}

	factors := []model.FactorScore{
		scoreDecline(f, r),
		scoreHistory(f, r),
		scorePositioning(recovery, r),
		scoreQuality(f, r),
	}
	total := 0
	for _, fs := range factors {
		total += fs.Points
	}
	total = clamp(total, 0, r.MaxScore)

	return model.MomentumResult{
		Score:               total,
		DrawdownFromHigh:    calculator.Round2(drawdown),
		RecoveryPotentialPc: calculator.Round2(recovery),
		BeatenDownLevel:     r.Level(f.Return1Y),
		Recommendation:      r.Recommend(total),
		Factors:             factors,
	}, nil
}

// ScreenResult is the output of Screen.
type ScreenResult struct {
	Ranked   []model.RankedFund
	Rejected []model.RejectedFund
}

// Screen scores every fund, keeps the ones below the 1-year return cut-off
// and ranks them by score, highest first. Equal scores keep input order.
// Invalid records are reported in Rejected and do not stop the batch.
func Screen(funds []model.FundRecord, r Rules) ScreenResult {
	var res ScreenResult
	for _, f := range funds {
		mr, err := Score(f, r)
		if err != nil {
			res.Rejected = append(res.Rejected, model.RejectedFund{Fund: f, Reason: err.Error()})
			continue
		}
		if f.Return1Y < r.ScreenBelowReturn {
			res.Ranked = append(res.Ranked, model.RankedFund{FundRecord: f, MomentumResult: mr})
		}
	}
	sort.SliceStable(res.Ranked, func(i, j int) bool {
		return res.Ranked[i].Score > res.Ranked[j].Score
	})
	return res
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
