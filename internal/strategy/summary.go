package strategy

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"FundScreener/internal/model"
)

// Summary aggregates a screened list for the report header and digest.
type Summary struct {
	Count            int
	MeanScore        float64
	MeanDrawdown     float64
	DeepestDrawdown  float64
	MeanRecovery     float64
	ByRecommendation map[model.Recommendation]int
}

// Summarize computes aggregate figures over ranked funds. An empty list
// yields a zero Summary with an empty recommendation map.
func Summarize(ranked []model.RankedFund) Summary {
	s := Summary{
		Count:            len(ranked),
		ByRecommendation: make(map[model.Recommendation]int),
	}
	if len(ranked) == 0 {
		return s
	}

	scores := make([]float64, len(ranked))
	drawdowns := make([]float64, len(ranked))
	recoveries := make([]float64, len(ranked))
	for i, f := range ranked {
		scores[i] = float64(f.Score)
		drawdowns[i] = f.DrawdownFromHigh
		recoveries[i] = f.RecoveryPotentialPc
		s.ByRecommendation[f.Recommendation]++
	}

	s.MeanScore = stat.Mean(scores, nil)
	s.MeanDrawdown = stat.Mean(drawdowns, nil)
	s.DeepestDrawdown = floats.Max(drawdowns)
	s.MeanRecovery = stat.Mean(recoveries, nil)
	return s
}
