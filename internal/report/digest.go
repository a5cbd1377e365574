package report

import (
	"fmt"
	"html"
	"strings"
	"time"

	"FundScreener/internal/model"
	"FundScreener/internal/strategy"
)

// FormatDigest builds a short Telegram-style HTML digest of a run: the
// summary line and the top picks.
func FormatDigest(funds []model.RankedFund, s strategy.Summary, top int, at time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>Fund Recovery Screen</b> | %s\n\n", at.Format("2006-01-02 15:04 MST")))

	if len(funds) == 0 {
		b.WriteString("No beaten-down funds found.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Screened: %d | Avg score: %.1f | Avg drawdown: %.1f%%\n",
		s.Count, s.MeanScore, s.MeanDrawdown))
	for _, rec := range []model.Recommendation{model.StrongBuy, model.Buy, model.Hold, model.Avoid} {
		if n := s.ByRecommendation[rec]; n > 0 {
			b.WriteString(fmt.Sprintf("  %s: %d\n", rec, n))
		}
	}

	if top <= 0 {
		return b.String()
	}
	if top > len(funds) {
		top = len(funds)
	}
	b.WriteString(fmt.Sprintf("\n🎯 <b>Top %d:</b>\n", top))
	for i, f := range funds[:top] {
		b.WriteString(fmt.Sprintf("%d. %s\n   Score %d/100 · %s · 1Y %+.1f%% · %.1f%% off high\n",
			i+1, html.EscapeString(f.Name), f.Score, f.Recommendation, f.Return1Y, f.DrawdownFromHigh))
	}
	return b.String()
}
