package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"FundScreener/internal/model"
)

var csvHeader = []string{
	"rank", "fund_name", "fund_code", "category", "aum_cr",
	"1y_return", "3y_return", "5y_return", "10y_return",
	"current_nav", "52w_high", "52w_low", "expense_ratio", "fund_manager",
	"momentum_score", "drawdown_from_high", "recovery_potential_pct",
	"beaten_down_level", "recommendation",
}

// RenderCSV writes the ranked funds as CSV, one row per fund in rank order.
func RenderCSV(funds []model.RankedFund) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: csv: %v", ErrRender, err)
	}
	ff := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	for i, f := range funds {
		row := []string{
			strconv.Itoa(i + 1), f.Name, f.Code, f.Category, ff(f.AUMCrores),
			ff(f.Return1Y), ff(f.Return3Y), ff(f.Return5Y), ff(f.Return10Y),
			ff(f.CurrentNAV), ff(f.High52w), ff(f.Low52w), ff(f.ExpenseRatio), f.Manager,
			strconv.Itoa(f.Score), ff(f.DrawdownFromHigh), ff(f.RecoveryPotentialPc),
			string(f.BeatenDownLevel), string(f.Recommendation),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("%w: csv: %v", ErrRender, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: csv: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
