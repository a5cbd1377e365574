package model

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFund() FundRecord {
	return FundRecord{
		Name:         "SBI Small Cap Fund",
		Code:         "SBI_SMALL_CAP",
		Category:     "Small Cap",
		AUMCrores:    31227,
		Return1Y:     -8.2,
		Return5Y:     20.1,
		CurrentNAV:   95.6,
		High52w:      118.9,
		Low52w:       89.3,
		ExpenseRatio: 1.45,
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validFund().Validate())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *FundRecord)
	}{
		{"flat 52w range", func(f *FundRecord) { f.High52w = f.Low52w }},
		{"inverted 52w range", func(f *FundRecord) { f.High52w, f.Low52w = 80, 90 }},
		{"missing name", func(f *FundRecord) { f.Name = "" }},
		{"zero nav", func(f *FundRecord) { f.CurrentNAV = 0 }},
		{"negative aum", func(f *FundRecord) { f.AUMCrores = -1 }},
		{"negative expense ratio", func(f *FundRecord) { f.ExpenseRatio = -0.1 }},
		{"infinite 1y return", func(f *FundRecord) { f.Return1Y = math.Inf(-1) }},
		{"nan 5y return", func(f *FundRecord) { f.Return5Y = math.NaN() }},
		{"infinite 52w high", func(f *FundRecord) { f.High52w = math.Inf(1) }},
		{"infinite aum", func(f *FundRecord) { f.AUMCrores = math.Inf(1) }},
		{"nan expense ratio", func(f *FundRecord) { f.ExpenseRatio = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFund()
			tt.mutate(&f)
			err := f.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidFundRecord))
		})
	}
}

func TestRankedFund_FlatJSON(t *testing.T) {
	rf := RankedFund{
		FundRecord:     validFund(),
		MomentumResult: MomentumResult{Score: 100, Recommendation: StrongBuy, BeatenDownLevel: BeatenDownMedium},
	}
	data, err := json.Marshal(rf)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Equal(t, "SBI Small Cap Fund", flat["fund_name"])
	assert.Equal(t, 118.9, flat["52w_high"])
	assert.Equal(t, float64(100), flat["momentum_score"])
	assert.Equal(t, "Strong Buy", flat["recommendation"])
	assert.Equal(t, "Medium", flat["beaten_down_level"])
}

func TestMarketSnapshot_Validate(t *testing.T) {
	m := MarketSnapshot{Nifty50Level: 25125, Nifty50PE: 22, CurrentVsHistorical: "Overvalued"}
	assert.NoError(t, m.Validate())

	m.VolatilityIndex = math.Inf(1)
	assert.Error(t, m.Validate())

	m.VolatilityIndex = 0
	m.Nifty500PB = math.NaN()
	assert.Error(t, m.Validate())
}
