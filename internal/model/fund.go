package model

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidFundRecord marks a fund record that cannot be scored.
var ErrInvalidFundRecord = errors.New("invalid fund record")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// YAML accepts .inf and .nan, which encoding/json cannot write back out.
	v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.Float64 && fl.Field().Kind() != reflect.Float32 {
			return true
		}
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// FundRecord is one fund as delivered by a data provider. AUM is in crores,
// returns are trailing percentages.
type FundRecord struct {
	Name         string  `json:"fund_name" yaml:"fund_name" validate:"required"`
	Code         string  `json:"fund_code" yaml:"fund_code"`
	Category     string  `json:"category" yaml:"category"`
	AUMCrores    float64 `json:"aum_cr" yaml:"aum_cr" validate:"finite,gte=0"`
	Return1Y     float64 `json:"1y_return" yaml:"1y_return" validate:"finite"`
	Return3Y     float64 `json:"3y_return" yaml:"3y_return" validate:"finite"`
	Return5Y     float64 `json:"5y_return" yaml:"5y_return" validate:"finite"`
	Return10Y    float64 `json:"10y_return" yaml:"10y_return" validate:"finite"`
	CurrentNAV   float64 `json:"current_nav" yaml:"current_nav" validate:"finite,gt=0"`
	High52w      float64 `json:"52w_high" yaml:"52w_high" validate:"finite,gt=0,gtfield=Low52w"`
	Low52w       float64 `json:"52w_low" yaml:"52w_low" validate:"finite,gt=0"`
	ExpenseRatio float64 `json:"expense_ratio" yaml:"expense_ratio" validate:"finite,gte=0"`
	Manager      string  `json:"fund_manager" yaml:"fund_manager"`
}

// Validate checks the record against the constraints scoring relies on.
// A 52-week high that does not exceed the low is rejected, since the range
// position would divide by zero.
func (f FundRecord) Validate() error {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %q: field %s failed %s=%s",
				ErrInvalidFundRecord, f.Name, fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("%w: %q: %v", ErrInvalidFundRecord, f.Name, err)
	}
	return nil
}

// BeatenDownLevel grades how hard the trailing year has hit a fund.
type BeatenDownLevel string

const (
	BeatenDownHigh   BeatenDownLevel = "High"
	BeatenDownMedium BeatenDownLevel = "Medium"
	BeatenDownLow    BeatenDownLevel = "Low"
)

// Recommendation is the action label derived from a momentum score.
type Recommendation string

const (
	StrongBuy Recommendation = "Strong Buy"
	Buy       Recommendation = "Buy"
	Hold      Recommendation = "Hold"
	Avoid     Recommendation = "Avoid"
)

// MomentumResult holds everything derived from a single FundRecord.
type MomentumResult struct {
	Score               int             `json:"momentum_score"`
	DrawdownFromHigh    float64         `json:"drawdown_from_high"`
	RecoveryPotentialPc float64         `json:"recovery_potential_pct"`
	BeatenDownLevel     BeatenDownLevel `json:"beaten_down_level"`
	Recommendation      Recommendation  `json:"recommendation"`
	Factors             []FactorScore   `json:"-"`
}

// FactorScore is one additive component of a momentum score.
type FactorScore struct {
	Name       string
	Points     int
	Commentary string
}

// RankedFund is a screened fund with its scoring attached. Both halves are
// embedded so the JSON export stays one flat object per fund.
type RankedFund struct {
	FundRecord
	MomentumResult
}

// RejectedFund is a record that failed validation during screening.
type RejectedFund struct {
	Fund   FundRecord
	Reason string
}
