package calculator

import (
	"errors"
	"math"
)

// DrawdownFromHigh returns how far current sits below the 52-week high, in percent.
func DrawdownFromHigh(current, high float64) (float64, error) {
	if high <= 0 {
		return 0, errors.New("52-week high must be positive")
	}
	return (high - current) / high * 100, nil
}

// RangePosition returns where current sits within the 52-week range, in percent
// (0 at the low, 100 at the high). Values outside the range are not clamped.
func RangePosition(current, high, low float64) (float64, error) {
	if high == low {
		return 0, errors.New("52-week high equals low")
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	return (current - low) / (high - low) * 100, nil
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
