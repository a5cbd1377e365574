package recorder

import (
	"time"

	"FundScreener/internal/model"
	"FundScreener/internal/strategy"
)

// RunSnapshot holds everything one screening run produced.
type RunSnapshot struct {
	RunID     string
	Source    string
	StartedAt time.Time
	Summary   strategy.Summary
	Funds     []model.RankedFund
	Rejected  []model.RejectedFund
}

// Recorder archives screening runs for later analysis. Nothing read back
// from the archive feeds into a screen.
type Recorder interface {
	RecordRun(snap *RunSnapshot) error
	Close() error
}
