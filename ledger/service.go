// Package ledger records finished runs. It is bookkeeping only: the
// session works identically with the no-op backend.
package ledger

import (
	"context"
	"time"
)

// RunResult is one finished game.
type RunResult struct {
	Class     string
	Ascension int
	Floor     int
	Score     int
	Victory   bool
	Seed      int64
	EndedAt   time.Time
}

// Service is the run-history contract consumed by the session.
type Service interface {
	RecordRun(ctx context.Context, run RunResult) error
	RecentRuns(ctx context.Context, limit int) ([]RunResult, error)
	Close() error
}
