// Package engine implements the saltlab rules engine: reward-point
// progression, the daily engine-status classification, streak and badge
// evaluation, and notification triggers. Everything derived is a pure
// recomputation over the ledger and the day's state; the Engine type
// coordinates mutations and pulls fresh snapshots after each one.
package engine

import "time"

// Clock is the single source of current time for the engine, so
// day-rollover behavior is testable without the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock implementation used in production.
func SystemClock() Clock { return systemClock{} }

// DayKey reduces an instant to its calendar day key (UTC).
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
