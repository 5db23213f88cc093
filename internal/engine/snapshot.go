package engine

import (
	"time"

	"github.com/sadopc/saltlab/internal/store"
)

// Settings are the persisted user preferences the engine consults.
type Settings struct {
	Theme         string
	Notifications bool
}

// Snapshot is a consistent read of everything the derived components
// need: the full ledger, today's slice of it, the day's state, and the
// profile. Derived values (status, badges, triggers) are recomputed from
// a snapshot and never cached across mutations.
type Snapshot struct {
	Now      time.Time
	Day      string
	Entries  []store.LogEntry // full ledger, newest first
	Today    []store.LogEntry // today's entries, oldest first
	Daily    store.DailyState
	WaterML  int
	Profile  store.Profile
	Settings Settings

	// All-time label counters for the counting badges.
	SaltWaterLogs int
	CleanMeals    int
}

// Goal returns the effective daily goal in grams.
func (s *Snapshot) Goal() float64 {
	if s.Profile.GoalGrams > 0 {
		return s.Profile.GoalGrams
	}
	return DefaultGoalGrams
}

// IntakeToday is the day's salt intake in grams.
func (s *Snapshot) IntakeToday() float64 {
	return IntakeTotal(s.Today)
}

// ActivityToday is the day's activity offset in grams.
func (s *Snapshot) ActivityToday() float64 {
	return ActivityPoints(s.Today)
}

// Status computes the engine-status report for this snapshot.
func (s *Snapshot) Status() Report {
	return ComputeStatus(s.Today, s.Daily, s.Goal(), s.Now)
}

// Streak is the live consecutive-day streak.
func (s *Snapshot) Streak() int {
	return CurrentStreak(s.Entries, s.Now)
}

// FastingFor returns the elapsed fasting window, zero when no meal has
// been recorded yet.
func (s *Snapshot) FastingFor() time.Duration {
	if s.Daily.FastingStartedAt == nil {
		return 0
	}
	d := s.Now.Sub(*s.Daily.FastingStartedAt)
	if d < 0 {
		return 0
	}
	return d
}
