package store

import "time"

// Entry kinds. Positive amounts are intake grams, negative amounts are
// activity offsets (salt burned through exercise).
const (
	KindSalt     = "salt"
	KindMeal     = "meal"
	KindExercise = "exercise"
	KindWater    = "water"
)

// Purity grades for the day's meals.
const (
	PurityNone  = "none"
	PurityClean = "clean"
	PuritySafe  = "safe"
	PurityDirty = "dirty"
)

type LogEntry struct {
	ID         int64
	Amount     float64 // grams; negative = activity
	Label      string
	Kind       string
	OccurredAt time.Time
	CreatedAt  time.Time
}

// DailyState holds the per-day mutable state. One live row per day;
// superseded rows are purged on write, only the ledger keeps history.
type DailyState struct {
	Day              string // 2006-01-02
	Purity           string
	FastingStartedAt *time.Time
	ConditionScore   int // 0 = unset, else 1-5
}

type Profile struct {
	DisplayName  string
	RewardPoints int64
	Level        int
	Title        string
	GoalGrams    float64
}

type Setting struct {
	Key   string
	Value string
}

// EntryFilter is used to filter log entries in queries.
type EntryFilter struct {
	Kind  string
	From  *time.Time
	To    *time.Time
	Limit int
}
