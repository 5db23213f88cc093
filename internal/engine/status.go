package engine

import (
	"time"

	"github.com/sadopc/saltlab/internal/store"
)

// Status is the derived engine-status classification for the day.
type Status int

const (
	StatusIdle Status = iota
	StatusWarming
	StatusBurning
	StatusOverheat
)

func (s Status) String() string {
	switch s {
	case StatusWarming:
		return "warming"
	case StatusBurning:
		return "burning"
	case StatusOverheat:
		return "overheat"
	default:
		return "idle"
	}
}

// Report is the full status verdict: classification, the score that
// produced it, and the fixed display color and message for the state.
type Report struct {
	Status  Status
	Score   float64
	Color   string
	Message string
}

// DefaultGoalGrams applies when the user has not set a daily goal.
const DefaultGoalGrams = 10

// fastingBonusAfter is the fasting duration that earns the score bonus.
const fastingBonusAfter = 12 * time.Hour

var statusTable = map[Status]struct {
	color   string
	message string
}{
	StatusIdle:     {"#90A4AE", "Engine idle"},
	StatusWarming:  {"#FFCA28", "Metabolic engine warming up..."},
	StatusBurning:  {"#448AFF", "Fat-burning engine at full power!"},
	StatusOverheat: {"#FF5252", "Impurity detected! Engine warning!"},
}

// ComputeStatus classifies the day from today's ledger slice and the
// daily state. Pure: it holds no memory and must be recomputed after
// every ledger or daily-state mutation.
//
// A dirty purity grade short-circuits to overheat regardless of every
// other signal. Otherwise the score accumulates a purity bonus, the
// goal-capped intake ratio, a fasting bonus past 12 hours, and an
// activity bonus; >=80 burns, >=40 warms, else idle.
func ComputeStatus(todayEntries []store.LogEntry, daily store.DailyState, goalGrams float64, now time.Time) Report {
	if daily.Purity == store.PurityDirty {
		return reportFor(StatusOverheat, 0)
	}

	if goalGrams <= 0 {
		goalGrams = DefaultGoalGrams
	}

	var score float64
	switch daily.Purity {
	case store.PurityClean:
		score += 50
	case store.PuritySafe:
		score += 30
	}

	intakeRatio := IntakeTotal(todayEntries) / goalGrams
	if intakeRatio > 1.5 {
		intakeRatio = 1.5
	}
	score += intakeRatio * 30

	if daily.FastingStartedAt != nil && now.Sub(*daily.FastingStartedAt) > fastingBonusAfter {
		score += 20
	}

	score += ActivityPoints(todayEntries) * 20

	switch {
	case score >= 80:
		return reportFor(StatusBurning, score)
	case score >= 40:
		return reportFor(StatusWarming, score)
	default:
		return reportFor(StatusIdle, score)
	}
}

func reportFor(s Status, score float64) Report {
	entry := statusTable[s]
	return Report{Status: s, Score: score, Color: entry.color, Message: entry.message}
}

// IntakeTotal sums positive non-water amounts: the day's salt intake.
func IntakeTotal(entries []store.LogEntry) float64 {
	var total float64
	for _, e := range entries {
		if e.Kind != store.KindWater && e.Amount > 0 {
			total += e.Amount
		}
	}
	return total
}

// ActivityPoints sums the absolute value of negative amounts: salt
// burned through exercise and other activity offsets.
func ActivityPoints(entries []store.LogEntry) float64 {
	var total float64
	for _, e := range entries {
		if e.Amount < 0 {
			total += -e.Amount
		}
	}
	return total
}
