package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/sadopc/saltlab/internal/analyze"
	"github.com/sadopc/saltlab/internal/store"
)

// Exercise intensity presets. Exercise writes negative amounts: salt
// burned, offsetting the day's intake in the status score.
type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityHard     Intensity = "hard"
)

var exerciseOffsets = map[Intensity]struct {
	grams float64
	label string
}{
	IntensityLight:    {0.5, "Exercise (light)"},
	IntensityModerate: {1.0, "Exercise (moderate)"},
	IntensityHard:     {2.0, "Exercise (hard)"},
}

// MealGrade is the user's cleanliness verdict for a meal.
type MealGrade int

const (
	MealClean MealGrade = iota + 1
	MealSafe
	MealDirty
)

// scanEntryGrams is the fixed ledger amount for a classified meal.
const scanEntryGrams = 1.5

// Engine is the synchronous action boundary. Every user action mutates
// the store, then status, badges, and triggers are recomputed from a
// fresh snapshot. Single-threaded by design: callers serialize actions.
type Engine struct {
	store    *store.Store
	clock    Clock
	notifier Notifier

	triggers TriggerState
	granted  bool
}

// New wires an engine. When notifications are enabled in settings, the
// notifier's permission is requested once up front.
func New(s *store.Store, clock Clock, notifier Notifier) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	e := &Engine{store: s, clock: clock, notifier: notifier}
	if settings, err := e.loadSettings(); err == nil && settings.Notifications && notifier != nil {
		e.granted = notifier.RequestPermission()
	}
	return e
}

// Snapshot reads a consistent view of the world at the current instant.
// Day rollover is lazy: daily state and water reads are keyed by today,
// so a stale day simply reads as fresh defaults.
func (e *Engine) Snapshot() (*Snapshot, error) {
	now := e.clock.Now()
	day := DayKey(now)

	entries, err := e.store.ListEntries(store.EntryFilter{})
	if err != nil {
		return nil, fmt.Errorf("snapshot entries: %w", err)
	}
	today, err := e.store.EntriesOn(day)
	if err != nil {
		return nil, fmt.Errorf("snapshot today: %w", err)
	}
	daily, err := e.store.GetDailyState(day)
	if err != nil {
		return nil, fmt.Errorf("snapshot daily: %w", err)
	}
	water, err := e.store.GetWater(day)
	if err != nil {
		return nil, fmt.Errorf("snapshot water: %w", err)
	}
	profile, err := e.store.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("snapshot profile: %w", err)
	}
	settings, err := e.loadSettings()
	if err != nil {
		return nil, fmt.Errorf("snapshot settings: %w", err)
	}
	saltWaters, err := e.store.CountByLabel(LabelSaltWater)
	if err != nil {
		return nil, fmt.Errorf("snapshot salt waters: %w", err)
	}
	cleanMeals, err := e.store.CountByLabel(LabelCleanMeal)
	if err != nil {
		return nil, fmt.Errorf("snapshot clean meals: %w", err)
	}

	return &Snapshot{
		Now:           now,
		Day:           day,
		Entries:       entries,
		Today:         today,
		Daily:         daily,
		WaterML:       water,
		Profile:       profile,
		Settings:      settings,
		SaltWaterLogs: saltWaters,
		CleanMeals:    cleanMeals,
	}, nil
}

// LogIntake appends a salt or meal entry and awards the basic log
// reward. Amount is grams; positive only — activity goes through
// LogExercise.
func (e *Engine) LogIntake(amount float64, label, kind string) (*store.LogEntry, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: amount %v", ErrInvalidInput, amount)
	}
	switch kind {
	case store.KindSalt, store.KindMeal:
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidInput, kind)
	}

	entry, err := e.store.AddEntry(amount, label, kind, e.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := e.awardPoints(ActionLog); err != nil {
		return nil, err
	}
	if err := e.recompute(); err != nil {
		return nil, err
	}
	return entry, nil
}

// LogExercise appends a negative entry for the chosen intensity.
func (e *Engine) LogExercise(intensity Intensity) (*store.LogEntry, error) {
	preset, ok := exerciseOffsets[intensity]
	if !ok {
		return nil, fmt.Errorf("%w: intensity %q", ErrInvalidInput, intensity)
	}

	entry, err := e.store.AddEntry(-preset.grams, preset.label, store.KindExercise, e.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := e.awardPoints(ActionExercise); err != nil {
		return nil, err
	}
	if err := e.recompute(); err != nil {
		return nil, err
	}
	return entry, nil
}

// AdjustWater moves today's water total by deltaML, clamped at zero.
// Points are awarded on additions only. Returns the new total.
func (e *Engine) AdjustWater(deltaML int) (int, error) {
	if deltaML == 0 {
		return 0, fmt.Errorf("%w: zero water adjustment", ErrInvalidInput)
	}

	day := DayKey(e.clock.Now())
	current, err := e.store.GetWater(day)
	if err != nil {
		return 0, err
	}
	total := current + deltaML
	if total < 0 {
		total = 0
	}
	if err := e.store.SetWater(day, total); err != nil {
		return 0, err
	}
	if deltaML > 0 {
		if err := e.awardPoints(ActionWater); err != nil {
			return 0, err
		}
	}
	if err := e.recompute(); err != nil {
		return 0, err
	}
	return total, nil
}

// RecordMeal grades a meal: it overwrites today's purity, restarts the
// fasting window, appends a zero-amount meal entry so meal history
// survives in the ledger, and awards the grade's reward.
func (e *Engine) RecordMeal(grade MealGrade) error {
	var purity, label string
	var action Action
	switch grade {
	case MealClean:
		purity, label, action = store.PurityClean, LabelCleanMeal, ActionMealClean
	case MealSafe:
		purity, label, action = store.PuritySafe, "Safe meal", ActionMealSafe
	case MealDirty:
		purity, label, action = store.PurityDirty, "Dirty meal", ActionMealDirty
	default:
		return fmt.Errorf("%w: meal grade %d", ErrInvalidInput, grade)
	}

	now := e.clock.Now()
	day := DayKey(now)
	daily, err := e.store.GetDailyState(day)
	if err != nil {
		return err
	}
	daily.Purity = purity
	daily.FastingStartedAt = &now
	if err := e.store.SaveDailyState(daily); err != nil {
		return err
	}

	if _, err := e.store.AddEntry(0, label, store.KindMeal, now); err != nil {
		return err
	}
	if err := e.awardPoints(action); err != nil {
		return err
	}
	return e.recompute()
}

// SetCondition records today's 1-5 condition check.
func (e *Engine) SetCondition(score int) error {
	if score < 1 || score > 5 {
		return fmt.Errorf("%w: condition %d", ErrInvalidInput, score)
	}

	day := DayKey(e.clock.Now())
	daily, err := e.store.GetDailyState(day)
	if err != nil {
		return err
	}
	daily.ConditionScore = score
	if err := e.store.SaveDailyState(daily); err != nil {
		return err
	}
	if err := e.awardPoints(ActionCondition); err != nil {
		return err
	}
	return e.recompute()
}

// SetGoal updates the daily goal in grams. Must be positive and finite.
func (e *Engine) SetGoal(grams float64) error {
	if grams <= 0 || math.IsNaN(grams) || math.IsInf(grams, 0) {
		return fmt.Errorf("%w: goal %v", ErrInvalidInput, grams)
	}
	profile, err := e.store.GetProfile()
	if err != nil {
		return err
	}
	profile.GoalGrams = grams
	if err := e.store.SaveProfile(profile); err != nil {
		return err
	}
	return e.recompute()
}

func (e *Engine) SetDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: empty display name", ErrInvalidInput)
	}
	profile, err := e.store.GetProfile()
	if err != nil {
		return err
	}
	profile.DisplayName = name
	return e.store.SaveProfile(profile)
}

// RemoveEntry deletes a ledger entry, then recomputes. Removing intake
// can drop today back below goal, which re-arms the goal trigger.
func (e *Engine) RemoveEntry(id int64) error {
	if err := e.store.DeleteEntry(id); err != nil {
		return err
	}
	return e.recompute()
}

// RecordScanResult appends the ledger entry for a classified food image
// and awards the scan reward. The result must already have passed the
// analyzer's validation; a malformed one is rejected without mutation.
func (e *Engine) RecordScanResult(res analyze.Result) (*store.LogEntry, error) {
	if err := res.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	entry, err := e.store.AddEntry(scanEntryGrams, res.Name, store.KindMeal, e.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := e.awardPoints(ActionScan); err != nil {
		return nil, err
	}
	if err := e.recompute(); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateSettings persists theme and the notifications toggle. Enabling
// notifications asks the collaborator for permission; when denied the
// toggle reverts and ErrPermissionDenied is returned.
func (e *Engine) UpdateSettings(theme string, notifications bool) error {
	switch theme {
	case "light", "dark":
	default:
		return fmt.Errorf("%w: theme %q", ErrInvalidInput, theme)
	}

	if notifications && !e.granted {
		if e.notifier == nil || !e.notifier.RequestPermission() {
			return ErrPermissionDenied
		}
		e.granted = true
	}

	if err := e.store.SetSetting("theme", theme); err != nil {
		return err
	}
	value := "off"
	if notifications {
		value = "on"
	}
	return e.store.SetSetting("notifications", value)
}

// Reset discards all research data and clears the session trigger
// memory. The only path on which points and level go backward.
func (e *Engine) Reset() error {
	if err := e.store.Reset(); err != nil {
		return err
	}
	e.triggers = TriggerState{}
	return nil
}

// Badges evaluates the catalogue against a fresh snapshot.
func (e *Engine) Badges() ([]BadgeStatus, error) {
	snap, err := e.Snapshot()
	if err != nil {
		return nil, err
	}
	return EvaluateBadges(snap), nil
}

// Triggers exposes the current session trigger state, mainly for tests.
func (e *Engine) Triggers() TriggerState {
	return e.triggers
}

// awardPoints adds the scheduled reward and rederives level and title.
func (e *Engine) awardPoints(action Action) error {
	amount := RewardFor(action)
	if amount <= 0 {
		return nil
	}
	profile, err := e.store.GetProfile()
	if err != nil {
		return err
	}
	profile.RewardPoints += amount
	profile.Level = LevelForPoints(profile.RewardPoints)
	profile.Title = TitleForLevel(profile.Level)
	return e.store.SaveProfile(profile)
}

// recompute pulls a post-mutation snapshot, runs the notification
// triggers against it, and delivers any alerts through the collaborator
// when settings allow and permission was granted.
func (e *Engine) recompute() error {
	snap, err := e.Snapshot()
	if err != nil {
		return fmt.Errorf("recompute: %w", err)
	}

	alerts, next := EvaluateTriggers(e.triggers, snap.Status(), snap.IntakeToday(), snap.Goal())
	e.triggers = next

	if e.notifier == nil || !snap.Settings.Notifications || !e.granted {
		return nil
	}
	for _, a := range alerts {
		_ = e.notifier.Notify(a.Title, a.Body)
	}
	return nil
}

func (e *Engine) loadSettings() (Settings, error) {
	settings := Settings{Theme: "light", Notifications: true}

	if v, err := e.store.GetSetting("theme"); err == nil && (v == "light" || v == "dark") {
		settings.Theme = v
	}
	if v, err := e.store.GetSetting("notifications"); err == nil {
		settings.Notifications = v == "on"
	}
	return settings, nil
}
