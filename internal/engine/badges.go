package engine

import "time"

// Badge is a static catalogue entry. Unlock predicates are pure
// functions over a snapshot; "unlocked" is recomputed on every query
// and never persisted, so a lapsed condition locks its badge again.
type Badge struct {
	ID     string
	Name   string
	Desc   string
	Icon   string
	Color  string
	Unlock func(*Snapshot) bool
}

// BadgeStatus pairs a catalogue entry with its current lock state.
type BadgeStatus struct {
	Badge
	Unlocked bool
}

const (
	waterMasterML     = 2000
	fastingProWindow  = 16 * time.Hour
	saltWaterRequired = 50
	cleanMealRequired = 10
)

// Labels the label-counting badges key on. The quick actions and meal
// records write these exact strings.
const (
	LabelSaltWater = "Salt water"
	LabelCleanMeal = "Clean meal"
)

// Catalogue returns the full badge catalogue in display order.
func Catalogue() []Badge {
	return []Badge{
		{
			ID: "first_log", Name: "New Researcher", Desc: "First record logged",
			Icon: "🧪", Color: "#B0BEC5",
			Unlock: func(s *Snapshot) bool { return len(s.Entries) > 0 },
		},
		{
			ID: "streak_3", Name: "Three-Day Barrier", Desc: "3 days logged in a row",
			Icon: "🔥", Color: "#FFB74D",
			Unlock: func(s *Snapshot) bool { return HasStreak(s.Entries, 3, s.Now) },
		},
		{
			ID: "streak_7", Name: "Week of Wonders", Desc: "7 days logged in a row",
			Icon: "📅", Color: "#FF7043",
			Unlock: func(s *Snapshot) bool { return HasStreak(s.Entries, 7, s.Now) },
		},
		{
			ID: "streak_30", Name: "Month of Grit", Desc: "30 days logged in a row",
			Icon: "🏆", Color: "#FFD700",
			Unlock: func(s *Snapshot) bool { return HasStreak(s.Entries, 30, s.Now) },
		},
		{
			ID: "water_master", Name: "Hydration Master", Desc: "2L of water in one day",
			Icon: "💧", Color: "#29B6F6",
			Unlock: func(s *Snapshot) bool { return s.WaterML >= waterMasterML },
		},
		{
			ID: "salt_water_lover", Name: "Salt Water Devotee", Desc: "50 salt water records",
			Icon: "🌊", Color: "#42A5F5",
			Unlock: func(s *Snapshot) bool { return s.SaltWaterLogs >= saltWaterRequired },
		},
		{
			ID: "clean_eater", Name: "Clean Plate Expert", Desc: "10 clean meals recorded",
			Icon: "🥗", Color: "#66BB6A",
			Unlock: func(s *Snapshot) bool { return s.CleanMeals >= cleanMealRequired },
		},
		{
			ID: "engine_burning", Name: "Full Throttle", Desc: "Reached the fat-burning state",
			Icon: "⚡", Color: "#F44336",
			Unlock: func(s *Snapshot) bool { return s.Status().Status == StatusBurning },
		},
		{
			ID: "goal_achieved", Name: "Goal Achieved", Desc: "Hit the daily goal",
			Icon: "⚖️", Color: "#AB47BC",
			Unlock: func(s *Snapshot) bool {
				goal := s.Goal()
				return goal > 0 && s.IntakeToday() >= goal
			},
		},
		{
			ID: "fasting_pro", Name: "Art of the Fast", Desc: "16-hour fasting window",
			Icon: "⏳", Color: "#78909C",
			Unlock: func(s *Snapshot) bool { return s.FastingFor() >= fastingProWindow },
		},
		{
			ID: "level_2", Name: "Level Up", Desc: "Reached level 2",
			Icon: "🆙", Color: "#8D6E63",
			Unlock: func(s *Snapshot) bool { return s.Profile.Level >= 2 },
		},
		{
			ID: "level_5", Name: "Keto Master", Desc: "Reached the top level",
			Icon: "💎", Color: "#673AB7",
			Unlock: func(s *Snapshot) bool { return s.Profile.Level >= MaxLevel },
		},
	}
}

// EvaluateBadges evaluates the whole catalogue against one snapshot.
// Stateless projection: calling it twice on the same snapshot yields
// identical results.
func EvaluateBadges(snap *Snapshot) []BadgeStatus {
	catalogue := Catalogue()
	out := make([]BadgeStatus, 0, len(catalogue))
	for _, b := range catalogue {
		out = append(out, BadgeStatus{Badge: b, Unlocked: b.Unlock(snap)})
	}
	return out
}
