package engine

// Action identifies a point-awarding user action. The reward schedule is
// a table so the tuning lives in one place, not at call sites.
type Action string

const (
	ActionLog       Action = "log"
	ActionWater     Action = "water"
	ActionExercise  Action = "exercise"
	ActionMealClean Action = "meal_clean"
	ActionMealSafe  Action = "meal_safe"
	ActionMealDirty Action = "meal_dirty"
	ActionCondition Action = "condition"
	ActionScan      Action = "scan"
)

var rewardSchedule = map[Action]int64{
	ActionLog:       10,
	ActionWater:     5,
	ActionExercise:  20,
	ActionMealClean: 50,
	ActionMealSafe:  30,
	ActionMealDirty: 10,
	ActionCondition: 10,
	ActionScan:      10,
}

// RewardFor returns the points awarded for an action, 0 for unknown.
func RewardFor(a Action) int64 {
	return rewardSchedule[a]
}

// Cumulative reward points required to hold each level, 1-indexed.
var levelThresholds = []int64{0, 500, 2000, 5000, 15000}

var levelTitles = []string{
	"Assistant Researcher",
	"Junior Researcher",
	"Senior Researcher",
	"Principal Researcher",
	"Master Lab Director",
}

// MaxLevel is the highest reachable level.
var MaxLevel = len(levelThresholds)

// LevelForPoints returns the largest level whose threshold the point
// total meets. Level and title are always derived from points; they are
// never stored independently of a recomputation.
func LevelForPoints(points int64) int {
	level := 1
	for i, threshold := range levelThresholds {
		if points >= threshold {
			level = i + 1
		}
	}
	return level
}

// TitleForLevel returns the display title for a level, clamped to the
// highest defined title.
func TitleForLevel(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(levelTitles) {
		level = len(levelTitles)
	}
	return levelTitles[level-1]
}

// PointsToNextLevel returns how many points remain until the next level,
// 0 at max level.
func PointsToNextLevel(points int64) int64 {
	level := LevelForPoints(points)
	if level >= MaxLevel {
		return 0
	}
	remaining := levelThresholds[level] - points
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
