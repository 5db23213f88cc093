package engine

import "fmt"

// Notifier is the external notification collaborator. Permission is its
// concern; the engine only asks once when notifications get enabled.
type Notifier interface {
	RequestPermission() bool
	Notify(title, body string) error
}

// Alert is a notification-worthy event detected by the triggers.
type Alert struct {
	Title string
	Body  string
}

// TriggerState is the session memory for edge detection, passed in and
// returned explicitly rather than hidden in closures.
type TriggerState struct {
	PreviousStatus Status
	GoalNotified   bool
}

// statusRank orders the progression rungs. Overheat is a side alarm,
// not a rung, and is excluded from upgrade comparisons.
func statusRank(s Status) int {
	switch s {
	case StatusIdle:
		return 0
	case StatusWarming:
		return 1
	case StatusBurning:
		return 2
	default:
		return -1
	}
}

// EvaluateTriggers detects status-upgrade and goal-crossing edges
// against the previous trigger state and returns the alerts to emit
// plus the next state. The goal flag re-arms when intake drops back
// below goal, so a corrected overshoot can fire again later.
func EvaluateTriggers(prev TriggerState, report Report, intakeToday, goalGrams float64) ([]Alert, TriggerState) {
	next := TriggerState{PreviousStatus: report.Status, GoalNotified: prev.GoalNotified}
	var alerts []Alert

	newRank := statusRank(report.Status)
	oldRank := statusRank(prev.PreviousStatus)
	if newRank >= 0 && oldRank >= 0 && newRank > oldRank {
		alerts = append(alerts, Alert{
			Title: "Engine status up",
			Body:  report.Message,
		})
	}

	if goalGrams > 0 && intakeToday >= goalGrams {
		if !next.GoalNotified {
			alerts = append(alerts, Alert{
				Title: "Goal reached",
				Body:  fmt.Sprintf("Daily goal of %.1fg hit — %.1fg logged today.", goalGrams, intakeToday),
			})
			next.GoalNotified = true
		}
	} else {
		next.GoalNotified = false
	}

	return alerts, next
}
