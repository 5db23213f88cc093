package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/saltlab/internal/engine"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewLog
	viewBadges
	viewCheckup
	viewSettings
)

var viewNames = []string{"Dashboard", "Log", "Badges", "Checkup", "Settings"}

// --- Messages ---

type snapshotMsg struct {
	snap *engine.Snapshot
}

type badgesMsg struct {
	badges []engine.BadgeStatus
}

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

type scanDoneMsg struct {
	entryLabel string
}

type resetDoneMsg struct{}

// --- Helpers ---

func formatGrams(g float64) string {
	return fmt.Sprintf("%.1fg", g)
}

func formatClock(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%02dh %02dm", h, m)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
