package engine

import (
	"sort"
	"time"

	"github.com/sadopc/saltlab/internal/store"
)

// CurrentStreak counts consecutive calendar days with at least one
// ledger entry, walking backward from the most recent logged day. A
// streak only counts as live when that day is today or yesterday; an
// abandoned streak reports zero no matter how long it once was.
func CurrentStreak(entries []store.LogEntry, today time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		seen[DayKey(e.OccurredAt)] = true
	}

	days := make([]string, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	todayKey := DayKey(today)
	yesterdayKey := DayKey(today.AddDate(0, 0, -1))
	if days[0] != todayKey && days[0] != yesterdayKey {
		return 0
	}

	streak := 1
	for i := 0; i < len(days)-1; i++ {
		cur, err := time.Parse("2006-01-02", days[i])
		if err != nil {
			break
		}
		next, err := time.Parse("2006-01-02", days[i+1])
		if err != nil {
			break
		}
		if cur.Sub(next) == 24*time.Hour {
			streak++
		} else {
			break
		}
	}
	return streak
}

// HasStreak reports whether the live streak has reached the required
// number of days.
func HasStreak(entries []store.LogEntry, requiredDays int, today time.Time) bool {
	return CurrentStreak(entries, today) >= requiredDays
}
