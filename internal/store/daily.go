package store

import (
	"database/sql"
	"fmt"
	"time"
)

// GetDailyState returns the stored state for the given day, or zeroed
// defaults when no row exists (first run, or the day rolled over and the
// old row was purged). Unrecognized purity values degrade to 'none'
// rather than failing the read.
func (s *Store) GetDailyState(day string) (DailyState, error) {
	ds := DailyState{Day: day, Purity: PurityNone}

	var purity string
	var fastingStart sql.NullString
	err := s.db.QueryRow(
		`SELECT purity, fasting_started_at, condition_score FROM daily_state WHERE day = ?`, day,
	).Scan(&purity, &fastingStart, &ds.ConditionScore)
	if err == sql.ErrNoRows {
		return ds, nil
	}
	if err != nil {
		return ds, fmt.Errorf("get daily state %s: %w", day, err)
	}

	switch purity {
	case PurityClean, PuritySafe, PurityDirty:
		ds.Purity = purity
	default:
		ds.Purity = PurityNone
	}
	if fastingStart.Valid {
		if t, err := time.Parse(time.RFC3339, fastingStart.String); err == nil {
			ds.FastingStartedAt = &t
		}
	}
	if ds.ConditionScore < 0 || ds.ConditionScore > 5 {
		ds.ConditionScore = 0
	}
	return ds, nil
}

// SaveDailyState upserts the state for its day and purges rows for any
// other day. The replacement is lossy on purpose: only the ledger keeps
// history across days.
func (s *Store) SaveDailyState(ds DailyState) error {
	var fastingStart any
	if ds.FastingStartedAt != nil {
		fastingStart = ds.FastingStartedAt.UTC().Format(time.RFC3339)
	}

	_, err := s.db.Exec(
		`INSERT INTO daily_state (day, purity, fasting_started_at, condition_score)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(day) DO UPDATE SET
		   purity = excluded.purity,
		   fasting_started_at = excluded.fasting_started_at,
		   condition_score = excluded.condition_score`,
		ds.Day, ds.Purity, fastingStart, ds.ConditionScore,
	)
	if err != nil {
		return fmt.Errorf("save daily state: %w", err)
	}

	_, err = s.db.Exec(`DELETE FROM daily_state WHERE day != ?`, ds.Day)
	return err
}

// GetWater returns the water total in milliliters for the given day,
// zero when unrecorded.
func (s *Store) GetWater(day string) (int, error) {
	var ml int
	err := s.db.QueryRow(`SELECT milliliters FROM water_intake WHERE day = ?`, day).Scan(&ml)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get water %s: %w", day, err)
	}
	if ml < 0 {
		ml = 0
	}
	return ml, nil
}

// SetWater stores the day's water total and purges other days, matching
// the daily-state replacement semantics.
func (s *Store) SetWater(day string, milliliters int) error {
	if milliliters < 0 {
		milliliters = 0
	}
	_, err := s.db.Exec(
		`INSERT INTO water_intake (day, milliliters) VALUES (?, ?)
		 ON CONFLICT(day) DO UPDATE SET milliliters = excluded.milliliters`,
		day, milliliters,
	)
	if err != nil {
		return fmt.Errorf("set water: %w", err)
	}

	_, err = s.db.Exec(`DELETE FROM water_intake WHERE day != ?`, day)
	return err
}
