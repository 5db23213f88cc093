package store

import (
	"database/sql"
	"fmt"
)

const defaultTitle = "Assistant Researcher"

// GetProfile returns the singleton user profile. A missing or mangled
// row falls back to the seeded defaults instead of erroring.
func (s *Store) GetProfile() (Profile, error) {
	p := Profile{DisplayName: "Researcher", Level: 1, Title: defaultTitle}

	err := s.db.QueryRow(
		`SELECT display_name, reward_points, level, title, goal_grams FROM profile WHERE id = 1`,
	).Scan(&p.DisplayName, &p.RewardPoints, &p.Level, &p.Title, &p.GoalGrams)
	if err == sql.ErrNoRows {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("get profile: %w", err)
	}

	if p.RewardPoints < 0 {
		p.RewardPoints = 0
	}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.Title == "" {
		p.Title = defaultTitle
	}
	return p, nil
}

func (s *Store) SaveProfile(p Profile) error {
	_, err := s.db.Exec(
		`INSERT INTO profile (id, display_name, reward_points, level, title, goal_grams)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   display_name = excluded.display_name,
		   reward_points = excluded.reward_points,
		   level = excluded.level,
		   title = excluded.title,
		   goal_grams = excluded.goal_grams`,
		p.DisplayName, p.RewardPoints, p.Level, p.Title, p.GoalGrams,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
