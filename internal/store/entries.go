package store

import (
	"database/sql"
	"fmt"
	"time"
)

// AddEntry inserts an immutable log entry. Entries are never updated
// afterwards; the only mutation the ledger supports is deletion.
func (s *Store) AddEntry(amount float64, label, kind string, occurredAt time.Time) (*LogEntry, error) {
	res, err := s.db.Exec(
		`INSERT INTO log_entries (amount, label, kind, occurred_at) VALUES (?, ?, ?, ?)`,
		amount, label, kind, occurredAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("add entry: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetEntry(id)
}

func (s *Store) GetEntry(id int64) (*LogEntry, error) {
	e := &LogEntry{}
	var occurredAt, createdAt string

	err := s.db.QueryRow(
		`SELECT id, amount, label, kind, occurred_at, created_at
		 FROM log_entries WHERE id = ?`, id,
	).Scan(&e.ID, &e.Amount, &e.Label, &e.Kind, &occurredAt, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("get entry %d: %w", id, err)
	}
	e.OccurredAt, _ = time.Parse(time.RFC3339, occurredAt)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return e, nil
}

// DeleteEntry removes an entry by id. Deleting a missing id is a no-op.
func (s *Store) DeleteEntry(id int64) error {
	_, err := s.db.Exec(`DELETE FROM log_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry %d: %w", id, err)
	}
	return nil
}

// EntriesOn returns all entries whose occurred_at falls on the given
// calendar day (2006-01-02), ordered by time then insertion order.
func (s *Store) EntriesOn(day string) ([]LogEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, amount, label, kind, occurred_at, created_at
		 FROM log_entries
		 WHERE date(occurred_at) = ?
		 ORDER BY occurred_at, id`, day,
	)
	if err != nil {
		return nil, fmt.Errorf("entries on %s: %w", day, err)
	}
	return scanEntries(rows)
}

// EntriesSince returns all entries on or after the given instant,
// oldest first. Feeds the 7-day intake chart.
func (s *Store) EntriesSince(from time.Time) ([]LogEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, amount, label, kind, occurred_at, created_at
		 FROM log_entries
		 WHERE occurred_at >= ?
		 ORDER BY occurred_at, id`,
		from.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("entries since: %w", err)
	}
	return scanEntries(rows)
}

func (s *Store) ListEntries(f EntryFilter) ([]LogEntry, error) {
	query := `SELECT id, amount, label, kind, occurred_at, created_at FROM log_entries WHERE 1=1`
	var args []any

	if f.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, f.Kind)
	}
	if f.From != nil {
		query += ` AND occurred_at >= ?`
		args = append(args, f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		query += ` AND occurred_at < ?`
		args = append(args, f.To.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY occurred_at DESC, id DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return scanEntries(rows)
}

// CountByLabel counts entries carrying an exact label. Badge predicates
// use this for label-keyed counters (salt water, clean meals).
func (s *Store) CountByLabel(label string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM log_entries WHERE label = ?`, label).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count by label %q: %w", label, err)
	}
	return n, nil
}

func scanEntries(rows *sql.Rows) ([]LogEntry, error) {
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		var occurredAt, createdAt string
		if err := rows.Scan(&e.ID, &e.Amount, &e.Label, &e.Kind, &occurredAt, &createdAt); err != nil {
			return nil, err
		}
		e.OccurredAt, _ = time.Parse(time.RFC3339, occurredAt)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
