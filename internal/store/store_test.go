package store

import (
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// addEntry is a test helper that inserts an entry at a fixed instant.
func addEntry(t *testing.T, s *Store, amount float64, label, kind string, at time.Time) *LogEntry {
	t.Helper()
	e, err := s.AddEntry(amount, label, kind, at)
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	return e
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Should have run migration v1
	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/saltlab.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen — should succeed and not re-migrate
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Log entries
// ============================================================

func TestAddAndGetEntry(t *testing.T) {
	s := newTestStore(t)
	at := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	e := addEntry(t, s, 2.0, "Salt water", KindSalt, at)
	if e.ID == 0 {
		t.Fatal("expected non-zero ID")
	}
	if e.Amount != 2.0 || e.Label != "Salt water" || e.Kind != KindSalt {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if !e.OccurredAt.Equal(at) {
		t.Fatalf("occurred_at mismatch: %v != %v", e.OccurredAt, at)
	}

	got, err := s.GetEntry(e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != e.ID || got.Amount != 2.0 {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestDeleteEntry(t *testing.T) {
	s := newTestStore(t)
	e := addEntry(t, s, 0.5, "Capsule", KindSalt, time.Now().UTC())

	if err := s.DeleteEntry(e.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetEntry(e.ID); err == nil {
		t.Fatal("expected error reading deleted entry")
	}

	// Deleting a missing id is a no-op.
	if err := s.DeleteEntry(9999); err != nil {
		t.Fatal(err)
	}
}

func TestEntriesOn(t *testing.T) {
	s := newTestStore(t)
	day1 := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	addEntry(t, s, 2.0, "Salt water", KindSalt, day1)
	addEntry(t, s, 3.0, "Broth", KindSalt, day2.Add(2*time.Hour))
	addEntry(t, s, 0.5, "Capsule", KindSalt, day2)

	entries, err := s.EntriesOn("2026-08-28")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Ordered by occurred_at ascending
	if entries[0].Label != "Capsule" || entries[1].Label != "Broth" {
		t.Fatalf("unexpected order: %s, %s", entries[0].Label, entries[1].Label)
	}
}

func TestListEntriesFilterAndLimit(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)

	addEntry(t, s, 2.0, "Salt water", KindSalt, base)
	addEntry(t, s, 1.5, "Meal", KindMeal, base.Add(time.Hour))
	addEntry(t, s, -1.0, "Exercise (moderate)", KindExercise, base.Add(2*time.Hour))

	salt, err := s.ListEntries(EntryFilter{Kind: KindSalt})
	if err != nil {
		t.Fatal(err)
	}
	if len(salt) != 1 || salt[0].Label != "Salt water" {
		t.Fatalf("unexpected kind filter result: %+v", salt)
	}

	all, err := s.ListEntries(EntryFilter{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected limit 2, got %d", len(all))
	}
	// Newest first
	if all[0].Label != "Exercise (moderate)" {
		t.Fatalf("expected newest first, got %s", all[0].Label)
	}

	from := base.Add(30 * time.Minute)
	later, err := s.ListEntries(EntryFilter{From: &from})
	if err != nil {
		t.Fatal(err)
	}
	if len(later) != 2 {
		t.Fatalf("expected 2 entries after from, got %d", len(later))
	}
}

func TestCountByLabel(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC()
	addEntry(t, s, 2.0, "Salt water", KindSalt, now)
	addEntry(t, s, 2.0, "Salt water", KindSalt, now)
	addEntry(t, s, 0.5, "Capsule", KindSalt, now)

	n, err := s.CountByLabel("Salt water")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
}

func TestEntriesSince(t *testing.T) {
	s := newTestStore(t)
	cutoff := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

	addEntry(t, s, 3.0, "Broth", KindSalt, cutoff.Add(-time.Hour))
	addEntry(t, s, 2.0, "Salt water", KindSalt, cutoff.Add(26*time.Hour))
	addEntry(t, s, 0.5, "Capsule", KindSalt, cutoff) // boundary is inclusive

	got, err := s.EntriesSince(cutoff)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	// Oldest first.
	if got[0].Label != "Capsule" || got[1].Label != "Salt water" {
		t.Fatalf("unexpected order: %q, %q", got[0].Label, got[1].Label)
	}
}

// ============================================================
// Daily state
// ============================================================

func TestDailyStateDefaults(t *testing.T) {
	s := newTestStore(t)

	ds, err := s.GetDailyState("2026-08-28")
	if err != nil {
		t.Fatal(err)
	}
	if ds.Purity != PurityNone || ds.FastingStartedAt != nil || ds.ConditionScore != 0 {
		t.Fatalf("expected zeroed defaults, got %+v", ds)
	}
}

func TestDailyStateRoundTrip(t *testing.T) {
	s := newTestStore(t)
	start := time.Date(2026, 8, 28, 13, 0, 0, 0, time.UTC)

	ds := DailyState{Day: "2026-08-28", Purity: PurityClean, FastingStartedAt: &start, ConditionScore: 4}
	if err := s.SaveDailyState(ds); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetDailyState("2026-08-28")
	if err != nil {
		t.Fatal(err)
	}
	if got.Purity != PurityClean || got.ConditionScore != 4 {
		t.Fatalf("unexpected state: %+v", got)
	}
	if got.FastingStartedAt == nil || !got.FastingStartedAt.Equal(start) {
		t.Fatalf("fasting start mismatch: %v", got.FastingStartedAt)
	}
}

func TestDailyStatePurgesOtherDays(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveDailyState(DailyState{Day: "2026-08-27", Purity: PurityDirty}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveDailyState(DailyState{Day: "2026-08-28", Purity: PurityClean}); err != nil {
		t.Fatal(err)
	}

	// Yesterday's row is gone: reading it yields defaults again.
	old, err := s.GetDailyState("2026-08-27")
	if err != nil {
		t.Fatal(err)
	}
	if old.Purity != PurityNone {
		t.Fatalf("expected purged day to read as defaults, got %+v", old)
	}
}

// ============================================================
// Water intake
// ============================================================

func TestWaterDefaultsAndRoundTrip(t *testing.T) {
	s := newTestStore(t)

	ml, err := s.GetWater("2026-08-28")
	if err != nil {
		t.Fatal(err)
	}
	if ml != 0 {
		t.Fatalf("expected 0, got %d", ml)
	}

	if err := s.SetWater("2026-08-28", 1500); err != nil {
		t.Fatal(err)
	}
	ml, err = s.GetWater("2026-08-28")
	if err != nil {
		t.Fatal(err)
	}
	if ml != 1500 {
		t.Fatalf("expected 1500, got %d", ml)
	}
}

func TestWaterPurgesOtherDays(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetWater("2026-08-27", 2000); err != nil {
		t.Fatal(err)
	}
	if err := s.SetWater("2026-08-28", 500); err != nil {
		t.Fatal(err)
	}

	ml, err := s.GetWater("2026-08-27")
	if err != nil {
		t.Fatal(err)
	}
	if ml != 0 {
		t.Fatalf("expected purged day to read 0, got %d", ml)
	}
}

func TestWaterClampsNegative(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetWater("2026-08-28", -100); err != nil {
		t.Fatal(err)
	}
	ml, _ := s.GetWater("2026-08-28")
	if ml != 0 {
		t.Fatalf("expected clamp to 0, got %d", ml)
	}
}

// ============================================================
// Profile
// ============================================================

func TestProfileDefaults(t *testing.T) {
	s := newTestStore(t)

	p, err := s.GetProfile()
	if err != nil {
		t.Fatal(err)
	}
	if p.DisplayName != "Researcher" || p.Level != 1 || p.Title != "Assistant Researcher" {
		t.Fatalf("unexpected default profile: %+v", p)
	}
	if p.RewardPoints != 0 || p.GoalGrams != 0 {
		t.Fatalf("expected zero points and goal, got %+v", p)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := newTestStore(t)

	p, _ := s.GetProfile()
	p.DisplayName = "Dr. Salt"
	p.RewardPoints = 750
	p.Level = 2
	p.Title = "Junior Researcher"
	p.GoalGrams = 12
	if err := s.SaveProfile(p); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetProfile()
	if err != nil {
		t.Fatal(err)
	}
	if got.DisplayName != "Dr. Salt" || got.RewardPoints != 750 || got.Level != 2 || got.GoalGrams != 12 {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettingsSeededDefaults(t *testing.T) {
	s := newTestStore(t)

	theme, err := s.GetSetting("theme")
	if err != nil {
		t.Fatal(err)
	}
	if theme != "light" {
		t.Fatalf("expected light, got %q", theme)
	}

	notif, err := s.GetSetting("notifications")
	if err != nil {
		t.Fatal(err)
	}
	if notif != "on" {
		t.Fatalf("expected on, got %q", notif)
	}
}

func TestSetSetting(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetSetting("theme", "dark"); err != nil {
		t.Fatal(err)
	}
	theme, _ := s.GetSetting("theme")
	if theme != "dark" {
		t.Fatalf("expected dark, got %q", theme)
	}

	all, err := s.GetAllSettings()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, kv := range all {
		if kv.Key == "theme" && kv.Value == "dark" {
			found = true
		}
	}
	if !found {
		t.Fatalf("theme not in settings list: %+v", all)
	}
}

// ============================================================
// Reset
// ============================================================

func TestReset(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC()

	addEntry(t, s, 2.0, "Salt water", KindSalt, now)
	s.SetWater("2026-08-28", 1000)
	p, _ := s.GetProfile()
	p.RewardPoints = 600
	p.Level = 2
	s.SaveProfile(p)

	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}

	entries, _ := s.ListEntries(EntryFilter{})
	if len(entries) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(entries))
	}
	ml, _ := s.GetWater("2026-08-28")
	if ml != 0 {
		t.Fatalf("expected water reset, got %d", ml)
	}
	got, _ := s.GetProfile()
	if got.RewardPoints != 0 || got.Level != 1 {
		t.Fatalf("expected fresh profile, got %+v", got)
	}
	theme, _ := s.GetSetting("theme")
	if theme != "light" {
		t.Fatalf("expected re-seeded settings, got %q", theme)
	}
}
