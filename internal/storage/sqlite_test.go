package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{GameID: "mazeshift", Score: 42}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore("mazeshift")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 42 {
		t.Errorf("BestScore = %.1f after reopen, expected 42", best)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	created := time.UnixMilli(1_700_000_000_123)
	id, err := store.SaveRun(Run{
		GameID:     "mazeshift",
		Score:      137.5,
		ElapsedMs:  64_200,
		Length:     17,
		Seed:       99,
		DeathCause: "wall",
		CreatedAt:  created,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun returned a non-UUID id %q: %v", id, err)
	}

	runs, err := store.RecentRuns("mazeshift", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.ID != id || r.Score != 137.5 || r.ElapsedMs != 64_200 || r.Length != 17 || r.Seed != 99 || r.DeathCause != "wall" {
		t.Errorf("run round trip mismatch: %+v", r)
	}
	if !r.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, expected %v", r.CreatedAt, created)
	}
}

func TestStoreSaveRunRequiresGame(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(Run{Score: 1})
	if err == nil || !strings.Contains(err.Error(), "game id") {
		t.Errorf("expected a missing game id error, got %v", err)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []float64{100, 50, 200, 12.5, 400} {
		if _, err := store.SaveRun(Run{GameID: "mazeshift", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveRun(Run{GameID: "mazeshift_seeded", Score: 999}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("mazeshift", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 400 || runs[1].Score != 200 || runs[2].Score != 100 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	all, err := store.TopRuns("mazeshift", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("default limit should return all 5 runs, got %d", len(all))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	base := time.UnixMilli(1_700_000_000_000)
	for i := range 4 {
		run := Run{GameID: "mazeshift", Score: float64(i), CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("mazeshift", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 3 || runs[1].Score != 2 {
		t.Errorf("RecentRuns = %v, expected scores 3 then 2", runs)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, err := store.BestScore("mazeshift")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty game, got %.1f", best)
	}

	store.SaveRun(Run{GameID: "mazeshift", Score: 55.5})
	store.SaveRun(Run{GameID: "mazeshift", Score: 12})

	best, err = store.BestScore("mazeshift")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 55.5 {
		t.Errorf("Expected best score 55.5, got %.1f", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "mazeshift", Score: 100})
	store.SaveRun(Run{GameID: "mazeshift_seeded", Score: 200})

	if err := store.ClearRuns("mazeshift"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("mazeshift", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	others, _ := store.TopRuns("mazeshift_seeded", 10)
	if len(others) != 1 {
		t.Errorf("Other game's runs should not be affected, got %d", len(others))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("mazeshift")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	last := time.UnixMilli(1_700_000_060_000)
	store.SaveRun(Run{GameID: "mazeshift", Score: 10, ElapsedMs: 1000, Length: 5, CreatedAt: last.Add(-time.Minute)})
	store.SaveRun(Run{GameID: "mazeshift", Score: 30, ElapsedMs: 3000, Length: 9, CreatedAt: last})
	store.SaveRun(Run{GameID: "mazeshift_seeded", Score: 7, ElapsedMs: 500, Length: 4, CreatedAt: last})

	stats, err := store.GetGameStats("mazeshift")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 30 || stats.AvgScore != 20 || stats.TotalMs != 4000 || stats.LongestSnake != 9 {
		t.Errorf("stats = %+v", stats)
	}
	if !stats.LastPlayed.Equal(last) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, last)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 games, got %d", len(all))
	}
	if all["mazeshift_seeded"].BestScore != 7 {
		t.Errorf("seeded stats = %+v", all["mazeshift_seeded"])
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.mazeshift-test/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".mazeshift-test", "scores.db")); err != nil {
		t.Errorf("expected database under HOME: %v", err)
	}
}
