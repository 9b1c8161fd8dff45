package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/treasure-arcade/internal/core"
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

func cleared(scene string, elapsed time.Duration, score int) core.RunResult {
	return core.RunResult{SceneID: scene, Outcome: core.OutcomeCleared, Elapsed: elapsed, Score: score}
}

func gameOver(scene string, elapsed time.Duration, score int) core.RunResult {
	return core.RunResult{SceneID: scene, Outcome: core.OutcomeGameOver, Elapsed: elapsed, Score: score}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []core.RunResult{
		gameOver("running-man", 10*time.Second, 100),
		cleared("running-man", 40*time.Second, 50),
		cleared("running-man", 35*time.Second, 200),
		cleared("slime-jump", 20*time.Second, 0),
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores("running-man", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %+v", scores)
	}
	if scores[0].Outcome != core.OutcomeCleared || scores[0].Elapsed != 35*time.Second {
		t.Errorf("Run fields not round-tripped: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	other, err := store.TopScores("slime-jump", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 slime-jump run, got %d", len(other))
	}
}

func TestStoreBestTimes(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun(cleared("slime-jump", 25*time.Second, 0))
	store.RecordRun(gameOver("slime-jump", 3*time.Second, 0))
	store.RecordRun(cleared("slime-jump", 19500*time.Millisecond, 0))
	store.RecordRun(cleared("slime-jump", 30*time.Second, 0))

	best, err := store.BestTimes("slime-jump", 2)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 entries with limit, got %d", len(best))
	}
	// Game overs never count as times
	if best[0].Elapsed != 19500*time.Millisecond || best[1].Elapsed != 25*time.Second {
		t.Errorf("BestTimes order = %v, %v", best[0].Elapsed, best[1].Elapsed)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(gameOver("test", time.Second, (i+1)*100))
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("running-man")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty scene, got %d", high)
	}

	store.SaveRun(cleared("running-man", time.Second, 100))
	store.SaveRun(cleared("running-man", time.Second, 300))
	store.SaveRun(gameOver("running-man", time.Second, 200))

	high, err = store.HighScore("running-man")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(cleared("slime-jump", time.Second, 0))
	store.SaveRun(gameOver("slime-jump", time.Second, 0))
	store.SaveRun(cleared("running-man", time.Second, 300))

	if err := store.ClearRuns("slime-jump"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopScores("slime-jump", 10); len(runs) != 0 {
		t.Errorf("Expected 0 slime-jump runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopScores("running-man", 10); len(runs) != 1 {
		t.Errorf("running-man runs should not be affected by clearing slime-jump")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(cleared("slime-jump", time.Second, 0))
	store.SaveRun(gameOver("running-man", time.Second, 7))

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].SceneID != "running-man" {
		t.Errorf("Newest run should come first, got %s", runs[0].SceneID)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("slime-jump")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestTime != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Empty stats = %+v", empty)
	}

	store.SaveRun(gameOver("slime-jump", 4*time.Second, 0))
	store.SaveRun(cleared("slime-jump", 22*time.Second, 0))
	store.SaveRun(cleared("slime-jump", 21*time.Second, 0))

	stats, err := store.Stats("slime-jump")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Clears != 2 {
		t.Errorf("Runs/Clears = %d/%d, expected 3/2", stats.Runs, stats.Clears)
	}
	if stats.BestTime != 21*time.Second {
		t.Errorf("BestTime = %v, expected 21s", stats.BestTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
