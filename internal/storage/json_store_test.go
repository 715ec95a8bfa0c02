package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"emberday/internal/models"
)

func testState() models.ProgressState {
	state := models.NewProgressState()
	state.Completion["workout"] = true
	state.Completion["reading"] = true
	state.TotalPoints = 145
	state.CurrentStreak = 6
	state.LastCompletedDate = "2026-03-13"
	state.LastSaveDate = "2026-03-14"
	state.LastCompletion = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return state
}

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emberday.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	want := testState()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got.TotalPoints != want.TotalPoints {
		t.Errorf("TotalPoints = %d, want %d", got.TotalPoints, want.TotalPoints)
	}
	if got.CurrentStreak != want.CurrentStreak {
		t.Errorf("CurrentStreak = %d, want %d", got.CurrentStreak, want.CurrentStreak)
	}
	if got.LastCompletedDate != want.LastCompletedDate {
		t.Errorf("LastCompletedDate = %q, want %q", got.LastCompletedDate, want.LastCompletedDate)
	}
	if got.LastSaveDate != want.LastSaveDate {
		t.Errorf("LastSaveDate = %q, want %q", got.LastSaveDate, want.LastSaveDate)
	}
	if !got.LastCompletion.Equal(want.LastCompletion) {
		t.Errorf("LastCompletion = %v, want %v", got.LastCompletion, want.LastCompletion)
	}
	if !got.Completion["workout"] || !got.Completion["reading"] {
		t.Errorf("Completion map not preserved: %v", got.Completion)
	}
}

func TestJSONStore_InitRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emberday.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Fatalf("Expected second Init to fail")
	}
}

func TestJSONStore_LoadWithoutInit(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "emberday.json"))

	if _, err := store.Load(); err == nil {
		t.Fatalf("Expected Load to fail before Init")
	}
}

func TestJSONStore_LoadFreshStoreYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emberday.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got.TotalPoints != 0 || got.CurrentStreak != 0 {
		t.Errorf("Expected zeroed counters, got %+v", got)
	}
	if got.Completion == nil || len(got.Completion) != 0 {
		t.Errorf("Expected an empty non-nil completion map, got %v", got.Completion)
	}
}

func TestJSONStore_CorruptFieldsDegradeIndividually(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emberday.json")
	store := NewJSONStore(path)

	raw := `{
  "version": 1,
  "progress": {
    "habitState": "not json",
    "totalPoints": "-40",
    "currentStreak": "6",
    "lastCompletedDate": "03/13/2026",
    "lastSaveDate": "2026-03-14",
    "lastHabitCompletion": "yesterday-ish"
  }
}`
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(got.Completion) != 0 {
		t.Errorf("Expected corrupt habit state reset to empty, got %v", got.Completion)
	}
	if got.TotalPoints != 0 {
		t.Errorf("Expected negative points clamped to 0, got %d", got.TotalPoints)
	}
	if got.CurrentStreak != 6 {
		t.Errorf("Expected the intact streak preserved, got %d", got.CurrentStreak)
	}
	if got.LastCompletedDate != "" {
		t.Errorf("Expected malformed date dropped, got %q", got.LastCompletedDate)
	}
	if got.LastSaveDate != "2026-03-14" {
		t.Errorf("Expected the intact save date preserved, got %q", got.LastSaveDate)
	}
	if !got.LastCompletion.IsZero() {
		t.Errorf("Expected malformed timestamp dropped, got %v", got.LastCompletion)
	}
}

func TestEncodeState_OmitsEmptyOptionalFields(t *testing.T) {
	state := models.NewProgressState()
	state.TotalPoints = 10

	values, err := encodeState(state)
	if err != nil {
		t.Fatalf("encodeState failed: %v", err)
	}

	if _, ok := values[KeyLastCompletedDate]; ok {
		t.Errorf("Expected empty lastCompletedDate to be omitted")
	}
	if _, ok := values[KeyLastCompletion]; ok {
		t.Errorf("Expected zero lastHabitCompletion to be omitted")
	}
	if values[KeyTotalPoints] != "10" {
		t.Errorf("Expected totalPoints encoded, got %q", values[KeyTotalPoints])
	}
}
