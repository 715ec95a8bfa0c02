package storage

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emberday.db")
	store := NewSQLiteStore(path)
	defer store.Close()

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
	if !got.LastCompletion.Equal(want.LastCompletion) {
		t.Errorf("LastCompletion = %v, want %v", got.LastCompletion, want.LastCompletion)
	}
	if !got.Completion["workout"] || !got.Completion["reading"] {
		t.Errorf("Completion map not preserved: %v", got.Completion)
	}
}

func TestSQLiteStore_SaveReplacesPreviousState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emberday.db")
	store := NewSQLiteStore(path)
	defer store.Close()

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Save(testState()); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second := testState()
	second.Completion = map[string]bool{"water": true}
	second.TotalPoints = 10
	if err := store.Save(second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got.TotalPoints != 10 {
		t.Errorf("Expected the second save to win, got %d points", got.TotalPoints)
	}
	if got.Completion["workout"] {
		t.Errorf("Expected stale completion rows removed, got %v", got.Completion)
	}
}

func TestSQLiteStore_LoadWithoutInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "emberday.db"))
	defer store.Close()

	if _, err := store.Load(); err == nil {
		t.Fatalf("Expected Load to fail before Init")
	}
}
