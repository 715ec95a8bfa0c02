package models

import "time"

// ProgressState is the single persisted record of a user's habit progress.
// Completion holds today's completions only; absent keys mean not completed.
type ProgressState struct {
	Completion        map[string]bool `json:"completion"`
	TotalPoints       int             `json:"total_points"`
	CurrentStreak     int             `json:"current_streak"`
	LastCompletedDate string          `json:"last_completed_date,omitempty"` // YYYY-MM-DD, empty until a day qualifies
	LastSaveDate      string          `json:"last_save_date,omitempty"`      // YYYY-MM-DD of the last persisted snapshot
	LastCompletion    time.Time       `json:"last_completion,omitempty"`     // timestamp of the most recent habit completion
}

// NewProgressState returns an empty state with an initialized completion map.
func NewProgressState() ProgressState {
	return ProgressState{
		Completion: make(map[string]bool),
	}
}

// CompletedCount returns the number of habits completed today.
func (s ProgressState) CompletedCount() int {
	count := 0
	for _, done := range s.Completion {
		if done {
			count++
		}
	}
	return count
}

// Clone returns a deep copy so callers can mutate without aliasing the original map.
func (s ProgressState) Clone() ProgressState {
	out := s
	out.Completion = make(map[string]bool, len(s.Completion))
	for id, done := range s.Completion {
		out.Completion[id] = done
	}
	return out
}
