package storage

import (
	"encoding/json"
	"strconv"
	"time"

	"emberday/internal/logger"
	"emberday/internal/models"
	"emberday/internal/utils"
)

// Persisted key-value layout. Every field is stored as its own string value so
// a corrupt field degrades to its default without touching the others.
const (
	KeyHabitState        = "habitState"
	KeyTotalPoints       = "totalPoints"
	KeyCurrentStreak     = "currentStreak"
	KeyLastCompletedDate = "lastCompletedDate"
	KeyLastSaveDate      = "lastSaveDate"
	KeyLastCompletion    = "lastHabitCompletion"
)

func encodeState(state models.ProgressState) (map[string]string, error) {
	completion, err := json.Marshal(state.Completion)
	if err != nil {
		return nil, err
	}

	values := map[string]string{
		KeyHabitState:    string(completion),
		KeyTotalPoints:   strconv.Itoa(state.TotalPoints),
		KeyCurrentStreak: strconv.Itoa(state.CurrentStreak),
		KeyLastSaveDate:  state.LastSaveDate,
	}
	if state.LastCompletedDate != "" {
		values[KeyLastCompletedDate] = state.LastCompletedDate
	}
	if !state.LastCompletion.IsZero() {
		values[KeyLastCompletion] = state.LastCompletion.Format(time.RFC3339)
	}
	return values, nil
}

// decodeState rebuilds a ProgressState from persisted values. Missing or
// corrupt fields fall back to their defaults individually; decoding never fails.
func decodeState(values map[string]string) models.ProgressState {
	state := models.NewProgressState()

	if raw, ok := values[KeyHabitState]; ok {
		var completion map[string]bool
		if err := json.Unmarshal([]byte(raw), &completion); err != nil {
			logger.Warn("corrupt habit state, resetting to empty", "error", err)
		} else if completion != nil {
			state.Completion = completion
		}
	}

	state.TotalPoints = decodeCount(values, KeyTotalPoints)
	state.CurrentStreak = decodeCount(values, KeyCurrentStreak)

	if raw, ok := values[KeyLastCompletedDate]; ok {
		if utils.ValidateDay(raw) {
			state.LastCompletedDate = raw
		} else {
			logger.Warn("corrupt last completed date, dropping", "value", raw)
		}
	}
	if raw, ok := values[KeyLastSaveDate]; ok {
		if utils.ValidateDay(raw) {
			state.LastSaveDate = raw
		} else {
			logger.Warn("corrupt last save date, dropping", "value", raw)
		}
	}
	if raw, ok := values[KeyLastCompletion]; ok {
		if t, err := time.Parse(time.RFC3339, raw); err != nil {
			logger.Warn("corrupt last completion timestamp, dropping", "value", raw)
		} else {
			state.LastCompletion = t
		}
	}

	return state
}

// decodeCount parses a non-negative counter, clamping negatives to 0.
func decodeCount(values map[string]string, key string) int {
	raw, ok := values[key]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("corrupt counter, resetting to 0", "key", key, "value", raw)
		return 0
	}
	if n < 0 {
		logger.Warn("negative counter, clamping to 0", "key", key, "value", raw)
		return 0
	}
	return n
}
