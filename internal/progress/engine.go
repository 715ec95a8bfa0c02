package progress

import (
	"math/rand"
	"time"

	"emberday/internal/catalog"
	"emberday/internal/constants"
	"emberday/internal/errors"
	"emberday/internal/logger"
	"emberday/internal/models"
	"emberday/internal/storage"
	"emberday/internal/utils"
)

// Engine owns all progress bookkeeping: habit toggles, points, streaks,
// achievement levels and day rollover. It takes its store, catalog and random
// source by explicit injection so tests can run it deterministically.
type Engine struct {
	store storage.Provider
	cat   *catalog.Catalog
	rng   *rand.Rand
}

// ToggleResult reports the outcome of a habit toggle: the new completion
// state, the points actually applied (clamped at zero total), and the message
// to surface.
type ToggleResult struct {
	Completed   bool
	PointsDelta int
	Icon        string
	Title       string
	Message     string
}

// DayResult reports the outcome of an explicit day completion.
type DayResult struct {
	Qualified      bool
	CompletedCount int
	TotalCount     int
	CompletionRate float64
	BonusAwarded   int
}

// New creates an engine. A nil rng falls back to a time-seeded source.
func New(store storage.Provider, cat *catalog.Catalog, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{store: store, cat: cat, rng: rng}
}

// Catalog returns the injected habit catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Load reads the persisted state and rolls it over if the calendar day has
// changed since the last save. The rolled-over state is not persisted until
// the next Save.
func (e *Engine) Load(today string) (models.ProgressState, error) {
	state, err := e.store.Load()
	if err != nil {
		return models.ProgressState{}, err
	}
	return e.RolloverIfNewDay(state, today), nil
}

// Save persists the state, stamping today as the last save date.
func (e *Engine) Save(state models.ProgressState, today string) error {
	state.LastSaveDate = today
	return e.store.Save(state)
}

// RolloverIfNewDay clears the completion map and re-evaluates streak
// continuity when the stored last save date differs from today. Same-day
// states pass through unchanged.
func (e *Engine) RolloverIfNewDay(state models.ProgressState, today string) models.ProgressState {
	if state.Completion == nil {
		state.Completion = make(map[string]bool)
	}
	if state.LastSaveDate == today {
		return state
	}

	logger.Debug("day rollover", "lastSave", state.LastSaveDate, "today", today)
	out := state.Clone()
	out.Completion = make(map[string]bool)
	e.CheckStreakContinuity(&out, today)
	return out
}

// CheckStreakContinuity resets the streak unless the last qualifying day was
// exactly yesterday. Called once per day rollover, not on every read.
func (e *Engine) CheckStreakContinuity(state *models.ProgressState, today string) {
	if state.LastCompletedDate == "" {
		return
	}
	if !utils.IsYesterday(state.LastCompletedDate, today) {
		state.CurrentStreak = 0
	}
}

// ToggleHabit flips the completion state of the given habit, adjusting total
// points. Completing picks a random celebration message; uncompleting picks a
// random gentle reminder and clamps points at zero.
func (e *Engine) ToggleHabit(state *models.ProgressState, habitID string, now time.Time) (ToggleResult, error) {
	habit, ok := e.cat.Habit(habitID)
	if !ok {
		return ToggleResult{}, &errors.UnknownHabitError{ID: habitID}
	}

	if !state.Completion[habitID] {
		state.Completion[habitID] = true
		state.TotalPoints += habit.Points
		state.LastCompletion = now

		msg := catalog.CompletionMessages[e.rng.Intn(len(catalog.CompletionMessages))]
		return ToggleResult{
			Completed:   true,
			PointsDelta: habit.Points,
			Icon:        msg.Icon,
			Title:       msg.Title,
			Message:     msg.Message,
		}, nil
	}

	state.Completion[habitID] = false
	delta := habit.Points
	if delta > state.TotalPoints {
		delta = state.TotalPoints
	}
	state.TotalPoints -= delta

	reminder := catalog.GentleReminders[e.rng.Intn(len(catalog.GentleReminders))]
	return ToggleResult{
		Completed:   false,
		PointsDelta: -delta,
		Icon:        "💙",
		Title:       "Gentle Reminder",
		Message:     reminder,
	}, nil
}

// CurrentLevel returns the achievement level with the greatest threshold not
// exceeding the given points. The table starts at 0, so every point total has
// a level.
func (e *Engine) CurrentLevel(points int) catalog.AchievementLevel {
	levels := e.cat.Levels()
	current := levels[0]
	for _, level := range levels {
		if points >= level.Points {
			current = level
		}
	}
	return current
}

// NextLevel returns the first level above the given points, or nil at the top
// of the table.
func (e *Engine) NextLevel(points int) *catalog.AchievementLevel {
	for _, level := range e.cat.Levels() {
		if points < level.Points {
			l := level
			return &l
		}
	}
	return nil
}

// EvaluateAchievements returns the level just crossed between the two point
// totals, if any. Only the highest newly reached level is reported; levels
// skipped over in a single jump are not enumerated, and levels already
// attained are never re-reported.
func (e *Engine) EvaluateAchievements(previousPoints, newPoints int) *catalog.AchievementLevel {
	var crossed *catalog.AchievementLevel
	for _, level := range e.cat.Levels() {
		if level.Points <= newPoints && level.Points > previousPoints {
			l := level
			crossed = &l
		}
	}
	return crossed
}

// CompleteDay evaluates the explicit end-of-day check. A completion rate of at
// least 70% (compared as an exact fraction) extends the streak, records today
// as the last qualifying day and awards the fixed bonus. Otherwise nothing
// changes.
func (e *Engine) CompleteDay(state *models.ProgressState, today string) DayResult {
	completed := state.CompletedCount()
	total := e.cat.Len()

	result := DayResult{
		CompletedCount: completed,
		TotalCount:     total,
		CompletionRate: float64(completed) / float64(total),
	}

	if completed*100 >= total*constants.QualifyingPercent {
		state.CurrentStreak++
		state.LastCompletedDate = today
		state.TotalPoints += constants.DayBonusPoints
		result.Qualified = true
		result.BonusAwarded = constants.DayBonusPoints
	}
	return result
}

// ResetDay clears today's completions without touching points or streak.
// Callers are expected to confirm with the user first.
func (e *Engine) ResetDay(state *models.ProgressState) {
	state.Completion = make(map[string]bool)
}

// HabitTip returns a random tip for the given habit.
func (e *Engine) HabitTip(habitID string) (string, error) {
	habit, ok := e.cat.Habit(habitID)
	if !ok {
		return "", &errors.UnknownHabitError{ID: habitID}
	}
	if len(habit.Tips) == 0 {
		return "Keep going! Every small step counts.", nil
	}
	return habit.Tips[e.rng.Intn(len(habit.Tips))], nil
}

// Quote returns a random motivational quote.
func (e *Engine) Quote() string {
	return catalog.Quotes[e.rng.Intn(len(catalog.Quotes))]
}
