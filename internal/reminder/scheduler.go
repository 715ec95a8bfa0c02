package reminder

import (
	"fmt"
	"math/rand"
	"time"

	"emberday/internal/catalog"
	"emberday/internal/constants"
	"emberday/internal/models"
)

// Event categories, used by consumers to style or route reminders.
const (
	CategoryTime          = "time"
	CategoryMotivation    = "motivation"
	CategoryEncouragement = "encouragement"
	CategoryGentleNudge   = "gentle-nudge"
	CategoryMilestone     = "milestone"
	CategoryReflection    = "reflection"
	CategorySuggestion    = "suggestion"
)

// Event is a single reminder emitted by the scheduler. The scheduler holds no
// UI state; delivery is entirely the consumer's concern.
type Event struct {
	Category string
	Title    string
	Message  string
}

// Pending is a delayed one-shot reminder the driver should fire at FireAt,
// provided its habit is still incomplete then.
type Pending struct {
	HabitID string
	FireAt  time.Time
	Event   Event
}

// Scheduler is a polling evaluator: Tick re-checks every rule against the
// explicit wall-clock time and progress snapshot it is handed. The only state
// it keeps is per-rule dedup bookkeeping, so a missed tick never causes a
// catch-up firing.
type Scheduler struct {
	cat *catalog.Catalog
	rng *rand.Rand

	lastHourlyKey     string // "YYYY-MM-DD HH" of the last time-of-day firing
	lastSmartCheck    time.Time
	reflectionFiredOn string // YYYY-MM-DD
	milestoneFiredOn  string // YYYY-MM-DD
}

// New creates a scheduler. A nil rng falls back to a time-seeded source.
func New(cat *catalog.Catalog, rng *rand.Rand) *Scheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scheduler{cat: cat, rng: rng}
}

// Tick evaluates all reminder rules for the given time and state and returns
// the events that fire. Intended to be driven once per minute; each rule is
// independent, so several events can fire from a single tick.
func (s *Scheduler) Tick(now time.Time, state models.ProgressState) []Event {
	var events []Event

	if e, ok := s.checkTimeOfDay(now); ok {
		events = append(events, e)
	}
	if e, ok := s.checkEveningReflection(now, state); ok {
		events = append(events, e)
	}

	// Progress-derived rules run on a coarser cadence than the tick itself.
	if now.Sub(s.lastSmartCheck) >= constants.SmartCheckInterval {
		s.lastSmartCheck = now
		if e, ok := s.checkCompletionBands(state); ok {
			events = append(events, e)
		}
		if e, ok := s.checkInactivity(now, state); ok {
			events = append(events, e)
		}
		if e, ok := s.checkStreakMilestone(now, state); ok {
			events = append(events, e)
		}
	}

	return events
}

// checkTimeOfDay fires the hourly reminder at minute 0, at most once per
// calendar hour. If the driver misses minute 0 the hour is skipped silently.
func (s *Scheduler) checkTimeOfDay(now time.Time) (Event, bool) {
	if now.Minute() != 0 {
		return Event{}, false
	}
	reminder, ok := catalog.TimedReminderFor(now.Hour())
	if !ok {
		return Event{}, false
	}

	key := now.Format("2006-01-02 15")
	if key == s.lastHourlyKey {
		return Event{}, false
	}
	s.lastHourlyKey = key

	return Event{
		Category: CategoryTime,
		Title:    "Time Reminder",
		Message:  reminder.Message,
	}, true
}

func (s *Scheduler) checkCompletionBands(state models.ProgressState) (Event, bool) {
	completed := state.CompletedCount()
	total := s.cat.Len()

	switch {
	case completed*100 < total*30:
		return Event{
			Category: CategoryMotivation,
			Title:    "Gentle Nudge",
			Message:  "Gentle nudge: You're capable of amazing things. What's one small habit you can complete right now?",
		}, true
	case completed*100 >= total*constants.QualifyingPercent && completed < total:
		return Event{
			Category: CategoryEncouragement,
			Title:    "Almost There",
			Message:  "You're doing great! Just a few more habits to complete your perfect day!",
		}, true
	default:
		return Event{}, false
	}
}

func (s *Scheduler) checkInactivity(now time.Time, state models.ProgressState) (Event, bool) {
	if state.LastCompletion.IsZero() {
		return Event{}, false
	}
	if now.Sub(state.LastCompletion) <= constants.InactivityThreshold {
		return Event{}, false
	}
	return Event{
		Category: CategoryGentleNudge,
		Title:    "Checking In",
		Message:  "Hey there! It's been a while. What's one small habit you could tackle right now? 🌱",
	}, true
}

func (s *Scheduler) checkStreakMilestone(now time.Time, state models.ProgressState) (Event, bool) {
	streak := state.CurrentStreak
	if streak <= 0 || streak%constants.StreakMilestoneDays != 0 {
		return Event{}, false
	}

	today := now.Format(constants.DateFormat)
	if s.milestoneFiredOn == today {
		return Event{}, false
	}
	s.milestoneFiredOn = today

	return Event{
		Category: CategoryMilestone,
		Title:    "Streak Milestone!",
		Message:  fmt.Sprintf("🔥 Amazing! You're on a %d-day streak! You're building something incredible!", streak),
	}, true
}

// checkEveningReflection fires once per day during the reflection hour,
// summarizing the day into one of three tiers.
func (s *Scheduler) checkEveningReflection(now time.Time, state models.ProgressState) (Event, bool) {
	if now.Hour() != constants.EveningReflectionHour {
		return Event{}, false
	}
	today := now.Format(constants.DateFormat)
	if s.reflectionFiredOn == today {
		return Event{}, false
	}
	s.reflectionFiredOn = today

	completed := state.CompletedCount()
	total := s.cat.Len()

	var message string
	switch {
	case completed >= 7:
		message = fmt.Sprintf("🌟 What a day! You completed %d/%d habits. Take a moment to celebrate your wins!", completed, total)
	case completed >= 4:
		message = fmt.Sprintf("💪 Solid effort today with %d/%d habits! What went well?", completed, total)
	default:
		message = fmt.Sprintf("🌱 Every day is a learning opportunity. You completed %d/%d habits. What can you improve tomorrow?", completed, total)
	}

	return Event{
		Category: CategoryReflection,
		Title:    "Evening Reflection",
		Message:  message,
	}, true
}

// AdaptiveSuggestions returns delayed one-shot reminders for every suggestion
// whose day segment matches now and whose habit is still incomplete. The
// driver schedules them and should re-read state before firing, since the
// habit may have been completed in the meantime.
func (s *Scheduler) AdaptiveSuggestions(now time.Time, state models.ProgressState) []Pending {
	segment := catalog.SegmentFor(now.Hour())
	if segment == catalog.SegmentNone {
		return nil
	}

	var pending []Pending
	for _, suggestion := range catalog.AdaptiveSuggestions {
		if suggestion.Segment != segment || state.Completion[suggestion.HabitID] {
			continue
		}
		pending = append(pending, Pending{
			HabitID: suggestion.HabitID,
			FireAt:  now.Add(suggestion.Delay),
			Event: Event{
				Category: CategorySuggestion,
				Title:    "Habit Reminder",
				Message:  suggestion.Message,
			},
		})
	}
	return pending
}

// HabitReminder builds a per-habit nudge with a random motivational tip
// appended, for drivers that want to remind about one specific habit.
func (s *Scheduler) HabitReminder(habitID string) (Event, bool) {
	habit, ok := s.cat.Habit(habitID)
	if !ok {
		return Event{}, false
	}
	tip := catalog.MotivationalTips[s.rng.Intn(len(catalog.MotivationalTips))]
	return Event{
		Category: CategorySuggestion,
		Title:    "Habit Reminder",
		Message:  fmt.Sprintf("Don't forget about your %s! %s", habit.Name, tip),
	}, true
}
