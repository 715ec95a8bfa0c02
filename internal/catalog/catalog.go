package catalog

import (
	"time"

	"emberday/internal/constants"
)

// Habit is a single trackable daily action. The catalog is fixed at startup
// and never mutated.
type Habit struct {
	ID       string
	Category string
	Points   int
	Name     string
	Duration string
	Tips     []string
}

// AchievementLevel is a named milestone unlocked when cumulative points cross
// its threshold. The table is ordered ascending and starts at 0.
type AchievementLevel struct {
	Points int
	Level  string
	Title  string
	Badge  string
}

// CompletionMessage is shown when a habit transitions to completed.
type CompletionMessage struct {
	Icon    string
	Title   string
	Message string
}

// TimedReminder maps an hour of day to a reminder message.
type TimedReminder struct {
	Hour    int
	Message string
}

// Segment identifies a portion of the day used for adaptive suggestions.
type Segment int

const (
	SegmentNone Segment = iota
	SegmentMorning
	SegmentAfternoon
	SegmentEvening
)

// Suggestion is a delayed per-habit nudge scheduled within a day segment when
// the habit is still incomplete.
type Suggestion struct {
	HabitID string
	Segment Segment
	Delay   time.Duration
	Message string
}

// Catalog bundles the habit set and achievement table so callers receive it
// by explicit dependency rather than reading package globals.
type Catalog struct {
	habits []Habit
	byID   map[string]Habit
	levels []AchievementLevel
}

// New builds a catalog from the given habits and levels. Intended for tests;
// production code uses Default.
func New(habits []Habit, levels []AchievementLevel) *Catalog {
	byID := make(map[string]Habit, len(habits))
	for _, h := range habits {
		byID[h.ID] = h
	}
	return &Catalog{habits: habits, byID: byID, levels: levels}
}

// Default returns the fixed production catalog.
func Default() *Catalog {
	return New(habits, achievementLevels)
}

// Habits returns all habit definitions in display order.
func (c *Catalog) Habits() []Habit {
	return c.habits
}

// Habit looks up a habit by id.
func (c *Catalog) Habit(id string) (Habit, bool) {
	h, ok := c.byID[id]
	return h, ok
}

// Len returns the number of habits in the catalog.
func (c *Catalog) Len() int {
	return len(c.habits)
}

// Levels returns the achievement table, ordered ascending by threshold.
func (c *Catalog) Levels() []AchievementLevel {
	return c.levels
}

// SegmentFor returns the day segment for the given hour, or SegmentNone when
// the hour falls outside all segments.
func SegmentFor(hour int) Segment {
	switch {
	case hour >= constants.MorningStartHour && hour <= constants.MorningEndHour:
		return SegmentMorning
	case hour >= constants.AfternoonStartHour && hour <= constants.AfternoonEndHour:
		return SegmentAfternoon
	case hour >= constants.EveningStartHour && hour <= constants.EveningEndHour:
		return SegmentEvening
	default:
		return SegmentNone
	}
}

// TimedReminderFor returns the time-of-day reminder for the given hour, if any.
func TimedReminderFor(hour int) (TimedReminder, bool) {
	for _, r := range TimedReminders {
		if r.Hour == hour {
			return r, true
		}
	}
	return TimedReminder{}, false
}

var habits = []Habit{
	// Self-improvement block
	{
		ID:       "workout",
		Category: "fitness",
		Points:   25,
		Name:     "Morning Workout",
		Duration: "30-60 min",
		Tips: []string{
			"Start with 10 minutes if you're new",
			"Consistency beats intensity",
			"Any movement counts!",
		},
	},
	{
		ID:       "reading",
		Category: "learning",
		Points:   20,
		Name:     "Daily Reading",
		Duration: "30 min",
		Tips: []string{
			"Even 5 pages make a difference",
			"Audio books count too",
			"Mix fiction and non-fiction",
		},
	},
	{
		ID:       "upskill",
		Category: "learning",
		Points:   30,
		Name:     "Skill Development",
		Duration: "1-2 hours",
		Tips: []string{
			"Focus on one skill at a time",
			"Practice beats theory",
			"Teach others what you learn",
		},
	},
	{
		ID:       "meditation",
		Category: "wellness",
		Points:   15,
		Name:     "Mindfulness/Meditation",
		Duration: "15 min",
		Tips: []string{
			"Start with 5 minutes",
			"Breathing is enough",
			"Apps like Headspace help",
		},
	},
	{
		ID:       "planning",
		Category: "productivity",
		Points:   10,
		Name:     "Daily Planning",
		Duration: "10 min",
		Tips: []string{
			"Review yesterday's wins",
			"Set 3 priorities",
			"Plan your day the night before",
		},
	},
	// Self-love & wellness block
	{
		ID:       "water",
		Category: "health",
		Points:   10,
		Name:     "Hydration",
		Duration: "Throughout day",
		Tips: []string{
			"Carry a water bottle",
			"Set hourly reminders",
			"Flavor with lemon or mint",
		},
	},
	{
		ID:       "gratitude",
		Category: "mindset",
		Points:   15,
		Name:     "Gratitude Practice",
		Duration: "5 min",
		Tips: []string{
			"Be specific",
			"Feel the emotion",
			"Include small things too",
		},
	},
	{
		ID:       "selfcare",
		Category: "wellness",
		Points:   20,
		Name:     "Self-Care Act",
		Duration: "Variable",
		Tips: []string{
			"Can be as simple as a bath",
			"Listen to your needs",
			"Schedule it like an appointment",
		},
	},
	{
		ID:       "nutrition",
		Category: "health",
		Points:   15,
		Name:     "Healthy Nutrition",
		Duration: "Per meal",
		Tips: []string{
			"Add vegetables to every meal",
			"Prepare healthy snacks",
			"Hydrate before eating",
		},
	},
	{
		ID:       "positivity",
		Category: "mindset",
		Points:   10,
		Name:     "Positive Self-Talk",
		Duration: "Throughout day",
		Tips: []string{
			"Catch negative thoughts early",
			"Speak like to a best friend",
			"Use affirmations",
		},
	},
}

var achievementLevels = []AchievementLevel{
	{Points: 0, Level: "Beginner", Title: "Starting the Journey", Badge: "🌱"},
	{Points: 100, Level: "Novice", Title: "Building Momentum", Badge: "🚀"},
	{Points: 300, Level: "Apprentice", Title: "Developing Discipline", Badge: "💪"},
	{Points: 600, Level: "Practitioner", Title: "Forming Habits", Badge: "⭐"},
	{Points: 1000, Level: "Expert", Title: "Living the System", Badge: "🏆"},
	{Points: 1500, Level: "Master", Title: "Habit Mastery", Badge: "👑"},
	{Points: 2500, Level: "Legend", Title: "Transformation Complete", Badge: "💎"},
}

// CompletionMessages are picked at random when a habit is completed.
var CompletionMessages = []CompletionMessage{
	{Icon: "🎯", Title: "Focus Mode Activated!", Message: "You're building the habits that will transform your life!"},
	{Icon: "⚡", Title: "Energy Rising!", Message: "Each completed habit charges your personal power!"},
	{Icon: "🌱", Title: "Growth Happening!", Message: "You're literally rewiring your brain for success!"},
	{Icon: "🔥", Title: "On Fire!", Message: "This momentum you're building is unstoppable!"},
	{Icon: "💎", Title: "Diamond Formation!", Message: "Pressure creates diamonds. You're becoming precious!"},
	{Icon: "🚀", Title: "Lift Off!", Message: "Your future self is cheering you on right now!"},
	{Icon: "💪", Title: "Strength Building!", Message: "Every habit completed makes you mentally stronger!"},
	{Icon: "🎪", Title: "Magic Happening!", Message: "You're creating the life you've always dreamed of!"},
	{Icon: "🌟", Title: "Star Quality!", Message: "You're shining brighter with each positive choice!"},
	{Icon: "🏆", Title: "Champion Mindset!", Message: "Winners are made through daily disciplines like this!"},
}

// GentleReminders are picked at random when a habit is unmarked.
var GentleReminders = []string{
	"No worries! Every step back teaches us something. What can you learn from this moment?",
	"It's okay to stumble. The key is to keep moving forward with kindness to yourself.",
	"Remember, progress isn't perfect. You're still on the right path.",
	"This is just a moment, not your whole journey. You've got this!",
	"Self-compassion is part of growth. Be gentle with yourself today.",
	"Every habit you restart is a victory. You're already winning by trying again.",
	"Perfectionism is the enemy of progress. You're doing better than you think.",
	"Tomorrow is a fresh start, but you can restart right now too.",
	"The strongest people know when to be gentle with themselves.",
	"Your worth isn't measured by perfect streaks, but by your commitment to growth.",
}

// TimedReminders fire at minute 0 of their hour.
var TimedReminders = []TimedReminder{
	{Hour: 6, Message: "Good morning, champion! Ready to start your transformation journey today?"},
	{Hour: 9, Message: "Time to start your self-improvement block! What will you tackle first?"},
	{Hour: 10, Message: "Morning momentum check! How's your workout or reading going?"},
	{Hour: 12, Message: "Midday check-in! How are your habits going? Remember to stay hydrated!"},
	{Hour: 14, Message: "Afternoon energy boost! Perfect time for some upskilling or reading."},
	{Hour: 16, Message: "3 PM productivity tip: This is a great time for skill development!"},
	{Hour: 18, Message: "Evening reflection time. What went well today?"},
	{Hour: 20, Message: "Wind down time. Practice some gratitude and self-care."},
	{Hour: 21, Message: "Almost bedtime! Did you take a moment for gratitude today?"},
}

// Quotes rotate on the stats view.
var Quotes = []string{
	"The compound effect of small habits creates extraordinary results. - Darren Hardy",
	"You do not rise to the level of your goals, you fall to the level of your systems. - James Clear",
	"Success is the sum of small efforts repeated day in and day out. - Robert Collier",
	"The secret to getting ahead is getting started. - Mark Twain",
	"Your future self is counting on the decisions you make today.",
	"Progress, not perfection, is the goal.",
	"Every master was once a disaster. Keep going.",
	"The pain of discipline weighs ounces, but the pain of regret weighs tons.",
	"You are not competing with anyone else. You are competing with who you were yesterday.",
	"Small daily improvements over time lead to stunning results.",
	"The best time to plant a tree was 20 years ago. The second best time is now. - Chinese Proverb",
	"Motivation gets you started. Habit is what keeps you going. - Jim Ryun",
	"We are what we repeatedly do. Excellence, then, is not an act, but a habit. - Aristotle",
	"The quality of your life is determined by the quality of your daily rituals. - Robin Sharma",
	"Success is nothing more than a few simple disciplines practiced every day. - Jim Rohn",
}

// MotivationalTips are appended to per-habit reminder messages.
var MotivationalTips = []string{
	"Small steps lead to big changes!",
	"You're building your future self!",
	"Consistency is your superpower!",
	"Every habit completed is a win!",
	"You're stronger than your excuses!",
	"Progress over perfection!",
	"Your future self will thank you!",
	"Champions are built through daily habits!",
}

// AdaptiveSuggestions are scheduled as delayed one-shots when their habit is
// still incomplete during the matching day segment.
var AdaptiveSuggestions = []Suggestion{
	{HabitID: "workout", Segment: SegmentMorning, Delay: 15 * time.Minute, Message: "Perfect time for your morning workout! Your body is ready! 💪"},
	{HabitID: "meditation", Segment: SegmentMorning, Delay: 30 * time.Minute, Message: "A few minutes of mindfulness can set the tone for your entire day 🧘"},
	{HabitID: "reading", Segment: SegmentAfternoon, Delay: 10 * time.Minute, Message: "Lunch break = perfect reading time! Feed your mind 📚"},
	{HabitID: "upskill", Segment: SegmentAfternoon, Delay: 20 * time.Minute, Message: "Afternoon energy is great for learning new skills! 🚀"},
	{HabitID: "gratitude", Segment: SegmentEvening, Delay: 15 * time.Minute, Message: "End your day with gratitude. What made you smile today? 😊"},
	{HabitID: "planning", Segment: SegmentEvening, Delay: 25 * time.Minute, Message: "Plan tomorrow today! 5 minutes now saves 50 minutes tomorrow 📋"},
}
