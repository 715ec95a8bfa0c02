package catalog

import "testing"

func TestDefault_CatalogShape(t *testing.T) {
	cat := Default()

	if cat.Len() != 10 {
		t.Fatalf("Expected 10 habits, got %d", cat.Len())
	}

	seen := make(map[string]bool)
	for _, h := range cat.Habits() {
		if h.ID == "" || h.Name == "" {
			t.Errorf("Habit with empty identity: %+v", h)
		}
		if h.Points <= 0 {
			t.Errorf("Habit %s has non-positive points: %d", h.ID, h.Points)
		}
		if seen[h.ID] {
			t.Errorf("Duplicate habit ID %s", h.ID)
		}
		seen[h.ID] = true
	}
}

func TestHabit_Lookup(t *testing.T) {
	cat := Default()

	habit, ok := cat.Habit("workout")
	if !ok {
		t.Fatalf("Expected workout to exist")
	}
	if habit.Points != 25 {
		t.Errorf("Expected workout worth 25 points, got %d", habit.Points)
	}

	if _, ok := cat.Habit("juggling"); ok {
		t.Errorf("Expected unknown habit lookup to fail")
	}
}

func TestLevels_StartAtZeroAndAscend(t *testing.T) {
	levels := Default().Levels()

	if len(levels) == 0 {
		t.Fatalf("Expected a non-empty level table")
	}
	if levels[0].Points != 0 {
		t.Errorf("Expected the first level at 0 points so every total has a level, got %d", levels[0].Points)
	}
	for i := 1; i < len(levels); i++ {
		if levels[i].Points <= levels[i-1].Points {
			t.Errorf("Level table not strictly ascending at index %d: %d after %d", i, levels[i].Points, levels[i-1].Points)
		}
	}
}

func TestSegmentFor(t *testing.T) {
	cases := []struct {
		hour int
		want Segment
	}{
		{5, SegmentNone},
		{6, SegmentMorning},
		{10, SegmentMorning},
		{11, SegmentNone},
		{12, SegmentAfternoon},
		{17, SegmentAfternoon},
		{18, SegmentEvening},
		{21, SegmentEvening},
		{22, SegmentNone},
	}
	for _, tc := range cases {
		if got := SegmentFor(tc.hour); got != tc.want {
			t.Errorf("SegmentFor(%d) = %v, want %v", tc.hour, got, tc.want)
		}
	}
}

func TestTimedReminderFor(t *testing.T) {
	if _, ok := TimedReminderFor(9); !ok {
		t.Errorf("Expected a timed reminder at 09:00")
	}
	if _, ok := TimedReminderFor(3); ok {
		t.Errorf("Expected no timed reminder at 03:00")
	}
}

func TestAdaptiveSuggestions_ReferenceKnownHabits(t *testing.T) {
	cat := Default()

	for _, sug := range AdaptiveSuggestions {
		if _, ok := cat.Habit(sug.HabitID); !ok {
			t.Errorf("Suggestion references unknown habit %q", sug.HabitID)
		}
		if sug.Segment == SegmentNone {
			t.Errorf("Suggestion for %s has no segment", sug.HabitID)
		}
		if sug.Delay <= 0 {
			t.Errorf("Suggestion for %s has no delay", sug.HabitID)
		}
	}
}
