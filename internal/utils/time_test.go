package utils

import "testing"

func TestYesterdayOf(t *testing.T) {
	cases := []struct {
		day  string
		want string
	}{
		{"2026-03-15", "2026-03-14"},
		{"2026-03-01", "2026-02-28"},
		{"2024-03-01", "2024-02-29"}, // leap year
		{"2026-01-01", "2025-12-31"},
		{"garbage", ""},
	}
	for _, tc := range cases {
		if got := YesterdayOf(tc.day); got != tc.want {
			t.Errorf("YesterdayOf(%q) = %q, want %q", tc.day, got, tc.want)
		}
	}
}

func TestIsYesterday(t *testing.T) {
	if !IsYesterday("2026-03-14", "2026-03-15") {
		t.Errorf("Expected 03-14 to be yesterday of 03-15")
	}
	if IsYesterday("2026-03-13", "2026-03-15") {
		t.Errorf("Expected a two-day gap not to count as yesterday")
	}
	if IsYesterday("2026-03-15", "2026-03-15") {
		t.Errorf("Expected the same day not to count as yesterday")
	}
	if IsYesterday("", "2026-03-15") {
		t.Errorf("Expected an empty candidate never to match")
	}
	if IsYesterday("", "garbage") {
		t.Errorf("Expected invalid input never to match")
	}
}

func TestValidateDay(t *testing.T) {
	if !ValidateDay("2026-03-15") {
		t.Errorf("Expected a valid date to pass")
	}
	for _, bad := range []string{"", "03/15/2026", "2026-13-01", "2026-02-30", "yesterday"} {
		if ValidateDay(bad) {
			t.Errorf("Expected %q to fail validation", bad)
		}
	}
}
