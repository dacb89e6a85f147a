package pets

import (
	"testing"
	"time"
)

func TestDeriveMood_Boundaries(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name    string
		elapsed time.Duration
		want    Mood
	}{
		{"same instant", 0, MoodHappy},
		{"23h59m", 24*time.Hour - time.Minute, MoodHappy},
		{"exactly 1 day", 24 * time.Hour, MoodExcited},
		{"2 days", 48 * time.Hour, MoodExcited},
		{"3 days 23h", 4*24*time.Hour - time.Hour, MoodExcited},
		{"exactly 4 days", 4 * 24 * time.Hour, MoodSad},
		{"30 days", 30 * 24 * time.Hour, MoodSad},
		{"clock skew (now before created)", -time.Hour, MoodHappy},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveMood(created, created.Add(tc.elapsed), false)
			if got != tc.want {
				t.Fatalf("elapsed %s: expected %s, got %s", tc.elapsed, tc.want, got)
			}
		})
	}
}

func TestDeriveMood_AdoptedAlwaysHappy(t *testing.T) {
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, days := range []int{0, 1, 3, 4, 100} {
		now := created.Add(time.Duration(days) * 24 * time.Hour)
		if got := DeriveMood(created, now, true); got != MoodHappy {
			t.Fatalf("adopted after %d days: expected happy, got %s", days, got)
		}
	}
}

func TestParseMood(t *testing.T) {
	cases := map[string]struct {
		want Mood
		ok   bool
	}{
		"happy":     {MoodHappy, true},
		"Happy":     {MoodHappy, true},
		" EXCITED ": {MoodExcited, true},
		"calm":      {MoodCalm, true},
		"playful":   {MoodPlayful, true},
		"sad":       {MoodSad, true},
		"grumpy":    {"grumpy", false},
		"":          {"", false},
	}
	for in, tc := range cases {
		got, ok := ParseMood(in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseMood(%q) = (%q, %v), want (%q, %v)", in, got, ok, tc.want, tc.ok)
		}
	}
}
