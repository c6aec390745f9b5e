package recipes

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := map[string]time.Time{
		"2024-01-02":                time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		"2024-01-02 15:04:05":       time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		"2024-01-02T15:04:05":       time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		"2024-01-02T15:04:05+02:00": time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC),
	}
	for input, want := range cases {
		got, ok := parseDate(input)
		if !ok || !got.Equal(want) {
			t.Fatalf("%q: expected %v, got %v (%v)", input, want, got, ok)
		}
	}
	for _, input := range []string{"", "yesterday", "02/01/2024"} {
		if _, ok := parseDate(input); ok {
			t.Fatalf("%q: expected parse failure", input)
		}
	}
}

func TestAtoi(t *testing.T) {
	for input, want := range map[string]int{"4": 4, " 6 ": 6, "four": 0, "-2": 0, "": 0} {
		if got := atoi(input); got != want {
			t.Fatalf("%q: want %d, got %d", input, want, got)
		}
	}
}

func TestCandidatesKeepsDirectoriesOnly(t *testing.T) {
	ids := candidates(nil)
	if ids == nil || len(ids) != 0 {
		t.Fatalf("expected empty slice, got %#v", ids)
	}
}
