package melody

import (
	"testing"
	"time"
)

func TestCatalogue(t *testing.T) {
	if len(SampleMelodies) != 10 {
		t.Errorf("expected 10 sample melodies, got %d", len(SampleMelodies))
	}
	for i, m := range SampleMelodies {
		if len(m) != MelodyLength {
			t.Errorf("melody %d has %d notes", i, len(m))
		}
		for _, p := range m {
			if !ValidPitch(p) {
				t.Errorf("melody %d uses unknown pitch %q", i, p)
			}
		}
	}
}

func TestPitchForKey(t *testing.T) {
	tests := []struct {
		key  rune
		want string
		ok   bool
	}{
		{'1', "C", true},
		{'2', "C#", true},
		{'0', "A", true},
		{'-', "A#", true},
		{'=', "B", true},
		{'q', "", false},
	}
	for _, tc := range tests {
		got, ok := PitchForKey(tc.key)
		if got != tc.want || ok != tc.ok {
			t.Errorf("PitchForKey(%q) = %q, %v; want %q, %v", tc.key, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDailyIndex(t *testing.T) {
	day := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	later := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)

	a := DailyIndex(day, "salt", 10)
	if a < 0 || a >= 10 {
		t.Fatalf("index %d out of range", a)
	}
	if DailyIndex(later, "salt", 10) != a {
		t.Error("the same UTC date should give the same index")
	}

	seen := make(map[int]bool)
	for d := 0; d < 60; d++ {
		seen[DailyIndex(day.AddDate(0, 0, d), "salt", 10)] = true
	}
	if len(seen) < 2 {
		t.Error("daily index should vary across dates")
	}

	if DailyIndex(day, "salt", 0) != 0 {
		t.Error("an empty catalogue should give index 0")
	}
}

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 3, 15, 5, 0, 0, 0, loc)
	if got := DateKey(ts); got != "2026-03-14" {
		t.Errorf("DateKey = %s, want 2026-03-14", got)
	}
}
