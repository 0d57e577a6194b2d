package daterange_test

import (
	"math/rand"
	"testing"
	"time"

	"adspot/shared/daterange"
)

func day(yearDay int) time.Time {
	return time.Date(2026, time.January, yearDay, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart int
		aEnd   int
		bStart int
		bEnd   int
		want   bool
	}{
		{name: "identical ranges", aStart: 10, aEnd: 15, bStart: 10, bEnd: 15, want: true},
		{name: "contained range", aStart: 10, aEnd: 20, bStart: 12, bEnd: 14, want: true},
		{name: "partial overlap", aStart: 10, aEnd: 15, bStart: 14, bEnd: 18, want: true},
		{name: "touching endpoints do not overlap", aStart: 10, aEnd: 15, bStart: 15, bEnd: 20, want: false},
		{name: "touching endpoints reversed", aStart: 15, aEnd: 20, bStart: 10, bEnd: 15, want: false},
		{name: "disjoint ranges", aStart: 1, aEnd: 5, bStart: 10, bEnd: 15, want: false},
		{name: "one day overlap", aStart: 10, aEnd: 15, bStart: 14, bEnd: 15, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := daterange.Overlaps(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
			if got != tt.want {
				t.Errorf("Overlaps([%d,%d), [%d,%d)) = %v, want %v", tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}

			// The predicate is symmetric.
			mirrored := daterange.Overlaps(day(tt.bStart), day(tt.bEnd), day(tt.aStart), day(tt.aEnd))
			if mirrored != tt.want {
				t.Errorf("expected symmetric result, got %v", mirrored)
			}
		})
	}
}

func TestOverlaps_RandomRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		aStart := rng.Intn(300) + 1
		aEnd := aStart + rng.Intn(30) + 1
		bStart := rng.Intn(300) + 1
		bEnd := bStart + rng.Intn(30) + 1

		got := daterange.Overlaps(day(aStart), day(aEnd), day(bStart), day(bEnd))

		// Reference definition: some day is covered by both half-open ranges.
		want := false
		for d := aStart; d < aEnd; d++ {
			if d >= bStart && d < bEnd {
				want = true
				break
			}
		}

		if got != want {
			t.Fatalf("Overlaps([%d,%d), [%d,%d)) = %v, want %v", aStart, aEnd, bStart, bEnd, got, want)
		}
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
		want  int
	}{
		{name: "three nights", start: 10, end: 13, want: 3},
		{name: "one night", start: 10, end: 11, want: 1},
		{name: "same day", start: 10, end: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daterange.Nights(day(tt.start), day(tt.end)); got != tt.want {
				t.Errorf("Nights(%d, %d) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestNights_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, time.January, 10, 23, 30, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 13, 0, 15, 0, 0, time.UTC)

	if got := daterange.Nights(start, end); got != 3 {
		t.Errorf("expected 3 nights, got %d", got)
	}
}

func TestDaysInclusive(t *testing.T) {
	days := daterange.DaysInclusive(day(1), day(5))

	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}

	for i, d := range days {
		if !d.Equal(day(i + 1)) {
			t.Errorf("expected day %d to be %s, got %s", i, day(i+1), d)
		}
	}
}

func TestDaysInclusive_SingleDay(t *testing.T) {
	days := daterange.DaysInclusive(day(7), day(7))

	if len(days) != 1 || !days[0].Equal(day(7)) {
		t.Errorf("expected exactly one day, got %v", days)
	}
}

func TestDaysInclusive_InvertedRange(t *testing.T) {
	if days := daterange.DaysInclusive(day(10), day(5)); days != nil {
		t.Errorf("expected nil for inverted range, got %v", days)
	}
}

func TestTruncate(t *testing.T) {
	ts := time.Date(2026, time.March, 3, 17, 45, 12, 999, time.UTC)

	got := daterange.Truncate(ts)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("expected midnight, got %s", got)
	}

	if got.Year() != 2026 || got.Month() != time.March || got.Day() != 3 {
		t.Errorf("expected same calendar day, got %s", got)
	}
}

func TestParseDay(t *testing.T) {
	parsed, err := daterange.ParseDay("2026-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if daterange.Format(parsed) != "2026-01-10" {
		t.Errorf("expected round trip, got %s", daterange.Format(parsed))
	}

	if _, err := daterange.ParseDay("10/01/2026"); err == nil {
		t.Error("expected error for unsupported layout")
	}
}
