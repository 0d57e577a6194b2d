package timezone_test

import (
	"testing"
	"time"

	"adspot/shared/timezone"
)

func TestToday(t *testing.T) {
	today := timezone.Today()

	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 || today.Nanosecond() != 0 {
		t.Errorf("expected Today to be midnight, got %s", today)
	}

	now := timezone.Now()
	if today.After(now) {
		t.Errorf("expected Today (%s) to not be after Now (%s)", today, now)
	}
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-06-15")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if got := timezone.Format(parsed, "2006-01-02"); got != "2024-06-15" {
		t.Errorf("expected formatted date to be 2024-06-15, got %s", got)
	}
}

func TestGetLocation(t *testing.T) {
	loc := timezone.GetLocation()
	if loc == nil {
		t.Fatal("expected non-nil location")
	}

	if !timezone.Now().Equal(timezone.ToAppTime(time.Now())) && timezone.Now().Sub(timezone.ToAppTime(time.Now())) > time.Second {
		t.Error("Now and ToAppTime(time.Now()) drifted more than a second apart")
	}
}
