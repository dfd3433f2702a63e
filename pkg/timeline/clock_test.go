package timeline

import (
	"errors"
	"testing"
)

func TestTimeToMinutes_ParsesClockStrings(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := TimeToMinutes(c.in)
		if err != nil {
			t.Fatalf("TimeToMinutes(%q): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("TimeToMinutes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestTimeToMinutes_RejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "8", "08:00:00", "morning", "ab:cd", "08:-5", "-1:30"} {
		if _, err := TimeToMinutes(in); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Fatalf("TimeToMinutes(%q): expected ErrInvalidTimeFormat, got %v", in, err)
		}
	}
}

func TestMinutesToTime_WrapsPastMidnight(t *testing.T) {
	// Minutes past 1440 silently wrap to the next day's clock time; there
	// is no overnight tracking.
	if got := MinutesToTime(1450); got != "00:10" {
		t.Fatalf("MinutesToTime(1450) = %q, want 00:10", got)
	}
	if got := MinutesToTime(1440); got != "00:00" {
		t.Fatalf("MinutesToTime(1440) = %q, want 00:00", got)
	}
	if got := MinutesToTime(750); got != "12:30" {
		t.Fatalf("MinutesToTime(750) = %q, want 12:30", got)
	}
}

func TestDuration_IsSignedAndNegativeWhenReversed(t *testing.T) {
	d, err := Duration("09:00", "10:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 90 {
		t.Fatalf("Duration = %d, want 90", d)
	}

	d, err = Duration("10:30", "09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != -90 {
		t.Fatalf("reversed Duration = %d, want -90", d)
	}
}
