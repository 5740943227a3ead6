package gamma

import (
	"math"
	"testing"
	"time"
)

func TestTimeOfDay(t *testing.T) {
	loc := time.FixedZone("TST", 2*60*60)

	midnight := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)
	if got := TimeOfDay(midnight); got != 0.0 {
		t.Errorf("midnight must map to exactly 0, got %v", got)
	}

	noon := time.Date(2026, 3, 14, 12, 0, 0, 0, loc)
	if got := TimeOfDay(noon); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("noon = %v, want 0.5", got)
	}

	lastInstant := time.Date(2026, 3, 14, 23, 59, 59, 999999999, loc)
	if got := TimeOfDay(lastInstant); got >= 1.0 || got < 0.999 {
		t.Errorf("instant before midnight = %v, want just under 1", got)
	}

	// Sub-second precision keeps repeated samples monotonic.
	a := TimeOfDay(time.Date(2026, 3, 14, 8, 30, 0, 250_000_000, loc))
	b := TimeOfDay(time.Date(2026, 3, 14, 8, 30, 0, 750_000_000, loc))
	if b <= a {
		t.Errorf("sub-second samples not monotonic: %v then %v", a, b)
	}
}

func TestTimeOfDayDSTTransitions(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// Fall-back day lasts 25 hours of elapsed time, but the civil clock
	// reading must still map into [0,1).
	late := TimeOfDay(time.Date(2026, 10, 25, 23, 30, 0, 0, berlin))
	if late < 0 || late >= 1.0 {
		t.Fatalf("23:30 on a fall-back day = %v, must stay in [0,1)", late)
	}
	if math.Abs(late-23.5/24.0) > 1e-12 {
		t.Errorf("23:30 on a fall-back day = %v, want %v", late, 23.5/24.0)
	}

	// Spring-forward day lasts 23 hours; civil noon is still 0.5.
	noon := TimeOfDay(time.Date(2026, 3, 29, 12, 0, 0, 0, berlin))
	if math.Abs(noon-0.5) > 1e-12 {
		t.Errorf("noon on a spring-forward day = %v, want 0.5", noon)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "00:00", want: 0.0},
		{in: "05:00", want: 5.0 / 24.0},
		{in: "17:30", want: 17.5 / 24.0},
		{in: "23:59", want: (23.0*60 + 59) / (24.0 * 60)},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "whenever", wantErr: true},
		{in: "", wantErr: true},
		{in: "05:00garbage", wantErr: true},
		{in: "05:", wantErr: true},
		{in: "x05:00", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) should have failed", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) failed: %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, in := range []string{"00:00", "05:00", "17:30", "21:00", "23:59"} {
		frac, err := ParseClock(in)
		if err != nil {
			t.Fatalf("ParseClock(%q) failed: %v", in, err)
		}
		if got := FormatClock(frac); got != in {
			t.Errorf("FormatClock(ParseClock(%q)) = %q", in, got)
		}
	}
}
