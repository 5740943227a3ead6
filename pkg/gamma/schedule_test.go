package gamma

import (
	"errors"
	"testing"
)

func TestNewSchedule(t *testing.T) {
	tests := []struct {
		name    string
		day     float64
		dusk    float64
		night   float64
		wantErr bool
	}{
		{
			name: "plain order day dusk night",
			day:  0.1, dusk: 0.5, night: 0.7,
		},
		{
			name: "rotated order night day dusk",
			day:  0.5, dusk: 0.7, night: 0.1,
		},
		{
			name: "rotated order dusk night day",
			day:  0.7, dusk: 0.1, night: 0.5,
		},
		{
			name: "violates every rotation",
			day:  0.5, dusk: 0.1, night: 0.7,
			wantErr: true,
		},
		{
			name: "all boundaries equal",
			day:  0.25, dusk: 0.25, night: 0.25,
		},
		{
			name: "zero-width dusk",
			day:  0.2, dusk: 0.6, night: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchedule(tt.day, tt.dusk, tt.night)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewSchedule(%v, %v, %v) should have failed", tt.day, tt.dusk, tt.night)
				}
				var scheduleErr *InvalidScheduleError
				if !errors.As(err, &scheduleErr) {
					t.Fatalf("expected *InvalidScheduleError, got %T", err)
				}
				if scheduleErr.DayStart != tt.day || scheduleErr.DuskStart != tt.dusk || scheduleErr.NightStart != tt.night {
					t.Errorf("error should carry the offending values, got %+v", scheduleErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSchedule(%v, %v, %v) failed: %v", tt.day, tt.dusk, tt.night, err)
			}
			if s.DayStart() != tt.day || s.DuskStart() != tt.dusk || s.NightStart() != tt.night {
				t.Errorf("accessors do not round-trip: got %v %v %v", s.DayStart(), s.DuskStart(), s.NightStart())
			}
		})
	}
}

func TestScheduleWithReplacedBoundary(t *testing.T) {
	s, err := NewSchedule(5.0/24.0, 17.0/24.0, 21.0/24.0)
	if err != nil {
		t.Fatalf("NewSchedule failed: %v", err)
	}

	moved, err := s.WithDuskStart(18.0 / 24.0)
	if err != nil {
		t.Fatalf("WithDuskStart failed: %v", err)
	}
	if moved.DuskStart() != 18.0/24.0 {
		t.Errorf("dusk start not replaced, got %v", moved.DuskStart())
	}
	if s.DuskStart() != 17.0/24.0 {
		t.Errorf("original schedule mutated, got %v", s.DuskStart())
	}

	// Moving day start past dusk start breaks every rotation.
	if _, err := s.WithDayStart(19.0 / 24.0); err == nil {
		t.Error("WithDayStart should have failed validation")
	}
	if _, err := s.WithNightStart(10.0 / 24.0); err == nil {
		t.Error("WithNightStart should have failed validation")
	}
}
