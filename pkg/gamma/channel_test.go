package gamma

import (
	"errors"
	"math"
	"testing"
)

func TestNewChannelBounds(t *testing.T) {
	tests := []struct {
		name    string
		min     float64
		max     float64
		wantErr bool
	}{
		{name: "ordinary range", min: 0.1, max: 0.9},
		{name: "constant channel", min: 1.0, max: 1.0},
		{name: "full range", min: 0.0, max: 1.0},
		{name: "inverted range", min: 0.9, max: 0.1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewChannelBounds(tt.min, tt.max)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewChannelBounds(%v, %v) should have failed", tt.min, tt.max)
				}
				var boundsErr *InvalidChannelBoundsError
				if !errors.As(err, &boundsErr) {
					t.Fatalf("expected *InvalidChannelBoundsError, got %T", err)
				}
				if boundsErr.Min != tt.min || boundsErr.Max != tt.max {
					t.Errorf("error should carry the offending values, got %+v", boundsErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewChannelBounds(%v, %v) failed: %v", tt.min, tt.max, err)
			}
			if b.Min() != tt.min || b.Max() != tt.max {
				t.Errorf("accessors do not round-trip: got %v %v", b.Min(), b.Max())
			}
		})
	}
}

func TestChannelBoundsWith(t *testing.T) {
	b, err := NewChannelBounds(0.3, 0.8)
	if err != nil {
		t.Fatalf("NewChannelBounds failed: %v", err)
	}

	raised, err := b.WithMin(0.5)
	if err != nil {
		t.Fatalf("WithMin failed: %v", err)
	}
	if raised.Min() != 0.5 || raised.Max() != 0.8 {
		t.Errorf("got %v %v, want 0.5 0.8", raised.Min(), raised.Max())
	}
	if b.Min() != 0.3 {
		t.Errorf("original bounds mutated, got min %v", b.Min())
	}

	if _, err := b.WithMin(0.9); err == nil {
		t.Error("WithMin above max should have failed")
	}
	if _, err := b.WithMax(0.2); err == nil {
		t.Error("WithMax below min should have failed")
	}
}

func TestChannelValue(t *testing.T) {
	b, err := NewChannelBounds(0.4, 0.9)
	if err != nil {
		t.Fatalf("NewChannelBounds failed: %v", err)
	}

	if got := b.Value(Phase{Kind: Day}); got != 0.9 {
		t.Errorf("day value = %v, want max 0.9", got)
	}
	if got := b.Value(Phase{Kind: Night}); got != 0.4 {
		t.Errorf("night value = %v, want min 0.4", got)
	}

	// Dusk ramps down: still bright at progress 0, approaching min at 1.
	if got := b.Value(Phase{Kind: Dusk, Progress: 0.0}); got != 0.9 {
		t.Errorf("dusk start value = %v, want max 0.9", got)
	}
	if got := b.Value(Phase{Kind: Dusk, Progress: 0.5}); math.Abs(got-0.65) > 1e-9 {
		t.Errorf("dusk midpoint value = %v, want 0.65", got)
	}

	prev := b.Value(Phase{Kind: Dusk, Progress: 0.0})
	for p := 0.1; p < 1.0; p += 0.1 {
		cur := b.Value(Phase{Kind: Dusk, Progress: p})
		if cur >= prev {
			t.Fatalf("dusk ramp must strictly decrease, got %v then %v", prev, cur)
		}
		prev = cur
	}
}
