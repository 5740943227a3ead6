package display

import (
	"testing"
)

func TestParseListMonitors(t *testing.T) {
	out := "Monitors: 2\n" +
		" 0: +*eDP-1 1920/309x1080/173+0+0  eDP-1\n" +
		" 1: +HDMI-1 2560/597x1440/336+1920+0  HDMI-1\n"

	monitors := parseListMonitors(out)
	if len(monitors) != 2 {
		t.Fatalf("got %d monitors, want 2: %v", len(monitors), monitors)
	}
	if monitors[0] != "eDP-1" || monitors[1] != "HDMI-1" {
		t.Errorf("got %v, want [eDP-1 HDMI-1]", monitors)
	}
}

func TestParseListMonitorsEmpty(t *testing.T) {
	if got := parseListMonitors("Monitors: 0\n"); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
	if got := parseListMonitors(""); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestXrandrFormatGamma(t *testing.T) {
	x := NewXrandr()

	tests := []struct {
		g    Vector
		want string
	}{
		{g: Vector{1, 1, 1}, want: "1.000:1.000:1.000"},
		{g: Vector{1, 0.825, 0.725}, want: "1.000:0.825:0.725"},
		{g: Vector{1, 0.65, 0.45}, want: "1.000:0.650:0.450"},
	}
	for _, tt := range tests {
		if got := x.FormatGamma(tt.g); got != tt.want {
			t.Errorf("FormatGamma(%v) = %q, want %q", tt.g, got, tt.want)
		}
	}
}

func TestNearestTemperature(t *testing.T) {
	// Neutral gamma is daylight; a strongly warm vector lands low.
	if got := nearestTemperature(Vector{1, 1, 1}); got < 5500 {
		t.Errorf("neutral gamma mapped to %dK, want daylight range", got)
	}
	warm := nearestTemperature(Vector{1, 0.65, 0.45})
	if warm >= 5000 || warm < 1500 {
		t.Errorf("warm gamma mapped to %dK, want a low temperature", warm)
	}
	// More blue reduction means a warmer approximation.
	warmer := nearestTemperature(Vector{1, 0.5, 0.25})
	if warmer >= warm {
		t.Errorf("expected %dK to be warmer than %dK", warmer, warm)
	}
}
