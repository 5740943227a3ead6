package display

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// kelvinToRGB approximates the normalized RGB whitepoint of a black body
// at the given color temperature, using the common piecewise log/power
// fit. Valid roughly between 1000K and 10000K.
func kelvinToRGB(kelvin float64) (r, g, b float64) {
	temp := kelvin / 100.0

	if temp <= 66 {
		r = 1.0
	} else {
		r = 1.292936186062745 * math.Pow(temp-60, -0.1332047592)
	}

	if temp <= 66 {
		g = (99.4708025861*math.Log(temp) - 161.1195681661) / 255.0
	} else {
		g = 1.129890860895841 * math.Pow(temp-60, -0.0755148492)
	}

	switch {
	case temp >= 66:
		b = 1.0
	case temp <= 19:
		b = 0.0
	default:
		b = (138.5177312231*math.Log(temp-10) - 305.0447927307) / 255.0
	}

	return clamp01(r), clamp01(g), clamp01(b)
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

// nearestTemperature finds the color temperature whose whitepoint is
// perceptually closest to the gamma vector, comparing in Lab space. Used
// by backends that expose a temperature knob instead of per-channel
// gamma.
func nearestTemperature(g Vector) int {
	// Normalize so the brightest channel is the reference white.
	peak := math.Max(g[0], math.Max(g[1], g[2]))
	if peak <= 0 {
		return 6500
	}
	target := colorful.LinearRgb(g[0]/peak, g[1]/peak, g[2]/peak)

	best := 6500
	bestDist := math.Inf(1)
	for kelvin := 1500; kelvin <= 6500; kelvin += 50 {
		r, gr, b := kelvinToRGB(float64(kelvin))
		dist := target.DistanceLab(colorful.LinearRgb(r, gr, b))
		if dist < bestDist {
			bestDist = dist
			best = kelvin
		}
	}
	return best
}
