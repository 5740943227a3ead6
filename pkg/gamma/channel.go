package gamma

// Channel indices into a Vector. These are fixed and never intended to
// change.
const (
	Red = iota
	Green
	Blue
)

// ChannelNames maps channel indices to their lowercase names, in index
// order.
var ChannelNames = [3]string{"red", "green", "blue"}

// Vector holds one gamma value per color channel, indexed by Red, Green
// and Blue.
type Vector [3]float64

// Neutral is the identity gamma vector: no tint applied.
func Neutral() Vector {
	return Vector{1.0, 1.0, 1.0}
}

func (v Vector) Red() float64   { return v[Red] }
func (v Vector) Green() float64 { return v[Green] }
func (v Vector) Blue() float64  { return v[Blue] }

// ChannelBounds is the validated darkest and brightest value a single
// color channel may take across the day cycle. The zero value is a valid
// constant-zero channel.
type ChannelBounds struct {
	min float64
	max float64
}

// NewChannelBounds validates that min <= max and returns the bounds.
// Values are expected in [0,1] but only the ordering is enforced here;
// out-of-range values are a configuration concern.
func NewChannelBounds(min, max float64) (ChannelBounds, error) {
	if min > max {
		return ChannelBounds{}, &InvalidChannelBoundsError{Min: min, Max: max}
	}
	return ChannelBounds{min: min, max: max}, nil
}

func (b ChannelBounds) Min() float64 { return b.min }
func (b ChannelBounds) Max() float64 { return b.max }

// WithMin returns a copy with the minimum replaced, re-validated against
// the current maximum.
func (b ChannelBounds) WithMin(min float64) (ChannelBounds, error) {
	return NewChannelBounds(min, b.max)
}

// WithMax returns a copy with the maximum replaced, re-validated against
// the current minimum.
func (b ChannelBounds) WithMax(max float64) (ChannelBounds, error) {
	return NewChannelBounds(b.min, max)
}

// Value maps a phase to this channel's gamma value: full brightness during
// day, the configured minimum at night, and a linear ramp down across the
// dusk transition. The ramp is continuous with both constant regions.
func (b ChannelBounds) Value(p Phase) float64 {
	switch p.Kind {
	case Day:
		return b.max
	case Night:
		return b.min
	default:
		return b.min + (b.max-b.min)*(1.0-p.Progress)
	}
}
