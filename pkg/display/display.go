// Package display applies gamma vectors to the screen through whatever
// mechanism the running graphical session provides.
package display

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
)

// Backend is a display-control mechanism that can enumerate outputs and
// apply a gamma vector to them.
type Backend interface {
	// Name identifies the backend in logs and status output.
	Name() string
	// Outputs lists the names of currently connected outputs.
	Outputs() ([]string, error)
	// FormatGamma renders a gamma vector in the backend's native syntax.
	FormatGamma(g Vector) string
	// Apply sets the gamma on the given outputs. An empty output list
	// means every connected output.
	Apply(g Vector, outputs []string) error
}

// Vector mirrors gamma.Vector so backends do not import the engine.
type Vector = [3]float64

// ErrNoBackend is returned by Detect when no supported display-control
// mechanism is available in the current session.
var ErrNoBackend = errors.New("no supported graphical environment found")

// Detect picks a backend for the current session: wl-gammarelay on
// wayland, xrandr on X11.
func Detect() (Backend, error) {
	if runtime.GOOS != "linux" {
		return nil, ErrNoBackend
	}

	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if _, err := exec.LookPath("busctl"); err == nil {
			return NewWlGammaRelay(), nil
		}
	}

	if os.Getenv("DISPLAY") != "" {
		if _, err := exec.LookPath("xrandr"); err == nil {
			return NewXrandr(), nil
		}
	}

	return nil, ErrNoBackend
}
