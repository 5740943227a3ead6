package display

import (
	"fmt"
	"math"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	wlGammaRelayDest = "rs.wl-gammarelay"
	wlGammaRelayPath = "/"
	wlGammaRelayIntf = "rs.wl.gammarelay"
)

// WlGammaRelay drives wayland sessions through the wl-gammarelay D-Bus
// service via busctl. The service exposes a color temperature and a
// brightness knob rather than per-channel gamma, so the vector is
// approximated by its nearest temperature plus the peak channel as
// brightness.
type WlGammaRelay struct {
	bin string
}

func NewWlGammaRelay() *WlGammaRelay {
	return &WlGammaRelay{bin: "busctl"}
}

func (w *WlGammaRelay) Name() string { return "wl-gammarelay" }

// Outputs always reports a single logical output: wl-gammarelay applies
// to the whole session and does not expose per-output control.
func (w *WlGammaRelay) Outputs() ([]string, error) {
	return []string{"wayland"}, nil
}

func (w *WlGammaRelay) FormatGamma(g Vector) string {
	return fmt.Sprintf("%dK@%.0f%%", nearestTemperature(g), peakChannel(g)*100)
}

func (w *WlGammaRelay) Apply(g Vector, _ []string) error {
	temperature := nearestTemperature(g)
	brightness := peakChannel(g)

	logrus.WithFields(logrus.Fields{
		"temperature": temperature,
		"brightness":  brightness,
	}).Debug("applying gamma via wl-gammarelay")

	if err := w.setProperty("Temperature", "q", fmt.Sprintf("%d", temperature)); err != nil {
		return err
	}
	return w.setProperty("Brightness", "d", fmt.Sprintf("%.3f", brightness))
}

func (w *WlGammaRelay) setProperty(name, signature, value string) error {
	cmd := exec.Command(w.bin, "--user", "set-property",
		wlGammaRelayDest, wlGammaRelayPath, wlGammaRelayIntf,
		name, signature, value)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "busctl failed to set %s: %s", name, strings.TrimSpace(string(out)))
	}
	return nil
}

func peakChannel(g Vector) float64 {
	return math.Max(g[0], math.Max(g[1], g[2]))
}
