package display

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Xrandr drives X11 displays through the xrandr command.
type Xrandr struct {
	// bin is the command to invoke, overridable in tests.
	bin string
}

func NewXrandr() *Xrandr {
	return &Xrandr{bin: "xrandr"}
}

func (x *Xrandr) Name() string { return "xrandr" }

// Outputs parses `xrandr --listmonitors`. The first line is a count
// header; each remaining line ends with the output name after the last
// space.
func (x *Xrandr) Outputs() ([]string, error) {
	out, err := exec.Command(x.bin, "--listmonitors").Output()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monitors with xrandr")
	}
	return parseListMonitors(string(out)), nil
}

func parseListMonitors(out string) []string {
	var monitors []string
	lines := strings.Split(out, "\n")
	if len(lines) > 0 {
		lines = lines[1:]
	}
	for _, line := range lines {
		idx := strings.LastIndex(line, " ")
		if idx < 0 || idx == len(line)-1 {
			continue
		}
		monitors = append(monitors, line[idx+1:])
	}
	return monitors
}

// FormatGamma renders the vector in xrandr's r:g:b syntax.
func (x *Xrandr) FormatGamma(g Vector) string {
	return fmt.Sprintf("%.3f:%.3f:%.3f", g[0], g[1], g[2])
}

func (x *Xrandr) Apply(g Vector, outputs []string) error {
	if len(outputs) == 0 {
		var err error
		outputs, err = x.Outputs()
		if err != nil {
			return err
		}
	}
	if len(outputs) == 0 {
		return errors.New("no outputs to apply gamma to")
	}

	formatted := x.FormatGamma(g)
	args := make([]string, 0, len(outputs)*4)
	for _, output := range outputs {
		args = append(args, "--output", output, "--gamma", formatted)
	}

	logrus.WithFields(logrus.Fields{
		"gamma":   formatted,
		"outputs": outputs,
	}).Debug("applying gamma via xrandr")

	if out, err := exec.Command(x.bin, args...).CombinedOutput(); err != nil {
		return errors.Wrapf(err, "xrandr failed: %s", strings.TrimSpace(string(out)))
	}
	return nil
}
