// Package daemon installs the dusk daemon as a systemd user service so
// it starts with the graphical session.
package daemon

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const unitName = "dusk.service"

// The daemon needs the session's DISPLAY/WAYLAND_DISPLAY, so it is tied
// to graphical-session.target rather than default.target.
const unitTemplate = `[Unit]
Description=dusk circadian gamma daemon
PartOf=graphical-session.target
After=graphical-session.target

[Service]
ExecStart=/path/to/dusk daemon
Restart=on-failure

[Install]
WantedBy=graphical-session.target
`

func unitPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "systemd", "user", unitName), nil
}

func systemctl(args ...string) error {
	return exec.Command("systemctl", append([]string{"--user"}, args...)...).Run()
}

func Install() error {
	// Get the path to the current executable
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get the path to the current executable: %w", err)
	}
	exePath, err = filepath.Abs(exePath)
	if err != nil {
		return fmt.Errorf("failed to get the absolute path to the current executable: %w", err)
	}

	logrus.Infof("current executable path: %s", exePath)

	unit := strings.ReplaceAll(unitTemplate, "/path/to/dusk", exePath)

	path, err := unitPath()
	if err != nil {
		return err
	}

	logrus.Infof("writing systemd user unit to %s", path)

	// mkdir -p
	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	// warn if the file already exists
	_, err = os.Stat(path)
	if err == nil {
		logrus.Warnf("%s already exists, overwriting", path)
	}

	err = os.WriteFile(path, []byte(unit), 0644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := systemctl("daemon-reload"); err != nil {
		return fmt.Errorf("failed to reload systemd user units: %w", err)
	}

	logrus.Infof("starting dusk")

	if err := systemctl("enable", "--now", unitName); err != nil {
		return fmt.Errorf("failed to enable %s: %w", unitName, err)
	}

	return nil
}
