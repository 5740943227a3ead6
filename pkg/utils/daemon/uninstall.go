package daemon

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func Uninstall() error {
	logrus.Infof("stopping dusk")

	if err := systemctl("disable", "--now", unitName); err != nil {
		logrus.WithError(err).Warnf("failed to disable %s, removing the unit anyway", unitName)
	}

	logrus.Infof("removing systemd user unit")

	path, err := unitPath()
	if err != nil {
		return err
	}

	// if the file doesn't exist, we don't need to remove it
	_, err = os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	err = os.Remove(path)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	if err := systemctl("daemon-reload"); err != nil {
		return fmt.Errorf("failed to reload systemd user units: %w", err)
	}

	return nil
}
