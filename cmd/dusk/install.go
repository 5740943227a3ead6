package main

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dusklight/dusk/pkg/config"
	daemonutils "github.com/dusklight/dusk/pkg/utils/daemon"
)

var gInstallation = "Installation:"

func init() {
	commandGroups = append(commandGroups, gInstallation)
}

// NewInstallCommand .
func NewInstallCommand() *cobra.Command {
	allowNonRootAccess := false

	cmd := &cobra.Command{
		Use:     "install",
		Short:   "Install dusk as a systemd user service",
		GroupID: gInstallation,
		Long: `Install the dusk daemon as a systemd user service.

This makes dusk start with your graphical session and keep your screen
gamma in sync with the time of day. No root privileges are required;
the unit lives in your user's systemd directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.NewFile(configPath)
			if err != nil {
				return err
			}

			conf.SetAllowNonRootAccess(allowNonRootAccess)
			if allowNonRootAccess {
				logrus.Info("all users are allowed to access the dusk daemon.")
			}

			err = daemonutils.Install()
			if err != nil {
				return fmt.Errorf("failed to install daemon: %v", err)
			}

			err = conf.Save()
			if err != nil {
				return pkgerrors.Wrapf(err, "failed to save config")
			}

			logrus.Infof("installation succeeded")

			cmd.Println("systemd will start the current binary with your session, so please do not move or delete it. If you do, run `dusk install' again.")

			return nil
		},
	}

	cmd.Flags().BoolVar(&allowNonRootAccess, "allow-non-root-access", false, "Allow any user to access the dusk daemon.")

	return cmd
}

// NewUninstallCommand .
func NewUninstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall",
		Short:   "Uninstall the dusk systemd user service",
		GroupID: gInstallation,
		Long: `Stop the dusk daemon and remove its systemd user service.

The screen gamma is reset to neutral when the daemon stops.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			err := daemonutils.Uninstall()
			if err != nil {
				return fmt.Errorf("failed to uninstall daemon: %v", err)
			}

			logrus.Infof("uninstallation succeeded")

			return nil
		},
	}
}
