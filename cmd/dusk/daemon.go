package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dusklight/dusk/pkg/daemon"
	"github.com/dusklight/dusk/pkg/version"
)

var (
	// alwaysAllowNonRootAccess indicates whether to always allow other users to access the dusk daemon.
	alwaysAllowNonRootAccess = false
)

// NewDaemonCommand .
func NewDaemonCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "daemon",
		Short:   "Run dusk daemon in the foreground",
		GroupID: gAdvanced,
		Long: `Run the dusk daemon in the foreground.

The daemon re-evaluates the gamma on a fixed interval and applies it to
the display. Normally you would start it from your session manager
(e.g. a systemd user unit or your window manager's autostart).`,
		RunE: func(_ *cobra.Command, _ []string) error {
			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("dusk daemon starting")
			return daemon.Run(configPath, unixSocketPath, alwaysAllowNonRootAccess)
		},
	}

	f := cmd.Flags()

	f.BoolVar(&alwaysAllowNonRootAccess, "always-allow-non-root-access", false,
		"Always allow non-root users to access the daemon.")

	return cmd
}
