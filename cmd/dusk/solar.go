package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dusklight/dusk/pkg/config"
)

func NewSolarCommand() *cobra.Command {
	var (
		lat float64
		lon float64
	)

	cmd := &cobra.Command{
		Use:     "solar",
		Short:   "Derive the schedule from the sun instead of fixed times",
		GroupID: gAdvanced,
		Long: `Derive the schedule from the sun instead of fixed clock times.

When enabled, the daemon computes sunrise, sunset and nightfall for
your location each day and uses them as the day, dusk and night phase
boundaries. On days where the sun never rises or never sets, the fixed
schedule from the config file is used instead.`,
	}

	enable := &cobra.Command{
		Use:   "enable",
		Short: "Enable the solar schedule",
		RunE: func(_ *cobra.Command, _ []string) error {
			ret, err := apiClient().SetSolar(true, lat, lon)
			if err != nil {
				return fmt.Errorf("failed to enable solar schedule: %v", err)
			}

			if ret != "" {
				logrus.Infof("daemon responded: %s", ret)
			}

			logrus.Infof("successfully enabled solar schedule for %.4f, %.4f", lat, lon)

			return nil
		},
	}
	enable.Flags().Float64Var(&lat, "lat", 0, "latitude in degrees, south negative")
	enable.Flags().Float64Var(&lon, "lon", 0, "longitude in degrees, west negative")
	_ = enable.MarkFlagRequired("lat")
	_ = enable.MarkFlagRequired("lon")

	disable := &cobra.Command{
		Use:   "disable",
		Short: "Disable the solar schedule",
		RunE: func(_ *cobra.Command, _ []string) error {
			// Keep the stored location so a later enable does not need
			// the coordinates again.
			c := apiClient()
			raw, err := c.GetConfig()
			if err != nil {
				return fmt.Errorf("failed to get config: %v", err)
			}
			curLat, curLon := config.NewFileFromConfig(raw, "").Location()

			ret, err := c.SetSolar(false, curLat, curLon)
			if err != nil {
				return fmt.Errorf("failed to disable solar schedule: %v", err)
			}

			if ret != "" {
				logrus.Infof("daemon responded: %s", ret)
			}

			logrus.Info("successfully disabled solar schedule")

			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the solar schedule state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := apiClient()

			raw, err := c.GetConfig()
			if err != nil {
				return fmt.Errorf("failed to get config: %v", err)
			}
			conf := config.NewFileFromConfig(raw, "")

			g, err := c.GetGamma()
			if err != nil {
				return fmt.Errorf("failed to get current gamma: %v", err)
			}

			cmd.Println("Solar schedule enabled: " + bool2Text(conf.SolarEnabled()))
			if conf.SolarEnabled() {
				curLat, curLon := conf.Location()
				cmd.Printf("Location: %s\n", bold("%.4f, %.4f", curLat, curLon))
				cmd.Println("Active today: " + bool2Text(g.SolarActive))
				if !g.SolarActive {
					cmd.Println("  (sun never rises or never sets today, using the fixed schedule)")
				}
			}

			return nil
		},
	}

	cmd.AddCommand(enable, disable, status)

	return cmd
}
