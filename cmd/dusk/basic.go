package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dusklight/dusk/pkg/gamma"
	"github.com/dusklight/dusk/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}

func NewScheduleCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "schedule [day-start] [dusk-start] [night-start]",
		Short:   "Set the daily phase schedule",
		GroupID: gBasic,
		Long: `Set the daily phase schedule.

Takes three clock times in HH:MM format: when day starts, when dusk
starts, and when night starts. The three phases follow each other in
that order around the clock, so any of them may cross midnight. For
example:

  dusk schedule 05:00 17:00 21:00

Day gamma is held from day-start to dusk-start, fades during dusk, and
night gamma is held from night-start until the next day-start.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			// Parse locally first for a friendlier error than the
			// daemon's HTTP 400.
			for _, arg := range args {
				if _, err := gamma.ParseClock(arg); err != nil {
					return err
				}
			}

			ret, err := apiClient().SetSchedule(args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("failed to set schedule: %v", err)
			}

			if ret != "" {
				logrus.Infof("daemon responded: %s", ret)
			}

			logrus.Infof("successfully set schedule: day %s, dusk %s, night %s", args[0], args[1], args[2])

			return nil
		},
	}
}

func NewChannelCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "channel [red|green|blue] [min] [max]",
		Short:   "Set one color channel's night and day gamma",
		GroupID: gBasic,
		Long: `Set one color channel's night and day gamma.

min is the gamma used at night, max the gamma used during the day; dusk
fades between them. Both are in [0, 1] and min must not exceed max. For
a warm screen at night, lower blue and green while keeping red at 1:

  dusk channel blue 0.6 1
  dusk channel green 0.8 1`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			channel := strings.ToLower(args[0])
			if !slices.Contains(gamma.ChannelNames[:], channel) {
				return fmt.Errorf("unknown channel %q, expected red, green or blue", args[0])
			}

			min, err := parseFloatArg(args[1], "min")
			if err != nil {
				return err
			}
			max, err := parseFloatArg(args[2], "max")
			if err != nil {
				return err
			}

			ret, err := apiClient().SetChannelBounds(channel, min, max)
			if err != nil {
				return fmt.Errorf("failed to set %s channel: %v", channel, err)
			}

			if ret != "" {
				logrus.Infof("daemon responded: %s", ret)
			}

			logrus.Infof("successfully set %s channel to [%g, %g]", channel, min, max)

			return nil
		},
	}
}

func NewIntervalCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "interval [seconds]",
		Short:   "Set how often the daemon re-applies gamma",
		GroupID: gAdvanced,
		Long: `Set how often the daemon re-evaluates and applies gamma, in seconds.

The default of 60 keeps dusk fades smooth without noticeable load.
Accepted range is 1 to 3600.`,
		RunE: func(_ *cobra.Command, args []string) error {
			seconds, err := parseIntArg(args, "interval")
			if err != nil {
				return err
			}

			ret, err := apiClient().SetInterval(seconds)
			if err != nil {
				return fmt.Errorf("failed to set interval: %v", err)
			}

			if ret != "" {
				logrus.Infof("daemon responded: %s", ret)
			}

			logrus.Infof("successfully set apply interval to %ds", seconds)

			return nil
		},
	}
}

func NewOutputsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "outputs [output]...",
		Short:   "Choose which outputs the daemon controls",
		GroupID: gAdvanced,
		Long: `Choose which outputs the daemon controls.

With no arguments, lists the outputs the display backend currently
sees. With arguments, restricts gamma control to the named outputs.
Use --all to go back to controlling every connected output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := cmd.Flags().GetBool("all")
			if err != nil {
				return err
			}

			if all {
				args = nil
			} else if len(args) == 0 {
				outputs, err := apiClient().GetOutputs()
				if err != nil {
					return fmt.Errorf("failed to list outputs: %v", err)
				}
				for _, o := range outputs {
					cmd.Println(o)
				}
				return nil
			}

			ret, err := apiClient().SetOutputs(args)
			if err != nil {
				return fmt.Errorf("failed to set outputs: %v", err)
			}

			if ret != "" {
				logrus.Infof("daemon responded: %s", ret)
			}

			if len(args) == 0 {
				logrus.Info("successfully set dusk to control all outputs")
			} else {
				logrus.Infof("successfully set controlled outputs to %s", strings.Join(args, ", "))
			}

			return nil
		},
	}

	cmd.Flags().Bool("all", false, "control every connected output")

	return cmd
}
