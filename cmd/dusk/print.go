package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dusklight/dusk/pkg/config"
	"github.com/dusklight/dusk/pkg/display"
	"github.com/dusklight/dusk/pkg/gamma"
)

// localEngine builds an engine straight from the config file, without
// talking to the daemon.
func localEngine() (gamma.Engine, error) {
	conf, err := config.NewFile(configPath)
	if err != nil {
		return gamma.Engine{}, err
	}
	return config.Engine(conf)
}

// resolveTime turns an optional HH:MM override into a cycle fraction,
// defaulting to the current wall clock.
func resolveTime(clock string) (float64, error) {
	if clock == "" {
		return gamma.TimeOfDay(time.Now()), nil
	}
	return gamma.ParseClock(clock)
}

func NewPrintCommand() *cobra.Command {
	var clock string

	cmd := &cobra.Command{
		Use:     "print",
		Short:   "Print the gamma for the current (or a given) time",
		GroupID: gBasic,
		Long: `Print the gamma for the current time without talking to the daemon.

The schedule and channel bounds are read from the config file. Use
--time to evaluate a different clock time, e.g. to preview what your
screen will look like at 22:30:

  dusk print --time 22:30`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := localEngine()
			if err != nil {
				return err
			}

			now, err := resolveTime(clock)
			if err != nil {
				return err
			}

			phase := engine.Schedule().Phase(now)
			vec := engine.Evaluate(now)

			cmd.Printf("phase=%s", phase.Kind)
			if phase.Kind == gamma.Dusk {
				cmd.Printf(" progress=%.3f", phase.Progress)
			}
			cmd.Println()
			cmd.Printf("red=%.3f green=%.3f blue=%.3f\n", vec.Red(), vec.Green(), vec.Blue())

			// Show the backend's native syntax too, when a display is
			// around to ask.
			if backend, err := display.Detect(); err == nil {
				cmd.Printf("%s: %s\n", backend.Name(), backend.FormatGamma(display.Vector(vec)))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&clock, "time", "t", "", "evaluate at this HH:MM instead of now")

	return cmd
}

func NewApplyCommand() *cobra.Command {
	var (
		clock   string
		outputs []string
	)

	cmd := &cobra.Command{
		Use:     "apply",
		Short:   "Apply the gamma for the current (or a given) time once",
		GroupID: gBasic,
		Long: `Compute the gamma for the current time and apply it to the display
once, without a daemon. Useful from cron jobs or scripts.

Use --time to apply the gamma of a different clock time, and --output
to restrict the change to specific outputs.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := localEngine()
			if err != nil {
				return err
			}

			now, err := resolveTime(clock)
			if err != nil {
				return err
			}

			backend, err := display.Detect()
			if err != nil {
				return err
			}

			vec := engine.Evaluate(now)
			if err := backend.Apply(display.Vector(vec), outputs); err != nil {
				return fmt.Errorf("failed to apply gamma: %w", err)
			}

			cmd.Printf("applied %s via %s\n", backend.FormatGamma(display.Vector(vec)), backend.Name())

			return nil
		},
	}

	cmd.Flags().StringVarP(&clock, "time", "t", "", "apply the gamma of this HH:MM instead of now")
	cmd.Flags().StringArrayVarP(&outputs, "output", "o", nil, "apply only to these outputs (repeatable)")

	return cmd
}
