package main

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/dusklight/dusk/pkg/client"
	"github.com/dusklight/dusk/pkg/config"
	"github.com/dusklight/dusk/pkg/gamma"
	"github.com/dusklight/dusk/pkg/types"
)

type statusData struct {
	gamma   *types.GammaStatus
	outputs []string
	config  *config.RawFileConfig
}

// fetchStatusData gathers all data required for the status command from the daemon.
func fetchStatusData(c *client.Client) (*statusData, error) {
	g, err := c.GetGamma()
	if err != nil {
		return nil, fmt.Errorf("failed to get current gamma: %w", err)
	}

	outputs, err := c.GetOutputs()
	if err != nil {
		return nil, fmt.Errorf("failed to list outputs: %w", err)
	}

	conf, err := c.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	return &statusData{
		gamma:   g,
		outputs: outputs,
		config:  conf,
	}, nil
}

// tintSwatch renders the gamma vector as the hex color a full-white
// pixel would show under it.
func tintSwatch(red, green, blue float64) string {
	return colorful.Color{R: red, G: green, B: blue}.Clamped().Hex()
}

func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		GroupID: gBasic,
		Short:   "Get the current status of dusk",
		Long:    `Get the current phase, applied gamma, and configuration.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Get various info first.
			data, err := fetchStatusData(apiClient())
			if err != nil {
				return err
			}

			conf := config.NewFileFromConfig(data.config, "")

			// Current gamma.
			cmd.Println(bold("Current gamma:"))

			phase := data.gamma.Phase
			if phase == gamma.Dusk.String() {
				phase = fmt.Sprintf("%s (%.0f%% towards night)", phase, data.gamma.Progress*100)
			}
			cmd.Printf("  Phase: %s\n", bold("%s", phase))
			cmd.Printf("  Time of day: %s\n", bold("%s", gamma.FormatClock(data.gamma.Time)))
			cmd.Printf("  Red: %s  Green: %s  Blue: %s\n",
				bold("%.3f", data.gamma.Red),
				bold("%.3f", data.gamma.Green),
				bold("%.3f", data.gamma.Blue))
			cmd.Printf("  Screen tint: %s\n", bold("%s", tintSwatch(data.gamma.Red, data.gamma.Green, data.gamma.Blue)))
			cmd.Printf("  Backend: %s (%s)\n", bold("%s", data.gamma.Backend), data.gamma.Formatted)
			cmd.Println("  Solar schedule active: " + bool2Text(data.gamma.SolarActive))

			cmd.Println()

			// Outputs.
			cmd.Println(bold("Outputs:"))
			controlled := conf.Outputs()
			for _, o := range data.outputs {
				if len(controlled) == 0 {
					cmd.Printf("  %s %s\n", bool2Text(true), o)
					continue
				}
				found := false
				for _, c := range controlled {
					if c == o {
						found = true
						break
					}
				}
				cmd.Printf("  %s %s\n", bool2Text(found), o)
			}

			cmd.Println()

			// Config.
			cmd.Println(bold("Configuration:"))
			cmd.Printf("  Schedule: day %s, dusk %s, night %s\n",
				bold("%s", conf.DayStart()),
				bold("%s", conf.DuskStart()),
				bold("%s", conf.NightStart()))
			for i, name := range gamma.ChannelNames {
				min, max := conf.ChannelBounds(i)
				cmd.Printf("  Channel %s: night %s, day %s\n", name, bold("%.2f", min), bold("%.2f", max))
			}
			cmd.Printf("  Apply interval: %s\n", bold("%s", conf.Interval()))
			cmd.Println("  Solar schedule: " + bool2Text(conf.SolarEnabled()))
			if conf.SolarEnabled() {
				lat, lon := conf.Location()
				cmd.Printf("  Location: %s\n", bold("%.4f, %.4f", lat, lon))
			}
			cmd.Println("  Allow non-root users to access the daemon: " + bool2Text(conf.AllowNonRootAccess()))
			return nil
		},
	}
}
