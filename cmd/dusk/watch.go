package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dusklight/dusk/pkg/events"
	"github.com/dusklight/dusk/pkg/gamma"
)

func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   "Stream gamma and config changes from the daemon",
		GroupID: gAdvanced,
		Long: `Stream events from the daemon as they happen.

Prints a line whenever the daemon applies a new gamma or the
configuration changes. Press Ctrl-C to stop.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return apiClient().Watch(ctx, func(e events.Event) {
				switch e.Name {
				case events.GammaApplied:
					applied, err := events.DecodeAs[events.GammaAppliedEvent](e)
					if err != nil {
						logrus.WithError(err).Warn("failed to decode event")
						return
					}
					phase := applied.Phase
					if phase == gamma.Dusk.String() {
						phase = bold("%s %.0f%%", phase, applied.Progress*100)
					}
					cmd.Printf("%s gamma applied: red=%.3f green=%.3f blue=%.3f phase=%s\n",
						time.Unix(applied.Ts, 0).Format("15:04:05"), applied.Red, applied.Green, applied.Blue, phase)
				case events.ConfigChanged:
					changed, err := events.DecodeAs[events.ConfigChangedEvent](e)
					if err != nil {
						logrus.WithError(err).Warn("failed to decode event")
						return
					}
					cmd.Printf("config changed: %s\n", changed.Field)
				default:
					cmd.Printf("%s: %s\n", e.Name, string(e.Data))
				}
			})
		},
	}
}
