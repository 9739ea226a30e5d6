package main

import (
	"context"
	"fmt"

	"radialmenu/cmd/radialmenu/cli"
	"radialmenu/internal/chord"
	"radialmenu/internal/config"
	"radialmenu/internal/errors"
	"radialmenu/internal/input"
	"radialmenu/internal/tui"

	"github.com/spf13/cobra"
)

func newCaptureCmd(opts *options) *cobra.Command {
	var (
		single        bool
		twoPart       bool
		setActivation bool
	)

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture a key chord or mouse button",
		Long: `Listen to the keyboard and mouse system-wide and print the normalized
chord once every key is released. Esc cancels.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := chord.ChordMode
			if single {
				mode = chord.SingleKeyMode
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			hub := input.NewHub(input.NewTracker())
			go hub.Run(ctx, input.NewGlobalHook())

			run := func(ctx context.Context) (string, error) {
				if twoPart {
					return chord.CaptureTwoPart(ctx, hub)
				}
				return chord.Capture(ctx, hub, mode)
			}

			title := "Capture a key chord"
			if setActivation {
				title = "Capture the activation combo"
			}
			result, err := tui.Run(ctx, title, run, hub.Tracker().Held)
			switch {
			case errors.IsCaptureCancelled(err):
				cli.PrintWarning("Capture cancelled")
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			if !setActivation {
				return nil
			}
			return saveActivation(opts.path(), result)
		},
	}

	cmd.Flags().BoolVar(&single, "single", false, "finish on the first key pressed")
	cmd.Flags().BoolVar(&twoPart, "two-part", false, "capture two single keys in a row")
	cmd.Flags().BoolVar(&setActivation, "set-activation", false, "store the result as the activation combo")
	cmd.MarkFlagsMutuallyExclusive("single", "two-part")
	return cmd
}

func saveActivation(path, combo string) error {
	store, err := config.Open(path)
	if err != nil {
		return err
	}
	if _, err := store.Update(func(c *config.Config) {
		c.Activation.Combo = combo
	}); err != nil {
		return errors.Wrap(err, "cannot save activation combo")
	}
	cli.PrintSuccess(fmt.Sprintf("Activation combo set to %s in %s", combo, path))
	return nil
}
