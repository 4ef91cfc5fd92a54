package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fathomsuite/quarterdeck/pkg/launch"
	"github.com/fathomsuite/quarterdeck/pkg/shortcut"
)

func newShortcutCmd() *cobra.Command {
	var place string
	cmd := &cobra.Command{
		Use:   "shortcut <program>",
		Short: "Create a desktop or start-menu shortcut for a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := current.catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown program %q", args[0])
			}
			if !e.Run.Launchable() {
				return fmt.Errorf("%s: %w", e.Name, launch.ErrNotLaunchable)
			}
			placement, err := shortcut.ParsePlacement(place)
			if err != nil {
				return err
			}
			inv := current.runner.Synth.Synthesize(e.Run)
			w := shortcut.NewWriter(current.layout)
			if err := w.Write(e, inv, placement); err != nil {
				return err
			}
			current.log.Info().Str("program", e.Name).Str("placement", place).Msg("shortcut created")
			return nil
		},
	}
	cmd.Flags().StringVar(&place, "place", "desktop",
		"shortcut location: desktop, all-users-desktop, programs, start-menu, all-users-programs")
	return cmd
}
