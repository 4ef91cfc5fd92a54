package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var debug bool
	cmd := &cobra.Command{
		Use:   "run <program>",
		Short: "Launch a cataloged program by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := current.catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown program %q", args[0])
			}
			if err := current.runner.Run(e, debug); err != nil {
				return err
			}
			current.history.Append(e.Name)
			if err := current.history.Save(); err != nil {
				current.log.Warn().Err(err).Msg("could not save run history")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "keep a console open to see the program's output")
	return cmd
}
