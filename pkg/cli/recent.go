package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecentCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the launch history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if current.history.Len() == 0 {
				fmt.Println("no launches recorded yet")
				return nil
			}
			for _, name := range current.history.MostRun(top) {
				fmt.Println(name)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 5, "number of programs to show")
	return cmd
}
