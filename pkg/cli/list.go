package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var grouped bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the cataloged programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !grouped {
				for _, name := range current.catalog.Names() {
					e, _ := current.catalog.Get(name)
					fmt.Printf("%-40s %s\n", e.Name, e.Description)
				}
				return nil
			}
			for _, g := range current.catalog.Groups() {
				fmt.Println(g.Name)
				for _, name := range g.Programs {
					e, _ := current.catalog.Get(name)
					fmt.Printf("  %-38s %s\n", e.Name, e.Description)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&grouped, "grouped", "g", false, "list programs by group")
	return cmd
}
