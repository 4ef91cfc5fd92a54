package cli

import (
	"github.com/spf13/cobra"

	"github.com/fathomsuite/quarterdeck/pkg/tui"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in an interactive terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := tui.New(current.catalog, current.layout, current.runner, current.history)
			return b.Run()
		},
	}
}
