package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fathomsuite/quarterdeck/pkg/docs"
)

func newDocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Show or export program documentation",
	}
	cmd.AddCommand(newDocsShowCmd(), newDocsExportCmd())
	return cmd
}

func newDocsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <program>",
		Short: "Render a program's documentation in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := current.catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown program %q", args[0])
			}
			out, err := docs.Render(current.layout, e)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

func newDocsExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Regenerate the suite manual's program pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := out
			if dir == "" {
				dir = current.layout.DocsPath("source")
			}
			if err := docs.ExportRST(current.catalog, dir); err != nil {
				return err
			}
			current.log.Info().Str("dir", dir).Msg("program pages exported")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (defaults to the installation's docs source)")
	return cmd
}
