package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fathomsuite/quarterdeck/pkg/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config file for editing",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.InitUserConfig()
			if err != nil {
				return err
			}
			fmt.Printf("Config created: %s\n", path)
			return nil
		},
	}
}
