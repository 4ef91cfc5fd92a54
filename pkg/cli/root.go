// Package cli wires the quarterdeck commands together.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fathomsuite/quarterdeck/internal/logging"
	"github.com/fathomsuite/quarterdeck/pkg/catalog"
	"github.com/fathomsuite/quarterdeck/pkg/config"
	"github.com/fathomsuite/quarterdeck/pkg/install"
	"github.com/fathomsuite/quarterdeck/pkg/launch"
	"github.com/fathomsuite/quarterdeck/pkg/menu"
	"github.com/fathomsuite/quarterdeck/pkg/recent"
)

// app carries the resolved state every command works against. It is built
// once in the root PersistentPreRunE.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	layout  *install.Layout
	catalog *catalog.Catalog
	runner  *launch.Runner
	history *recent.Log
}

var (
	flagVerbose  bool
	flagRoot     string
	flagFrontend string

	current *app
)

func setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel, flagVerbose)

	root := flagRoot
	if root == "" {
		root = cfg.InstallRoot
	}
	layout, err := install.Discover(root)
	if err != nil {
		return err
	}

	var extra [][]byte
	if cfg.CatalogPath != "" {
		data, err := os.ReadFile(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("read catalog %s: %w", cfg.CatalogPath, err)
		}
		extra = append(extra, data)
	}
	cat, err := catalog.Load(log, extra...)
	if err != nil {
		return err
	}

	if err := menu.RegisterDefaults(cfg); err != nil {
		return err
	}

	current = &app{
		cfg:     cfg,
		log:     log,
		layout:  layout,
		catalog: cat,
		runner:  launch.NewRunner(layout, log),
		history: recent.Open(config.StatePath()),
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "quarterdeck",
		Short:   fmt.Sprintf("Program launcher for the %s suite", install.SuiteName),
		Version: install.SuiteVersion,
		Long: fmt.Sprintf(`quarterdeck launches, documents and organizes the programs
distributed with a %s installation. Without a subcommand it opens the
menu frontend.`, install.SuiteName),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(current, flagFrontend)
		},
	}

	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&flagRoot, "root", "", "installation root override")
	root.Flags().StringVarP(&flagFrontend, "frontend", "f", "", "menu frontend (fzf, rofi, dmenu, bemenu, fuzzel)")

	root.AddCommand(
		newVersionCmd(),
		newMenuCmd(),
		newBrowseCmd(),
		newRunCmd(),
		newShortcutCmd(),
		newDocsCmd(),
		newListCmd(),
		newRecentCmd(),
		newInitCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the suite version",
		Run: func(cmd *cobra.Command, args []string) {
			v := install.SuiteVersion
			if install.IsDev() {
				v += " " + install.VersionType
			}
			fmt.Printf("%s %s\n", install.SuiteName, v)
		},
	}
}

// Execute runs the CLI and maps a dismissed menu to a clean exit.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if menu.IsCancelled(err) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
