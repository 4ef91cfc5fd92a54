package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fathomsuite/quarterdeck/pkg/catalog"
	"github.com/fathomsuite/quarterdeck/pkg/install"
	"github.com/fathomsuite/quarterdeck/pkg/menu"
)

const recentGroupName = "My Recent"

func newMenuCmd() *cobra.Command {
	var frontend string
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Pick and launch a program from a menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(current, frontend)
		},
	}
	cmd.Flags().StringVarP(&frontend, "frontend", "f", "", "menu frontend (fzf, rofi, dmenu, bemenu, fuzzel)")
	return cmd
}

func runMenu(a *app, frontendName string) error {
	f, err := menu.Pick(a.cfg, frontendName)
	if err != nil {
		return err
	}
	a.log.Debug().Str("frontend", f.Name()).Msg("menu frontend selected")

	if a.cfg.MenuStyle == "flat" {
		return flatMenu(a, f)
	}
	return groupedMenu(a, f)
}

// flatMenu lists every program directly, in catalog order.
func flatMenu(a *app, f menu.Frontend) error {
	options := a.catalog.Ordered()
	for {
		choice, err := f.Show(options, install.SuiteName)
		if err != nil {
			return err
		}
		e, ok := a.catalog.Get(choice)
		if !ok {
			continue
		}
		done, err := launchChoice(a, f, e)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// groupedMenu shows the group tree first. The launch history, when present,
// leads as a synthetic group of the user's most-run programs.
func groupedMenu(a *app, f menu.Frontend) error {
	groups := a.catalog.Groups()
	if len(groups) == 0 {
		return flatMenu(a, f)
	}

	for {
		byName := make(map[string]catalog.Group, len(groups)+1)
		var groupOptions []string
		if mostRun := a.history.MostRun(5); len(mostRun) > 0 {
			byName[recentGroupName] = catalog.Group{Name: recentGroupName, Programs: mostRun}
			groupOptions = append(groupOptions, recentGroupName)
		}
		for _, g := range groups {
			byName[g.Name] = g
			groupOptions = append(groupOptions, g.Name)
		}

		groupChoice, err := f.Show(groupOptions, install.SuiteName)
		if err != nil {
			return err
		}
		g, ok := byName[groupChoice]
		if !ok {
			continue
		}

		choice, err := f.Show(g.Programs, g.Name)
		if err != nil {
			if menu.IsCancelled(err) {
				continue // back to the group list
			}
			return err
		}
		e, ok := a.catalog.Get(choice)
		if !ok {
			continue
		}
		done, err := launchChoice(a, f, e)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// launchChoice runs the chosen entry. Every selection enters the history,
// informational entries included, so "My Recent" mirrors what the user
// actually picks. Informational entries show their description and return
// to the menu; a real launch closes it.
func launchChoice(a *app, f menu.Frontend, e catalog.Entry) (bool, error) {
	a.history.Append(e.Name)
	if err := a.history.Save(); err != nil {
		a.log.Warn().Err(err).Msg("could not save run history")
	}

	if !e.Run.Launchable() {
		_, err := f.Show(
			[]string{e.Description, fmt.Sprintf("docs: %s", a.layout.DocsPath(e.Docs))},
			e.Name,
		)
		if err != nil && !menu.IsCancelled(err) {
			return false, err
		}
		return false, nil
	}
	if err := a.runner.Run(e, false); err != nil {
		return false, err
	}
	return true, nil
}
