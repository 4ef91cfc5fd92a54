package menu

import "github.com/fathomsuite/quarterdeck/pkg/config"

type Dmenu struct {
	command string
	args    []string
}

func NewDmenu(fc config.FrontendCommand) *Dmenu {
	cmd := fc.Command
	if cmd == "" {
		cmd = "dmenu"
	}
	return &Dmenu{command: cmd, args: fc.Args}
}

func (d *Dmenu) Name() string { return "dmenu" }

func (d *Dmenu) IsAvailable() bool { return commandExists(d.command) }

func (d *Dmenu) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, d.args...)
	args = append(args, "-p", prompt)
	return runMenu(d.command, args, options)
}
