package menu

import "github.com/fathomsuite/quarterdeck/pkg/config"

type Bemenu struct {
	command string
	args    []string
}

func NewBemenu(fc config.FrontendCommand) *Bemenu {
	cmd := fc.Command
	if cmd == "" {
		cmd = "bemenu"
	}
	return &Bemenu{command: cmd, args: fc.Args}
}

func (b *Bemenu) Name() string { return "bemenu" }

func (b *Bemenu) IsAvailable() bool { return commandExists(b.command) }

func (b *Bemenu) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, b.args...)
	args = append(args, "-p", prompt)
	return runMenu(b.command, args, options)
}
