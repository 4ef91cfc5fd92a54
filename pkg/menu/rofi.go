package menu

import "github.com/fathomsuite/quarterdeck/pkg/config"

type Rofi struct {
	command string
	args    []string
}

func NewRofi(fc config.FrontendCommand) *Rofi {
	cmd := fc.Command
	if cmd == "" {
		cmd = "rofi"
	}
	return &Rofi{command: cmd, args: fc.Args}
}

func (r *Rofi) Name() string { return "rofi" }

func (r *Rofi) IsAvailable() bool { return commandExists(r.command) }

func (r *Rofi) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, r.args...)
	args = append(args, "-p", prompt)
	return runMenu(r.command, args, options)
}
