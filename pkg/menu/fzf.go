package menu

import "github.com/fathomsuite/quarterdeck/pkg/config"

type Fzf struct {
	command string
	args    []string
}

func NewFzf(fc config.FrontendCommand) *Fzf {
	cmd := fc.Command
	if cmd == "" {
		cmd = "fzf"
	}
	return &Fzf{command: cmd, args: fc.Args}
}

func (f *Fzf) Name() string { return "fzf" }

func (f *Fzf) IsAvailable() bool { return commandExists(f.command) }

func (f *Fzf) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, f.args...)
	args = append(args, "--prompt", prompt+"> ")
	return runMenu(f.command, args, options)
}
