package menu

import "github.com/fathomsuite/quarterdeck/pkg/config"

type Fuzzel struct {
	command string
	args    []string
}

func NewFuzzel(fc config.FrontendCommand) *Fuzzel {
	cmd := fc.Command
	if cmd == "" {
		cmd = "fuzzel"
	}
	return &Fuzzel{command: cmd, args: fc.Args}
}

func (f *Fuzzel) Name() string { return "fuzzel" }

func (f *Fuzzel) IsAvailable() bool { return commandExists(f.command) }

func (f *Fuzzel) Show(options []string, prompt string) (string, error) {
	args := append([]string{}, f.args...)
	args = append(args, "--prompt", prompt+"> ")
	return runMenu(f.command, args, options)
}
