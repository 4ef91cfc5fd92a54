// Package pyenv builds the shell preambles that activate named runtime
// environments before a program runs. Activation is always shell-mediated:
// the preamble runs the suite's activate script and chains into whatever
// tokens follow it.
package pyenv

import (
	"github.com/fathomsuite/quarterdeck/pkg/install"
)

// ChainMarker is the shell token meaning "run the next command after this
// one completes".
const ChainMarker = "&&"

// RuntimeCommand is the generic interpreter name used when a named
// environment is requested; the activation preamble selects the actual
// interpreter, so the bare name resolves inside the activated environment.
const RuntimeCommand = "python"

const shellCommand = "cmd.exe"

// ShellSwitch returns the cmd.exe switch for the requested console policy:
// /K keeps the console open after the program exits, /C closes it.
func ShellSwitch(keepOpen bool) string {
	if keepOpen {
		return "/K"
	}
	return "/C"
}

// ActivationPreamble returns the token sequence that activates env and
// chains into the following command. The activate script is converted to
// short form so the joined shortcut command line stays tokenizable.
func ActivationPreamble(layout *install.Layout, env string, keepOpen bool) []string {
	return []string{
		shellCommand,
		ShellSwitch(keepOpen),
		install.ShortPath(layout.ActivateScript()),
		env,
		ChainMarker,
	}
}
