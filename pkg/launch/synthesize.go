package launch

import (
	"strings"

	"github.com/fathomsuite/quarterdeck/pkg/catalog"
	"github.com/fathomsuite/quarterdeck/pkg/install"
	"github.com/fathomsuite/quarterdeck/pkg/pyenv"
)

// Synthesizer assembles launch vectors from descriptors. Given a fixed
// layout it is pure: the same descriptor always yields the same vector.
type Synthesizer struct {
	Layout *install.Layout
}

// NewSynthesizer returns a synthesizer over the given installation.
func NewSynthesizer(layout *install.Layout) *Synthesizer {
	return &Synthesizer{Layout: layout}
}

// Synthesize builds the invocation for d.
//
// Paths are converted to their short form so the vector works both as a
// direct argv and as a joined shortcut command line. When a named
// environment is requested the executable resolves to the generic runtime
// name: interpreter selection is deferred to the activation preamble.
func (s *Synthesizer) Synthesize(d catalog.Descriptor) Invocation {
	exe := s.resolveExecutable(d)

	args := append([]string(nil), d.Args...)
	if exe != "" {
		args = append([]string{install.ShortPath(exe)}, args...)
	}
	if d.Env != "" {
		args = append(pyenv.ActivationPreamble(s.Layout, d.Env, d.KeepConsole), args...)
	}
	args = trimTrailingChain(args)

	dir := install.ShortPath(s.Layout.SitePackagePath(d.Dir))
	dir = trimTrailingSeparator(dir)

	return Invocation{vec: append([]string{dir}, args...)}
}

func (s *Synthesizer) resolveExecutable(d catalog.Descriptor) string {
	if !d.Exec.IsRuntime() {
		return d.Exec.Path
	}
	if d.Env != "" {
		// The preamble activates the environment; the bare runtime name
		// then resolves inside it.
		return pyenv.RuntimeCommand
	}
	return s.Layout.CurrentRuntime()
}

// trimTrailingChain strips a dangling chain marker from the last token only;
// if stripping leaves the token empty it is dropped. Chained commands
// earlier in the vector are deliberately left alone.
func trimTrailingChain(args []string) []string {
	n := len(args)
	if n == 0 {
		return args
	}
	if strings.HasSuffix(args[n-1], pyenv.ChainMarker) {
		args[n-1] = strings.TrimSuffix(args[n-1], pyenv.ChainMarker)
	}
	if args[n-1] == "" {
		args = args[:n-1]
	}
	return args
}

func trimTrailingSeparator(dir string) string {
	if len(dir) > 1 {
		switch dir[len(dir)-1] {
		case '\\', '/':
			return dir[:len(dir)-1]
		}
	}
	return dir
}
