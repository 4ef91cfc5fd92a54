package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/fathomsuite/quarterdeck/pkg/catalog"
	"github.com/fathomsuite/quarterdeck/pkg/install"
)

// ErrNotLaunchable marks entries that carry documentation only. Launching
// one is a no-op; operations that need a real process (shortcuts) fail with
// this sentinel.
var ErrNotLaunchable = errors.New("nothing to run")

// Invoker starts synthesized invocations as detached child processes. It is
// fire-and-forget: once Start returns the child's fate is its own.
type Invoker struct {
	Layout *install.Layout
}

// NewInvoker returns an invoker over the given installation.
func NewInvoker(layout *install.Layout) *Invoker {
	return &Invoker{Layout: layout}
}

// Invoke changes the working directory to the invocation's start directory,
// starts the child (in its own console window when newConsole is set) and
// restores the launcher's working directory to the installation root
// whether or not the spawn succeeded.
func (v *Invoker) Invoke(inv Invocation, newConsole bool) error {
	defer os.Chdir(v.Layout.Root)

	argv := inv.Argv()
	if len(argv) == 0 {
		return fmt.Errorf("empty argument vector")
	}
	if err := os.Chdir(inv.WorkDir()); err != nil {
		return fmt.Errorf("enter start directory %s: %w", inv.WorkDir(), err)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	configureConsole(cmd, newConsole)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", argv[0], err)
	}
	return nil
}

// Runner is the launch operation: descriptor in, child process out. It owns
// the non-launchable no-op rule and the debug console override.
type Runner struct {
	Synth   *Synthesizer
	Invoker *Invoker
	Log     zerolog.Logger
}

// NewRunner wires a runner over one installation.
func NewRunner(layout *install.Layout, log zerolog.Logger) *Runner {
	return &Runner{
		Synth:   NewSynthesizer(layout),
		Invoker: NewInvoker(layout),
		Log:     log,
	}
}

// Run launches the entry's program. Entries with nothing to run are an
// informational no-op, not an error. With debug set the program gets a
// dedicated console that stays open after it exits.
func (r *Runner) Run(e catalog.Entry, debug bool) error {
	d := e.Run
	if debug {
		d = d.Debug()
	}
	if !d.Launchable() {
		r.Log.Info().Str("program", e.Name).Msg("nothing to run")
		return nil
	}

	inv := r.Synth.Synthesize(d)
	r.Log.Info().Str("program", e.Name).Msg("launching")
	r.Log.Debug().Str("dir", inv.WorkDir()).Strs("argv", inv.Argv()).Msg("spawn")

	if err := r.Invoker.Invoke(inv, d.NewConsole); err != nil {
		return fmt.Errorf("launch %s: %w", e.Name, err)
	}
	return nil
}
