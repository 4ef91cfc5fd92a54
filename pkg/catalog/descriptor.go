// Package catalog holds the program catalog: launch descriptors plus the
// presentation metadata shown in menus and documentation.
package catalog

// SelectorKind picks the executable-resolution strategy for a descriptor.
type SelectorKind int

const (
	// SelectorPath runs a literal executable path or name; an empty path
	// means no executable is prepended (the arguments already carry one).
	SelectorPath SelectorKind = iota
	// SelectorRuntime runs the suite runtime. Shortcuts made for these
	// entries get the auto-update-check preamble.
	SelectorRuntime
	// SelectorRawRuntime runs the suite runtime without the shortcut
	// update preamble (used by the update toggle itself).
	SelectorRawRuntime
)

// Selector is a tagged executable choice.
type Selector struct {
	Kind SelectorKind
	Path string
}

// RuntimeSelector selects the suite runtime.
func RuntimeSelector() Selector { return Selector{Kind: SelectorRuntime} }

// RawRuntimeSelector selects the suite runtime without update chaining.
func RawRuntimeSelector() Selector { return Selector{Kind: SelectorRawRuntime} }

// PathSelector selects a literal executable path or bare command name.
func PathSelector(p string) Selector { return Selector{Kind: SelectorPath, Path: p} }

// IsRuntime reports whether the selector resolves through the suite runtime
// rather than a literal path.
func (s Selector) IsRuntime() bool {
	return s.Kind == SelectorRuntime || s.Kind == SelectorRawRuntime
}

// Descriptor is the declarative record of how to launch one catalog entry.
type Descriptor struct {
	// Args are positional tokens passed to the resolved executable.
	Args []string
	// Exec selects the executable.
	Exec Selector
	// Env names a runtime environment to activate before execution.
	Env string
	// Dir is the start directory, relative to the installation's
	// site-package root; empty means the root itself.
	Dir string
	// NewConsole spawns the program in its own console window.
	NewConsole bool
	// KeepConsole keeps that console open after the program exits. Only
	// meaningful for shell-mediated launches; otherwise ignored.
	KeepConsole bool
}

// Launchable reports whether there is anything to run. Entries that exist
// purely to carry documentation (no arguments, no executable, no
// environment, no start directory) are informational and must not spawn a
// process. A start directory alone is enough: a dir-only runtime descriptor
// launches a bare interpreter in that directory.
func (d Descriptor) Launchable() bool {
	if len(d.Args) > 0 || d.Env != "" || d.Dir != "" {
		return true
	}
	return d.Exec.Kind == SelectorPath && d.Exec.Path != ""
}

// Copy returns a descriptor with its own argument slice.
func (d Descriptor) Copy() Descriptor {
	out := d
	out.Args = append([]string(nil), d.Args...)
	return out
}

// Debug returns a copy forced into a persistent dedicated console, so a
// program whose console vanishes on exit can be inspected.
func (d Descriptor) Debug() Descriptor {
	out := d.Copy()
	out.NewConsole = true
	out.KeepConsole = true
	return out
}
