// Package menu abstracts over external menu programs. It supports fzf,
// rofi, dmenu, bemenu and fuzzel behind one interface; frontends are picked
// by name or by availability, and a dismissed menu is reported as a
// cancellation rather than an error.
package menu

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/fathomsuite/quarterdeck/pkg/config"
)

// ErrCancelled is returned when the user dismisses the menu.
var ErrCancelled = errors.New("selection cancelled")

// IsCancelled reports whether err is a menu dismissal.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// Frontend is one menu program.
type Frontend interface {
	Name() string
	IsAvailable() bool
	Show(options []string, prompt string) (string, error)
}

var registry = make(map[string]Frontend)

// priority orders auto-detection; terminal frontends come after the
// graphical ones so a desktop session prefers its native menu.
var priority = []string{"rofi", "dmenu", "bemenu", "fuzzel", "fzf"}

// Register adds a frontend to the registry, replacing any previous frontend
// of the same name.
func Register(f Frontend) {
	registry[f.Name()] = f
}

// ByName returns a registered frontend.
func ByName(name string) (Frontend, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown frontend %q", name)
	}
	return f, nil
}

// FirstAvailable returns the first installed frontend in priority order.
func FirstAvailable() (Frontend, error) {
	for _, name := range priority {
		if f, ok := registry[name]; ok && f.IsAvailable() {
			return f, nil
		}
	}
	return nil, errors.New("no menu frontend available - install rofi, dmenu, bemenu, fuzzel or fzf")
}

// RegisterDefaults builds and registers the standard frontends with their
// configured options.
func RegisterDefaults(cfg *config.Config) error {
	for _, name := range priority {
		fc, err := cfg.FrontendOptions(name)
		if err != nil {
			return err
		}
		switch name {
		case "fzf":
			Register(NewFzf(fc))
		case "rofi":
			Register(NewRofi(fc))
		case "dmenu":
			Register(NewDmenu(fc))
		case "bemenu":
			Register(NewBemenu(fc))
		case "fuzzel":
			Register(NewFuzzel(fc))
		}
	}
	return nil
}

// Pick resolves a frontend by explicit name, configured default, or
// availability, in that order.
func Pick(cfg *config.Config, name string) (Frontend, error) {
	if name != "" {
		return ByName(name)
	}
	if cfg.DefaultFrontend != "" {
		return ByName(cfg.DefaultFrontend)
	}
	return FirstAvailable()
}

func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
