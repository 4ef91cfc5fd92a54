// Package shortcut persists a synthesized invocation as a platform shortcut.
// A shortcut carries a single joined argument string rather than a true
// argument vector, so assembly differs from a live launch in two ways: every
// chain marker is collapsed to the single-command form, and runtime launches
// get an update-check preamble the running application does not need.
package shortcut

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fathomsuite/quarterdeck/pkg/catalog"
	"github.com/fathomsuite/quarterdeck/pkg/install"
	"github.com/fathomsuite/quarterdeck/pkg/launch"
	"github.com/fathomsuite/quarterdeck/pkg/pyenv"
)

// ErrUnsupported is returned on platforms without shell shortcuts.
var ErrUnsupported = errors.New("shortcuts are not supported on this platform")

const linkExt = ".lnk"

// Placement is a logical shortcut location resolved to a concrete folder by
// the host shell.
type Placement string

const (
	Desktop          Placement = "Desktop"
	AllUsersDesktop  Placement = "AllUsersDesktop"
	Programs         Placement = "Programs"
	StartMenu        Placement = "StartMenu"
	AllUsersPrograms Placement = "AllUsersPrograms"
)

// ParsePlacement maps a user-supplied keyword to a placement.
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(s) {
	case "desktop":
		return Desktop, nil
	case "allusersdesktop", "all-users-desktop":
		return AllUsersDesktop, nil
	case "programs", "startmenu-programs":
		return Programs, nil
	case "startmenu", "start-menu":
		return StartMenu, nil
	case "allusersprograms", "all-users-programs":
		return AllUsersPrograms, nil
	default:
		return "", fmt.Errorf("unknown placement %q", s)
	}
}

// IsDesktop reports whether the placement is a desktop folder; desktop
// shortcuts sit directly on the desktop with no suite subfolder.
func (p Placement) IsDesktop() bool {
	return p == Desktop || p == AllUsersDesktop
}

// Writer creates shortcuts for catalog entries.
type Writer struct {
	Layout *install.Layout
}

// NewWriter returns a writer over the given installation.
func NewWriter(layout *install.Layout) *Writer {
	return &Writer{Layout: layout}
}

// Assemble splits an invocation into the shortcut's target, argument string
// and working directory. Runtime-interpreter launches get the update-check
// preamble so standalone shortcuts stay current; chain markers are collapsed
// from the vector form (&&) to the single-command-string form (&). Arguments
// containing spaces must have been pre-quoted by the caller: joining is by
// single spaces only.
func (w *Writer) Assemble(inv launch.Invocation, sel catalog.Selector) (target, argLine, workDir string, err error) {
	vec := inv.Vector()
	if len(vec) < 2 {
		return "", "", "", fmt.Errorf("invocation has no executable")
	}
	if sel.Kind == catalog.SelectorRuntime {
		vec = insertUpdateCheck(vec, w.Layout)
	}
	for i, tok := range vec {
		if strings.HasSuffix(tok, pyenv.ChainMarker) {
			vec[i] = tok[:len(tok)-1]
		}
	}
	return vec[1], strings.Join(vec[2:], " "), vec[0], nil
}

// insertUpdateCheck chains the suite's update script ahead of the command
// line: after the shell switch for shell-mediated vectors, otherwise ahead
// of the interpreter itself.
func insertUpdateCheck(vec []string, layout *install.Layout) []string {
	ind := 1
	if len(vec) > 2 && strings.EqualFold(vec[1], "cmd.exe") && isShellSwitch(vec[2]) {
		ind = 3
	}
	inserted := []string{install.ShortPath(layout.UpdateScript()), "&"}
	out := make([]string, 0, len(vec)+2)
	out = append(out, vec[:ind]...)
	out = append(out, inserted...)
	out = append(out, vec[ind:]...)
	return out
}

func isShellSwitch(tok string) bool {
	return len(tok) >= 2 && (tok[:2] == "/C" || tok[:2] == "/K")
}

// LinkPath builds the shortcut file path for a placement. Non-desktop
// placements nest the link inside the versioned suite folder; dev builds
// suffix both the folder and the link name.
func (w *Writer) LinkPath(place Placement, name string) (string, error) {
	folder, err := specialFolder(place)
	if err != nil {
		return "", err
	}
	suffix := install.VersionSuffix()
	file := name + suffix + linkExt
	if place.IsDesktop() {
		return filepath.Join(folder, file), nil
	}
	return filepath.Join(folder, install.StartMenuFolder+suffix, file), nil
}

// Write persists a shortcut reproducing the entry's launch semantics.
func (w *Writer) Write(e catalog.Entry, inv launch.Invocation, place Placement) error {
	path, err := w.LinkPath(place, e.Name)
	if err != nil {
		return fmt.Errorf("resolve %s folder: %w", place, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create shortcut folder: %w", err)
	}

	target, argLine, workDir, err := w.Assemble(inv, e.Run.Exec)
	if err != nil {
		return fmt.Errorf("assemble shortcut for %s: %w", e.Name, err)
	}

	icon := e.DesktopIcon
	if icon == "" {
		icon = install.SuiteIcon
	}
	iconPath := w.Layout.ResourcePath(icon)

	if err := writeLink(path, target, argLine, workDir, iconPath); err != nil {
		return fmt.Errorf("write shortcut %s: %w", path, err)
	}
	return nil
}
