// Package install resolves paths inside a Fathom installation.
// All catalog start directories and script locations are relative to the
// installation root; the hosting Python runtime is derived from the
// library path of the environment this launcher was installed with.
package install

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Suite identity. VersionType is non-empty on development builds and is
// appended to shortcut names so dev and release links can coexist.
const (
	SuiteName       = "Fathom"
	SuiteVersion    = "24.2"
	VersionType     = ""
	StartMenuFolder = "Fathom_24"
	SuiteIcon       = "Fathom.ico"
)

// RootEnvVar overrides installation-root discovery when set.
const RootEnvVar = "FATHOM_ROOT"

// Layout describes one Fathom installation on disk.
type Layout struct {
	// Root is the installation root.
	Root string
	// SitePackages holds the suite's distributed scripts and tools.
	SitePackages string
	// LibDir is the library directory of the runtime hosting this
	// launcher, e.g. <root>/envs/base/Lib/site-packages.
	LibDir string
}

// NewLayout builds a layout rooted at root with the default directory shape.
func NewLayout(root string) *Layout {
	return &Layout{
		Root:         root,
		SitePackages: filepath.Join(root, "site-packages"),
		LibDir:       filepath.Join(root, "envs", "base", "Lib", "site-packages"),
	}
}

// Discover locates the installation root. An explicit override wins, then
// the FATHOM_ROOT environment variable, then the directory containing the
// running executable.
func Discover(override string) (*Layout, error) {
	if override != "" {
		return NewLayout(override), nil
	}
	if root := os.Getenv(RootEnvVar); root != "" {
		return NewLayout(root), nil
	}
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate installation root: %w", err)
	}
	return NewLayout(filepath.Dir(exe)), nil
}

// SitePackagePath resolves a path fragment relative to the suite's
// site-package root. Catalog entries use either separator; both resolve.
func (l *Layout) SitePackagePath(parts ...string) string {
	p := l.SitePackages
	for _, part := range parts {
		p = filepath.Join(p, filepath.FromSlash(strings.ReplaceAll(part, "\\", "/")))
	}
	return p
}

// RootPath resolves a path fragment relative to the installation root.
func (l *Layout) RootPath(parts ...string) string {
	return filepath.Join(append([]string{l.Root}, parts...)...)
}

// DocsPath resolves a documentation file under the installation's docs tree.
func (l *Layout) DocsPath(parts ...string) string {
	return filepath.Join(append([]string{l.Root, "docs"}, parts...)...)
}

// ResourcePath resolves an icon or other bundled resource.
func (l *Layout) ResourcePath(name string) string {
	return filepath.Join(l.Root, "resources", name)
}

// ActivateScript is the shell script that activates a named environment.
func (l *Layout) ActivateScript() string {
	return filepath.Join(l.Root, "Scripts", "activate.bat")
}

// UpdateScript is the suite's update-check script, chained into shortcuts
// so standalone launches stay current.
func (l *Layout) UpdateScript() string {
	return filepath.Join(l.Root, "get_updates.bat")
}

// CurrentRuntime returns the interpreter hosting this installation. The
// path is derived structurally from LibDir by truncating before its
// library-folder segment, not from environment variables.
func (l *Layout) CurrentRuntime() string {
	idx := strings.Index(strings.ToLower(l.LibDir), "lib")
	if idx < 0 {
		return filepath.Join(l.Root, "python.exe")
	}
	return l.LibDir[:idx] + "python.exe"
}

// VersionSuffix is appended to shortcut and folder names on dev builds.
func VersionSuffix() string {
	if VersionType == "" {
		return ""
	}
	return " " + VersionType
}

// IsDev reports whether this is a development build of the suite.
func IsDev() bool {
	return VersionType != ""
}
