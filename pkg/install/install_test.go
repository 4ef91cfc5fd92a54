package install

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout_Shape(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "opt", "fathom")
	l := NewLayout(root)

	assert.Equal(t, root, l.Root)
	assert.Equal(t, filepath.Join(root, "site-packages"), l.SitePackages)
	assert.Equal(t, filepath.Join(root, "Scripts", "activate.bat"), l.ActivateScript())
	assert.Equal(t, filepath.Join(root, "get_updates.bat"), l.UpdateScript())
}

func TestDiscover_Override(t *testing.T) {
	l, err := Discover(filepath.Join("some", "root"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("some", "root"), l.Root)
}

func TestDiscover_EnvVar(t *testing.T) {
	t.Setenv(RootEnvVar, filepath.Join("env", "root"))
	l, err := Discover("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("env", "root"), l.Root)
}

func TestSitePackagePath_NormalizesSeparators(t *testing.T) {
	l := NewLayout(filepath.Join(string(filepath.Separator), "opt", "fathom"))

	want := filepath.Join(l.SitePackages, "HSTB", "tools")
	assert.Equal(t, want, l.SitePackagePath(`HSTB\tools`))
	assert.Equal(t, want, l.SitePackagePath("HSTB/tools"))
	assert.Equal(t, l.SitePackages, l.SitePackagePath(""))
}

func TestCurrentRuntime_DerivedFromLibDir(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "opt", "fathom")
	l := NewLayout(root)

	// The interpreter sits where the library path begins: everything before
	// the library segment plus the interpreter name.
	prefix := filepath.Join(root, "envs", "base") + string(filepath.Separator)
	assert.Equal(t, prefix+"python.exe", l.CurrentRuntime())
}

func TestCurrentRuntime_FallsBackToRoot(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "opt", "fathom")
	l := &Layout{Root: root, LibDir: filepath.Join(root, "pkgs")}

	assert.Equal(t, filepath.Join(root, "python.exe"), l.CurrentRuntime())
}

func TestShortPath_PassThroughForMissingPaths(t *testing.T) {
	// Conversion is best effort: a path that cannot be shortened (or a
	// platform without short names) comes back unchanged.
	p := filepath.Join(t.TempDir(), "does", "not", "exist")
	assert.Equal(t, p, ShortPath(p))
}
