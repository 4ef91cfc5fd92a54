package launch

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/fathomsuite/quarterdeck/pkg/catalog"
	"github.com/fathomsuite/quarterdeck/pkg/install"
)

func testLayout() *install.Layout {
	return install.NewLayout(filepath.Join(string(filepath.Separator), "opt", "fathom"))
}

func TestSynthesize_RuntimeWithEnvironment(t *testing.T) {
	layout := testLayout()
	s := NewSynthesizer(layout)

	d := catalog.Descriptor{
		Args:        []string{"script.py"},
		Exec:        catalog.RuntimeSelector(),
		Env:         "envA",
		Dir:         `sub\dir`,
		KeepConsole: true,
	}
	inv := s.Synthesize(d)

	want := []string{
		layout.SitePackagePath("sub", "dir"),
		"cmd.exe",
		"/K",
		layout.ActivateScript(),
		"envA",
		"&&",
		"python",
		"script.py",
	}
	assert.Equal(t, want, inv.Vector())
	assert.Equal(t, layout.SitePackagePath("sub", "dir"), inv.WorkDir())
	assert.Equal(t, "cmd.exe", inv.Executable())
}

func TestSynthesize_EnvironmentWithoutKeepConsole(t *testing.T) {
	s := NewSynthesizer(testLayout())

	d := catalog.Descriptor{
		Args: []string{"tool.py"},
		Exec: catalog.RuntimeSelector(),
		Env:  "envB",
	}
	inv := s.Synthesize(d)
	assert.Equal(t, "/C", inv.Vector()[2], "transient console uses /C")
}

func TestSynthesize_RuntimeWithoutEnvironment(t *testing.T) {
	layout := testLayout()
	s := NewSynthesizer(layout)

	d := catalog.Descriptor{
		Args: []string{"-m", "qc_tools"},
		Exec: catalog.RuntimeSelector(),
	}
	inv := s.Synthesize(d)

	require.Len(t, inv.Vector(), 4)
	assert.Equal(t, layout.CurrentRuntime(), inv.Executable(),
		"no environment means the hosting runtime runs directly")
	assert.Equal(t, []string{"-m", "qc_tools"}, inv.Argv()[1:])
}

func TestSynthesize_LiteralPath(t *testing.T) {
	s := NewSynthesizer(testLayout())

	d := catalog.Descriptor{
		Args: []string{"--help"},
		Exec: catalog.PathSelector("notepad.exe"),
	}
	inv := s.Synthesize(d)
	assert.Equal(t, "notepad.exe", inv.Executable())
}

func TestSynthesize_EmptySelectorPrependsNothing(t *testing.T) {
	s := NewSynthesizer(testLayout())

	d := catalog.Descriptor{Args: []string{"standalone.bat"}}
	inv := s.Synthesize(d)
	assert.Equal(t, "standalone.bat", inv.Executable())
}

func TestSynthesize_EnvironmentOnlyConsole(t *testing.T) {
	layout := testLayout()
	s := NewSynthesizer(layout)

	// A bare console entry: activate the environment and stop. The
	// dangling chain marker must not survive into the vector.
	d := catalog.Descriptor{
		Exec:        catalog.PathSelector(""),
		Env:         "envC",
		KeepConsole: true,
	}
	inv := s.Synthesize(d)

	want := []string{
		layout.SitePackages,
		"cmd.exe",
		"/K",
		layout.ActivateScript(),
		"envC",
	}
	assert.Equal(t, want, inv.Vector())
}

func TestSynthesize_TrailingChainOnLastArgOnly(t *testing.T) {
	s := NewSynthesizer(testLayout())

	d := catalog.Descriptor{
		Args: []string{"a&&", "b&&"},
		Exec: catalog.PathSelector("run.exe"),
	}
	inv := s.Synthesize(d)
	argv := inv.Argv()
	assert.Equal(t, "a&&", argv[1], "inner chain markers stay")
	assert.Equal(t, "b", argv[2], "only the final token is stripped")
}

func TestSynthesize_WorkDirHasNoTrailingSeparator(t *testing.T) {
	s := NewSynthesizer(testLayout())

	d := catalog.Descriptor{Exec: catalog.RuntimeSelector(), Dir: "HSTB/"}
	inv := s.Synthesize(d)
	wd := inv.WorkDir()
	require.NotEmpty(t, wd)
	assert.NotEqual(t, byte('/'), wd[len(wd)-1])
	assert.NotEqual(t, byte('\\'), wd[len(wd)-1])
}

func TestSynthesize_Properties(t *testing.T) {
	layout := testLayout()
	s := NewSynthesizer(layout)

	rapid.Check(t, func(t *rapid.T) {
		d := catalog.Descriptor{
			Args:        rapid.SliceOfN(rapid.StringMatching(`[a-z&.-]{1,8}`), 0, 5).Draw(t, "args"),
			Env:         rapid.SampledFrom([]string{"", "envA", "envB"}).Draw(t, "env"),
			Dir:         rapid.SampledFrom([]string{"", "tools", `sub\dir`, "deep/er/"}).Draw(t, "dir"),
			KeepConsole: rapid.Bool().Draw(t, "keep"),
		}
		switch rapid.IntRange(0, 2).Draw(t, "exec") {
		case 0:
			d.Exec = catalog.RuntimeSelector()
		case 1:
			d.Exec = catalog.RawRuntimeSelector()
		default:
			d.Exec = catalog.PathSelector("prog.exe")
		}
		before := d.Copy()

		first := s.Synthesize(d).Vector()
		second := s.Synthesize(d).Vector()

		// Pure: same descriptor, same vector, untouched input.
		assert.Equal(t, first, second)
		assert.Equal(t, strings.Join(before.Args, "\x00"), strings.Join(d.Args, "\x00"))

		require.NotEmpty(t, first, "vector always carries a working directory")
		wd := first[0]
		if len(wd) > 1 {
			last := wd[len(wd)-1]
			assert.NotEqual(t, byte('/'), last)
			assert.NotEqual(t, byte('\\'), last)
		}
		for _, tok := range first {
			assert.NotEmpty(t, tok, "no empty tokens survive assembly")
		}
	})
}
