package shortcut

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathomsuite/quarterdeck/pkg/catalog"
	"github.com/fathomsuite/quarterdeck/pkg/install"
	"github.com/fathomsuite/quarterdeck/pkg/launch"
)

func testWriter() *Writer {
	root := filepath.Join(string(filepath.Separator), "opt", "fathom")
	return NewWriter(install.NewLayout(root))
}

func TestAssemble_ShellMediatedRuntime(t *testing.T) {
	w := testWriter()
	layout := w.Layout
	s := launch.NewSynthesizer(layout)

	d := catalog.Descriptor{
		Args:        []string{"script.py"},
		Exec:        catalog.RuntimeSelector(),
		Env:         "envA",
		Dir:         "tools",
		KeepConsole: true,
	}
	target, argLine, workDir, err := w.Assemble(s.Synthesize(d), d.Exec)
	require.NoError(t, err)

	assert.Equal(t, "cmd.exe", target)
	assert.Equal(t, layout.SitePackagePath("tools"), workDir)

	// Update check lands after the shell switch; chain markers collapse to
	// the single-command form.
	want := strings.Join([]string{
		"/K",
		layout.UpdateScript(),
		"&",
		layout.ActivateScript(),
		"envA",
		"&",
		"python",
		"script.py",
	}, " ")
	assert.Equal(t, want, argLine)
}

func TestAssemble_DirectRuntime(t *testing.T) {
	w := testWriter()
	s := launch.NewSynthesizer(w.Layout)

	d := catalog.Descriptor{
		Args: []string{"-m", "qc_tools"},
		Exec: catalog.RuntimeSelector(),
	}
	target, argLine, _, err := w.Assemble(s.Synthesize(d), d.Exec)
	require.NoError(t, err)

	// Without a shell the update check chains ahead of the interpreter.
	assert.Equal(t, w.Layout.UpdateScript(), target)
	assert.Equal(t,
		strings.Join([]string{"&", w.Layout.CurrentRuntime(), "-m", "qc_tools"}, " "),
		argLine)
}

func TestAssemble_RawRuntimeSkipsUpdateCheck(t *testing.T) {
	w := testWriter()
	s := launch.NewSynthesizer(w.Layout)

	d := catalog.Descriptor{
		Args: []string{"toggle_updates.py"},
		Exec: catalog.RawRuntimeSelector(),
	}
	target, argLine, _, err := w.Assemble(s.Synthesize(d), d.Exec)
	require.NoError(t, err)

	assert.Equal(t, w.Layout.CurrentRuntime(), target)
	assert.Equal(t, "toggle_updates.py", argLine)
	assert.NotContains(t, argLine, "get_updates")
}

func TestAssemble_LiteralPathSkipsUpdateCheck(t *testing.T) {
	w := testWriter()
	s := launch.NewSynthesizer(w.Layout)

	d := catalog.Descriptor{
		Args: []string{"--fast"},
		Exec: catalog.PathSelector("viewer.exe"),
	}
	target, argLine, _, err := w.Assemble(s.Synthesize(d), d.Exec)
	require.NoError(t, err)

	assert.Equal(t, "viewer.exe", target)
	assert.Equal(t, "--fast", argLine)
}

func TestAssemble_EmptyInvocation(t *testing.T) {
	w := testWriter()
	_, _, _, err := w.Assemble(launch.Invocation{}, catalog.RuntimeSelector())
	require.Error(t, err)
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in   string
		want Placement
	}{
		{"desktop", Desktop},
		{"Desktop", Desktop},
		{"all-users-desktop", AllUsersDesktop},
		{"programs", Programs},
		{"start-menu", StartMenu},
		{"all-users-programs", AllUsersPrograms},
	}
	for _, tt := range tests {
		got, err := ParsePlacement(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParsePlacement("fridge")
	require.Error(t, err)
}

func TestPlacement_IsDesktop(t *testing.T) {
	assert.True(t, Desktop.IsDesktop())
	assert.True(t, AllUsersDesktop.IsDesktop())
	assert.False(t, Programs.IsDesktop())
	assert.False(t, StartMenu.IsDesktop())
}
