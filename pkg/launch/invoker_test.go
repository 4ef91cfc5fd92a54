package launch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathomsuite/quarterdeck/pkg/install"
)

func TestInvoke_RestoresWorkingDirectoryOnFailure(t *testing.T) {
	root := t.TempDir()
	work := t.TempDir()
	layout := install.NewLayout(root)
	v := NewInvoker(layout)

	err := v.Invoke(Invocation{vec: []string{work, "no-such-executable-zzz"}}, false)
	require.Error(t, err, "a missing executable must fail the spawn")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assertSamePath(t, root, cwd)
}

func TestInvoke_BadStartDirectory(t *testing.T) {
	root := t.TempDir()
	layout := install.NewLayout(root)
	v := NewInvoker(layout)

	missing := filepath.Join(root, "nope")
	err := v.Invoke(Invocation{vec: []string{missing, "true"}}, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "start directory")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assertSamePath(t, root, cwd)
}

func TestInvoke_EmptyVector(t *testing.T) {
	layout := install.NewLayout(t.TempDir())
	v := NewInvoker(layout)

	err := v.Invoke(Invocation{}, false)
	require.Error(t, err)
}

// assertSamePath compares paths through EvalSymlinks; temp dirs may sit
// behind symlinks on some systems.
func assertSamePath(t *testing.T, want, got string) {
	t.Helper()
	w, err := filepath.EvalSymlinks(want)
	require.NoError(t, err)
	g, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, w, g)
}
