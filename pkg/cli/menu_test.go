package cli

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathomsuite/quarterdeck/pkg/catalog"
	"github.com/fathomsuite/quarterdeck/pkg/config"
	"github.com/fathomsuite/quarterdeck/pkg/install"
	"github.com/fathomsuite/quarterdeck/pkg/launch"
	"github.com/fathomsuite/quarterdeck/pkg/recent"
)

type stubFrontend struct {
	choice string
	err    error
}

func (s stubFrontend) Name() string      { return "stub" }
func (s stubFrontend) IsAvailable() bool { return true }
func (s stubFrontend) Show(options []string, prompt string) (string, error) {
	return s.choice, s.err
}

func testApp(t *testing.T) *app {
	t.Helper()
	log := zerolog.Nop()
	layout := install.NewLayout(t.TempDir())
	cat, err := catalog.Load(log)
	require.NoError(t, err)
	return &app{
		cfg:     &config.Config{},
		log:     log,
		layout:  layout,
		catalog: cat,
		runner:  launch.NewRunner(layout, log),
		history: recent.Open(filepath.Join(t.TempDir(), "recent.toml")),
	}
}

func TestLaunchChoice_RecordsInformationalSelections(t *testing.T) {
	a := testApp(t)
	e := catalog.Entry{
		Name:        "License Information",
		Description: "License terms for the suite",
		Docs:        catalog.GeneralDocs,
		Run:         catalog.Descriptor{Exec: catalog.RuntimeSelector()},
	}
	require.False(t, e.Run.Launchable())

	done, err := launchChoice(a, stubFrontend{}, e)
	require.NoError(t, err)
	assert.False(t, done, "informational entries return to the menu")
	assert.Equal(t, []string{"License Information"}, a.history.Names(),
		"every selection enters the history")
}

func TestLaunchChoice_RecordsFailedLaunches(t *testing.T) {
	a := testApp(t)
	e := catalog.Entry{
		Name: "Broken Tool",
		Run: catalog.Descriptor{
			Args: []string{"tool.py"},
			Exec: catalog.PathSelector("no-such-executable-zzz"),
			Dir:  "missing",
		},
	}

	done, err := launchChoice(a, stubFrontend{}, e)
	require.Error(t, err)
	assert.False(t, done)
	assert.Equal(t, []string{"Broken Tool"}, a.history.Names(),
		"selection is recorded before the launch attempt")
}
