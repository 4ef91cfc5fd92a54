// Package tui is the terminal catalog browser. It lists every cataloged
// program with fuzzy filtering, launches the selection, and renders each
// program's documentation inline.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fathomsuite/quarterdeck/pkg/catalog"
	"github.com/fathomsuite/quarterdeck/pkg/docs"
	"github.com/fathomsuite/quarterdeck/pkg/install"
	"github.com/fathomsuite/quarterdeck/pkg/launch"
	"github.com/fathomsuite/quarterdeck/pkg/recent"
)

type item struct {
	entry catalog.Entry
	group string
}

func (i item) Title() string { return i.entry.Name }

func (i item) Description() string {
	if i.group == "" {
		return i.entry.Description
	}
	return fmt.Sprintf("[%s] %s", i.group, i.entry.Description)
}

func (i item) FilterValue() string { return i.entry.Name + " " + i.group }

type mode int

const (
	modeList mode = iota
	modeDocs
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	docsStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Browser is the tea model for the catalog browser.
type Browser struct {
	layout  *install.Layout
	runner  *launch.Runner
	history *recent.Log

	list     list.Model
	viewport viewport.Model
	mode     mode
	status   string
	width    int
	height   int
}

// New builds a browser over the catalog. Entries keep catalog-file order and
// show their group, so the list mirrors the menu tree flattened.
func New(cat *catalog.Catalog, layout *install.Layout, runner *launch.Runner, history *recent.Log) *Browser {
	groupOf := make(map[string]string)
	for _, g := range cat.Groups() {
		for _, name := range g.Programs {
			if _, seen := groupOf[name]; !seen {
				groupOf[name] = g.Name
			}
		}
	}

	items := make([]list.Item, 0, cat.Len())
	for _, name := range cat.Ordered() {
		e, _ := cat.Get(name)
		items = append(items, item{entry: e, group: groupOf[name]})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = install.SuiteName + " programs"
	l.SetShowStatusBar(false)

	return &Browser{
		layout:   layout,
		runner:   runner,
		history:  history,
		list:     l,
		viewport: viewport.New(80, 20),
	}
}

func (b *Browser) Init() tea.Cmd {
	return nil
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.list.SetSize(msg.Width, msg.Height-1)
		b.viewport.Width = msg.Width
		b.viewport.Height = msg.Height - 1
		return b, nil

	case tea.KeyMsg:
		if b.mode == modeDocs {
			switch msg.String() {
			case "q", "esc", "b":
				b.mode = modeList
				return b, nil
			}
			var cmd tea.Cmd
			b.viewport, cmd = b.viewport.Update(msg)
			return b, cmd
		}

		// Keys below act on the selection, so they stay inert while the
		// filter input is capturing text.
		if b.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return b, tea.Quit
			case "enter":
				return b, b.launchSelected()
			case "d":
				b.showDocs()
				return b, nil
			}
		}
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

func (b *Browser) View() string {
	if b.mode == modeDocs {
		return docsStyle.Render(b.viewport.View())
	}
	view := b.list.View()
	if b.status != "" {
		view += "\n" + b.status
	}
	return view
}

func (b *Browser) selected() (catalog.Entry, bool) {
	it, ok := b.list.SelectedItem().(item)
	if !ok {
		return catalog.Entry{}, false
	}
	return it.entry, true
}

func (b *Browser) launchSelected() tea.Cmd {
	e, ok := b.selected()
	if !ok {
		return nil
	}
	b.history.Append(e.Name)
	if !e.Run.Launchable() {
		b.status = statusStyle.Render(fmt.Sprintf("%s has nothing to run - press d for its documentation", e.Name))
		return nil
	}
	if err := b.runner.Run(e, false); err != nil {
		b.status = errorStyle.Render(err.Error())
		return nil
	}
	b.status = statusStyle.Render("launched " + e.Name)
	return nil
}

func (b *Browser) showDocs() {
	e, ok := b.selected()
	if !ok {
		return
	}
	rendered, err := docs.Render(b.layout, e)
	if err != nil {
		b.status = errorStyle.Render(err.Error())
		return
	}
	b.viewport.SetContent(rendered)
	b.viewport.GotoTop()
	b.mode = modeDocs
}

// Run starts the browser and saves the launch history on exit.
func (b *Browser) Run() error {
	p := tea.NewProgram(b, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("catalog browser: %w", err)
	}
	return b.history.Save()
}
