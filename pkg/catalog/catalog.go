package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

//go:embed default.toml
var defaultCatalogData []byte

// Selector sentinels as written in catalog files.
const (
	execRuntime    = "$runtime"
	execRawRuntime = "$runtime-noupdate"
)

// GeneralDocs is the fallback documentation page.
const GeneralDocs = "general.md"

// Entry wraps a launch descriptor with presentation metadata. The display
// name is the unique key across the whole catalog.
type Entry struct {
	Name        string
	Description string
	Docs        string
	DesktopIcon string
	TreeIcon    string
	Run         Descriptor
}

// Group is one category in the navigation tree.
type Group struct {
	Name     string
	Programs []string
}

// Catalog is the immutable name→entry mapping plus its ordered groups,
// built once at startup.
type Catalog struct {
	entries map[string]Entry
	order   []string
	groups  []Group
}

type fileProgram struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Docs        string   `toml:"docs"`
	Icon        string   `toml:"icon"`
	TreeIcon    string   `toml:"tree_icon"`
	Args        []string `toml:"args"`
	Exec        string   `toml:"exec"`
	Env         string   `toml:"env"`
	Dir         string   `toml:"dir"`
	NewConsole  bool     `toml:"new_console"`
	KeepConsole bool     `toml:"keep_console"`
}

type fileGroup struct {
	Name     string   `toml:"name"`
	Programs []string `toml:"programs"`
}

type fileCatalog struct {
	Programs []fileProgram `toml:"programs"`
	Groups   []fileGroup   `toml:"groups"`
}

// Load builds the catalog from the embedded default data plus any extra
// catalog files. Duplicate program names are a fatal configuration error;
// group members that name a missing program are reported and skipped.
func Load(log zerolog.Logger, extra ...[]byte) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry)}
	if err := c.addFile(defaultCatalogData); err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	for _, data := range extra {
		if err := c.addFile(data); err != nil {
			return nil, fmt.Errorf("user catalog: %w", err)
		}
	}
	c.pruneGroups(log)
	return c, nil
}

func (c *Catalog) addFile(data []byte) error {
	var f fileCatalog
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	for _, p := range f.Programs {
		if err := c.add(newEntry(p)); err != nil {
			return err
		}
	}
	c.groups = append(c.groups, groupsOf(f)...)
	return nil
}

func groupsOf(f fileCatalog) []Group {
	out := make([]Group, 0, len(f.Groups))
	for _, g := range f.Groups {
		out = append(out, Group{Name: g.Name, Programs: append([]string(nil), g.Programs...)})
	}
	return out
}

func newEntry(p fileProgram) Entry {
	e := Entry{
		Name:        p.Name,
		Description: p.Description,
		Docs:        p.Docs,
		DesktopIcon: p.Icon,
		TreeIcon:    p.TreeIcon,
		Run: Descriptor{
			Args:        append([]string{}, p.Args...),
			Exec:        parseSelector(p.Exec),
			Env:         p.Env,
			Dir:         p.Dir,
			NewConsole:  p.NewConsole,
			KeepConsole: p.KeepConsole,
		},
	}
	if e.Docs == "" {
		e.Docs = GeneralDocs
	}
	if e.Description == "" {
		e.Description = fmt.Sprintf("%s has no documentation entry", e.Name)
	}
	return e
}

func parseSelector(s string) Selector {
	switch strings.TrimSpace(s) {
	case execRuntime:
		return RuntimeSelector()
	case execRawRuntime:
		return RawRuntimeSelector()
	default:
		return PathSelector(strings.TrimSpace(s))
	}
}

func (c *Catalog) add(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("program with empty name")
	}
	if _, exists := c.entries[e.Name]; exists {
		return fmt.Errorf("%s: duplicate program name", e.Name)
	}
	c.entries[e.Name] = e
	c.order = append(c.order, e.Name)
	return nil
}

// pruneGroups drops group members that do not resolve to a catalog entry.
func (c *Catalog) pruneGroups(log zerolog.Logger) {
	for i, g := range c.groups {
		kept := g.Programs[:0]
		for _, name := range g.Programs {
			if _, ok := c.entries[name]; !ok {
				log.Warn().Str("group", g.Name).Str("program", name).
					Msg("group references unknown program, skipping")
				continue
			}
			kept = append(kept, name)
		}
		c.groups[i].Programs = kept
	}
}

// Get looks up an entry by display name.
func (c *Catalog) Get(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Names returns all program names in sorted order.
func (c *Catalog) Names() []string {
	names := append([]string(nil), c.order...)
	sort.Strings(names)
	return names
}

// Ordered returns program names in catalog-file order.
func (c *Catalog) Ordered() []string {
	return append([]string(nil), c.order...)
}

// Groups returns the ordered navigation groups.
func (c *Catalog) Groups() []Group {
	return append([]Group(nil), c.groups...)
}

// Len is the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
