package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fathomsuite/quarterdeck/pkg/catalog"
	"github.com/fathomsuite/quarterdeck/pkg/install"
)

// ExportRST regenerates the suite manual's program pages under dir:
// program_list_auto.rst groups every cataloged program with its description,
// and index_all_apps.rst is a flat toctree over all of them. These feed the
// suite's Sphinx build.
func ExportRST(cat *catalog.Catalog, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create docs export folder: %w", err)
	}
	if err := writeProgramList(cat, filepath.Join(dir, "program_list_auto.rst")); err != nil {
		return err
	}
	return writeIndex(cat, filepath.Join(dir, "index_all_apps.rst"))
}

func writeProgramList(cat *catalog.Catalog, path string) error {
	var b strings.Builder
	title := fmt.Sprintf("Programs distributed in %s", install.SuiteName)
	fmt.Fprintf(&b, "%s\n%s\n%s\n", rstRule(title), title, rstRule(title))

	for _, g := range cat.Groups() {
		fmt.Fprintf(&b, "\n%s\n%s\n\n", g.Name, strings.Repeat("-", len(g.Name)))
		for _, name := range g.Programs {
			e, ok := cat.Get(name)
			if !ok {
				continue
			}
			link := "../../html/" + strings.TrimSuffix(filepath.ToSlash(e.Docs), ".md") + ".html"
			fmt.Fprintf(&b, "  - `%s <%s>`_\n", e.Name, link)
			fmt.Fprintf(&b, "    :: %s\n", e.Description)
		}
	}
	return writeFile(path, b.String())
}

func writeIndex(cat *catalog.Catalog, path string) error {
	var b strings.Builder
	title := fmt.Sprintf("All programs distributed in %s", install.SuiteName)
	fmt.Fprintf(&b, "%s\n%s\n%s\n", rstRule(title), title, rstRule(title))
	b.WriteString(".. toctree::\n   :maxdepth: 3\n\n")

	names := cat.Names()
	sort.Strings(names)
	for _, name := range names {
		e, _ := cat.Get(name)
		entry := strings.TrimSuffix(filepath.ToSlash(e.Docs), ".md")
		fmt.Fprintf(&b, "   %s <%s>\n", e.Name, entry)
	}
	return writeFile(path, b.String())
}

func rstRule(title string) string {
	return strings.Repeat("=", len(title))
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
