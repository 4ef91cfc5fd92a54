// Package docs reads, renders and exports program documentation.
package docs

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"

	"github.com/fathomsuite/quarterdeck/pkg/catalog"
	"github.com/fathomsuite/quarterdeck/pkg/install"
)

// Read returns the raw markdown documentation for an entry.
func Read(layout *install.Layout, e catalog.Entry) (string, error) {
	path := layout.DocsPath(e.Docs)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read docs for %s: %w", e.Name, err)
	}
	return string(data), nil
}

// Render returns an entry's documentation styled for the terminal.
func Render(layout *install.Layout, e catalog.Entry) (string, error) {
	raw, err := Read(layout, e)
	if err != nil {
		return "", err
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("docs renderer: %w", err)
	}
	out, err := r.Render(raw)
	if err != nil {
		return "", fmt.Errorf("render docs for %s: %w", e.Name, err)
	}
	return out, nil
}
