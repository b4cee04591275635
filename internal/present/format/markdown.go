package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mireku/cardik/internal/card"
	"github.com/mireku/cardik/pkg/api"
)

// WritePrettyCard renders a single card with markdown formatting using glamour.
func WritePrettyCard(w io.Writer, c api.Card) error {
	var b strings.Builder
	name := c.Name
	if name == "" {
		name = "(unnamed card)"
	}
	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "> **ID:** %s | **Source:** %s:%d\n\n", shortID(c.ID), c.Path, c.Line)

	rec, err := card.Parse(c.Raw)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = card.Default()
	}
	b.WriteString("| field | value |\n|---|---|\n")
	for _, k := range rec.Keys() {
		fmt.Fprintf(&b, "| %s | %s |\n", k, rec.Get(k))
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(b.String())
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}
