package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/mycelia/internal/markdown"
	"github.com/ytget/mycelia/internal/model"
)

var (
	idStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// previewLength is the rune budget of one text line
const previewLength = 100

func writeJSON(w io.Writer, entries model.Entries) error {
	if entries == nil {
		entries = model.Entries{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func writeText(w io.Writer, entries model.Entries, rendered bool, width int) error {
	for i, e := range entries.Reversed() {
		if !rendered {
			if _, err := fmt.Fprintf(w, "%s  %s\n", idStyle.Render(e.ID), markdown.Preview(e.Text, previewLength)); err != nil {
				return err
			}
			continue
		}
		if i > 0 {
			fmt.Fprintln(w, ruleStyle.Render("────────"))
		}
		if err := writeEntry(w, e, width); err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(w io.Writer, e model.Entry, width int) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", idStyle.Render("#"+e.ID), markdown.RenderTerminal(e.Text, width))
	return err
}

func writeLoadError(w io.Writer, err *model.LoadError) {
	fmt.Fprintf(w, "%s %s\n", errorStyle.Render("error:"), err.Detail())
}
