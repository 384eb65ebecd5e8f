package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme holds the colors used for text output.
type Theme struct {
	Heading lipgloss.Color
	Label   lipgloss.Color
	Value   lipgloss.Color
}

var defaultTheme = Theme{
	Heading: lipgloss.Color("#5FAFD7"), // light blue
	Label:   lipgloss.Color("#6C6C6C"), // dim gray
	Value:   lipgloss.Color("#00D787"), // green
}

// styles are bound to a renderer for the target writer so colors are
// dropped when it is not a terminal.
type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
}

func newStyles(w io.Writer, t Theme) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Foreground(t.Heading).Bold(true),
		label:   r.NewStyle().Foreground(t.Label).Width(22),
		value:   r.NewStyle().Foreground(t.Value),
	}
}

func (s styles) row(w io.Writer, label, value string) {
	fmt.Fprintln(w, s.label.Render(label)+s.value.Render(value))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeStructured(w io.Writer, format string, v any) error {
	if format == outputYAML {
		return writeYAML(w, v)
	}
	return writeJSON(w, v)
}
