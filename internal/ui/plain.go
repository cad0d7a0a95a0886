package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Plain writes whole frames as text to a writer, for terminals without a
// full-screen mode and for piping.
type Plain struct {
	out        io.Writer
	titleStyle lipgloss.Style
	bodyStyle  lipgloss.Style
	helpStyle  lipgloss.Style
}

// NewPlain creates a frame writer. Colors are used only when out is a terminal.
func NewPlain(out io.Writer) *Plain {
	r := lipgloss.NewRenderer(out)
	return &Plain{
		out: out,
		titleStyle: r.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true),
		bodyStyle: r.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")),
		helpStyle: r.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true),
	}
}

// Render writes one frame: title, map, status panel and footer.
func (p *Plain) Render(title string, src MapSource, bar *StatusBar, footer string) error {
	blocks := []string{
		p.titleStyle.Render(title),
		p.bodyStyle.Render(strings.Join(MapLines(src), "\n")),
	}
	if bar != nil {
		blocks = append(blocks, p.bodyStyle.Render(strings.Join(bar.Lines(), "\n")))
	}
	if footer != "" {
		blocks = append(blocks, p.helpStyle.Render(footer))
	}

	if _, err := fmt.Fprintln(p.out, lipgloss.JoinVertical(lipgloss.Left, blocks...)); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
