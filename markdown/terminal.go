package markdown

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles used by RenderTerminal.
type Theme struct {
	H1     lipgloss.Style
	H2     lipgloss.Style
	H3     lipgloss.Style
	Bold   lipgloss.Style
	Code   lipgloss.Style
	Bullet string
}

// DefaultTheme returns the styles used by the CLI.
func DefaultTheme() Theme {
	return Theme{
		H1:     lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("212")),
		H2:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		H3:     lipgloss.NewStyle().Bold(true),
		Bold:   lipgloss.NewStyle().Bold(true),
		Code:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236")),
		Bullet: "• ",
	}
}

// PlainTheme returns a Theme with no styling, which keeps output stable for pipes and tests.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{H1: s, H2: s, H3: s, Bold: s, Code: s, Bullet: "- "}
}

// RenderTerminal writes blocks to w as styled terminal text, one output line per block.
func RenderTerminal(w io.Writer, blocks []Block, theme Theme) error {
	var b strings.Builder
	for _, blk := range blocks {
		switch blk.Kind {
		case Heading:
			style := theme.H3
			switch blk.Level {
			case 1:
				style = theme.H1
			case 2:
				style = theme.H2
			}
			b.WriteString(style.Render(blk.Text))
		case Paragraph:
			writeTerminalSpans(&b, blk.Spans, theme)
		case ListItem:
			b.WriteString(theme.Bullet)
			writeTerminalSpans(&b, blk.Spans, theme)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTerminalSpans(b *strings.Builder, spans []Span, theme Theme) {
	for _, sp := range spans {
		switch sp.Kind {
		case Bold:
			b.WriteString(theme.Bold.Render(sp.Text))
		case Code:
			b.WriteString(theme.Code.Render(sp.Text))
		case BoldCode:
			b.WriteString(theme.Code.Inherit(theme.Bold).Render(sp.Text))
		default:
			b.WriteString(sp.Text)
		}
	}
}
