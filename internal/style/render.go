package style

import (
	"html"
	"strings"

	"omnicode/internal/token"

	"github.com/charmbracelet/lipgloss"
)

// Lipgloss converts the handle into a terminal style.
func (h Handle) Lipgloss() lipgloss.Style {
	s := lipgloss.NewStyle()
	if h.Color != "" {
		s = s.Foreground(lipgloss.Color(h.Color))
	}
	return s
}

// RenderLine renders one tokenized line for a terminal.
func RenderLine(toks []token.Token, dark bool) string {
	var sb strings.Builder
	for _, t := range toks {
		if t.Kind == token.Whitespace {
			sb.WriteString(t.Text)
			continue
		}
		sb.WriteString(For(t.Kind, dark).Lipgloss().Render(t.Text))
	}
	return sb.String()
}

// RenderHTML renders tokenized lines as a <pre> block of class-tagged spans.
func RenderHTML(lines [][]token.Token, dark bool) string {
	var sb strings.Builder
	bg := "bg-gray-50 text-gray-900"
	if dark {
		bg = "bg-gray-900 text-white"
	}
	sb.WriteString(`<pre class="` + bg + `"><code>`)
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range line {
			if t.Kind == token.Whitespace {
				sb.WriteString(html.EscapeString(t.Text))
				continue
			}
			sb.WriteString(`<span class="`)
			sb.WriteString(For(t.Kind, dark).Class)
			sb.WriteString(`">`)
			sb.WriteString(html.EscapeString(t.Text))
			sb.WriteString(`</span>`)
		}
	}
	sb.WriteString("</code></pre>\n")
	return sb.String()
}
