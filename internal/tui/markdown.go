package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// newMarkdownRenderer returns a renderer for bot answers wrapped at width,
// or nil if glamour cannot be initialised. Callers fall back to plain text.
func newMarkdownRenderer(width int) *glamour.TermRenderer {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.DarkStyle),
		glamour.WithWordWrap(max(width, 20)),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil
	}
	return renderer
}

func renderMarkdown(renderer *glamour.TermRenderer, content string) string {
	if renderer == nil || strings.TrimSpace(content) == "" {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}
