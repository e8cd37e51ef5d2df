package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"

	"github.com/alexisbeaulieu97/tskpay/internal/preferences"
)

// helpCache keeps the rendered help for one mode and width. Building a
// glamour renderer is slow, so it is only rebuilt when either changes.
type helpCache struct {
	mode  preferences.Mode
	width int
	out   string
}

func (c *helpCache) render(mode preferences.Mode, width int, markdown string) string {
	if width < 20 {
		width = 20
	}
	if c.out != "" && c.mode == mode && c.width == width {
		return c.out
	}

	c.mode, c.width, c.out = mode, width, renderMarkdown(markdown, mode, width)
	return c.out
}

// markdownStyle picks the glamour style matching the theme mode.
func markdownStyle(mode preferences.Mode) string {
	if mode.IsDark() {
		return "dark"
	}
	return "light"
}

func renderMarkdown(markdown string, mode preferences.Mode, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle(mode)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimRight(out, "\n")
}

func helpMarkdown(keys keyMap) string {
	var b strings.Builder
	b.WriteString("# tskPay pomoč\n\n")
	b.WriteString("| Tipka | Dejanje |\n|---|---|\n")
	for _, column := range keys.FullHelp() {
		for _, binding := range column {
			writeBinding(&b, binding)
		}
	}
	b.WriteString("\nV pregledu preklapljate med zavihkoma s puščicama levo in desno. ")
	b.WriteString("Enter na vrstici skupine odpre njene člane.\n")
	return b.String()
}

func writeBinding(b *strings.Builder, binding key.Binding) {
	h := binding.Help()
	fmt.Fprintf(b, "| `%s` | %s |\n", h.Key, h.Desc)
}
