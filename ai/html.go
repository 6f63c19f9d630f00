package ai

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// EnsureHTML returns s unchanged when it already carries markup. Models
// occasionally ignore the HTML instruction and answer in markdown; render
// that to HTML so the stored field stays displayable.
func EnsureHTML(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, "<") && strings.Contains(trimmed, ">") {
		return trimmed
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	out := markdown.Render(p.Parse([]byte(trimmed)), renderer)
	return strings.TrimSpace(string(out))
}
