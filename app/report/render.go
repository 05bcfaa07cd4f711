package report

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

// BarWidth is the width of the longest bar in the chart.
const BarWidth = 30

var funcs = template.FuncMap{
	"bar":        func(count, peak int) string { return Bar(count, peak, BarWidth) },
	"join":       strings.Join,
	"md":         EscapeMarkdown,
	"previewLen": func() int { return PreviewLen },
}

var tmpls = template.Must(template.New("report").Funcs(funcs).ParseFS(templates, "templates/*.tmpl"))

// WriteText writes the report as plain text.
func WriteText(w io.Writer, r Report) error {
	if err := tmpls.ExecuteTemplate(w, "text.tmpl", r); err != nil {
		return fmt.Errorf("execute text template: %w", err)
	}
	return nil
}

// Markdown renders the report as a Telegram markdown message.
func Markdown(r Report) (string, error) {
	sb := &strings.Builder{}
	if err := tmpls.ExecuteTemplate(sb, "markdown.tmpl", r); err != nil {
		return "", fmt.Errorf("execute markdown template: %w", err)
	}
	return sb.String(), nil
}

// Bar draws a horizontal bar for count, scaled so that peak takes width cells.
// Non-zero counts always get at least one cell.
func Bar(count, peak, width int) string {
	if count <= 0 || peak <= 0 || width <= 0 {
		return ""
	}
	n := count * width / peak
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

var mdEscaper = strings.NewReplacer(
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	"[", "\\[",
)

// EscapeMarkdown escapes symbols reserved by Telegram legacy markdown.
func EscapeMarkdown(s string) string {
	return mdEscaper.Replace(s)
}
