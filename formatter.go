package pdfoutline

import (
	"fmt"
	"strings"
)

// FormatOutline renders an outline for terminal display. Headings are
// indented by level and prefixed with their logical page numbers.
func FormatOutline(o *Outline) string {
	var b strings.Builder

	title := o.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString("Title: " + title + "\n")

	if o.Err != "" {
		b.WriteString("Error: " + o.Err + "\n")
	}

	if len(o.Headings) == 0 {
		b.WriteString("\nNo headings detected.\n")
		return b.String()
	}

	b.WriteString("\n")
	for _, h := range o.Headings {
		indent := strings.Repeat("  ", indentDepth(h.Level))
		fmt.Fprintf(&b, "%4d  %-9s %s%s\n", h.Page, h.Level, indent, h.Text)
	}

	return b.String()
}

// indentDepth maps a level to its indentation depth. Unknown levels align
// with H4.
func indentDepth(l Level) int {
	if l == LevelUnknown {
		return int(Level4) - 1
	}
	return int(l) - 1
}
