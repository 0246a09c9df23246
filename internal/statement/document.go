package statement

import (
	"strings"
)

// Word is a positioned text fragment on a page.
type Word struct {
	X    float64
	Text string
}

// Line is a row of words sharing a vertical position, ordered left to right.
type Line struct {
	Words []Word
}

// Text joins the line's words with single spaces.
func (l Line) Text() string {
	parts := make([]string, 0, len(l.Words))
	for _, w := range l.Words {
		if w.Text != "" {
			parts = append(parts, w.Text)
		}
	}
	return strings.Join(parts, " ")
}

// Fields returns the line's word texts.
func (l Line) Fields() []string {
	fields := make([]string, 0, len(l.Words))
	for _, w := range l.Words {
		if w.Text != "" {
			fields = append(fields, w.Text)
		}
	}
	return fields
}

// Page holds the reconstructed lines of one PDF page, top to bottom.
type Page struct {
	Lines []Line
}

// Document is the layout-preserving text of a statement. Parsers consume this
// instead of raw PDF bytes so they can be tested without real files.
type Document struct {
	Pages []Page
}

// Lines flattens all pages into a single top-to-bottom sequence.
func (d *Document) Lines() []Line {
	var lines []Line
	for _, p := range d.Pages {
		lines = append(lines, p.Lines...)
	}
	return lines
}

// PlainText returns the whole document as newline-joined lines.
func (d *Document) PlainText() string {
	var sb strings.Builder
	for _, p := range d.Pages {
		for _, l := range p.Lines {
			sb.WriteString(l.Text())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// DocumentFromText builds a Document from plain text, one line per row.
// Word X positions are synthesized from field order.
func DocumentFromText(text string) *Document {
	page := Page{}
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		line := Line{}
		for i, f := range strings.Fields(raw) {
			line.Words = append(line.Words, Word{X: float64(i), Text: f})
		}
		page.Lines = append(page.Lines, line)
	}
	return &Document{Pages: []Page{page}}
}
