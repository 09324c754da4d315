package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/khrees2412/autodoc/pkg/models"
)

// Style selects one of the presentation treatments of a preview. Resume
// previews offer 1-3; cover letters and portfolios always use StyleFixed.
type Style int

const (
	StyleFixed Style = iota
	StyleRelaxed
	StyleLoose
	StyleNormal
)

// ResumeStyles are the templates selectable for a resume, in menu order
var ResumeStyles = []Style{StyleRelaxed, StyleLoose, StyleNormal}

// ParseStyle maps the user-facing template number to a Style
func ParseStyle(n int) (Style, error) {
	if n < 1 || n > len(ResumeStyles) {
		return StyleFixed, fmt.Errorf("template %d: must be 1, 2 or 3", n)
	}
	return ResumeStyles[n-1], nil
}

// Number returns the user-facing template number, 0 for StyleFixed
func (s Style) Number() int { return int(s) }

// Label is the menu caption of the style
func (s Style) Label() string {
	if s == StyleFixed {
		return "Standard"
	}
	return fmt.Sprintf("Template %d", s.Number())
}

// DefaultStyle returns the style a fresh preview of kind starts with
func DefaultStyle(kind models.DocumentKind) Style {
	if kind == models.KindResume {
		return StyleRelaxed
	}
	return StyleFixed
}

type treatment struct {
	lineHeight    string
	letterSpacing string
	padding       string
	// blankLines is the number of empty terminal rows after each text row
	blankLines int
	termPadX   int
	termPadY   int
}

var treatments = map[Style]treatment{
	StyleFixed:   {lineHeight: "1.5", letterSpacing: "normal", padding: "2rem", termPadX: 2, termPadY: 1},
	StyleRelaxed: {lineHeight: "1.625", letterSpacing: "normal", padding: "1.5rem", termPadX: 2, termPadY: 1},
	StyleLoose:   {lineHeight: "2", letterSpacing: "0.025em", padding: "1.5rem", blankLines: 1, termPadX: 3, termPadY: 1},
	StyleNormal:  {lineHeight: "1.5", letterSpacing: "normal", padding: "1.5rem", termPadX: 1},
}

func treatmentFor(s Style) treatment {
	if t, ok := treatments[s]; ok {
		return t
	}
	return treatments[StyleFixed]
}

var paperStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(lipgloss.Color("15"))

// RenderTerminal lays text out for the terminal under style. The text is
// wrapped to width but never rewritten.
func RenderTerminal(text string, style Style, width int) string {
	t := treatmentFor(style)
	body := text
	if t.blankLines > 0 {
		sep := "\n" + strings.Repeat("\n", t.blankLines)
		body = strings.Join(strings.Split(text, "\n"), sep)
	}
	st := paperStyle.Padding(t.termPadY, t.termPadX)
	if width > 0 {
		st = st.Width(width)
	}
	return st.Render(body)
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  @page { size: A4; margin: 15mm; }
  body { margin: 0; background: #fff; color: #000; font-family: Helvetica, Arial, sans-serif; font-size: 11pt; }
  #preview { white-space: pre-wrap; line-height: {{.LineHeight}}; letter-spacing: {{.LetterSpacing}}; padding: {{.Padding}}; }
</style>
</head>
<body>
<div id="preview">{{.Text}}</div>
</body>
</html>
`))

// RenderHTML returns a print-ready page holding text under style
func RenderHTML(kind models.DocumentKind, text string, style Style) (string, error) {
	t := treatmentFor(style)
	data := struct {
		Title         string
		Text          string
		LineHeight    template.CSS
		LetterSpacing template.CSS
		Padding       template.CSS
	}{
		Title:         kind.Title(),
		Text:          text,
		LineHeight:    template.CSS(t.lineHeight),
		LetterSpacing: template.CSS(t.letterSpacing),
		Padding:       template.CSS(t.padding),
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s preview: %w", kind, err)
	}
	return buf.String(), nil
}
