package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/khrees2412/autodoc/internal/preview"
	"github.com/khrees2412/autodoc/pkg/models"
)

// previewPane shows generated text read-only and prints it on request
type previewPane struct {
	kind       models.DocumentKind
	style      preview.Style
	selectable bool
	text       string
	viewport   viewport.Model
	status     string
	printing   bool
}

func newPreviewPane(kind models.DocumentKind, style preview.Style) previewPane {
	return previewPane{
		kind:       kind,
		style:      style,
		selectable: kind == models.KindResume,
		viewport:   viewport.New(80, 20),
	}
}

func (p *previewPane) resize(width, height int) {
	if width > 0 {
		p.viewport.Width = width
	}
	if height > 8 {
		p.viewport.Height = height - 8
	}
	p.refresh()
}

func (p *previewPane) setText(text string) {
	p.text = text
	p.status = ""
	p.refresh()
	p.viewport.GotoTop()
}

func (p *previewPane) setStyle(style preview.Style) {
	if !p.selectable {
		return
	}
	p.style = style
	p.refresh()
}

func (p *previewPane) refresh() {
	width := p.viewport.Width - 2
	p.viewport.SetContent(preview.RenderTerminal(p.text, p.style, width))
}

func (p *previewPane) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// print renders the page and returns the command that prints it
func (p *previewPane) print(ctx context.Context, deps *Deps) tea.Cmd {
	if p.printing {
		return nil
	}
	if deps.Printer == nil {
		p.status = "Printing is not available"
		return nil
	}
	html, err := preview.RenderHTML(p.kind, p.text, p.style)
	if err != nil {
		p.status = "Print failed: " + err.Error()
		return nil
	}
	path := preview.OutputPath(deps.OutputDir, string(p.kind), time.Now())
	p.printing = true
	p.status = "Printing..."
	kind := p.kind
	printer := deps.Printer
	return func() tea.Msg {
		return printedMsg{kind: kind, path: path, err: printer.PrintPDF(ctx, html, path)}
	}
}

func (p *previewPane) printed(msg printedMsg) {
	p.printing = false
	if msg.err != nil {
		p.status = "Print failed: " + msg.err.Error()
		return
	}
	p.status = "Saved PDF to " + msg.path
}

func (p *previewPane) templateBar() string {
	if !p.selectable {
		return ""
	}
	var tabs []string
	for _, s := range preview.ResumeStyles {
		label := fmt.Sprintf("%d %s", s.Number(), s.Label())
		if s == p.style {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return labelStyle.Render("Select ATS Template") + "\n" + strings.Join(tabs, " ")
}

func (p *previewPane) View(help string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Generated " + p.kind.Title()))
	b.WriteString("\n")
	if bar := p.templateBar(); bar != "" {
		b.WriteString(bar)
		b.WriteString("\n\n")
	}
	b.WriteString(p.viewport.View())
	b.WriteString("\n")
	if p.status != "" {
		b.WriteString(noticeStyle.Render(p.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}
