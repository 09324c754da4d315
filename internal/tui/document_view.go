package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/khrees2412/autodoc/internal/form"
	"github.com/khrees2412/autodoc/internal/preview"
	"github.com/khrees2412/autodoc/pkg/models"
)

// docField is one input of a single page form
type docField struct {
	label     string
	multiline bool
	get       func() string
	set       func(string)
}

// docForm adapts a cover letter or portfolio session to documentView
type docForm struct {
	kind     models.DocumentKind
	heading  string
	failure  string
	session  submitter
	fields   []docField
	validate func() error
	// request snapshots the record and returns the call to make with it
	request func(Generator) func(context.Context) (string, error)
}

func coverLetterForm() docForm {
	s := form.NewCoverLetterSession()
	var fields []docField
	for _, f := range form.CoverLetterFields() {
		f := f
		fields = append(fields, docField{
			label:     f.Label(),
			multiline: f == form.CoverJobDescription,
			get:       func() string { return s.Field(f) },
			set:       func(v string) { s.SetField(f, v) },
		})
	}
	return docForm{
		kind:     models.KindCoverLetter,
		heading:  "Cover Letter Details",
		failure:  "Failed to generate cover letter",
		session:  s,
		fields:   fields,
		validate: s.Validate,
		request: func(g Generator) func(context.Context) (string, error) {
			rec := *s.Record()
			return func(ctx context.Context) (string, error) {
				return g.GenerateCoverLetter(ctx, &rec)
			}
		},
	}
}

func portfolioForm() docForm {
	s := form.NewPortfolioSession()
	var fields []docField
	for _, f := range form.PortfolioFields() {
		f := f
		fields = append(fields, docField{
			label:     f.Label(),
			multiline: f.Multiline(),
			get:       func() string { return s.Field(f) },
			set:       func(v string) { s.SetField(f, v) },
		})
	}
	return docForm{
		kind:     models.KindPortfolio,
		heading:  "Portfolio Details",
		failure:  "Failed to generate portfolio",
		session:  s,
		fields:   fields,
		validate: s.Validate,
		request: func(g Generator) func(context.Context) (string, error) {
			rec := *s.Record()
			return func(ctx context.Context) (string, error) {
				return g.GeneratePortfolio(ctx, &rec)
			}
		},
	}
}

// documentView is the single page form used for cover letters and portfolios
type documentView struct {
	ctx  context.Context
	deps *Deps
	form docForm

	inputs  []*fieldInput
	focus   focusSet
	notice  string
	spinner spinner.Model

	previewing bool
	pane       previewPane
}

func newDocumentView(ctx context.Context, deps *Deps, f docForm, width, height int) (*documentView, tea.Cmd) {
	v := &documentView{
		ctx:     ctx,
		deps:    deps,
		form:    f,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		pane:    newPreviewPane(f.kind, preview.DefaultStyle(f.kind)),
	}
	v.pane.resize(width, height)
	inputWidth := defaultInputWidth
	if width > 10 && width-6 < inputWidth {
		inputWidth = width - 6
	}
	for _, field := range f.fields {
		v.inputs = append(v.inputs, newFieldInput(field.label, field.get(), field.multiline, inputWidth))
	}
	return v, v.focus.set(v.inputs, 0)
}

func (v *documentView) resize(width, height int) {
	v.pane.resize(width, height)
}

func (v *documentView) close() {
	v.form.session.Close()
}

func (v *documentView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case generatedMsg:
		applied, notice := finishSubmission(v.form.session, msg, v.form.failure, v.deps.Logger)
		v.notice = notice
		if applied {
			v.previewing = true
			v.pane.setText(v.form.session.Result().Text)
		}
		return nil
	case printedMsg:
		v.pane.printed(msg)
		return nil
	case spinner.TickMsg:
		if !v.form.session.Generating() {
			return nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		if v.previewing {
			return v.updatePreview(msg)
		}
		return v.updateForm(msg)
	}
	if v.previewing {
		return v.pane.update(msg)
	}
	return nil
}

func (v *documentView) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return backToMenu
	case "tab":
		return v.focus.move(1)
	case "shift+tab":
		return v.focus.move(-1)
	case "ctrl+g":
		return v.generate()
	}
	in := v.focus.current()
	if in == nil {
		return nil
	}
	changed, cmd := in.Update(msg)
	if changed {
		v.notice = ""
		v.form.fields[v.focus.index].set(in.Value())
	}
	return cmd
}

func (v *documentView) generate() tea.Cmd {
	if v.form.session.Generating() {
		return nil
	}
	if err := v.form.validate(); err != nil {
		if errors.Is(err, form.ErrMandatoryFields) {
			v.notice = form.MandatoryFieldsMessage
		} else {
			v.notice = err.Error()
		}
		return nil
	}
	cmd, err := startSubmission(v.ctx, v.form.kind, v.form.session, v.form.request(v.deps.Generator))
	if err != nil {
		return nil
	}
	v.notice = ""
	return tea.Batch(v.spinner.Tick, cmd)
}

func (v *documentView) updatePreview(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "p":
		return v.pane.print(v.ctx, v.deps)
	case "e", "esc":
		v.previewing = false
		return v.focus.set(v.inputs, v.focus.index)
	}
	return v.pane.update(msg)
}

func (v *documentView) View() string {
	if v.previewing {
		return v.pane.View("p download PDF • e back to form")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(v.form.heading))
	b.WriteString("\n")
	for _, in := range v.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(v.notice))
		b.WriteString("\n")
	}

	action := "ctrl+g Generate " + v.form.kind.Title()
	if v.form.session.Generating() {
		action = v.spinner.View() + " Generating..."
	}
	b.WriteString(helpStyle.Render(strings.Join([]string{"tab/shift+tab field", action, "esc exit"}, " • ")))
	return b.String()
}
