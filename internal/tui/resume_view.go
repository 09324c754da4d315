package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/khrees2412/autodoc/internal/form"
	"github.com/khrees2412/autodoc/internal/preview"
	"github.com/khrees2412/autodoc/pkg/models"
)

const resumeFailure = "Error generating resume"

// jumpKeys move straight to a step. Number keys stay free for typing.
var jumpKeys = map[tea.KeyType]form.Step{
	tea.KeyF1: form.StepPersonal,
	tea.KeyF2: form.StepEducation,
	tea.KeyF3: form.StepSkills,
	tea.KeyF4: form.StepProjects,
	tea.KeyF5: form.StepExperience,
	tea.KeyF6: form.StepCertifications,
	tea.KeyF7: form.StepActivities,
}

// slot binds one input to the part of the record it edits
type slot struct {
	field   form.ResumeField
	list    bool
	section form.Section
	index   int
	item    form.ItemField
}

// resumeView is the seven step resume wizard and its preview
type resumeView struct {
	ctx     context.Context
	deps    *Deps
	session *form.ResumeSession

	slots   []slot
	inputs  []*fieldInput
	focus   focusSet
	notice  string
	spinner spinner.Model

	previewing bool
	pane       previewPane
	width      int
}

func newResumeView(ctx context.Context, deps *Deps, width, height int) (*resumeView, tea.Cmd) {
	v := &resumeView{
		ctx:     ctx,
		deps:    deps,
		session: form.NewResumeSession(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		pane:    newPreviewPane(models.KindResume, deps.DefaultStyle),
		width:   width,
	}
	v.pane.resize(width, height)
	return v, v.rebuild(0)
}

// rebuild recreates the inputs for the current step from the record
func (v *resumeView) rebuild(focus int) tea.Cmd {
	width := defaultInputWidth
	if v.width > 10 && v.width-6 < width {
		width = v.width - 6
	}
	v.slots = v.slots[:0]
	v.inputs = nil
	step := v.session.Step()
	if section, ok := form.SectionForStep(step); ok {
		lists := v.session.Lists()
		for i := 0; i < lists.Len(section); i++ {
			for _, item := range section.Fields() {
				value, _ := lists.Item(section, i, item)
				v.slots = append(v.slots, slot{list: true, section: section, index: i, item: item})
				v.inputs = append(v.inputs, newFieldInput(item.Label(section), value, item == form.ItemDesc, width))
			}
		}
	} else {
		for _, f := range form.FieldsForStep(step) {
			v.slots = append(v.slots, slot{field: f})
			v.inputs = append(v.inputs, newFieldInput(f.Label(), v.session.Field(f), false, width))
		}
	}
	return v.focus.set(v.inputs, focus)
}

func (v *resumeView) resize(width, height int) {
	v.width = width
	v.pane.resize(width, height)
}

func (v *resumeView) close() {
	v.session.Close()
}

func (v *resumeView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case generatedMsg:
		applied, notice := finishSubmission(v.session, msg, resumeFailure, v.deps.Logger)
		v.notice = notice
		if applied {
			v.previewing = true
			v.pane.setText(v.session.Result().Text)
		}
		return nil
	case printedMsg:
		v.pane.printed(msg)
		return nil
	case spinner.TickMsg:
		if !v.session.Generating() {
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

func (v *resumeView) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return backToMenu
	case "tab":
		return v.focus.move(1)
	case "shift+tab":
		return v.focus.move(-1)
	case "ctrl+n":
		v.notice = ""
		if err := v.session.Next(); err != nil {
			return nil
		}
		return v.rebuild(0)
	case "ctrl+b":
		v.notice = ""
		v.session.Back()
		return v.rebuild(0)
	case "ctrl+a":
		return v.addEntry()
	case "ctrl+d":
		return v.removeEntry()
	case "ctrl+g":
		return v.generate()
	}
	if step, ok := jumpKeys[msg.Type]; ok {
		_ = v.session.Jump(step)
		v.notice = ""
		return v.rebuild(0)
	}

	in := v.focus.current()
	if in == nil {
		return nil
	}
	changed, cmd := in.Update(msg)
	if changed {
		v.notice = ""
		v.apply(v.focus.index, in.Value())
	}
	return cmd
}

// apply writes the value of input i back into the session
func (v *resumeView) apply(i int, value string) {
	s := v.slots[i]
	if !s.list {
		v.session.SetField(s.field, value)
		return
	}
	if err := v.session.EditItem(s.section, s.index, s.item, value); err != nil {
		v.deps.Logger.Error("edit list item", "section", s.section, "index", s.index, "err", err)
	}
}

func (v *resumeView) addEntry() tea.Cmd {
	section, ok := form.SectionForStep(v.session.Step())
	if !ok {
		return nil
	}
	if err := v.session.AddItem(section); err != nil {
		v.notice = err.Error()
		return nil
	}
	// focus the first input of the new entry
	return v.rebuild(len(v.inputs))
}

func (v *resumeView) removeEntry() tea.Cmd {
	if len(v.slots) == 0 {
		return nil
	}
	s := v.slots[v.focus.index]
	if !s.list {
		return nil
	}
	if err := v.session.RemoveItem(s.section, s.index); err != nil {
		if errors.Is(err, form.ErrMinimumItems) {
			v.notice = minimumNotice(s.section, v.session.Lists().Policy(s.section).MinItems)
			return nil
		}
		v.notice = err.Error()
		return nil
	}
	v.notice = ""
	return v.rebuild(v.focus.index - len(s.section.Fields()))
}

func minimumNotice(section form.Section, n int) string {
	verb := "are"
	if n == 1 {
		verb = "is"
	}
	return fmt.Sprintf("At least %s %s required", section.Noun(n), verb)
}

func (v *resumeView) generate() tea.Cmd {
	if !v.session.IsLast() || v.session.Generating() {
		return nil
	}
	rec := v.session.Record().Clone()
	gen := v.deps.Generator
	cmd, err := startSubmission(v.ctx, models.KindResume, v.session, func(ctx context.Context) (string, error) {
		return gen.GenerateResume(ctx, rec)
	})
	if err != nil {
		return nil
	}
	v.notice = ""
	return tea.Batch(v.spinner.Tick, cmd)
}

func (v *resumeView) updatePreview(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "1", "2", "3":
		style, err := preview.ParseStyle(int(msg.String()[0] - '0'))
		if err == nil {
			v.pane.setStyle(style)
		}
		return nil
	case "p":
		return v.pane.print(v.ctx, v.deps)
	case "e":
		v.session.Edit()
		v.previewing = false
		v.notice = ""
		return v.rebuild(0)
	case "n":
		v.session.GenerateNew()
		v.pane.style = v.deps.DefaultStyle
		v.previewing = false
		v.notice = ""
		return v.rebuild(0)
	case "esc", "q":
		return backToMenu
	}
	return v.pane.update(msg)
}

func (v *resumeView) tabs() string {
	var tabs []string
	for _, step := range form.Steps() {
		label := fmt.Sprintf("%d %s", int(step), step.Label())
		if step == v.session.Step() {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (v *resumeView) View() string {
	if v.previewing {
		return v.pane.View("1/2/3 template • p download PDF • e edit resume • n generate new • esc exit")
	}

	var b strings.Builder
	step := v.session.Step()
	b.WriteString(v.tabs())
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(step.Heading()))
	b.WriteString("\n")

	if section, ok := form.SectionForStep(step); ok {
		b.WriteString(v.listView(section))
	} else {
		for _, in := range v.inputs {
			b.WriteString(in.View())
			b.WriteString("\n")
		}
	}

	if msg := v.session.Error(); msg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}
	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(v.notice))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(v.help()))
	return b.String()
}

func (v *resumeView) listView(section form.Section) string {
	var b strings.Builder
	per := len(section.Fields())
	canRemove := v.session.Lists().CanRemove(section)
	for start := 0; start < len(v.inputs); start += per {
		var entry strings.Builder
		for _, in := range v.inputs[start : start+per] {
			entry.WriteString(in.View())
			entry.WriteString("\n")
		}
		if canRemove {
			entry.WriteString(helpStyle.Render("ctrl+d remove"))
		}
		b.WriteString(entryStyle.Render(strings.TrimRight(entry.String(), "\n")))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render(section.AddLabel() + " (ctrl+a)"))
	b.WriteString("\n")
	return b.String()
}

func (v *resumeView) help() string {
	parts := []string{"tab/shift+tab field", "f1-f7 jump"}
	if !v.session.IsFirst() {
		parts = append(parts, "ctrl+b back")
	}
	if v.session.IsLast() {
		if v.session.Generating() {
			parts = append(parts, v.spinner.View()+" Generating...")
		} else {
			parts = append(parts, "ctrl+g Generate Resume")
		}
	} else {
		parts = append(parts, "ctrl+n next")
	}
	parts = append(parts, "esc exit")
	return strings.Join(parts, " • ")
}
