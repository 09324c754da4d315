package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultInputWidth = 60

// fieldInput is a single form control: a one-line textinput, or a textarea
// for free text such as descriptions.
type fieldInput struct {
	label     string
	multiline bool
	line      textinput.Model
	area      textarea.Model
}

func newFieldInput(label, value string, multiline bool, width int) *fieldInput {
	if width <= 0 {
		width = defaultInputWidth
	}
	f := &fieldInput{label: label, multiline: multiline}
	if multiline {
		ta := textarea.New()
		ta.Placeholder = label
		ta.ShowLineNumbers = false
		ta.SetWidth(width)
		ta.SetHeight(4)
		ta.SetValue(value)
		ta.Blur()
		f.area = ta
		return f
	}
	ti := textinput.New()
	ti.Placeholder = label
	ti.Width = width
	ti.SetValue(value)
	f.line = ti
	return f
}

func (f *fieldInput) Value() string {
	if f.multiline {
		return f.area.Value()
	}
	return f.line.Value()
}

func (f *fieldInput) Focus() tea.Cmd {
	if f.multiline {
		return f.area.Focus()
	}
	return f.line.Focus()
}

func (f *fieldInput) Blur() {
	if f.multiline {
		f.area.Blur()
		return
	}
	f.line.Blur()
}

// Update forwards msg and reports whether the value changed
func (f *fieldInput) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := f.Value()
	var cmd tea.Cmd
	if f.multiline {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.line, cmd = f.line.Update(msg)
	}
	return f.Value() != before, cmd
}

func (f *fieldInput) View() string {
	if f.multiline {
		return labelStyle.Render(f.label) + "\n" + f.area.View()
	}
	return labelStyle.Render(f.label) + "\n" + f.line.View()
}

// focusSet keeps exactly one of inputs focused
type focusSet struct {
	inputs []*fieldInput
	index  int
}

func (s *focusSet) set(inputs []*fieldInput, index int) tea.Cmd {
	s.inputs = inputs
	if len(inputs) == 0 {
		s.index = 0
		return nil
	}
	if index < 0 {
		index = 0
	}
	if index >= len(inputs) {
		index = len(inputs) - 1
	}
	s.index = index
	for i, in := range inputs {
		if i != index {
			in.Blur()
		}
	}
	return inputs[index].Focus()
}

func (s *focusSet) move(delta int) tea.Cmd {
	if len(s.inputs) == 0 {
		return nil
	}
	next := (s.index + delta + len(s.inputs)) % len(s.inputs)
	return s.set(s.inputs, next)
}

func (s *focusSet) current() *fieldInput {
	if len(s.inputs) == 0 {
		return nil
	}
	return s.inputs[s.index]
}
