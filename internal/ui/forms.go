package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// field is one labeled text input in a form.
type field struct {
	label string
	input textinput.Model
}

func newField(label, placeholder string) field {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = ""
	input.CharLimit = 120
	return field{label: label, input: input}
}

func newSecretField(label, placeholder string) field {
	f := newField(label, placeholder)
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

// focusField focuses one field and blurs the rest. A negative index
// blurs everything.
func focusField(fields []field, index int) {
	for i := range fields {
		if i == index {
			fields[i].input.Focus()
		} else {
			fields[i].input.Blur()
		}
	}
}

// updateFocusedField routes a message to whichever field has focus.
func updateFocusedField(fields []field, msg tea.Msg) tea.Cmd {
	for i := range fields {
		if fields[i].input.Focused() {
			var cmd tea.Cmd
			fields[i].input, cmd = fields[i].input.Update(msg)
			return cmd
		}
	}
	return nil
}

// cycleField advances focus by delta, wrapping at both ends.
func cycleField(fields []field, current, delta int) int {
	if len(fields) == 0 {
		return -1
	}
	next := (current + delta + len(fields)) % len(fields)
	focusField(fields, next)
	return next
}

func resetFields(fields []field) {
	for i := range fields {
		fields[i].input.Reset()
	}
}
