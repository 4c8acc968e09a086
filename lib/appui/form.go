// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField is one labelled input on a form.
type formField struct {
	label string
	input textinput.Model
}

// form is a vertical stack of labelled text inputs with one focused
// field. The auth, event, and profile screens all build on it.
type form struct {
	fields []formField
	focus  int
}

// newForm builds a form from label/placeholder pairs. The first field
// receives focus.
func newForm(fields ...formField) form {
	f := form{fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

// textField builds a labelled single-line input.
func textField(label, placeholder string) formField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 256
	input.Width = 40
	return formField{label: label, input: input}
}

// passwordField builds a labelled input that masks its content.
func passwordField(label string) formField {
	field := textField(label, "")
	field.input.EchoMode = textinput.EchoPassword
	field.input.EchoCharacter = '•'
	return field
}

// Value returns the trimmed content of the field with the given
// label. Password fields are returned verbatim; whitespace can be
// part of a password.
func (f *form) Value(label string) string {
	for i := range f.fields {
		if f.fields[i].label == label {
			value := f.fields[i].input.Value()
			if f.fields[i].input.EchoMode == textinput.EchoPassword {
				return value
			}
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// SetValue replaces the content of the field with the given label.
func (f *form) SetValue(label, value string) {
	for i := range f.fields {
		if f.fields[i].label == label {
			f.fields[i].input.SetValue(value)
			return
		}
	}
}

// Next moves focus to the following field, wrapping at the end.
func (f *form) Next() { f.setFocus((f.focus + 1) % len(f.fields)) }

// Prev moves focus to the preceding field, wrapping at the start.
func (f *form) Prev() { f.setFocus((f.focus + len(f.fields) - 1) % len(f.fields)) }

func (f *form) setFocus(index int) {
	f.fields[f.focus].input.Blur()
	f.focus = index
	f.fields[f.focus].input.Focus()
}

// Update routes a key event to the focused field.
func (f *form) Update(message tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	var command tea.Cmd
	f.fields[f.focus].input, command = f.fields[f.focus].input.Update(message)
	return command
}

// Render draws the form as label/input rows. The focused field's
// label is accented.
func (f *form) Render(theme Theme) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText).Width(22)
	focusedLabel := lipgloss.NewStyle().Foreground(theme.Accent).Width(22)

	var builder strings.Builder
	for i := range f.fields {
		style := labelStyle
		if i == f.focus {
			style = focusedLabel
		}
		builder.WriteString(style.Render(f.fields[i].label))
		builder.WriteString(" ")
		builder.WriteString(f.fields[i].input.View())
		builder.WriteString("\n")
	}
	return builder.String()
}
