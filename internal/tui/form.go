// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// formInput is one row of a payload form. Text rows use input; choice rows
// cycle through field.Choices; bool rows toggle checked.
type formInput struct {
	field   models.FormField
	input   textinput.Model
	choice  int
	checked bool
}

func (in formInput) value() string {
	switch {
	case in.field.Bool:
		return strconv.FormatBool(in.checked)
	case len(in.field.Choices) > 0:
		return in.field.Choices[in.choice]
	default:
		return in.input.Value()
	}
}

func (in formInput) isText() bool {
	return !in.field.Bool && len(in.field.Choices) == 0
}

// formModel edits the field set of one kind. base keeps every other kind's
// values so switching kinds does not lose input.
type formModel struct {
	kind   models.PayloadKind
	base   models.FormModel
	inputs []formInput
	focus  int
}

func newFormModel(form models.FormModel) formModel {
	m := formModel{kind: form.Kind, base: form}

	for _, f := range models.FieldsFor(form.Kind) {
		value, _ := form.Get(f.Key)

		in := formInput{field: f}
		switch {
		case f.Bool:
			in.checked, _ = strconv.ParseBool(value)
		case len(f.Choices) > 0:
			for i, c := range f.Choices {
				if c == value {
					in.choice = i
				}
			}
		default:
			in.input = textinput.New()
			in.input.Width = 50
			in.input.CharLimit = 2048
			in.input.SetValue(value)
		}
		m.inputs = append(m.inputs, in)
	}

	m.setFocus(0)
	return m
}

// switchKind returns a form for kind that carries over all entered values.
func (m formModel) switchKind(kind models.PayloadKind) formModel {
	form := m.toForm()
	form.Kind = kind
	return newFormModel(form)
}

func (m formModel) toForm() models.FormModel {
	form := m.base
	form.Kind = m.kind
	for _, in := range m.inputs {
		if err := form.Set(in.field.Key, in.value()); err != nil {
			continue
		}
	}
	return form
}

func (m *formModel) setFocus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	if m.inputs[m.focus].isText() {
		m.inputs[m.focus].input.Blur()
	}
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	if m.inputs[m.focus].isText() {
		m.inputs[m.focus].input.Focus()
	}
}

// focusField moves the cursor to the row with the given key. Keys that are
// not rows of this form, such as contact.name, focus the first row.
func (m *formModel) focusField(key string) {
	for i, in := range m.inputs {
		if in.field.Key == key {
			m.setFocus(i)
			return
		}
	}
	if strings.HasPrefix(key, string(m.kind)+".") {
		m.setFocus(0)
	}
}

func (m formModel) lastFocused() bool {
	return m.focus == len(m.inputs)-1
}

func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		in := &m.inputs[m.focus]
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case in.field.Bool && (key.Matches(keyMsg, keys.toggle) || key.Matches(keyMsg, keys.left) || key.Matches(keyMsg, keys.right)):
			in.checked = !in.checked
			return m, nil
		case len(in.field.Choices) > 0 && (key.Matches(keyMsg, keys.right) || key.Matches(keyMsg, keys.toggle)):
			in.choice = (in.choice + 1) % len(in.field.Choices)
			return m, nil
		case len(in.field.Choices) > 0 && key.Matches(keyMsg, keys.left):
			in.choice = (in.choice - 1 + len(in.field.Choices)) % len(in.field.Choices)
			return m, nil
		}
	}

	if len(m.inputs) == 0 || !m.inputs[m.focus].isText() {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus].input, cmd = m.inputs[m.focus].input.Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	var b strings.Builder

	for i, in := range m.inputs {
		label := in.field.Label
		if in.field.Required {
			label += " *"
		}
		line := cursor(i == m.focus) + padRight(label, 26)

		switch {
		case in.field.Bool:
			box := "[ ]"
			if in.checked {
				box = "[x]"
			}
			line += box
		case len(in.field.Choices) > 0:
			line += "< " + choiceLabel(in.field.Choices[in.choice]) + " >"
		default:
			line += "[" + in.input.View() + "]"
		}

		if i == m.focus {
			line = focusStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return renderPage("NEW "+strings.ToUpper(m.kind.Title())+" CODE", b.String(),
		"tab next  ←/→ change  enter next/generate  ctrl+g generate  ctrl+o options  esc back")
}

func choiceLabel(v string) string {
	if v == string(models.WifiEncryptionNone) {
		return "None"
	}
	return v
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s + " "
}
