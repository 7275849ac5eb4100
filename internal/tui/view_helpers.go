// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays out a screen: bold title, divider, indented body, divider
// and the hot key line.
func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	hint := "ctrl+c: выход"
	if strings.TrimSpace(hotKeys) != "" {
		hint = hotKeys + " │ " + hint
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(hint))

	return b.String()
}

// renderForm renders labelled inputs as a two-column table.
func renderForm(labels []string, inputs []textinput.Model) string {
	labelWidth := lipgloss.Width("Поле")
	for _, l := range labels {
		if w := lipgloss.Width(l); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Значение\n", labelWidth, "Поле"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, in := range inputs {
		b.WriteString(fmt.Sprintf("%-*s │ [%s]\n", labelWidth, labels[i], in.View()))
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeFeedback(b *strings.Builder, status, errMsg string) {
	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("OK: " + status))
		b.WriteString("\n")
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + errMsg))
		b.WriteString("\n")
	}
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func newInput(placeholder string, charLimit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 40
	if charLimit > 0 {
		in.CharLimit = charLimit
	}
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

// focusInputs moves focus within inputs by delta, wrapping around, and
// returns the new focus index.
func focusInputs(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func resetInputs(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].SetValue("")
		inputs[i].Blur()
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
}
