// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	question string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.question + "\n\ny да    n нет")
}
