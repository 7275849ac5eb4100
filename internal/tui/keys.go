// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	forceQ     key.Binding
	logout     key.Binding
	logoutForm key.Binding
	profile    key.Binding
	version    key.Binding
	register   key.Binding
	copyID     key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	forceQ:     key.NewBinding(key.WithKeys("ctrl+c")),
	logout:     key.NewBinding(key.WithKeys("l")),
	logoutForm: key.NewBinding(key.WithKeys("ctrl+x")),
	profile:    key.NewBinding(key.WithKeys("p")),
	version:    key.NewBinding(key.WithKeys("v")),
	register:   key.NewBinding(key.WithKeys("ctrl+r")),
	copyID:     key.NewBinding(key.WithKeys("c")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
}
