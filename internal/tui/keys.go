// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	toggle   key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	generate key.Binding
	options  key.Binding
	noLogo   key.Binding
	history  key.Binding
	newCode  key.Binding
	info     key.Binding
	png      key.Binding
	jpeg     key.Binding
	svg      key.Binding
	copy     key.Binding
	share    key.Binding
	clear    key.Binding
	apply    key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	toggle:   key.NewBinding(key.WithKeys(" ", "space")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("q")),
	generate: key.NewBinding(key.WithKeys("ctrl+g")),
	options:  key.NewBinding(key.WithKeys("ctrl+o")),
	noLogo:   key.NewBinding(key.WithKeys("ctrl+x")),
	history:  key.NewBinding(key.WithKeys("h")),
	newCode:  key.NewBinding(key.WithKeys("n")),
	info:     key.NewBinding(key.WithKeys("i")),
	png:      key.NewBinding(key.WithKeys("p")),
	jpeg:     key.NewBinding(key.WithKeys("j")),
	svg:      key.NewBinding(key.WithKeys("v")),
	copy:     key.NewBinding(key.WithKeys("c")),
	share:    key.NewBinding(key.WithKeys("s")),
	clear:    key.NewBinding(key.WithKeys("d")),
	apply:    key.NewBinding(key.WithKeys("a")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
