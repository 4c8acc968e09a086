// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the CampusVibes TUI.
type KeyMap struct {
	// Navigation (context-sensitive: list movement or form field
	// cycling depending on the active screen).
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Field cycling on forms.
	NextField key.Binding
	PrevField key.Binding

	// Activate the hovered item or submit the active form.
	Confirm key.Binding

	// Back leaves the current screen without acting.
	Back key.Binding

	// Search.
	SearchActivate key.Binding

	// Event list.
	SeeAll key.Binding

	// Event mutations.
	Register   key.Binding
	Attendance key.Binding
	NewEvent   key.Binding
	EditEvent  key.Binding
	Delete     key.Binding

	// Top-level navigation.
	GoHome      key.Binding
	GoDashboard key.Binding
	GoProfile   key.Binding
	SignOut     key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("Tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("S-Tab", "previous field"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "confirm"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	SearchActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	SeeAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "see all"),
	),
	Register: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "register/unregister"),
	),
	Attendance: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "attendance"),
	),
	NewEvent: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new event"),
	),
	EditEvent: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	),
	GoHome: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "events"),
	),
	GoDashboard: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "dashboard"),
	),
	GoProfile: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "profile"),
	),
	SignOut: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("C-o", "sign out"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
