// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and visual properties for the
// CampusVibes terminal client. All colors use lipgloss ANSI 256-color
// codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row or focused control.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Brand accent, used for section headings, active form controls,
	// and the selected role button.
	Accent lipgloss.Color

	// Transient notice colors. Errors and successes both render in
	// the status bar and fade after a short delay.
	ErrorText   lipgloss.Color
	SuccessText lipgloss.Color

	// Registration state colors on the event detail screen.
	Registered    lipgloss.Color
	NotRegistered lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Modal overlays (attendance report, description editor).
	ModalForeground lipgloss.Color
	ModalBackground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	Accent: lipgloss.Color("75"), // campus blue

	ErrorText:   lipgloss.Color("196"),
	SuccessText: lipgloss.Color("114"),

	Registered:    lipgloss.Color("114"), // green
	NotRegistered: lipgloss.Color("245"), // gray

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ModalForeground: lipgloss.Color("252"),
	ModalBackground: lipgloss.Color("237"),
}
