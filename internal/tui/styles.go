// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#2B83BA")
	tipFg     = lipgloss.Color("#FDAE61")

	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	tipStyle   = lipgloss.NewStyle().Foreground(tipFg).Bold(true)
)
