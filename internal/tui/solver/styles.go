// ============================================================================
// meinALGEBRATRAINER (mAT) - Lokaler Algebra-Trainer
// ============================================================================
//
// Package:     solver
// Description: Styles for the interactive solver TUI
// Author:      Mike Stoffels
// Created:     2025-11-03
// License:     MIT
// ============================================================================

package solver

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorBgPanel   = lipgloss.Color("#1E293B") // Slate 800
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)
)

// Equation panel styles
var (
	EquationStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorBgPanel).
			Bold(true).
			Padding(0, 2).
			MarginTop(1).
			MarginBottom(1)

	SolvedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// Action list styles
var (
	ActionStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	ActionSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	ActionFormalStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)
)

// Status styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
