// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the chat views.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// CHAT TITLE STYLES
	// ==========================================================================

	Heading     lipgloss.Style
	TitleLink   lipgloss.Style
	TitleStrong lipgloss.Style
	IconPublic  lipgloss.Style
	IconMute    lipgloss.Style
	Label       lipgloss.Style

	// ==========================================================================
	// AVATAR AND PRESENCE STYLES
	// ==========================================================================

	Avatar      lipgloss.Style
	AvatarState lipgloss.Style

	// ==========================================================================
	// DROP OVERLAY STYLES
	// ==========================================================================

	DropOverlay      lipgloss.Style
	DropOverlayHover lipgloss.Style
	DropMessage      lipgloss.Style

	// ==========================================================================
	// MEMBER LIST STYLES
	// ==========================================================================

	MemberItem      lipgloss.Style
	MemberItemFocus lipgloss.Style
	MemberTitle     lipgloss.Style

	// ==========================================================================
	// DIALOG STYLES
	// ==========================================================================

	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	DialogLabel lipgloss.Style
	DialogHint  lipgloss.Style

	// Hint - tooltips rendered inline
	Hint lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// NewThemeForMode creates a theme honoring a configured mode: "dark", "light"
// or "auto" (detect from the terminal).
func NewThemeForMode(mode string) *Theme {
	switch strings.ToLower(mode) {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}

	t := NewTheme()
	t.IsDark = lipgloss.HasDarkBackground()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Chat title
	t.Heading = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.TitleLink = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(Purple)

	t.TitleStrong = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.IconPublic = lipgloss.NewStyle().
		Foreground(Emerald)

	t.IconMute = lipgloss.NewStyle().
		Foreground(Brown)

	t.Label = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Dark).
		Padding(0, 1)

	// Avatars
	t.Avatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Align(lipgloss.Center)

	t.AvatarState = lipgloss.NewStyle().
		Underline(true)

	// Drop overlay
	t.DropOverlay = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.DropOverlayHover = t.DropOverlay.
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Purple).
		Background(SurfaceBright)

	t.DropMessage = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	// Member list
	t.MemberItem = lipgloss.NewStyle().
		Padding(0, 1)

	t.MemberItemFocus = t.MemberItem.
		Background(SurfaceBright)

	t.MemberTitle = lipgloss.NewStyle().
		Foreground(TextPrimary)

	// Dialog
	t.Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 3)

	t.DialogTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.DialogLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.DialogHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Hint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
