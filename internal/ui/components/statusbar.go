// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatviews-tui/internal/ui/styles"
	"github.com/jeranaias/chatviews-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom line of the chat screen: active chat, pending
// uploads, drop zone state and shortcuts.
type StatusBar struct {
	Activity      string // Rendered activity indicator, e.g. the upload spinner
	Locale        string // Active UI locale tag
	ChatName      string // Display name of the active chat
	Pending       int    // Items queued in the outbox
	Sent          int    // Items delivered this session
	DropZone      string // Watched inbox directory, empty when disabled
	Dragging      bool   // A drop is in progress
	Width         int    // Available width
	ShowShortcuts bool
}

// NewStatusBar creates a status bar with shortcuts shown.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		Width:         80,
		ShowShortcuts: true,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetOutbox updates the queued and delivered counters.
func (s *StatusBar) SetOutbox(pending, sent int) {
	s.Pending = pending
	s.Sent = sent
}

// View renders the status bar
func (s *StatusBar) View() string {
	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	var parts []string

	if s.Activity != "" {
		parts = append(parts, s.Activity)
	}

	if s.ChatName != "" {
		name := s.ChatName
		if s.Width < 60 {
			name = util.TruncateWidth(name, 12)
		}
		parts = append(parts, lipgloss.NewStyle().
			Foreground(styles.TextPrimary).
			Bold(true).
			Render(name))
	}

	if s.Dragging {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true).
			Render("DROP"))
	}

	outbox := "outbox " + fmtNumber(s.Pending)
	if s.Width >= 60 {
		outbox += " queued, " + fmtNumber(s.Sent) + " sent"
	}
	outboxStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
	if s.Pending > 0 {
		outboxStyle = outboxStyle.Foreground(styles.Amber)
	}
	parts = append(parts, outboxStyle.Render(outbox))

	if s.DropZone != "" && s.Width >= 100 {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Render("inbox: "+util.TruncateWidth(s.DropZone, 30)))
	}

	if s.Locale != "" && s.Width >= 60 {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Render(s.Locale))
	}

	left := strings.Join(parts, separator)

	right := ""
	if s.ShowShortcuts && s.Width >= 100 {
		right = lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Render("tab chat  enter profile  s status  esc cancel drop  q quit")
	}

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		right = ""
		gap = 1
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Padding(0, 1).
		Width(s.Width).
		Render(left + strings.Repeat(" ", gap) + right)
}
