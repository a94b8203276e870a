// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the chatviews TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Purple - Primary accent, links, focus
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Cyan - Brand color, informational toasts
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Success, public group badge
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Brown - Muted-chat badge
var Brown = lipgloss.AdaptiveColor{Light: "#92400E", Dark: "#D6A77A"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// SurfaceDim - Header and label backgrounds
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// SurfaceBright - Hovered drop target
var SurfaceBright = lipgloss.AdaptiveColor{Light: "#FAFAFA", Dark: "#313244"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// Dark - Dark label background
var Dark = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#45475A"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// =============================================================================
// PRESENCE COLORS
// =============================================================================

var (
	PresenceOnline  = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}
	PresenceBusy    = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	PresenceAway    = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}
	PresenceOffline = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}
)

// PresenceColor returns the dot color for a status name.
func PresenceColor(status string) lipgloss.AdaptiveColor {
	switch status {
	case "online":
		return PresenceOnline
	case "busy":
		return PresenceBusy
	case "away":
		return PresenceAway
	default:
		return PresenceOffline
	}
}

// =============================================================================
// AVATAR PALETTE
// =============================================================================

// AvatarPalette is cycled by account hash so a member keeps the same color.
var AvatarPalette = []lipgloss.AdaptiveColor{
	{Light: "#7C3AED", Dark: "#8B5CF6"},
	{Light: "#0891B2", Dark: "#06B6D4"},
	{Light: "#059669", Dark: "#10B981"},
	{Light: "#D97706", Dark: "#F59E0B"},
	{Light: "#E11D48", Dark: "#F43F5E"},
	{Light: "#2563EB", Dark: "#3B82F6"},
}

// AvatarColor picks a palette entry for key.
func AvatarColor(key string) lipgloss.AdaptiveColor {
	var h uint32 = 2166136261
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= 16777619
	}
	return AvatarPalette[h%uint32(len(AvatarPalette))]
}

// =============================================================================
// ACCESSIBILITY: Shapes alongside colors
// =============================================================================

// StatusIndicatorSet contains text indicators for toast kinds.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Warning string
	Info    string
}

// StatusIndicators are ASCII-only so they survive any terminal font.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
}
