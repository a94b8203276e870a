// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// CLI STYLES
// =============================================================================

// outputRenderer renders CLI output with the profile picked by GetColorProfile,
// so NO_COLOR and piped output get plain text.
var outputRenderer = newOutputRenderer()

func newOutputRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(GetColorProfile())
	return r
}

var (
	// TitleStyle is used for command titles
	TitleStyle = outputRenderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")). // Cyan
			MarginBottom(1)

	// SectionStyle is used for config section headers
	SectionStyle = outputRenderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")) // White

	// LabelStyle is used for field labels
	LabelStyle = outputRenderer.NewStyle().
			Foreground(lipgloss.Color("245")). // Light gray
			Width(22)

	// ValueStyle is used for values
	ValueStyle = outputRenderer.NewStyle().
			Foreground(lipgloss.Color("252"))

	// SuccessStyle is used for confirmations
	SuccessStyle = outputRenderer.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// DimStyle is used for hints
	DimStyle = outputRenderer.NewStyle().
			Foreground(lipgloss.Color("242"))
)

// render applies style only when colors are enabled.
func render(style lipgloss.Style, text string) string {
	if !ColorsEnabled() {
		return text
	}
	return style.Render(text)
}
