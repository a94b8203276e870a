// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatviews-tui/internal/ui/styles"
)

// =============================================================================
// UPLOAD SPINNER
// =============================================================================

// UploadSpinner is the inline activity indicator shown while the outbox drains.
type UploadSpinner struct {
	spinner   spinner.Model
	active    bool
	startTime time.Time
}

// NewUploadSpinner creates an ASCII-compatible spinner.
func NewUploadSpinner() UploadSpinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	return UploadSpinner{spinner: s}
}

// Start begins the spinner. Starting an active spinner returns nil so only
// one tick loop runs.
func (u *UploadSpinner) Start() tea.Cmd {
	if u.active {
		return nil
	}
	u.active = true
	u.startTime = time.Now()
	return u.spinner.Tick
}

// Stop ends the spinner.
func (u *UploadSpinner) Stop() {
	u.active = false
}

// IsActive returns whether the spinner is running.
func (u *UploadSpinner) IsActive() bool {
	return u.active
}

// Elapsed returns the time since Start, or zero when stopped.
func (u *UploadSpinner) Elapsed() time.Duration {
	if !u.active || u.startTime.IsZero() {
		return 0
	}
	return time.Since(u.startTime)
}

// Update advances the animation. Ticks arriving after Stop end the loop.
func (u UploadSpinner) Update(msg tea.Msg) (UploadSpinner, tea.Cmd) {
	if !u.active {
		return u, nil
	}
	var cmd tea.Cmd
	u.spinner, cmd = u.spinner.Update(msg)
	return u, cmd
}

// View renders the spinner frame followed by label, or "" when stopped.
func (u UploadSpinner) View(label string) string {
	if !u.active {
		return ""
	}
	frame := lipgloss.NewStyle().
		Foreground(styles.Purple).
		Render(u.spinner.View())
	if label == "" {
		return frame
	}

	result := frame + " " + lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(label)
	if elapsed := u.Elapsed(); elapsed >= time.Second {
		result += lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Render(" (" + formatElapsed(elapsed) + ")")
	}
	return result
}

// formatElapsed formats a duration for display.
func formatElapsed(d time.Duration) string {
	seconds := int(d.Seconds())
	if seconds < 60 {
		return fmtNumber(seconds) + "s"
	}
	return fmtNumber(seconds/60) + "m " + fmtNumber(seconds%60) + "s"
}
