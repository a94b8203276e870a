// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatviews-tui/internal/lang"
	"github.com/jeranaias/chatviews-tui/internal/model"
	"github.com/jeranaias/chatviews-tui/internal/ui/styles"
	"github.com/jeranaias/chatviews-tui/internal/ui/views"
)

// ShowProfileMsg asks the screen to open the profile dialog of a member.
type ShowProfileMsg struct {
	Member *model.Member
}

// ProfileOpener implements views.ProfileOpener by emitting ShowProfileMsg.
type ProfileOpener struct{}

// ShowProfile implements views.ProfileOpener.
func (ProfileOpener) ShowProfile(member *model.Member) tea.Cmd {
	return func() tea.Msg {
		return ShowProfileMsg{Member: member}
	}
}

var _ views.ProfileOpener = ProfileOpener{}

// renderProfile draws the modal profile box for member.
func renderProfile(theme *styles.Theme, l views.Localizer, member *model.Member) string {
	avatar := views.UserAvatar(member, 40, "").Render(theme)
	dot := views.StatusDot(member.Status).Render(theme)

	name := theme.TitleStrong.Render(member.DisplayName())
	header := lipgloss.JoinHorizontal(lipgloss.Center, avatar, " ", name)

	rows := []string{
		theme.DialogTitle.Render(l.String(lang.KeyProfileTitle)),
		"",
		header,
		"",
		theme.DialogLabel.Render(l.String(lang.KeyProfileAccount)+": ") + member.Account,
		theme.DialogLabel.Render(l.String(lang.KeyProfileStatus)+": ") + dot + " " + member.Status.String(),
	}
	if member.Deleted {
		rows = append(rows, theme.Label.Render(l.String(lang.KeyChatDeleted)))
	}
	rows = append(rows, "", theme.DialogHint.Render(l.String(lang.KeyProfileClose)))

	return theme.Dialog.Render(strings.Join(rows, "\n"))
}
