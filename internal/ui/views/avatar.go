// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatviews-tui/internal/model"
	"github.com/jeranaias/chatviews-tui/internal/ui/styles"
	"github.com/jeranaias/chatviews-tui/internal/util"
)

// ChatAvatar builds the avatar of a chat: the counterpart's initials for a
// one-to-one chat, "#" for a group, the name's initials otherwise.
func ChatAvatar(chat *model.Chat, dir model.Directory, size int, className string, onClick tea.Cmd) *Element {
	e := El(KindAvatar, Classes("avatar", "chat-avatar", className))
	e.Size = size
	e.OnClick = onClick

	key := chat.GID
	switch {
	case chat.IsOne2One():
		if other := chat.TheOtherOne(dir); other != nil {
			e.Text = util.Initials(other.DisplayName())
			key = other.Account
		} else {
			e.Text = "?"
		}
	case chat.IsGroup():
		e.Text = "#"
	default:
		e.Text = util.Initials(chat.Name)
	}
	e.Color = styles.AvatarColor(key)
	return e
}

// UserAvatar builds a member's avatar from the initials of the display name.
func UserAvatar(member *model.Member, size int, className string) *Element {
	e := Text(KindAvatar, Classes("avatar", "user-avatar", className), util.Initials(member.DisplayName()))
	e.Size = size
	e.Hint = member.Avatar
	e.Color = styles.AvatarColor(member.Account)
	return e
}

// StatusDot builds the presence indicator for status.
func StatusDot(status model.Status) *Element {
	name := status.String()
	e := Text(KindDot, Classes("status-dot", "status-"+name), "●")
	e.Hint = name
	e.Color = styles.PresenceColor(name)
	return e
}
