// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatviews-tui/internal/lang"
	"github.com/jeranaias/chatviews-tui/internal/model"
	"github.com/jeranaias/chatviews-tui/internal/ui/styles"
)

// =============================================================================
// CHAT TITLE
// =============================================================================

// ChatTitleProps are the inputs of the chat title bar.
type ChatTitleProps struct {
	ClassName string
	Chat      *model.Chat `validate:"required"`
	Children  *Element
}

// ChatTitleState is what the title bar observed during its last render.
type ChatTitleState struct {
	Rendered            bool
	ClassName           string
	Children            *Element
	Chat                *model.Chat
	ChatUpdateID        int64
	HasCounterpart      bool
	CounterpartUpdateID int64
}

// ChatTitle renders the header row of a chat: avatar, presence, name and
// status badges.
type ChatTitle struct {
	deps Deps
}

// NewChatTitle creates the built-in chat title view.
func NewChatTitle(deps Deps) *ChatTitle {
	return &ChatTitle{deps: deps.withDefaults()}
}

func (t *ChatTitle) counterpart(chat *model.Chat) *model.Member {
	if chat == nil || !chat.IsOne2One() {
		return nil
	}
	return chat.TheOtherOne(t.deps.Directory)
}

// ShouldUpdate implements Component. Group chats never look at participants.
func (t *ChatTitle) ShouldUpdate(prev ChatTitleState, next ChatTitleProps) bool {
	if !prev.Rendered {
		return true
	}
	if prev.ClassName != next.ClassName || prev.Children != next.Children || prev.Chat != next.Chat {
		return true
	}
	if next.Chat == nil {
		return false
	}
	if next.Chat.UpdateID != prev.ChatUpdateID {
		return true
	}
	if next.Chat.IsOne2One() {
		other := t.counterpart(next.Chat)
		if (other != nil) != prev.HasCounterpart {
			return true
		}
		return other != nil && other.UpdateID != prev.CounterpartUpdateID
	}
	return false
}

// Render implements Component.
func (t *ChatTitle) Render(next ChatTitleProps) (*Element, ChatTitleState) {
	state := ChatTitleState{
		Rendered:  true,
		ClassName: next.ClassName,
		Children:  next.Children,
		Chat:      next.Chat,
	}

	chat := next.Chat
	if chat == nil {
		t.deps.Log.Warn().Str("module", "views.chat-title").Msg("rendered without a chat")
		return El(KindRow, Classes("chat-title heading", next.ClassName), next.Children), state
	}
	state.ChatUpdateID = chat.UpdateID

	dir := t.deps.Directory
	other := t.counterpart(chat)

	var onTitleClick tea.Cmd
	if other != nil {
		state.HasCounterpart = true
		state.CounterpartUpdateID = other.UpdateID
		if t.deps.Profiles != nil {
			onTitleClick = t.deps.Profiles.ShowProfile(other)
		}
	}

	avatarClass := ""
	if other != nil {
		avatarClass = "state"
	}

	chatName := chat.DisplayName(dir, true)

	var name *Element
	if other != nil {
		name = Text(KindLink, "strong rounded title flex-none text-primary", chatName)
		name.OnClick = onTitleClick
	} else {
		name = Text(KindStrong, "title flex-none", chatName)
	}

	row := El(KindRow, Classes("chat-title heading", next.ClassName),
		ChatAvatar(chat, dir, 24, avatarClass, onTitleClick),
	)
	if other != nil {
		row.Children = append(row.Children, StatusDot(other.Status))
	}
	row.Children = append(row.Children, name)

	if chat.Public {
		row.Children = append(row.Children, t.badge("text-green", "access-point", lang.KeyChatPublic))
	}
	if chat.Mute {
		row.Children = append(row.Children, t.badge("text-brown", "bell-off", lang.KeyChatMute))
	}
	if chat.Dismissed {
		row.Children = append(row.Children, Text(KindLabel, "small label rounded dark", t.deps.Lang.String(lang.KeyGroupDismissed)))
	}
	if chat.IsDeleteOne2One(dir) {
		row.Children = append(row.Children, Text(KindLabel, "small label rounded dark", t.deps.Lang.String(lang.KeyChatDeleted)))
	}

	row.Children = append(row.Children, El(KindSpacer, "flex-auto"))
	if next.Children != nil {
		row.Children = append(row.Children, next.Children)
	}

	return row, state
}

func (t *ChatTitle) badge(colorClass, icon, hintKey string) *Element {
	glyph := El(KindIcon, colorClass)
	glyph.Icon = icon
	switch colorClass {
	case "text-green":
		glyph.Color = styles.Emerald
	case "text-brown":
		glyph.Color = styles.Brown
	}

	wrap := El(KindBox, "hint--bottom", glyph)
	wrap.Hint = t.deps.Lang.String(hintKey)
	return wrap
}
