// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package views implements the replaceable chat views: the chat title bar, the
drag and drop upload overlay and the member list row.

Each view is a Component that maps props to an Element tree. The previous
render's snapshot is passed back into ShouldUpdate, so change detection reads
only what the last completed render observed:

	memo := views.NewMemo(views.ResolveChatTitle(registry, deps))
	el, _ := memo.View(views.ChatTitleProps{Chat: chat})
	out := el.Render(theme)

Views are resolved through a Registry keyed by "chats/chat-title",
"chats/chats-dnd-container" and "common/member-list-item". A host may Register
a substitute factory under a key before composing the screen.

Collaborators (localization, upload policy, content dispatch, notifications and
the profile dialog) come in through Deps.
*/
package views
