// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the chat screen: the Bubble Tea model that composes the
chat title bar, the member list and the drop overlay.

# Key Components

## Model (model.go)

The Model struct resolves its three views through a views.Registry and keeps
one memo per view instance, so a view is only re-rendered when its
ShouldUpdate check says so:
  - the title bar memo for the active chat
  - one member row memo per member ID
  - the drop container and its memo

## Update Loop (update.go)

Handles window resizes, key presses, bracketed paste of file paths, drop zone
watcher events and outbox drains. Pasted paths and files landing in the drop
zone both arrive as views.DropMsg.

## View Rendering (view.go)

Lays out the title bar, the member list (or the centred overlay while files
are dragged in, or the profile dialog), the toast stack, the status bar and
help.

# Usage

	m := chat.New(chat.Options{
	    Store:    store,
	    Registry: views.NewRegistry(log),
	    Outbox:   ob,
	    Watcher:  watcher,
	    Log:      log,
	})
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
*/
package chat
