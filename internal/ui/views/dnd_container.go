// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatviews-tui/internal/lang"
	"github.com/jeranaias/chatviews-tui/internal/model"
	"github.com/jeranaias/chatviews-tui/internal/upload"
)

// =============================================================================
// DRAG AND DROP MESSAGES
// =============================================================================

// DragEnterMsg reports that files started arriving over the chat area.
type DragEnterMsg struct{}

// DragLeaveMsg reports that the drag ended without a drop.
type DragLeaveMsg struct{}

// DropMsg delivers the dropped files.
type DropMsg struct {
	Files []upload.File
}

// DropResultMsg is emitted after a drop has been handled.
type DropResultMsg struct {
	Sent     int
	Rejected int
}

// =============================================================================
// DROP OVERLAY
// =============================================================================

// ChatsDndContainerProps are the inputs of the drop overlay.
type ChatsDndContainerProps struct {
	ClassName string
}

// ChatsDndContainerState is what the overlay observed during its last render.
type ChatsDndContainerState struct {
	Rendered  bool
	ClassName string
	Hover     bool
}

// DndContainerView is the contract of the drop overlay: a component that also
// consumes the drag and drop messages.
type DndContainerView interface {
	Component[ChatsDndContainerProps, ChatsDndContainerState]
	Update(msg tea.Msg) tea.Cmd
	Hovered() bool
}

// ChatsDndContainer is the overlay shown while files are dragged over a chat.
// Dropped files that fit the upload policy are sent to the active chat.
type ChatsDndContainer struct {
	deps  Deps
	hover bool
}

// NewChatsDndContainer creates the built-in drop overlay.
func NewChatsDndContainer(deps Deps) *ChatsDndContainer {
	return &ChatsDndContainer{deps: deps.withDefaults()}
}

// Hovered reports whether the hover marker is set.
func (c *ChatsDndContainer) Hovered() bool { return c.hover }

// Update handles the drag and drop lifecycle. Other messages are ignored.
func (c *ChatsDndContainer) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case DragEnterMsg:
		c.hover = true
	case DragLeaveMsg:
		c.hover = false
	case DropMsg:
		c.hover = false
		sent, rejected := c.HandleDrop(msg.Files)
		return func() tea.Msg {
			return DropResultMsg{Sent: sent, Rejected: rejected}
		}
	}
	return nil
}

// HandleDrop sends every file that fits the current user's upload limit and
// raises one warning for the whole drop if any file was too large.
func (c *ChatsDndContainer) HandleDrop(files []upload.File) (sent, rejected int) {
	if len(files) == 0 {
		return 0, 0
	}

	user := c.currentUser()
	for _, file := range files {
		if !c.deps.Policy.Fits(user, file.Size) {
			rejected++
			c.deps.Log.Debug().
				Str("module", "views.dnd").
				Str("file", file.Name).
				Int64("size", file.Size).
				Msg("dropped file exceeds upload limit")
			continue
		}
		c.deps.Sender.SendContentToChat(file, ContentTypeOf(file))
		sent++
	}

	if rejected > 0 {
		limit := upload.FormatBytes(c.deps.Policy.Limit(user))
		c.deps.Notifier.Notify(
			c.deps.Lang.Error(lang.ErrUploadFileTooLarge, limit),
			NotifyOptions{Type: "warning"},
		)
	}

	c.deps.Log.Info().
		Str("module", "views.dnd").
		Int("sent", sent).
		Int("rejected", rejected).
		Msg("handled drop")
	return sent, rejected
}

func (c *ChatsDndContainer) currentUser() *model.User {
	if c.deps.Directory == nil {
		return nil
	}
	return c.deps.Directory.CurrentUser()
}

// ShouldUpdate implements Component.
func (c *ChatsDndContainer) ShouldUpdate(prev ChatsDndContainerState, next ChatsDndContainerProps) bool {
	return !prev.Rendered || prev.ClassName != next.ClassName || prev.Hover != c.hover
}

// Render implements Component. Only the illustration matching the hover
// marker is drawn.
func (c *ChatsDndContainer) Render(next ChatsDndContainerProps) (*Element, ChatsDndContainerState) {
	state := ChatsDndContainerState{
		Rendered:  true,
		ClassName: next.ClassName,
		Hover:     c.hover,
	}

	picture := El(KindIllustration, "dnd-over")
	picture.Icon = "dnd-over"
	if c.hover {
		picture = El(KindIllustration, "dnd-hover")
		picture.Icon = "dnd-hover"
	}

	root := El(KindColumn, Classes("app-chats-dnd-container drag-n-drop-message center-content", next.ClassName),
		El(KindColumn, "text-center",
			picture,
			Text(KindHeading, "", c.deps.Lang.String(lang.KeyDropFileMessage)),
		),
	)
	if c.hover {
		root.AddClass("hover")
	}
	return root, state
}
