// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatviews-tui/internal/upload"
)

func file(name, mime string, size int64) upload.File {
	return upload.File{Path: "/tmp/" + name, Name: name, Size: size, Type: mime}
}

// =============================================================================
// DROP HANDLING
// =============================================================================

func TestDropDispatchesByMimeType(t *testing.T) {
	f := newFixture()
	dnd := NewChatsDndContainer(f.deps)

	cmd := dnd.Update(DropMsg{Files: []upload.File{
		file("photo.png", "image/png", 10),
		file("paper.pdf", "application/pdf", 20),
	}})

	require.Len(t, f.sender.sent, 2)
	assert.Equal(t, ContentImage, f.sender.sent[0].Tag)
	assert.Equal(t, "photo.png", f.sender.sent[0].File.Name)
	assert.Equal(t, ContentFile, f.sender.sent[1].Tag)
	assert.Empty(t, f.notifier.calls)

	require.NotNil(t, cmd)
	assert.Equal(t, DropResultMsg{Sent: 2}, cmd())
}

func TestDropAggregatesOversizeWarning(t *testing.T) {
	tests := []struct {
		name     string
		sizes    []int64
		sent     int
		warnings int
	}{
		{"none too large", []int64{1, 500, 1000}, 3, 0},
		{"one too large", []int64{1, 1001, 10}, 2, 1},
		{"all too large", []int64{5000, 1001, 9999}, 0, 1},
		{"many mixed", []int64{2000, 1, 3000, 2, 4000}, 2, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			dnd := NewChatsDndContainer(f.deps)

			files := make([]upload.File, 0, len(tc.sizes))
			for _, size := range tc.sizes {
				files = append(files, file("f.bin", "application/octet-stream", size))
			}

			sent, rejected := dnd.HandleDrop(files)
			assert.Equal(t, tc.sent, sent)
			assert.Equal(t, len(tc.sizes)-tc.sent, rejected)
			assert.Len(t, f.sender.sent, tc.sent)
			require.Len(t, f.notifier.calls, tc.warnings)

			if tc.warnings > 0 {
				call := f.notifier.calls[0]
				assert.Equal(t, "warning", call.Opts.Type)
				assert.Contains(t, call.Message, "1000 B")
			}
		})
	}
}

func TestDropUsesDefaultLimitWithoutUserLimit(t *testing.T) {
	f := newFixture()
	f.store.CurrentUser().UploadFileSize = 0
	dnd := NewChatsDndContainer(f.deps)

	dnd.HandleDrop([]upload.File{file("big.iso", "application/octet-stream", upload.DefaultLimitBytes+1)})

	require.Len(t, f.notifier.calls, 1)
	assert.Contains(t, f.notifier.calls[0].Message, "10 MiB")
}

func TestDropEmptyIsNoop(t *testing.T) {
	f := newFixture()
	dnd := NewChatsDndContainer(f.deps)

	sent, rejected := dnd.HandleDrop(nil)
	assert.Zero(t, sent)
	assert.Zero(t, rejected)
	assert.Empty(t, f.notifier.calls)
}

// =============================================================================
// HOVER MARKER
// =============================================================================

func TestDragEnterLeaveTogglesHover(t *testing.T) {
	f := newFixture()
	dnd := NewChatsDndContainer(f.deps)
	memo := NewMemo[ChatsDndContainerProps, ChatsDndContainerState](dnd)
	props := ChatsDndContainerProps{ClassName: "dock"}

	el, rendered := memo.View(props)
	assert.True(t, rendered)
	assert.False(t, el.HasClass("hover"))
	assert.Equal(t, "dnd-over", el.FindKind(KindIllustration).Icon)

	assert.Nil(t, dnd.Update(DragEnterMsg{}))
	assert.True(t, dnd.Hovered())
	el, rendered = memo.View(props)
	assert.True(t, rendered)
	assert.True(t, el.HasClass("hover"))
	assert.Equal(t, "dnd-hover", el.FindKind(KindIllustration).Icon)

	dnd.Update(DragLeaveMsg{})
	assert.False(t, dnd.Hovered())
	el, rendered = memo.View(props)
	assert.True(t, rendered)
	assert.False(t, el.HasClass("hover"))

	_, rendered = memo.View(props)
	assert.False(t, rendered, "no change since last render")

	dnd.Update(DropMsg{Files: []upload.File{file("a.txt", "text/plain", 1)}})
	assert.False(t, dnd.Hovered())
	assert.Len(t, f.sender.sent, 1)
	assert.Empty(t, f.notifier.calls)
}

func TestDropClearsHover(t *testing.T) {
	f := newFixture()
	dnd := NewChatsDndContainer(f.deps)

	dnd.Update(DragEnterMsg{})
	dnd.Update(DropMsg{})
	assert.False(t, dnd.Hovered())
}

func TestDndRenderClasses(t *testing.T) {
	f := newFixture()
	dnd := NewChatsDndContainer(f.deps)

	el, state := dnd.Render(ChatsDndContainerProps{ClassName: "dock"})
	assert.Equal(t, "app-chats-dnd-container drag-n-drop-message center-content dock", el.ClassName())
	assert.True(t, state.Rendered)

	heading := el.FindKind(KindHeading)
	require.NotNil(t, heading)
	assert.Equal(t, "Drop files here to send them to the current chat", heading.Text)

	assert.True(t, dnd.ShouldUpdate(state, ChatsDndContainerProps{ClassName: "other"}))
	assert.False(t, dnd.ShouldUpdate(state, ChatsDndContainerProps{ClassName: "dock"}))
}
