// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatviews-tui/internal/model"
	"github.com/jeranaias/chatviews-tui/internal/ui/styles"
)

func TestClasses(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"chat-title heading", ""}, "chat-title heading"},
		{[]string{"a", "  b  c ", "", "d"}, "a b c d"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Classes(tc.in...))
	}
}

func TestElementClassHelpers(t *testing.T) {
	e := El(KindRow, "item flex-middle")
	assert.True(t, e.HasClass("item"))

	e.AddClass("hover")
	e.AddClass("hover")
	assert.Equal(t, "item flex-middle hover", e.ClassName())

	e.RemoveClass("hover")
	assert.False(t, e.HasClass("hover"))
	assert.Equal(t, "item flex-middle", e.ClassName())

	var nilEl *Element
	assert.False(t, nilEl.HasClass("x"))
}

func TestElementFindAndWalk(t *testing.T) {
	leaf := Text(KindText, "leaf", "x")
	tree := El(KindColumn, "root", El(KindRow, "mid", nil, leaf), Text(KindLabel, "leaf", "y"))

	assert.Same(t, leaf, tree.Find("leaf"), "depth-first order")
	assert.Nil(t, tree.Find("missing"))
	assert.Equal(t, "y", tree.FindKind(KindLabel).Text)

	count := 0
	tree.Walk(func(*Element) bool { count++; return true })
	assert.Equal(t, 4, count, "nil children are dropped")
}

func TestAvatars(t *testing.T) {
	bob := model.NewMember("bob", "Bob Stone")
	avatar := UserAvatar(bob, 30, "rounded")
	assert.Equal(t, "BS", avatar.Text)
	assert.Equal(t, "avatar user-avatar rounded", avatar.ClassName())
	assert.Equal(t, styles.AvatarColor("bob"), avatar.Color)

	dot := StatusDot(model.StatusAway)
	assert.Equal(t, "●", dot.Text)
	assert.True(t, dot.HasClass("status-away"))
	assert.Equal(t, styles.PresenceAway, dot.Color)

	assert.Equal(t, 2, AvatarColumns(12))
	assert.Equal(t, 3, AvatarColumns(30))
}

func TestRenderChatTitleRow(t *testing.T) {
	f := newFixture()
	chat := model.NewOne2OneChat("me", "bob")
	chat.Public = true

	el, _ := NewChatTitle(f.deps).Render(ChatTitleProps{Chat: chat})
	theme := styles.NewTheme()
	theme.SetSize(80, 24)

	out := el.Render(theme)
	assert.Contains(t, out, "Bob Stone")
	assert.Contains(t, out, "◉")
	assert.NotContains(t, out, "\n")
}

func TestRenderDropOverlay(t *testing.T) {
	f := newFixture()
	dnd := NewChatsDndContainer(f.deps)
	theme := styles.NewTheme()

	idle, _ := dnd.Render(ChatsDndContainerProps{})
	out := idle.Render(theme)
	assert.Contains(t, out, "🐣")
	assert.NotContains(t, out, "🐥")

	dnd.Update(DragEnterMsg{})
	hover, _ := dnd.Render(ChatsDndContainerProps{})
	out = hover.Render(theme)
	assert.Contains(t, out, "🐥")
	assert.True(t, strings.Contains(out, "Drop files here"))
}

func TestRenderTruncatesText(t *testing.T) {
	e := Text(KindStrong, "", "a very long member name")
	e.Size = 8
	require.NotEmpty(t, e.Render(styles.NewTheme()))
	assert.Contains(t, e.Render(styles.NewTheme()), "a ver...")
}
