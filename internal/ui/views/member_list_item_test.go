// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatviews-tui/internal/model"
)

func TestMemberListItemDefaults(t *testing.T) {
	f := newFixture()
	el, state := NewMemberListItem(f.deps).Render(MemberListItemProps{Member: f.bob})

	assert.Equal(t, "app-member-list-item item flex-middle", el.ClassName())
	assert.Equal(t, DefaultMemberAvatarSize, state.AvatarSize)

	require.Len(t, el.Children, 3)
	assert.Equal(t, KindAvatar, el.Children[0].Kind)
	assert.Equal(t, 30, el.Children[0].Size)
	assert.Equal(t, KindDot, el.Children[1].Kind)

	title := el.Children[2]
	assert.Equal(t, "title", title.ClassName())
	assert.Equal(t, "Bob Stone", title.Text)
}

func TestMemberListItemTitleVariants(t *testing.T) {
	f := newFixture()
	view := NewMemberListItem(f.deps)

	prebuilt := Text(KindStrong, "custom", "Robert")
	el, _ := view.Render(MemberListItemProps{Member: f.bob, Title: PrebuiltTitle(prebuilt)})
	assert.Same(t, prebuilt, el.Children[2], "prebuilt title is used verbatim")
	assert.Equal(t, "custom", prebuilt.ClassName())

	el, _ = view.Render(MemberListItemProps{Member: f.bob, Title: TextTitle("Bobby")})
	assert.Equal(t, "title", el.Children[2].ClassName())
	assert.Equal(t, "Bobby", el.Children[2].Text)

	el, _ = view.Render(MemberListItemProps{Member: f.carol})
	assert.Equal(t, "carol", el.Children[2].Text, "falls back to the account")

	assert.True(t, TextTitle("").IsDefault())
	assert.True(t, PrebuiltTitle(nil).IsDefault())
}

func TestMemberListItemOptions(t *testing.T) {
	f := newFixture()
	extra := Text(KindLabel, "", "admin")
	var clicked tea.Cmd = func() tea.Msg { return "clicked" }

	el, _ := NewMemberListItem(f.deps).Render(MemberListItemProps{
		Member:          f.bob,
		AvatarSize:      48,
		HideStatusDot:   true,
		ClassName:       "compact",
		AvatarClassName: "rounded",
		Children:        extra,
		OnClick:         clicked,
	})

	assert.Equal(t, "app-member-list-item item compact", el.ClassName())
	assert.Nil(t, el.FindKind(KindDot))
	require.Len(t, el.Children, 3)
	assert.Equal(t, 48, el.Children[0].Size)
	assert.True(t, el.Children[0].HasClass("rounded"))
	assert.Same(t, extra, el.Children[2])
	require.NotNil(t, el.OnClick)
	assert.Equal(t, "clicked", el.OnClick())
}

func TestMemberListItemShouldUpdate(t *testing.T) {
	f := newFixture()
	view := NewMemberListItem(f.deps)
	children := Text(KindText, "", "x")
	title := TextTitle("Bobby")
	props := MemberListItemProps{Member: f.bob, Children: children, Title: title}

	assert.True(t, view.ShouldUpdate(MemberListItemState{}, props))

	_, state := view.Render(props)
	assert.False(t, view.ShouldUpdate(state, props))

	// Explicit defaults compare equal to omitted ones.
	same := props
	same.AvatarSize = DefaultMemberAvatarSize
	same.ClassName = DefaultMemberClassName
	assert.False(t, view.ShouldUpdate(state, same))

	changes := map[string]func(p MemberListItemProps) MemberListItemProps{
		"children":     func(p MemberListItemProps) MemberListItemProps { p.Children = Text(KindText, "", "x"); return p },
		"class name":   func(p MemberListItemProps) MemberListItemProps { p.ClassName = "wide"; return p },
		"avatar size":  func(p MemberListItemProps) MemberListItemProps { p.AvatarSize = 40; return p },
		"status dot":   func(p MemberListItemProps) MemberListItemProps { p.HideStatusDot = true; return p },
		"avatar class": func(p MemberListItemProps) MemberListItemProps { p.AvatarClassName = "sq"; return p },
		"title":        func(p MemberListItemProps) MemberListItemProps { p.Title = TextTitle("Rob"); return p },
		"member":       func(p MemberListItemProps) MemberListItemProps { p.Member = f.carol; return p },
	}
	for name, change := range changes {
		t.Run(name, func(t *testing.T) {
			assert.True(t, view.ShouldUpdate(state, change(props)))
		})
	}
}

func TestMemberListItemUpdateCounterOnly(t *testing.T) {
	f := newFixture()
	memo := NewMemo[MemberListItemProps, MemberListItemState](NewMemberListItem(f.deps))
	props := MemberListItemProps{Member: f.bob}

	el, rendered := memo.View(props)
	require.True(t, rendered)
	assert.Equal(t, "status-unverified", el.Children[1].Classes[1])

	_, rendered = memo.View(props)
	assert.False(t, rendered)

	f.bob.SetStatus(model.StatusOnline)
	el, rendered = memo.View(props)
	assert.True(t, rendered)
	assert.Equal(t, "status-online", el.Children[1].Classes[1])
	assert.Equal(t, f.bob.UpdateID, memo.State().MemberUpdateID)
	assert.Equal(t, 2, memo.Renders())
}
