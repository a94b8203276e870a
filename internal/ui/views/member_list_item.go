// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatviews-tui/internal/model"
)

// =============================================================================
// TITLE VARIANT
// =============================================================================

type titleKind uint8

const (
	titleDefault titleKind = iota
	titlePrebuilt
	titleText
)

// Title is the title slot of a member row. The zero value shows the member's
// display name.
type Title struct {
	kind    titleKind
	element *Element
	text    string
}

// PrebuiltTitle uses el verbatim as the row title.
func PrebuiltTitle(el *Element) Title {
	if el == nil {
		return Title{}
	}
	return Title{kind: titlePrebuilt, element: el}
}

// TextTitle shows text inside the standard title container. An empty text
// falls back to the display name.
func TextTitle(text string) Title {
	if text == "" {
		return Title{}
	}
	return Title{kind: titleText, text: text}
}

// IsDefault reports whether the title falls back to the display name.
func (t Title) IsDefault() bool { return t.kind == titleDefault }

func (t Title) view(member *model.Member) *Element {
	switch t.kind {
	case titlePrebuilt:
		return t.element
	case titleText:
		return Text(KindBox, "title", t.text)
	default:
		return Text(KindBox, "title", member.DisplayName())
	}
}

// =============================================================================
// MEMBER LIST ITEM
// =============================================================================

// Default prop values of MemberListItem.
const (
	DefaultMemberAvatarSize = 30
	DefaultMemberClassName  = "flex-middle"
)

// MemberListItemProps are the inputs of a member row. Zero AvatarSize and
// empty ClassName take the defaults; the status dot is shown unless
// HideStatusDot is set.
type MemberListItemProps struct {
	Member          *model.Member `validate:"required"`
	AvatarSize      int           `validate:"gte=0"`
	HideStatusDot   bool
	ClassName       string
	AvatarClassName string
	Title           Title
	Children        *Element
	OnClick         tea.Cmd
}

// WithDefaults returns p with unset fields replaced by their defaults.
func (p MemberListItemProps) WithDefaults() MemberListItemProps {
	if p.AvatarSize <= 0 {
		p.AvatarSize = DefaultMemberAvatarSize
	}
	if p.ClassName == "" {
		p.ClassName = DefaultMemberClassName
	}
	return p
}

// MemberListItemState is what a member row observed during its last render.
type MemberListItemState struct {
	Rendered        bool
	Member          *model.Member
	MemberUpdateID  int64
	AvatarSize      int
	HideStatusDot   bool
	ClassName       string
	AvatarClassName string
	Title           Title
	Children        *Element
}

// MemberListItem renders one clickable member row.
type MemberListItem struct {
	deps Deps
}

// NewMemberListItem creates the built-in member row view.
func NewMemberListItem(deps Deps) *MemberListItem {
	return &MemberListItem{deps: deps.withDefaults()}
}

// ShouldUpdate implements Component. The click handler is not compared;
// commands are functions and carry no identity.
func (v *MemberListItem) ShouldUpdate(prev MemberListItemState, next MemberListItemProps) bool {
	if !prev.Rendered {
		return true
	}
	next = next.WithDefaults()
	if prev.Children != next.Children ||
		prev.ClassName != next.ClassName ||
		prev.AvatarSize != next.AvatarSize ||
		prev.HideStatusDot != next.HideStatusDot ||
		prev.AvatarClassName != next.AvatarClassName ||
		prev.Title != next.Title ||
		prev.Member != next.Member {
		return true
	}
	return next.Member != nil && next.Member.UpdateID != prev.MemberUpdateID
}

// Render implements Component.
func (v *MemberListItem) Render(next MemberListItemProps) (*Element, MemberListItemState) {
	props := next.WithDefaults()
	state := MemberListItemState{
		Rendered:        true,
		Member:          props.Member,
		AvatarSize:      props.AvatarSize,
		HideStatusDot:   props.HideStatusDot,
		ClassName:       props.ClassName,
		AvatarClassName: props.AvatarClassName,
		Title:           props.Title,
		Children:        props.Children,
	}

	row := El(KindRow, Classes("app-member-list-item item", props.ClassName))
	row.OnClick = props.OnClick

	member := props.Member
	if member == nil {
		v.deps.Log.Warn().Str("module", "views.member-list-item").Msg("rendered without a member")
		return row, state
	}
	state.MemberUpdateID = member.UpdateID

	row.Children = append(row.Children, UserAvatar(member, props.AvatarSize, props.AvatarClassName))
	if !props.HideStatusDot {
		row.Children = append(row.Children, StatusDot(member.Status))
	}
	row.Children = append(row.Children, props.Title.view(member))
	if props.Children != nil {
		row.Children = append(row.Children, props.Children)
	}
	return row, state
}
