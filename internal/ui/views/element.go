// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatviews-tui/internal/ui/styles"
	"github.com/jeranaias/chatviews-tui/internal/util"
)

// =============================================================================
// ELEMENT TREE
// =============================================================================

// Kind identifies how an Element is drawn.
type Kind string

const (
	KindRow          Kind = "row"          // children joined horizontally
	KindColumn       Kind = "column"       // children stacked vertically
	KindBox          Kind = "box"          // inline container
	KindText         Kind = "text"         // plain text
	KindStrong       Kind = "strong"       // bold text
	KindLink         Kind = "link"         // clickable text
	KindHeading      Kind = "heading"      // large message text
	KindIcon         Kind = "icon"         // named glyph
	KindLabel        Kind = "label"        // small inverted badge
	KindAvatar       Kind = "avatar"       // initials on a coloured block
	KindDot          Kind = "dot"          // presence indicator
	KindIllustration Kind = "illustration" // named picture
	KindSpacer       Kind = "spacer"       // takes the remaining row width
)

// Element is one node of a rendered view.
//
// Views build Elements from props; the host draws them with Render. Elements
// are compared by pointer in change detection, so a view that wants to be
// skipped must be handed the same *Element again.
type Element struct {
	Kind     Kind
	Classes  []string
	Text     string
	Hint     string // tooltip text
	Icon     string // icon or illustration name
	Size     int    // avatar size in pixels, or max columns for text
	Color    lipgloss.TerminalColor
	OnClick  tea.Cmd
	Children []*Element
}

// El creates an element of kind with a space-separated class list.
func El(kind Kind, className string, children ...*Element) *Element {
	return &Element{
		Kind:     kind,
		Classes:  strings.Fields(className),
		Children: compact(children),
	}
}

// Text creates a text-like element.
func Text(kind Kind, className, text string) *Element {
	e := El(kind, className)
	e.Text = text
	return e
}

// Classes joins the non-empty class names with single spaces.
func Classes(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, strings.Fields(name)...)
	}
	return strings.Join(parts, " ")
}

func compact(children []*Element) []*Element {
	var out []*Element
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// ClassName returns the element's classes as one string.
func (e *Element) ClassName() string {
	return strings.Join(e.Classes, " ")
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	if e == nil {
		return false
	}
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds class if it is not already present.
func (e *Element) AddClass(class string) {
	if class == "" || e.HasClass(class) {
		return
	}
	e.Classes = append(e.Classes, class)
}

// RemoveClass removes every occurrence of class.
func (e *Element) RemoveClass(class string) {
	kept := e.Classes[:0]
	for _, c := range e.Classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	e.Classes = kept
}

// Walk visits e and its descendants depth-first. Returning false from fn
// skips the node's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// Find returns the first element in the tree carrying class, or nil.
func (e *Element) Find(class string) *Element {
	var found *Element
	e.Walk(func(n *Element) bool {
		if found != nil {
			return false
		}
		if n.HasClass(class) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindKind returns the first element of kind, or nil.
func (e *Element) FindKind(kind Kind) *Element {
	var found *Element
	e.Walk(func(n *Element) bool {
		if found != nil {
			return false
		}
		if n.Kind == kind {
			found = n
			return false
		}
		return true
	})
	return found
}

// Clickables returns the elements with a click handler, in tree order.
func (e *Element) Clickables() []*Element {
	var out []*Element
	e.Walk(func(n *Element) bool {
		if n.OnClick != nil {
			out = append(out, n)
		}
		return true
	})
	return out
}

// =============================================================================
// RENDERING
// =============================================================================

var iconGlyphs = map[string]string{
	"access-point": "◉",
	"bell-off":     "⊘",
}

var illustrations = map[string]string{
	"dnd-over":  "🐣",
	"dnd-hover": "🐥",
}

// AvatarColumns converts an avatar size in pixels to terminal columns.
func AvatarColumns(size int) int {
	cols := size / 10
	if cols < 2 {
		cols = 2
	}
	return cols
}

// Render draws the element tree with the theme's styles.
func (e *Element) Render(theme *styles.Theme) string {
	if e == nil {
		return ""
	}

	switch e.Kind {
	case KindRow:
		return e.renderRow(theme)
	case KindColumn:
		return e.renderColumn(theme)
	case KindBox:
		return e.renderBox(theme)
	case KindSpacer:
		return " "
	case KindStrong:
		return theme.TitleStrong.Render(e.fitText())
	case KindLink:
		return theme.TitleLink.Render(e.fitText())
	case KindHeading:
		return theme.DropMessage.Render(e.Text)
	case KindLabel:
		return theme.Label.Render(e.Text)
	case KindIcon:
		glyph, ok := iconGlyphs[e.Icon]
		if !ok {
			glyph = "?"
		}
		return e.colored(lipgloss.NewStyle()).Render(glyph)
	case KindIllustration:
		return illustrations[e.Icon]
	case KindDot:
		return e.colored(lipgloss.NewStyle()).Render(e.Text)
	case KindAvatar:
		cols := AvatarColumns(e.Size)
		style := theme.Avatar.Width(cols)
		if e.Color != nil {
			style = style.Background(e.Color)
		}
		if e.HasClass("state") {
			style = style.Inherit(theme.AvatarState)
		}
		return style.Render(util.TruncateWidth(e.Text, cols))
	default:
		return e.colored(lipgloss.NewStyle()).Render(e.fitText())
	}
}

func (e *Element) colored(style lipgloss.Style) lipgloss.Style {
	if e.Color != nil {
		return style.Foreground(e.Color)
	}
	return style
}

func (e *Element) fitText() string {
	if e.Size > 0 {
		return util.TruncateWidth(e.Text, e.Size)
	}
	return e.Text
}

func (e *Element) renderChildren(theme *styles.Theme) []string {
	parts := make([]string, 0, len(e.Children))
	for _, c := range e.Children {
		parts = append(parts, c.Render(theme))
	}
	return parts
}

func (e *Element) renderRow(theme *styles.Theme) string {
	style := lipgloss.NewStyle()
	switch {
	case e.HasClass("heading"):
		style = theme.Heading
	case e.HasClass("app-member-list-item") && e.HasClass("active"):
		style = theme.MemberItemFocus
	case e.HasClass("app-member-list-item"):
		style = theme.MemberItem
	}

	avail := e.Size
	if avail <= 0 {
		avail = theme.Width
	}
	avail -= style.GetHorizontalFrameSize()

	parts := make([]string, 0, len(e.Children))
	spacer := -1
	used := 0
	for i, c := range e.Children {
		if c.Kind == KindSpacer && spacer < 0 {
			spacer = len(parts)
			parts = append(parts, "")
			continue
		}
		if i > 0 {
			used++
		}
		s := c.Render(theme)
		used += lipgloss.Width(s)
		parts = append(parts, s)
	}
	if spacer >= 0 {
		fill := avail - used
		if fill < 1 {
			fill = 1
		}
		parts[spacer] = strings.Repeat(" ", fill)
	}

	joined := make([]string, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 && i != spacer && i-1 != spacer {
			joined = append(joined, " ")
		}
		joined = append(joined, p)
	}
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Center, joined...))
}

func (e *Element) renderColumn(theme *styles.Theme) string {
	style := lipgloss.NewStyle()
	if e.HasClass("app-chats-dnd-container") {
		style = theme.DropOverlay
		if e.HasClass("hover") {
			style = theme.DropOverlayHover
		}
	}

	align := lipgloss.Left
	if e.HasClass("center-content") || e.HasClass("text-center") {
		align = lipgloss.Center
	}
	return style.Render(lipgloss.JoinVertical(align, e.renderChildren(theme)...))
}

func (e *Element) renderBox(theme *styles.Theme) string {
	style := lipgloss.NewStyle()
	if e.HasClass("title") {
		style = theme.MemberTitle
	}
	if len(e.Children) > 0 {
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Center, e.renderChildren(theme)...))
	}
	return style.Render(e.fitText())
}
