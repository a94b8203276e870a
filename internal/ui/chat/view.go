// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatviews-tui/internal/lang"
	"github.com/jeranaias/chatviews-tui/internal/ui/components"
	"github.com/jeranaias/chatviews-tui/internal/ui/views"
)

// =============================================================================
// VIEW TREES
// =============================================================================

// resetViews drops cached renders; used when the layout changes.
func (m *Model) resetViews() {
	m.title.Reset()
	m.dndMemo.Reset()
	for _, memo := range m.rows {
		memo.Reset()
	}
}

func (m *Model) checkProps(props any) {
	if !m.opts.StrictProps {
		return
	}
	if err := views.CheckProps(props); err != nil {
		m.log.Warn().Err(err).Msg("view props violate their contract")
	}
}

// pendingBadge returns the title children showing queued uploads. The same
// element is reused while the count is unchanged so the title is not redrawn.
func (m *Model) pendingBadge() *views.Element {
	pending := 0
	if m.opts.Outbox != nil {
		pending = m.opts.Outbox.Pending()
	}
	if pending == 0 {
		m.titleExtra = nil
		m.titleExtraPending = 0
		return nil
	}
	if m.titleExtra == nil || m.titleExtraPending != pending {
		m.titleExtra = views.Text(views.KindLabel, "small label rounded", m.opts.Lang.Format(lang.KeyOutboxPending, pending))
		m.titleExtraPending = pending
	}
	return m.titleExtra
}

func (m *Model) titleElement() *views.Element {
	chat := m.ActiveChat()
	if chat == nil {
		return nil
	}
	props := views.ChatTitleProps{Chat: chat, Children: m.pendingBadge()}
	m.checkProps(props)
	el, _ := m.title.View(props)
	return el
}

func (m *Model) memberElements() []*views.Element {
	members := m.Members()
	out := make([]*views.Element, 0, len(members))
	for i, member := range members {
		memo, ok := m.rows[member.ID]
		if !ok {
			memo = m.rowFactory()
			m.rows[member.ID] = memo
		}

		className := views.DefaultMemberClassName
		if i == m.cursor {
			className = views.Classes(className, "active")
		}
		props := views.MemberListItemProps{
			Member:     member,
			AvatarSize: m.opts.AvatarSize,
			ClassName:  className,
			OnClick:    ProfileOpener{}.ShowProfile(member),
		}
		m.checkProps(props)

		el, _ := memo.View(props)
		out = append(out, el)
	}
	return out
}

func (m *Model) selectedRow() *views.Element {
	rows := m.memberElements()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	return rows[m.cursor]
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m *Model) View() string {
	theme := m.opts.Theme

	header := theme.Hint.Render(m.opts.Lang.String(lang.KeyNoChats))
	if title := m.titleElement(); title != nil {
		header = title.Render(theme)
	}

	m.syncOutbox()
	m.statusBar.Activity = ""
	if m.statusBar.Pending > 0 {
		m.statusBar.Activity = m.spinner.View(m.opts.Lang.Format(lang.KeyOutboxPending, m.statusBar.Pending))
	}
	status := m.statusBar.View()
	helpView := m.help.View(m.keys)

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(helpView)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	m.headerHeight = lipgloss.Height(header)
	m.rowZones = m.rowZones[:0]

	var body string
	switch {
	case m.profile != nil:
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center,
			renderProfile(theme, m.opts.Lang, m.profile))
	case m.dragging:
		el, _ := m.dndMemo.View(views.ChatsDndContainerProps{})
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, el.Render(theme))
	default:
		body = m.renderMembers(bodyHeight, m.headerHeight)
	}

	if toasts := m.opts.Toasts.GetToasts(); len(toasts) > 0 {
		stack := components.RenderToastStack(toasts, 0, 0)
		body = lipgloss.JoinVertical(lipgloss.Right, body, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, stack))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, helpView)
}

// rowZone is the screen band a member row occupies, for mouse hit-testing.
type rowZone struct {
	top, bottom int // bottom is exclusive
	index       int
}

// renderMembers renders the visible rows and records where each one lands,
// starting at screen line top.
func (m *Model) renderMembers(height, top int) string {
	rows := m.memberElements()
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, row.Render(m.opts.Theme))
	}

	// Keep the cursor visible.
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		start = end
	}

	y := top
	for i := start; i < end; i++ {
		h := lipgloss.Height(lines[i])
		m.rowZones = append(m.rowZones, rowZone{top: y, bottom: y + h, index: i})
		y += h
	}
	return strings.Join(lines[start:end], "\n")
}
