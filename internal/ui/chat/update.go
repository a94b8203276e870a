// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatviews-tui/internal/dropzone"
	"github.com/jeranaias/chatviews-tui/internal/lang"
	"github.com/jeranaias/chatviews-tui/internal/model"
	"github.com/jeranaias/chatviews-tui/internal/outbox"
	"github.com/jeranaias/chatviews-tui/internal/ui/components"
	"github.com/jeranaias/chatviews-tui/internal/ui/views"
	"github.com/jeranaias/chatviews-tui/internal/upload"
)

// =============================================================================
// MESSAGES
// =============================================================================

// OutboxDrainedMsg reports the end of an outbox drain.
type OutboxDrainedMsg struct {
	Delivered int
	Err       error
}

// watchedMsg wraps a message coming from the drop zone watcher so the screen
// knows to wait for the next one.
type watchedMsg struct {
	inner tea.Msg
}

func (m *Model) waitForWatcher() tea.Cmd {
	w := m.opts.Watcher
	if w == nil {
		return nil
	}
	next := dropzone.WaitForEvent(w)
	return func() tea.Msg {
		return watchedMsg{inner: next()}
	}
}

// =============================================================================
// INIT / UPDATE
// =============================================================================

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(components.ToastTickCmd(), m.waitForWatcher())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.opts.Theme.SetSize(msg.Width, msg.Height)
		m.statusBar.SetWidth(msg.Width)
		m.help.Width = msg.Width
		m.resetViews()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case components.ToastTickMsg:
		m.opts.Toasts.TickToasts()
		return m, components.ToastTickCmd()

	case tea.KeyMsg:
		if msg.Paste {
			return m, m.handlePaste(string(msg.Runes))
		}
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case watchedMsg:
		if _, closed := msg.inner.(dropzone.WatcherClosedMsg); closed {
			m.log.Info().Msg("drop zone closed")
			return m, nil
		}
		_, cmd := m.Update(msg.inner)
		return m, tea.Batch(cmd, m.waitForWatcher())

	case views.DragEnterMsg, views.DragLeaveMsg, views.DropMsg:
		cmd := m.dnd.Update(msg)
		m.dragging = m.dnd.Hovered()
		m.statusBar.Dragging = m.dragging
		return m, cmd

	case views.DropResultMsg:
		m.syncOutbox()
		if msg.Sent > 0 {
			return m, m.startDrain()
		}
		return m, nil

	case OutboxDrainedMsg:
		return m, m.handleDrained(msg)

	case ShowProfileMsg:
		m.profile = msg.Member
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.profile != nil {
			m.profile = nil
			return m, nil
		}
		if m.dragging {
			return m.Update(views.DragLeaveMsg{})
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.opts.Toasts.DismissNewest()
		return m, nil
	}

	if m.profile != nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.Members())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.NextChat):
		m.selectChat(m.active + 1)

	case key.Matches(msg, m.keys.PrevChat):
		m.selectChat(m.active - 1)

	case key.Matches(msg, m.keys.Open):
		if row := m.selectedRow(); row != nil {
			return m, row.OnClick
		}

	case key.Matches(msg, m.keys.Profile):
		if title := m.titleElement(); title != nil {
			if clicks := title.Clickables(); len(clicks) > 0 {
				return m, clicks[0].OnClick
			}
		}

	case key.Matches(msg, m.keys.CycleState):
		m.cycleSelectedStatus()
	}

	return m, nil
}

// handleMouse maps a left click onto the element under the pointer, using the
// layout recorded by the last View.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.profile != nil || m.dragging {
		return nil
	}

	if msg.Y < m.headerHeight {
		if title := m.titleElement(); title != nil {
			if clicks := title.Clickables(); len(clicks) > 0 {
				return clicks[0].OnClick
			}
		}
		return nil
	}

	for _, zone := range m.rowZones {
		if msg.Y >= zone.top && msg.Y < zone.bottom {
			m.cursor = zone.index
			if row := m.selectedRow(); row != nil {
				return row.OnClick
			}
			return nil
		}
	}
	return nil
}

// handlePaste treats pasted file paths as a drop.
func (m *Model) handlePaste(text string) tea.Cmd {
	paths := dropzone.ParsePaths(text)
	if len(paths) == 0 {
		return nil
	}

	m.Update(views.DragEnterMsg{})
	log := m.log
	return func() tea.Msg {
		files, errs := upload.DescribeAll(paths)
		for _, err := range errs {
			log.Warn().Err(err).Msg("skipping pasted path")
		}
		return views.DropMsg{Files: files}
	}
}

func (m *Model) cycleSelectedStatus() {
	members := m.Members()
	if m.cursor >= len(members) || m.opts.Store == nil {
		return
	}
	target := members[m.cursor]
	err := m.opts.Store.UpdateMember(target.Account, func(mem *model.Member) {
		next := mem.Status + 1
		if next > model.StatusAway {
			next = model.StatusOffline
		}
		mem.Status = next
	})
	if err != nil {
		m.log.Warn().Err(err).Str("member", target.Account).Msg("failed to update status")
	}
}

// =============================================================================
// OUTBOX
// =============================================================================

func (m *Model) syncOutbox() {
	if m.opts.Outbox == nil {
		return
	}
	m.statusBar.SetOutbox(m.opts.Outbox.Pending(), m.opts.Outbox.Sent())
}

func (m *Model) startDrain() tea.Cmd {
	ob := m.opts.Outbox
	if ob == nil || m.draining {
		return nil
	}
	m.draining = true

	ctx := m.ctx
	log := m.log
	return tea.Batch(m.spinner.Start(), func() tea.Msg {
		n, err := ob.Drain(ctx, func(_ context.Context, item outbox.Item) error {
			log.Info().
				Str("chat", item.ChatGID).
				Str("file", item.File.Name).
				Str("type", item.File.Type).
				Str("size", upload.FormatBytes(item.File.Size)).
				Msg("sending content")
			return nil
		})
		return OutboxDrainedMsg{Delivered: n, Err: err}
	})
}

func (m *Model) handleDrained(msg OutboxDrainedMsg) tea.Cmd {
	m.draining = false
	m.syncOutbox()

	if msg.Delivered > 0 {
		m.opts.Toasts.AddSuccess(m.opts.Lang.Format(lang.KeyOutboxDelivered, msg.Delivered))
	}
	if msg.Err != nil {
		m.spinner.Stop()
		if m.ctx.Err() == nil {
			m.opts.Toasts.AddError(msg.Err.Error())
		}
		return nil
	}
	if m.opts.Outbox.Pending() > 0 {
		return m.startDrain()
	}
	m.spinner.Stop()
	return nil
}
