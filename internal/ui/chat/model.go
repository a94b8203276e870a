// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/rs/zerolog"

	"github.com/jeranaias/chatviews-tui/internal/dropzone"
	"github.com/jeranaias/chatviews-tui/internal/lang"
	"github.com/jeranaias/chatviews-tui/internal/model"
	"github.com/jeranaias/chatviews-tui/internal/outbox"
	"github.com/jeranaias/chatviews-tui/internal/ui/components"
	"github.com/jeranaias/chatviews-tui/internal/ui/styles"
	"github.com/jeranaias/chatviews-tui/internal/ui/views"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options wires the screen to its collaborators.
type Options struct {
	Store    *model.Store
	Registry *views.Registry
	Lang     *lang.Lang
	Policy   views.UploadPolicy
	Outbox   *outbox.Outbox
	Toasts   *components.ToastManager
	Watcher  *dropzone.Watcher // nil when the drop zone is disabled
	Theme    *styles.Theme
	Log      zerolog.Logger

	Locale      string
	AvatarSize  int
	StrictProps bool
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the chat screen: title bar of the active chat, its member list, and
// the drop overlay while files are dragged in.
type Model struct {
	opts Options
	keys KeyMap
	help help.Model
	log  zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	chats  []*model.Chat
	active int
	cursor int

	title      *views.Memo[views.ChatTitleProps, views.ChatTitleState]
	rows       map[string]*views.Memo[views.MemberListItemProps, views.MemberListItemState]
	rowFactory func() *views.Memo[views.MemberListItemProps, views.MemberListItemState]
	dnd        views.DndContainerView
	dndMemo    *views.Memo[views.ChatsDndContainerProps, views.ChatsDndContainerState]
	dragging   bool
	statusBar  *components.StatusBar

	profile  *model.Member
	draining bool
	spinner  components.UploadSpinner

	titleExtra        *views.Element
	titleExtraPending int

	headerHeight int
	rowZones     []rowZone

	width  int
	height int
}

// New builds the chat screen and resolves the three views through the registry.
func New(opts Options) *Model {
	if opts.Toasts == nil {
		opts.Toasts = components.NewToastManager()
	}
	if opts.Lang == nil {
		opts.Lang = lang.New(opts.Locale)
	}
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme()
	}

	log := opts.Log.With().Str("module", "chat").Logger()

	deps := views.Deps{
		Lang:      opts.Lang,
		Profiles:  ProfileOpener{},
		Notifier:  components.NewToastNotifier(opts.Toasts, opts.Log),
		Policy:    opts.Policy,
		Log:       opts.Log,
	}
	if opts.Store != nil {
		deps.Directory = opts.Store
	}
	if opts.Outbox != nil {
		deps.Sender = opts.Outbox
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		opts:      opts,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		log:       log,
		ctx:       ctx,
		cancel:    cancel,
		rows:      make(map[string]*views.Memo[views.MemberListItemProps, views.MemberListItemState]),
		statusBar: components.NewStatusBar(),
		spinner:   components.NewUploadSpinner(),
	}

	m.title = views.NewMemo(views.ResolveChatTitle(opts.Registry, deps))
	m.dnd = views.ResolveChatsDndContainer(opts.Registry, deps)
	m.dndMemo = views.NewMemo[views.ChatsDndContainerProps, views.ChatsDndContainerState](m.dnd)
	rowView := views.ResolveMemberListItem(opts.Registry, deps)
	m.rowFactory = func() *views.Memo[views.MemberListItemProps, views.MemberListItemState] {
		return views.NewMemo(rowView)
	}

	if opts.Store != nil {
		m.chats = opts.Store.Chats()
	}
	m.statusBar.Locale = opts.Locale
	if opts.Watcher != nil {
		m.statusBar.DropZone = opts.Watcher.Dir()
	}
	m.selectChat(0)

	return m
}

// ActiveChat returns the chat shown in the title bar, or nil.
func (m *Model) ActiveChat() *model.Chat {
	if m.active < 0 || m.active >= len(m.chats) {
		return nil
	}
	return m.chats[m.active]
}

// Members returns the members of the active chat in list order.
func (m *Model) Members() []*model.Member {
	chat := m.ActiveChat()
	if chat == nil || m.opts.Store == nil {
		return nil
	}
	return m.opts.Store.ChatMembers(chat)
}

// Dragging reports whether the drop overlay is shown.
func (m *Model) Dragging() bool { return m.dragging }

// Profile returns the member whose profile dialog is open, or nil.
func (m *Model) Profile() *model.Member { return m.profile }

func (m *Model) selectChat(i int) {
	if len(m.chats) == 0 {
		m.active = -1
		return
	}
	i %= len(m.chats)
	if i < 0 {
		i += len(m.chats)
	}
	m.active = i
	m.cursor = 0

	chat := m.chats[i]
	if m.opts.Outbox != nil {
		m.opts.Outbox.SetActiveChat(chat.GID)
	}
	m.statusBar.ChatName = chat.DisplayName(m.opts.Store, false)
	m.log.Debug().Str("chat", chat.GID).Msg("selected chat")
}

// Close stops background work started by the screen.
func (m *Model) Close() {
	m.cancel()
}
