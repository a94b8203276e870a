// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jeranaias/chatviews-tui/internal/lang"
	"github.com/jeranaias/chatviews-tui/internal/model"
	"github.com/jeranaias/chatviews-tui/internal/upload"
)

// =============================================================================
// TEST DOUBLES
// =============================================================================

type sentContent struct {
	File upload.File
	Tag  ContentType
}

type recordingSender struct {
	sent []sentContent
}

func (s *recordingSender) SendContentToChat(file upload.File, tag ContentType) {
	s.sent = append(s.sent, sentContent{File: file, Tag: tag})
}

type notification struct {
	Message string
	Opts    NotifyOptions
}

type recordingNotifier struct {
	calls []notification
}

func (n *recordingNotifier) Notify(message string, opts NotifyOptions) {
	n.calls = append(n.calls, notification{Message: message, Opts: opts})
}

type profileShown struct {
	Member *model.Member
}

type recordingProfiles struct {
	opened []*model.Member
}

func (p *recordingProfiles) ShowProfile(member *model.Member) tea.Cmd {
	return func() tea.Msg {
		p.opened = append(p.opened, member)
		return profileShown{Member: member}
	}
}

// fixture is a small directory: the signed-in user "me" with a 1000 byte
// upload limit, plus bob and carol.
type fixture struct {
	store    *model.Store
	me       *model.Member
	bob      *model.Member
	carol    *model.Member
	sender   *recordingSender
	notifier *recordingNotifier
	profiles *recordingProfiles
	deps     Deps
}

func newFixture() *fixture {
	f := &fixture{
		store:    model.NewStore(model.NewUser("me", 1000)),
		me:       model.NewMember("me", "Me Myself"),
		bob:      model.NewMember("bob", "Bob Stone"),
		carol:    model.NewMember("carol", ""),
		sender:   &recordingSender{},
		notifier: &recordingNotifier{},
		profiles: &recordingProfiles{},
	}
	f.store.AddMember(f.me)
	f.store.AddMember(f.bob)
	f.store.AddMember(f.carol)

	f.deps = Deps{
		Directory: f.store,
		Lang:      lang.New("en"),
		Profiles:  f.profiles,
		Sender:    f.sender,
		Notifier:  f.notifier,
		Policy:    upload.NewPolicy(upload.DefaultLimitBytes),
		Log:       zerolog.Nop(),
	}
	return f
}
