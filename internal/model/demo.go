// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// DEMO DIRECTORY
// =============================================================================

// NewDemoStore returns a store signed in as account and filled with sample
// members and chats covering every title bar state: a plain one-to-one chat,
// a public muted group, a dismissed group and a chat whose counterpart has
// been deleted.
func NewDemoStore(account string, uploadFileSize int64) *Store {
	if account == "" {
		account = "me"
	}
	s := NewStore(NewUser(account, uploadFileSize))

	me := NewMember(account, "")
	me.Status = StatusOnline
	s.AddMember(me)

	people := []struct {
		account  string
		realName string
		status   Status
	}{
		{"alice", "Alice Chen", StatusOnline},
		{"bob", "Bob Stone", StatusBusy},
		{"carol", "Carol King", StatusAway},
		{"dave", "", StatusOffline},
		{"erin", "Erin Wu", StatusDisconnect},
	}
	for _, p := range people {
		m := NewMember(p.account, p.realName)
		m.Status = p.status
		s.AddMember(m)
	}

	frank := NewMember("frank", "Frank Ortiz")
	frank.Deleted = true
	s.AddMember(frank)

	s.AddChat(NewOne2OneChat(account, "alice"))
	s.AddChat(NewOne2OneChat(account, "frank"))

	design := NewGroupChat("Design Review", account, "alice", "bob", "carol")
	design.Public = true
	design.Mute = true
	s.AddChat(design)

	archive := NewGroupChat("", account, "bob", "dave", "erin")
	archive.Dismissed = true
	s.AddChat(archive)

	return s
}
