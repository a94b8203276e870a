// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"sort"
	"sync"
)

// ErrUnknownMember is returned when an account has no member record.
var ErrUnknownMember = errors.New("unknown member")

// ErrUnknownChat is returned when a chat GID is not in the store.
var ErrUnknownChat = errors.New("unknown chat")

// Store is an in-memory Directory holding members and chats.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	user    *User
	members map[string]*Member
	chats   map[string]*Chat
}

// NewStore creates an empty store signed in as user.
func NewStore(user *User) *Store {
	return &Store{
		user:    user,
		members: make(map[string]*Member),
		chats:   make(map[string]*Chat),
	}
}

// CurrentUser returns the signed-in user.
func (s *Store) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetCurrentUser switches the signed-in user.
func (s *Store) SetCurrentUser(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Member returns the member for account, or nil.
func (s *Store) Member(account string) *Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members[account]
}

// AddMember inserts or replaces a member keyed by account.
func (s *Store) AddMember(m *Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[m.Account] = m
}

// Members returns all members ordered by display name.
func (s *Store) Members() []*Member {
	s.mu.RLock()
	result := make([]*Member, 0, len(s.members))
	for _, m := range s.members {
		result = append(result, m)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].DisplayName() < result[j].DisplayName()
	})
	return result
}

// UpdateMember applies fn to the member and bumps its update counter.
func (s *Store) UpdateMember(account string, fn func(*Member)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[account]
	if !ok {
		return ErrUnknownMember
	}
	fn(m)
	m.Touch()
	return nil
}

// AddChat inserts or replaces a chat keyed by GID.
func (s *Store) AddChat(c *Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats[c.GID] = c
}

// Chat returns the chat with the given GID, or nil.
func (s *Store) Chat(gid string) *Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chats[gid]
}

// Chats returns all chats ordered by GID.
func (s *Store) Chats() []*Chat {
	s.mu.RLock()
	result := make([]*Chat, 0, len(s.chats))
	for _, c := range s.chats {
		result = append(result, c)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].GID < result[j].GID
	})
	return result
}

// UpdateChat applies fn to the chat and bumps its update counter.
func (s *Store) UpdateChat(gid string, fn func(*Chat)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.chats[gid]
	if !ok {
		return ErrUnknownChat
	}
	fn(c)
	c.Touch()
	return nil
}

// ChatMembers returns the known members of a chat in membership order.
func (s *Store) ChatMembers(c *Chat) []*Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*Member, 0, len(c.Members))
	for _, account := range c.Members {
		if m, ok := s.members[account]; ok {
			result = append(result, m)
		}
	}
	return result
}
