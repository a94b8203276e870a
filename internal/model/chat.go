// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ChatType distinguishes one-to-one conversations from groups.
type ChatType string

const (
	ChatTypeOne2One ChatType = "one2one"
	ChatTypeGroup   ChatType = "group"
	ChatTypeSystem  ChatType = "system"
)

// Directory resolves accounts to members and knows who is signed in.
type Directory interface {
	Member(account string) *Member
	CurrentUser() *User
}

// Chat is a conversation shown in the chat title bar.
type Chat struct {
	ID      string   `json:"id"`
	GID     string   `json:"gid"`
	Name    string   `json:"name,omitempty"`
	Type    ChatType `json:"type"`
	Members []string `json:"members"`

	Public    bool `json:"public,omitempty"`
	Mute      bool `json:"mute,omitempty"`
	Dismissed bool `json:"dismissed,omitempty"`

	UpdateID int64 `json:"-"`
}

// NewOne2OneChat creates a two-participant chat.
func NewOne2OneChat(a, b string) *Chat {
	return &Chat{
		ID:       uuid.NewString(),
		GID:      strings.Join(sortedPair(a, b), "&"),
		Type:     ChatTypeOne2One,
		Members:  []string{a, b},
		UpdateID: 1,
	}
}

// NewGroupChat creates a named group chat.
func NewGroupChat(name string, members ...string) *Chat {
	return &Chat{
		ID:       uuid.NewString(),
		GID:      uuid.NewString(),
		Name:     name,
		Type:     ChatTypeGroup,
		Members:  append([]string(nil), members...),
		UpdateID: 1,
	}
}

func sortedPair(a, b string) []string {
	if a > b {
		return []string{b, a}
	}
	return []string{a, b}
}

// IsOne2One reports whether this is a two-participant conversation.
func (c *Chat) IsOne2One() bool {
	return c.Type == ChatTypeOne2One
}

// IsGroup reports whether this is a multi-member group chat.
func (c *Chat) IsGroup() bool {
	return c.Type == ChatTypeGroup
}

// Touch marks the chat as changed.
func (c *Chat) Touch() {
	c.UpdateID++
}

// TheOtherOne returns the counterpart of the signed-in user in a one-to-one chat.
// It returns nil for group chats or when the counterpart is unknown.
func (c *Chat) TheOtherOne(dir Directory) *Member {
	if !c.IsOne2One() || dir == nil {
		return nil
	}
	self := ""
	if user := dir.CurrentUser(); user != nil {
		self = user.Account
	}
	for _, account := range c.Members {
		if account != self {
			return dir.Member(account)
		}
	}
	return nil
}

// IsDeleteOne2One reports whether the counterpart of a one-to-one chat is gone.
func (c *Chat) IsDeleteOne2One(dir Directory) bool {
	if !c.IsOne2One() {
		return false
	}
	other := c.TheOtherOne(dir)
	return other == nil || other.Deleted
}

// DisplayName returns the chat name as shown in headers and lists.
// Group names get a member count suffix when includeMemberCount is set.
func (c *Chat) DisplayName(dir Directory, includeMemberCount bool) string {
	switch c.Type {
	case ChatTypeOne2One:
		if other := c.TheOtherOne(dir); other != nil {
			return other.DisplayName()
		}
		self := currentAccount(dir)
		for _, account := range c.Members {
			if account != self {
				return account
			}
		}
		return c.Name
	case ChatTypeGroup:
		name := strings.TrimSpace(c.Name)
		if name == "" {
			name = c.memberNames(dir)
		}
		if includeMemberCount {
			name += " (" + strconv.Itoa(len(c.Members)) + ")"
		}
		return name
	default:
		return c.Name
	}
}

func (c *Chat) memberNames(dir Directory) string {
	const maxNames = 3
	names := make([]string, 0, maxNames)
	for _, account := range c.Members {
		if len(names) == maxNames {
			names = append(names, "...")
			break
		}
		if dir != nil {
			if m := dir.Member(account); m != nil {
				names = append(names, m.DisplayName())
				continue
			}
		}
		names = append(names, account)
	}
	return strings.Join(names, ", ")
}

func currentAccount(dir Directory) string {
	if dir == nil {
		return ""
	}
	if user := dir.CurrentUser(); user != nil {
		return user.Account
	}
	return ""
}
