// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the chat, member and user entities rendered by the views.
package model

import (
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// STATUS TYPE
// =============================================================================

// Status represents a member's presence.
type Status int

const (
	StatusUnverified Status = iota
	StatusDisconnect
	StatusOffline
	StatusOnline
	StatusBusy
	StatusAway
)

// String returns the status name used in class names and config.
func (s Status) String() string {
	switch s {
	case StatusUnverified:
		return "unverified"
	case StatusDisconnect:
		return "disconnect"
	case StatusOffline:
		return "offline"
	case StatusOnline:
		return "online"
	case StatusBusy:
		return "busy"
	case StatusAway:
		return "away"
	default:
		return "unknown"
	}
}

// IsOnline reports whether the member can receive messages right now.
func (s Status) IsOnline() bool {
	return s == StatusOnline || s == StatusBusy || s == StatusAway
}

// ParseStatus converts a status name back to a Status.
// Unknown names map to StatusUnverified.
func ParseStatus(name string) Status {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "disconnect":
		return StatusDisconnect
	case "offline":
		return StatusOffline
	case "online":
		return StatusOnline
	case "busy":
		return StatusBusy
	case "away":
		return StatusAway
	default:
		return StatusUnverified
	}
}

// =============================================================================
// MEMBER TYPE
// =============================================================================

// Member is a chat participant as seen by the member list and chat title.
type Member struct {
	ID       string `json:"id"`
	Account  string `json:"account"`
	RealName string `json:"realname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Status   Status `json:"status"`
	Deleted  bool   `json:"deleted,omitempty"`

	// UpdateID increases on every mutation; views compare it instead of deep equality.
	UpdateID int64 `json:"-"`
}

// NewMember creates a member with a fresh ID.
func NewMember(account, realName string) *Member {
	return &Member{
		ID:       uuid.NewString(),
		Account:  account,
		RealName: realName,
		Status:   StatusUnverified,
		UpdateID: 1,
	}
}

// DisplayName returns the real name, falling back to the account.
func (m *Member) DisplayName() string {
	if m == nil {
		return ""
	}
	if name := strings.TrimSpace(m.RealName); name != "" {
		return name
	}
	return m.Account
}

// Touch marks the member as changed.
func (m *Member) Touch() {
	m.UpdateID++
}

// SetStatus updates the presence and bumps the update counter when it changes.
func (m *Member) SetStatus(status Status) {
	if m.Status == status {
		return
	}
	m.Status = status
	m.Touch()
}

// =============================================================================
// USER TYPE
// =============================================================================

// User is the signed-in account.
type User struct {
	ID      string `json:"id"`
	Account string `json:"account"`

	// UploadFileSize is the per-user upload limit in bytes. Zero defers to the server default.
	UploadFileSize int64 `json:"upload_file_size,omitempty"`
}

// NewUser creates a user with a fresh ID.
func NewUser(account string, uploadFileSize int64) *User {
	return &User{
		ID:             uuid.NewString(),
		Account:        account,
		UploadFileSize: uploadFileSize,
	}
}
