// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package upload decides which dropped files may be sent and describes them.
package upload

import (
	"github.com/dustin/go-humanize"

	"github.com/jeranaias/chatviews-tui/internal/model"
)

// DefaultLimitBytes is the server-side limit used when neither the user nor
// the config sets one.
const DefaultLimitBytes int64 = 10 * 1024 * 1024

// Policy gates uploads by byte size.
type Policy struct {
	// DefaultLimit applies to users without their own limit. Zero or negative means unlimited.
	DefaultLimit int64
}

// NewPolicy creates a policy with the given default limit.
func NewPolicy(defaultLimit int64) Policy {
	return Policy{DefaultLimit: defaultLimit}
}

// Limit returns the effective limit for user in bytes; zero or negative means unlimited.
func (p Policy) Limit(user *model.User) int64 {
	if user != nil && user.UploadFileSize > 0 {
		return user.UploadFileSize
	}
	return p.DefaultLimit
}

// Fits reports whether a file of size bytes may be uploaded by user.
func (p Policy) Fits(user *model.User, size int64) bool {
	if size < 0 {
		return false
	}
	limit := p.Limit(user)
	return limit <= 0 || size <= limit
}

// FormatBytes renders a byte count as a human-readable quantity (e.g. "10 MiB").
func FormatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}
