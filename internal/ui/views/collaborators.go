// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatviews-tui/internal/model"
	"github.com/jeranaias/chatviews-tui/internal/upload"
)

// Localizer looks up UI strings and error templates.
type Localizer interface {
	String(key string) string
	Error(code string, args ...interface{}) string
}

// ProfileOpener opens the profile dialog for a member. The returned command
// runs when the user activates the element carrying it.
type ProfileOpener interface {
	ShowProfile(member *model.Member) tea.Cmd
}

// ContentType tags content dispatched into a chat.
type ContentType string

const (
	ContentImage ContentType = "image"
	ContentFile  ContentType = "file"
)

// ContentTypeOf returns the dispatch tag for a dropped file.
func ContentTypeOf(f upload.File) ContentType {
	if f.IsImage() {
		return ContentImage
	}
	return ContentFile
}

// ContentSender sends dropped content to the active chat.
type ContentSender interface {
	SendContentToChat(file upload.File, tag ContentType)
}

// NotifyOptions configures a notification.
type NotifyOptions struct {
	Type string // "warning", "error", "success"; anything else is informational
}

// Notifier shows non-blocking notifications.
type Notifier interface {
	Notify(message string, opts NotifyOptions)
}

// UploadPolicy gates uploads by size.
type UploadPolicy interface {
	Fits(user *model.User, size int64) bool
	Limit(user *model.User) int64
}

// keyLocalizer renders keys verbatim; used when no Localizer is wired.
type keyLocalizer struct{}

func (keyLocalizer) String(key string) string { return key }

func (keyLocalizer) Error(code string, _ ...interface{}) string { return code }
