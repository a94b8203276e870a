// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lang provides localized strings for the chat views.
//
// Strings are registered in a golang.org/x/text message catalog per language
// and looked up by key. A key with no translation renders as the key itself.
package lang

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// String keys used by the views.
const (
	KeyChatPublic      = "chat.public.label"
	KeyChatMute        = "chat.mute.label"
	KeyGroupDismissed  = "chat.group.dismissed"
	KeyChatDeleted     = "chat.deleted"
	KeyDropFileMessage = "chats.drapNDropFileMessage"
	KeyProfileTitle    = "member.profile.title"
	KeyProfileAccount  = "member.profile.account"
	KeyProfileStatus   = "member.profile.status"
	KeyProfileClose    = "member.profile.close"
	KeyOutboxDelivered = "outbox.delivered"
	KeyOutboxPending   = "outbox.pending"
	KeyNoChats         = "chats.empty"
)

// Error codes with localized templates, looked up through Error.
const (
	ErrUploadFileTooLarge = "UPLOAD_FILE_IS_TOO_LARGE"
)

// Supported lists the languages with a full catalog. The first is the fallback.
var Supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var entries = map[language.Tag]map[string]string{
	language.English: {
		KeyChatPublic:      "Public group",
		KeyChatMute:        "Notifications muted",
		KeyGroupDismissed:  "Dismissed",
		KeyChatDeleted:     "Deleted",
		KeyDropFileMessage: "Drop files here to send them to the current chat",
		KeyProfileTitle:    "Member profile",
		KeyProfileAccount:  "Account",
		KeyProfileStatus:   "Status",
		KeyProfileClose:    "Press esc to close",
		KeyOutboxDelivered: "Sent %d file(s)",
		KeyOutboxPending:   "%d uploading",
		KeyNoChats:         "No chats yet",
	},
	language.SimplifiedChinese: {
		KeyChatPublic:      "公开讨论组",
		KeyChatMute:        "已免打扰",
		KeyGroupDismissed:  "已解散",
		KeyChatDeleted:     "已删除",
		KeyDropFileMessage: "将文件拖放到此处以发送到当前聊天",
		KeyProfileTitle:    "成员资料",
		KeyProfileAccount:  "用户名",
		KeyProfileStatus:   "状态",
		KeyProfileClose:    "按 esc 关闭",
		KeyOutboxDelivered: "已发送 %d 个文件",
		KeyOutboxPending:   "%d 个上传中",
		KeyNoChats:         "暂无会话",
	},
}

var errorTemplates = map[language.Tag]map[string]string{
	language.English: {
		ErrUploadFileTooLarge: "The file is too large to upload. Files must be smaller than %s.",
	},
	language.SimplifiedChinese: {
		ErrUploadFileTooLarge: "文件太大，无法上传。文件大小不能超过 %s。",
	},
}

// Lang looks up localized strings for one language.
type Lang struct {
	tag     language.Tag
	printer *message.Printer
}

// New creates a Lang for the given locale (e.g. "en", "zh-CN").
// Unsupported or malformed locales fall back to English.
func New(locale string) *Lang {
	cat := newCatalog()
	matcher := language.NewMatcher(Supported)

	requested, _, err := language.ParseAcceptLanguage(strings.ReplaceAll(locale, "_", "-"))
	if err != nil || len(requested) == 0 {
		requested = []language.Tag{language.English}
	}
	_, index, _ := matcher.Match(requested...)
	tag := Supported[index]

	return &Lang{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

func newCatalog() *catalog.Builder {
	cat := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, strs := range entries {
		for key, msg := range strs {
			// SetString only fails on malformed messages; entries are static.
			_ = cat.SetString(tag, key, msg)
		}
	}
	for tag, strs := range errorTemplates {
		for code, msg := range strs {
			_ = cat.SetString(tag, "error."+code, msg)
		}
	}
	return cat
}

// Tag returns the resolved language.
func (l *Lang) Tag() language.Tag {
	return l.tag
}

// String returns the localized string for key.
func (l *Lang) String(key string) string {
	return l.printer.Sprintf(key)
}

// Format returns the localized string for key with args substituted.
func (l *Lang) Format(key string, args ...interface{}) string {
	return l.printer.Sprintf(key, args...)
}

// Error returns the localized message for an error code.
// Unknown codes render as the code itself.
func (l *Lang) Error(code string, args ...interface{}) string {
	key := "error." + code
	msg := l.printer.Sprintf(key, args...)
	if strings.HasPrefix(msg, key) {
		return code
	}
	return msg
}
