// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jeranaias/chatviews-tui/internal/model"
	"github.com/jeranaias/chatviews-tui/internal/upload"
)

// Registration keys of the replaceable views.
const (
	KeyChatTitle         = "chats/chat-title"
	KeyChatsDndContainer = "chats/chats-dnd-container"
	KeyMemberListItem    = "common/member-list-item"
)

// Deps bundles the collaborators handed to view factories.
type Deps struct {
	Directory model.Directory
	Lang      Localizer
	Profiles  ProfileOpener
	Sender    ContentSender
	Notifier  Notifier
	Policy    UploadPolicy
	Log       zerolog.Logger
}

// withDefaults fills unset collaborators with inert implementations so a view
// never dereferences a nil interface.
func (d Deps) withDefaults() Deps {
	if d.Lang == nil {
		d.Lang = keyLocalizer{}
	}
	if d.Policy == nil {
		d.Policy = upload.NewPolicy(upload.DefaultLimitBytes)
	}
	if d.Notifier == nil {
		d.Notifier = logNotifier{log: d.Log}
	}
	if d.Sender == nil {
		d.Sender = logSender{log: d.Log}
	}
	return d
}

type logNotifier struct{ log zerolog.Logger }

func (n logNotifier) Notify(message string, opts NotifyOptions) {
	n.log.Warn().Str("type", opts.Type).Msg(message)
}

type logSender struct{ log zerolog.Logger }

func (s logSender) SendContentToChat(file upload.File, tag ContentType) {
	s.log.Warn().Str("file", file.Name).Str("tag", string(tag)).Msg("no content sender wired, dropping file")
}

// Factory builds a view from its collaborators.
type Factory[T any] func(Deps) T

// Registry maps view keys to substitute factories.
//
// Hosts and extensions register replacements before the views are composed;
// resolution falls back to the built-in view when nothing usable is registered.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]any
	log       zerolog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		factories: make(map[string]any),
		log:       log.With().Str("module", "views.registry").Logger(),
	}
}

// Replace stores factory under key, replacing any earlier registration.
// Prefer Register, which checks the factory type at compile time.
func (r *Registry) Replace(key string, factory any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[key] = factory
	r.log.Info().Str("key", key).Str("factory", fmt.Sprintf("%T", factory)).Msg("registered view replacement")
}

// Remove drops the registration for key.
func (r *Registry) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, key)
}

// Keys returns the registered keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.factories))
	for k := range r.factories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Registry) lookup(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[key]
	return f, ok
}

// Register stores a typed substitute factory under key.
func Register[T any](r *Registry, key string, factory Factory[T]) {
	r.Replace(key, factory)
}

// Resolve builds the view registered under key, or the fallback when the key
// is unknown or the registered factory produces a different type.
func Resolve[T any](r *Registry, key string, deps Deps, fallback Factory[T]) T {
	deps = deps.withDefaults()
	if r == nil {
		return fallback(deps)
	}

	registered, ok := r.lookup(key)
	if !ok {
		return fallback(deps)
	}

	factory, ok := registered.(Factory[T])
	if !ok || factory == nil {
		r.log.Warn().
			Str("key", key).
			Str("factory", fmt.Sprintf("%T", registered)).
			Msg("view replacement has the wrong type, using default")
		return fallback(deps)
	}

	r.log.Debug().Str("key", key).Msg("using view replacement")
	return factory(deps)
}

// =============================================================================
// CONVENIENCE RESOLVERS
// =============================================================================

// ChatTitleView is the contract of the chat title bar.
type ChatTitleView = Component[ChatTitleProps, ChatTitleState]

// MemberListItemView is the contract of a member list row.
type MemberListItemView = Component[MemberListItemProps, MemberListItemState]

// ResolveChatTitle returns the chat title registered under KeyChatTitle.
func ResolveChatTitle(r *Registry, deps Deps) ChatTitleView {
	return Resolve[ChatTitleView](r, KeyChatTitle, deps, func(d Deps) ChatTitleView {
		return NewChatTitle(d)
	})
}

// ResolveChatsDndContainer returns the drop overlay registered under KeyChatsDndContainer.
func ResolveChatsDndContainer(r *Registry, deps Deps) DndContainerView {
	return Resolve[DndContainerView](r, KeyChatsDndContainer, deps, func(d Deps) DndContainerView {
		return NewChatsDndContainer(d)
	})
}

// ResolveMemberListItem returns the member row registered under KeyMemberListItem.
func ResolveMemberListItem(r *Registry, deps Deps) MemberListItemView {
	return Resolve[MemberListItemView](r, KeyMemberListItem, deps, func(d Deps) MemberListItemView {
		return NewMemberListItem(d)
	})
}
