// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/rs/zerolog"

	"github.com/jeranaias/chatviews-tui/internal/ui/views"
)

// ToastNotifier routes view notifications onto a ToastManager.
type ToastNotifier struct {
	Toasts *ToastManager
	Log    zerolog.Logger
}

// NewToastNotifier creates a notifier backed by the given manager.
func NewToastNotifier(toasts *ToastManager, log zerolog.Logger) *ToastNotifier {
	return &ToastNotifier{
		Toasts: toasts,
		Log:    log.With().Str("module", "notify").Logger(),
	}
}

// Notify implements views.Notifier.
func (n *ToastNotifier) Notify(message string, opts views.NotifyOptions) {
	kind := ParseToastKind(opts.Type)
	id := n.Toasts.AddToast(NewToast(kind, message))

	n.Log.Debug().
		Int("toast", id).
		Str("type", kind.String()).
		Msg(message)
}

var _ views.Notifier = (*ToastNotifier)(nil)
