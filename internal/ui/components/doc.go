// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the chrome around the chat views.

# Components

ToastManager (toast.go) - Non-blocking toast stack; toasts expire on a tick.
ToastNotifier (notifier.go) - Adapts views.Notifier calls onto the toast stack.
StatusBar (statusbar.go) - Bottom line with active chat, outbox and drop zone state.

# Usage

	toasts := components.NewToastManager()
	deps.Notifier = components.NewToastNotifier(toasts, log)

	// in Update
	case components.ToastTickMsg:
	    toasts.TickToasts()
	    return m, components.ToastTickCmd()

	// in View
	overlay := components.RenderToastStack(toasts.GetToasts(), m.width, m.height)
*/
package components
