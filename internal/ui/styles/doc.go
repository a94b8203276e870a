// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the chatviews TUI.

colors.go defines the adaptive palette (accents, surfaces, text, presence dots,
avatar colors). theme.go groups the Lip Gloss styles used when an element tree
is drawn:

	theme := styles.NewThemeForMode(cfg.UI.Theme)
	out := theme.TitleLink.Render("Bob")

Layout helpers (SetSize, GetLayoutMode) let views collapse badges on narrow
terminals.
*/
package styles
