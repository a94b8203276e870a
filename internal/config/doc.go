// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package config loads the chatviews configuration from TOML.

# File Format

	version = "1.0.0"

	[ui]
	locale = "zh-CN"
	theme = "auto"
	member_avatar_size = 30
	strict_props = false

	[upload]
	default_limit_bytes = 10485760

	[dropzone]
	enabled = true
	dir = "/home/alice/Drop"
	settle_ms = 300

	[outbox]
	rate_per_second = 4
	burst = 8

	[log]
	level = "info"
	path = ""

# Precedence

Built-in defaults, then the TOML file, then CHATVIEWS_* environment variables.
Validate reports every invalid field at once as ValidateErrors.
*/
package config
