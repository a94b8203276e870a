// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by chatviews packages.
//
//   - AtomicWriteFile: crash-safe file writing with fsync, used for config saves
//   - TruncateWidth, Width, PadRight: terminal column math via go-runewidth
//   - Initials: avatar letters for a display name
package util
