// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dropzone derives drag and drop events for a terminal.
//
// Terminals deliver no drag events, so files arrive two ways: pasted paths
// (most terminals paste the quoted path of a file dropped on the window),
// parsed by ParsePaths, and files saved into a watched inbox directory,
// reported by Watcher as views.DragEnterMsg followed by views.DropMsg.
package dropzone
