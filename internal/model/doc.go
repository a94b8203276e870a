// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the chat, member and user entities rendered by the views.
//
// Every entity carries an UpdateID counter that increases on each mutation.
// Views cache the counter they last rendered and compare it on the next pass
// instead of deep-comparing the entity.
//
// # Key Types
//
//   - Chat: one-to-one, group or system conversation with badge flags
//   - Member: chat participant with presence Status
//   - User: the signed-in account and its upload limit
//   - Store: in-memory Directory used by the host program and tests
//
// # Usage
//
//	store := model.NewStore(model.NewUser("alice", 0))
//	store.AddMember(model.NewMember("bob", "Bob"))
//	chat := model.NewOne2OneChat("alice", "bob")
//	name := chat.DisplayName(store, true) // "Bob"
package model
