// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package outbox queues content dropped onto a chat until it is delivered.
package outbox

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/jeranaias/chatviews-tui/internal/config"
	"github.com/jeranaias/chatviews-tui/internal/ui/views"
	"github.com/jeranaias/chatviews-tui/internal/upload"
)

var (
	// ErrEmptyOutbox is returned by Next when nothing is queued.
	ErrEmptyOutbox = errors.New("outbox is empty")
	// ErrNoActiveChat is returned by Enqueue when no chat is selected.
	ErrNoActiveChat = errors.New("no active chat")
)

// Item is one queued send.
type Item struct {
	ID       string
	ChatGID  string
	File     upload.File
	Tag      views.ContentType
	QueuedAt time.Time
}

// DeliverFunc delivers one item. A non-nil error puts the item back at the
// head of the queue.
type DeliverFunc func(ctx context.Context, item Item) error

// Outbox is a FIFO of content waiting to be sent. It implements
// views.ContentSender for the active chat.
type Outbox struct {
	mu      sync.Mutex
	items   []Item
	active  string
	sent    int
	limiter *rate.Limiter
	log     zerolog.Logger
}

// New creates an outbox whose drain is limited to cfg.RatePerSecond items per
// second with bursts of cfg.Burst.
func New(cfg config.OutboxConfig, log zerolog.Logger) *Outbox {
	limit := rate.Limit(cfg.RatePerSecond)
	if cfg.RatePerSecond <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &Outbox{
		limiter: rate.NewLimiter(limit, burst),
		log:     log.With().Str("module", "outbox").Logger(),
	}
}

// SetActiveChat selects the chat that SendContentToChat targets.
func (o *Outbox) SetActiveChat(gid string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.active = gid
}

// ActiveChat returns the selected chat GID.
func (o *Outbox) ActiveChat() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active
}

// Enqueue queues file for chat gid.
func (o *Outbox) Enqueue(gid string, file upload.File, tag views.ContentType) (Item, error) {
	if gid == "" {
		return Item{}, ErrNoActiveChat
	}

	item := Item{
		ID:       uuid.NewString(),
		ChatGID:  gid,
		File:     file,
		Tag:      tag,
		QueuedAt: time.Now(),
	}

	o.mu.Lock()
	o.items = append(o.items, item)
	pending := len(o.items)
	o.mu.Unlock()

	o.log.Info().
		Str("item", item.ID).
		Str("chat", gid).
		Str("file", file.Name).
		Str("tag", string(tag)).
		Int("pending", pending).
		Msg("queued content")
	return item, nil
}

// SendContentToChat implements views.ContentSender.
func (o *Outbox) SendContentToChat(file upload.File, tag views.ContentType) {
	if _, err := o.Enqueue(o.ActiveChat(), file, tag); err != nil {
		o.log.Warn().Err(err).Str("file", file.Name).Msg("dropped content")
	}
}

// Pending returns the number of queued items.
func (o *Outbox) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.items)
}

// Sent returns the number of items delivered so far.
func (o *Outbox) Sent() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sent
}

// Items returns a copy of the queue, oldest first.
func (o *Outbox) Items() []Item {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Next removes and returns the oldest item.
func (o *Outbox) Next() (Item, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.items) == 0 {
		return Item{}, ErrEmptyOutbox
	}
	item := o.items[0]
	o.items = o.items[1:]
	return item, nil
}

func (o *Outbox) requeue(item Item) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.items = append([]Item{item}, o.items...)
}

// Drain delivers queued items until the queue is empty, ctx is done or a
// delivery fails. It returns the number of items delivered.
func (o *Outbox) Drain(ctx context.Context, deliver DeliverFunc) (int, error) {
	delivered := 0
	for {
		item, err := o.Next()
		if errors.Is(err, ErrEmptyOutbox) {
			return delivered, nil
		}

		if err := o.limiter.Wait(ctx); err != nil {
			o.requeue(item)
			return delivered, fmt.Errorf("outbox drain interrupted: %w", err)
		}

		if err := deliver(ctx, item); err != nil {
			o.requeue(item)
			o.log.Error().Err(err).Str("item", item.ID).Str("file", item.File.Name).Msg("delivery failed")
			return delivered, fmt.Errorf("failed to deliver %s: %w", item.File.Name, err)
		}

		o.mu.Lock()
		o.sent++
		o.mu.Unlock()
		delivered++

		o.log.Info().
			Str("item", item.ID).
			Str("chat", item.ChatGID).
			Dur("waited", time.Since(item.QueuedAt)).
			Msg("delivered content")
	}
}

var _ views.ContentSender = (*Outbox)(nil)
