// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dropzone

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/jeranaias/chatviews-tui/internal/ui/views"
	"github.com/jeranaias/chatviews-tui/internal/upload"
)

// ErrWatcherClosed is returned by Next once the watcher has been closed.
var ErrWatcherClosed = errors.New("drop zone watcher closed")

// WatcherClosedMsg is delivered by WaitForEvent after Close.
type WatcherClosedMsg struct{}

// DefaultSettle is the quiet period that ends a batch when none is configured.
const DefaultSettle = 300 * time.Millisecond

// Watcher turns files appearing in an inbox directory into drag and drop
// messages: the first file of a batch produces views.DragEnterMsg, and once the
// directory has been quiet for the settle period the batch is delivered as
// views.DropMsg.
//
// A file is delivered once. Later writes to it are ignored until it is
// removed or renamed away, after which the same name can be dropped again.
type Watcher struct {
	dir    string
	settle time.Duration
	fsw    *fsnotify.Watcher
	msgs   chan tea.Msg
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
	log    zerolog.Logger
}

// NewWatcher starts watching dir, creating it if needed.
func NewWatcher(dir string, settle time.Duration, log zerolog.Logger) (*Watcher, error) {
	if settle <= 0 {
		settle = DefaultSettle
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create drop zone: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		dir:    dir,
		settle: settle,
		fsw:    fsw,
		msgs:   make(chan tea.Msg, 16),
		done:   make(chan struct{}),
		log:    log.With().Str("module", "dropzone").Str("dir", dir).Logger(),
	}

	w.wg.Add(1)
	go w.run()

	w.log.Info().Dur("settle", settle).Msg("watching drop zone")
	return w, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string { return w.dir }

// ignored reports whether name is a hidden or partially written file.
func ignored(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return true
	}
	for _, suffix := range []string{".part", ".crdownload", ".tmp", ".download"} {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var (
		pending   []string
		seen      = make(map[string]bool)
		delivered = make(map[string]bool)
		timer     = time.NewTimer(time.Hour)
	)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				delete(delivered, ev.Name)
				continue
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if ignored(ev.Name) {
				continue
			}
			if delivered[ev.Name] {
				w.log.Debug().Str("path", ev.Name).Msg("ignoring write to delivered file")
				continue
			}
			if !seen[ev.Name] {
				if len(pending) == 0 {
					w.emit(views.DragEnterMsg{})
				}
				seen[ev.Name] = true
				pending = append(pending, ev.Name)
			}
			timer.Reset(w.settle)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("file watcher error")

		case <-timer.C:
			files, errs := upload.DescribeAll(pending)
			for _, err := range errs {
				w.log.Warn().Err(err).Msg("skipping dropped path")
			}
			pending = nil
			seen = make(map[string]bool)

			if len(files) == 0 {
				w.emit(views.DragLeaveMsg{})
				continue
			}
			for _, f := range files {
				delivered[f.Path] = true
			}
			w.log.Info().Int("files", len(files)).Msg("drop settled")
			w.emit(views.DropMsg{Files: files})
		}
	}
}

func (w *Watcher) emit(msg tea.Msg) {
	select {
	case w.msgs <- msg:
	case <-w.done:
	}
}

// Next blocks until the next message, ctx is done or the watcher is closed.
func (w *Watcher) Next(ctx context.Context) (tea.Msg, error) {
	select {
	case msg, ok := <-w.msgs:
		if !ok {
			return nil, ErrWatcherClosed
		}
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// WaitForEvent returns a command delivering the watcher's next message.
// Re-issue it after each message to keep listening.
func WaitForEvent(w *Watcher) tea.Cmd {
	return func() tea.Msg {
		msg, err := w.Next(context.Background())
		if err != nil {
			return WatcherClosedMsg{}
		}
		return msg
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
		close(w.msgs)
		w.log.Info().Msg("stopped watching drop zone")
	})
	return err
}
