// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dropzone

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatviews-tui/internal/ui/views"
)

// =============================================================================
// PASTE PARSING
// =============================================================================

func TestSplitPaths(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "/a/b.txt /c/d.png", []string{"/a/b.txt", "/c/d.png"}},
		{"single quotes", `'/tmp/my file.txt'`, []string{"/tmp/my file.txt"}},
		{"double quotes", `"/tmp/my file.txt" /x`, []string{"/tmp/my file.txt", "/x"}},
		{"escaped spaces", `/tmp/my\ file.txt`, []string{"/tmp/my file.txt"}},
		{"backslash kept in single quotes", `'/tmp/a\b'`, []string{`/tmp/a\b`}},
		{"newlines", "/a\n/b\r\n", []string{"/a", "/b"}},
		{"empty quotes", `''`, []string{""}},
		{"blank", "   ", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitPaths(tc.in))
		})
	}
}

func TestParsePaths(t *testing.T) {
	dir := t.TempDir()
	spaced := filepath.Join(dir, "my photo.png")
	plain := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(spaced, []byte("x"), 0600))
	require.NoError(t, os.WriteFile(plain, []byte("x"), 0600))

	uri := "file://" + filepath.ToSlash(filepath.Join(dir, "my%20photo.png"))

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"quoted", `'` + spaced + `'`, []string{spaced}},
		{"escaped", filepath.Join(dir, `my\ photo.png`), []string{spaced}},
		{"file uri", uri, []string{spaced}},
		{"several", `"` + spaced + `" ` + plain, []string{spaced, plain}},
		{"duplicates", plain + " " + plain, []string{plain}},
		{"missing", filepath.Join(dir, "gone.txt"), nil},
		{"directory", dir, nil},
		{"relative", "notes.txt", nil},
		{"prose", "hello there, general", nil},
		{"remote uri", "file://example.com" + plain, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParsePaths(tc.in))
		})
	}
}

// =============================================================================
// WATCHER
// =============================================================================

func nextMsg(t *testing.T, w *Watcher) interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	msg, err := w.Next(ctx)
	require.NoError(t, err)
	return msg
}

func TestWatcherBatchesDrop(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "inbox")
	w, err := NewWatcher(dir, 100*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("world!"), 0600))

	assert.Equal(t, views.DragEnterMsg{}, nextMsg(t, w))

	drop, ok := nextMsg(t, w).(views.DropMsg)
	require.True(t, ok, "expected a DropMsg")
	require.Len(t, drop.Files, 2)
	assert.Equal(t, "a.txt", drop.Files[0].Name)
	assert.Equal(t, int64(5), drop.Files[0].Size)
	assert.Equal(t, "b.txt", drop.Files[1].Name)
}

func TestWatcherLeaveWhenFilesVanish(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, 100*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "flash.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	require.NoError(t, os.Remove(path))

	assert.Equal(t, views.DragEnterMsg{}, nextMsg(t, w))
	assert.Equal(t, views.DragLeaveMsg{}, nextMsg(t, w))
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), 0, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, err = w.Next(context.Background())
	assert.ErrorIs(t, err, ErrWatcherClosed)
	assert.Equal(t, WatcherClosedMsg{}, WaitForEvent(w)())
}

func TestIgnored(t *testing.T) {
	assert.True(t, ignored("/x/.DS_Store"))
	assert.True(t, ignored("/x/movie.mkv.part"))
	assert.True(t, ignored("/x/file.crdownload"))
	assert.False(t, ignored("/x/photo.png"))
}

func TestWatcherDeliversFileOnce(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, 50*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "big.bin")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0600))

	assert.Equal(t, views.DragEnterMsg{}, nextMsg(t, w))
	drop, ok := nextMsg(t, w).(views.DropMsg)
	require.True(t, ok, "expected a DropMsg")
	require.Len(t, drop.Files, 1)

	// Appending after the batch settled must not start a second drop.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0600)
	require.NoError(t, err)
	_, err = f.Write([]byte("67890"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	msg, err := w.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, msg)
}

func TestWatcherRedropsAfterRemove(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, 50*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "again.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0600))
	assert.Equal(t, views.DragEnterMsg{}, nextMsg(t, w))
	_, ok := nextMsg(t, w).(views.DropMsg)
	require.True(t, ok, "expected a DropMsg")

	require.NoError(t, os.Remove(path))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("second"), 0600))

	assert.Equal(t, views.DragEnterMsg{}, nextMsg(t, w))
	drop, ok := nextMsg(t, w).(views.DropMsg)
	require.True(t, ok, "expected a DropMsg")
	require.Len(t, drop.Files, 1)
	assert.Equal(t, int64(6), drop.Files[0].Size)
}
