// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatviews-tui/internal/model"
)

// =============================================================================
// POLICY TESTS
// =============================================================================

func TestPolicyFits(t *testing.T) {
	tests := []struct {
		name     string
		policy   Policy
		userSize int64
		size     int64
		want     bool
	}{
		{"under default", NewPolicy(100), 0, 99, true},
		{"at default", NewPolicy(100), 0, 100, true},
		{"over default", NewPolicy(100), 0, 101, false},
		{"user limit overrides default", NewPolicy(100), 1000, 500, true},
		{"user limit is enforced", NewPolicy(10000), 1000, 1001, false},
		{"unlimited default", NewPolicy(0), 0, 1 << 40, true},
		{"negative default is unlimited", NewPolicy(-1), 0, 1 << 40, true},
		{"negative size rejected", NewPolicy(0), 0, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user := model.NewUser("alice", tc.userSize)
			assert.Equal(t, tc.want, tc.policy.Fits(user, tc.size))
		})
	}
}

func TestPolicyLimitNilUser(t *testing.T) {
	p := NewPolicy(DefaultLimitBytes)
	assert.Equal(t, DefaultLimitBytes, p.Limit(nil))
	assert.True(t, p.Fits(nil, DefaultLimitBytes))
	assert.False(t, p.Fits(nil, DefaultLimitBytes+1))
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0 B"},
		{-5, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{10 * 1024 * 1024, "10 MiB"},
	}

	for _, tc := range tests {
		if got := FormatBytes(tc.input); got != tc.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// =============================================================================
// FILE TESTS
// =============================================================================

// pngHeader is enough of a PNG for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()

	imgPath := filepath.Join(dir, "photo.dat")
	require.NoError(t, os.WriteFile(imgPath, pngHeader, 0600))

	txtPath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("hello world\n"), 0600))

	img, err := Describe(imgPath)
	require.NoError(t, err)
	assert.Equal(t, "photo.dat", img.Name)
	assert.Equal(t, "image/png", img.Type)
	assert.Equal(t, int64(len(pngHeader)), img.Size)
	assert.True(t, img.IsImage())

	txt, err := Describe(txtPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(txt.Type, "text/plain"))
	assert.False(t, txt.IsImage())
}

func TestDescribeRejectsDirectories(t *testing.T) {
	_, err := Describe(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFile)
}

func TestDescribeAllSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	ok := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(ok, []byte("a"), 0600))

	files, errs := DescribeAll([]string{ok, filepath.Join(dir, "missing.txt")})
	assert.Len(t, files, 1)
	assert.Len(t, errs, 1)
}

func TestFileIsImage(t *testing.T) {
	assert.True(t, File{Type: "image/png"}.IsImage())
	assert.False(t, File{Type: "application/pdf"}.IsImage())
	assert.False(t, File{Type: "imagex/png"}.IsImage())
}
