// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/chatviews-tui/internal/config"
)

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantSub   string
		wantKey   string
		wantRest  []string
		wantFlags []string
	}{
		{"empty", nil, "", "", nil, nil},
		{"subcommand only", []string{"show"}, "show", "", nil, nil},
		{"key and value", []string{"set", "ui.locale", "zh-CN"}, "set", "ui.locale", []string{"zh-CN"}, nil},
		{"negative number is a value", []string{"set", "upload.default_limit_bytes", "-1"}, "set", "upload.default_limit_bytes", []string{"-1"}, nil},
		{"lone dash is a value", []string{"set", "log.path", "-"}, "set", "log.path", []string{"-"}, nil},
		{"value with spaces split", []string{"set", "log.path", "/tmp/a", "b"}, "set", "log.path", []string{"/tmp/a", "b"}, nil},
		{"flags collected", []string{"show", "--json", "-x"}, "show", "", nil, []string{"--json", "-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewArgParser(tt.args)
			assert.Equal(t, tt.wantSub, p.Subcommand())
			assert.Equal(t, tt.wantKey, p.Positional(1))
			assert.Equal(t, tt.wantRest, p.PositionalFrom(2))
			assert.Equal(t, tt.wantFlags, p.Flags())
		})
	}
}

func TestHandleConfig_RejectsUnknownFlag(t *testing.T) {
	cmd, args := Parse([]string{"config", "show", "--json"})
	require.Equal(t, CmdConfig, cmd)
	assert.Equal(t, []string{"--json"}, args.Unknown)

	err := HandleConfig(args, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--json")
}

func TestParseBoolString(t *testing.T) {
	for _, v := range []string{"true", "YES", "y", "1", "on"} {
		got, err := ParseBoolString(v)
		require.NoError(t, err, v)
		assert.True(t, got, v)
	}
	for _, v := range []string{"false", "No", "n", "0", "off"} {
		got, err := ParseBoolString(v)
		require.NoError(t, err, v)
		assert.False(t, got, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

// =============================================================================
// PARSE TESTS (cli.go)
// =============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		wantCmd  Command
		validate func(*testing.T, Args)
	}{
		{
			name:    "no args starts tui",
			argv:    nil,
			wantCmd: CmdTUI,
		},
		{
			name:    "global flags before tui",
			argv:    []string{"--locale", "zh-CN", "--theme=light", "-v"},
			wantCmd: CmdTUI,
			validate: func(t *testing.T, a Args) {
				assert.Equal(t, "zh-CN", a.Locale)
				assert.Equal(t, "light", a.Theme)
				assert.True(t, a.Verbose)
			},
		},
		{
			name:    "dropzone flag",
			argv:    []string{"tui", "--dropzone", "/tmp/inbox"},
			wantCmd: CmdTUI,
			validate: func(t *testing.T, a Args) {
				assert.Equal(t, "/tmp/inbox", a.DropZone)
			},
		},
		{
			name:    "config set with global flag after",
			argv:    []string{"config", "set", "ui.locale", "en", "--config", "/tmp/c.toml"},
			wantCmd: CmdConfig,
			validate: func(t *testing.T, a Args) {
				assert.Equal(t, "set", a.Subcommand)
				assert.Equal(t, "ui.locale", a.ConfigKey)
				assert.Equal(t, "en", a.ConfigVal)
				assert.Equal(t, "/tmp/c.toml", a.ConfigPath)
			},
		},
		{
			name:    "version",
			argv:    []string{"version"},
			wantCmd: CmdVersion,
		},
		{
			name:    "help flag",
			argv:    []string{"--help"},
			wantCmd: CmdHelp,
		},
		{
			name:    "unknown command shows help",
			argv:    []string{"frobnicate"},
			wantCmd: CmdHelp,
			validate: func(t *testing.T, a Args) {
				assert.Equal(t, []string{"frobnicate"}, a.Raw)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := Parse(tt.argv)
			assert.Equal(t, tt.wantCmd, cmd)
			if tt.validate != nil {
				tt.validate(t, args)
			}
		})
	}
}

func TestPrintUsageAndVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf)
	assert.Contains(t, buf.String(), "chatviews config set")
	assert.Contains(t, buf.String(), Version)

	buf.Reset()
	PrintVersion(&buf)
	assert.Contains(t, buf.String(), "chatviews version "+Version)
}

// =============================================================================
// CONFIG COMMAND TESTS (config.go)
// =============================================================================

func configArgs(path string, argv ...string) Args {
	_, args := Parse(append([]string{"config"}, argv...))
	args.ConfigPath = path
	return args
}

func TestHandleConfig_ShowDefaultsWithoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	var buf bytes.Buffer
	require.NoError(t, HandleConfig(configArgs(path), &buf))

	out := buf.String()
	assert.Contains(t, out, "[ui]")
	assert.Contains(t, out, "member_avatar_size")
	assert.Contains(t, out, "10 MiB")
}

func TestHandleConfig_SetThenGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	var buf bytes.Buffer
	require.NoError(t, HandleConfig(configArgs(path, "set", "ui.locale", "zh-CN"), &buf))
	assert.Contains(t, buf.String(), "ui.locale = zh-CN")

	assert.Error(t, HandleConfig(configArgs(path, "set", "dropzone.enabled", "yes"), &buf))
	require.NoError(t, HandleConfig(configArgs(path, "set", "dropzone.dir", "/tmp/inbox"), &buf))
	require.NoError(t, HandleConfig(configArgs(path, "set", "dropzone.enabled", "yes"), &buf))

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "zh-CN", cfg.UI.Locale)
	assert.True(t, cfg.DropZone.Enabled)

	buf.Reset()
	require.NoError(t, HandleConfig(configArgs(path, "get", "ui.locale"), &buf))
	assert.Equal(t, "zh-CN", strings.TrimSpace(buf.String()))
}

func TestHandleConfig_SetRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	var buf bytes.Buffer

	assert.Error(t, HandleConfig(configArgs(path, "set", "ui.theme", "neon"), &buf))
	assert.Error(t, HandleConfig(configArgs(path, "set", "ui.nope", "1"), &buf))
	assert.Error(t, HandleConfig(configArgs(path, "set", "ui.locale"), &buf))
	assert.NoFileExists(t, path)
}

func TestHandleConfig_ResetAndPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	var buf bytes.Buffer

	require.NoError(t, HandleConfig(configArgs(path, "set", "outbox.burst", "2"), &buf))
	require.NoError(t, HandleConfig(configArgs(path, "reset"), &buf))

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Outbox.Burst, cfg.Outbox.Burst)

	buf.Reset()
	require.NoError(t, HandleConfig(configArgs(path, "path"), &buf))
	assert.Equal(t, path, strings.TrimSpace(buf.String()))

	assert.Error(t, HandleConfig(configArgs(path, "bogus"), &buf))
}

// =============================================================================
// TERMINAL TESTS (terminal.go, styles.go)
// =============================================================================

func TestOutputRendererFollowsColorDetection(t *testing.T) {
	if !ColorsEnabled() {
		assert.Equal(t, termenv.Ascii, GetColorProfile())
		assert.Equal(t, "plain", render(TitleStyle, "plain"))
	}
	assert.Equal(t, GetColorProfile(), outputRenderer.ColorProfile())
}
