// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// ErrNotATerminal is returned when the TUI is started without a terminal.
var ErrNotATerminal = errors.New("chatviews needs an interactive terminal; use 'chatviews config' for scripting")

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// RequireTTY returns ErrNotATerminal unless both stdin and stdout are
// terminals. The screen reads keys from one and draws on the other.
func RequireTTY() error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ErrNotATerminal
	}
	return nil
}

// =============================================================================
// COLOR DETECTION
// =============================================================================

var (
	colorProfile     termenv.Profile
	colorProfileOnce sync.Once
)

// GetColorProfile returns the profile CLI output is rendered with. NO_COLOR
// wins over FORCE_COLOR, which wins over detecting a terminal on stdout.
func GetColorProfile() termenv.Profile {
	colorProfileOnce.Do(func() {
		switch {
		case os.Getenv("NO_COLOR") != "":
			colorProfile = termenv.Ascii
		case os.Getenv("FORCE_COLOR") != "":
			colorProfile = termenv.ANSI256
		case !isTerminal(os.Stdout):
			colorProfile = termenv.Ascii
		default:
			colorProfile = termenv.ColorProfile()
		}
	})
	return colorProfile
}

// ColorsEnabled reports whether CLI output should be colored.
func ColorsEnabled() bool {
	return GetColorProfile() != termenv.Ascii
}
