// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dropzone

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// SplitPaths tokenizes pasted text the way terminals quote dropped files:
// whitespace separates tokens, single and double quotes group, and a
// backslash escapes the next character outside single quotes.
func SplitPaths(text string) []string {
	var (
		tokens  []string
		current strings.Builder
		quote   rune
		escaped bool
		inToken bool
	)

	flush := func() {
		if inToken {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		inToken = false
	}

	for _, r := range text {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inToken = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			flush()
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	flush()

	return tokens
}

// normalizePath turns a token into an absolute filesystem path, or "" when the
// token does not look like one.
func normalizePath(token string) string {
	if strings.HasPrefix(token, "file://") {
		u, err := url.Parse(token)
		if err != nil || (u.Host != "" && u.Host != "localhost") {
			return ""
		}
		token = u.Path
	}

	if token == "~" || strings.HasPrefix(token, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		token = filepath.Join(home, strings.TrimPrefix(token, "~"))
	}

	if !filepath.IsAbs(token) {
		return ""
	}
	return filepath.Clean(token)
}

// ParsePaths extracts the regular files named in pasted text. Relative paths
// and names that do not exist are skipped, so ordinary pasted prose yields
// nothing.
func ParsePaths(text string) []string {
	var paths []string
	seen := make(map[string]bool)
	for _, token := range SplitPaths(text) {
		p := normalizePath(token)
		if p == "" || seen[p] {
			continue
		}
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return paths
}
