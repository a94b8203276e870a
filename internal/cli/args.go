// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser splits subcommand arguments into positionals and flags. The first
// positional is the subcommand. A lone "-" and negative numbers are values,
// so `config set ui.member_avatar_size -1` keeps its value.
type ArgParser struct {
	positional []string
	flags      []string
}

// NewArgParser creates a parser from raw arguments.
//
// Example:
//
//	p := NewArgParser([]string{"set", "log.path", "/tmp/a b"})
//	p.Subcommand()      // "set"
//	p.Positional(1)     // "log.path"
//	p.PositionalFrom(2) // ["/tmp/a b"]
func NewArgParser(raw []string) *ArgParser {
	p := &ArgParser{positional: make([]string, 0, len(raw))}
	for _, arg := range raw {
		if strings.HasPrefix(arg, "-") && arg != "-" && !isNumber(arg) {
			p.flags = append(p.flags, arg)
			continue
		}
		p.positional = append(p.positional, arg)
	}
	return p
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// Subcommand returns the first positional argument, or "".
func (p *ArgParser) Subcommand() string {
	return p.Positional(0)
}

// Positional returns the positional argument at index, or "".
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalFrom returns all positional arguments starting from index.
func (p *ArgParser) PositionalFrom(index int) []string {
	if index < 0 || index >= len(p.positional) {
		return nil
	}
	return p.positional[index:]
}

// Flags returns the flag-looking arguments in the order given.
func (p *ArgParser) Flags() []string {
	return p.flags
}

// ParseBoolString parses a boolean from various string representations.
// Accepts: true/false, yes/no, y/n, 1/0, on/off (case-insensitive)
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "on":
		return true, nil
	case "false", "no", "n", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %s", s)
	}
}
