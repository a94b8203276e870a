// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing for chatviews.
package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string // --config: explicit config file
	Locale     string // --locale: overrides ui.locale
	Theme      string // --theme: overrides ui.theme
	DropZone   string // --dropzone: watch this directory for dropped files
	Verbose    bool   // -v, --verbose: debug logging

	// Command-specific
	Subcommand string
	ConfigKey  string
	ConfigVal  string
	Unknown    []string // flags the command does not accept

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `chatviews - chat title bar, member list and drop zone in the terminal

Usage:
  chatviews                     Start the TUI (default)
  chatviews config [show]       Show the configuration
  chatviews config get <key>    Print one value (e.g. ui.locale)
  chatviews config set <k> <v>  Set and save one value
  chatviews config reset        Restore the defaults
  chatviews config path         Show the config file location
  chatviews version             Show version information
  chatviews help                Show this help

Global flags:
  --config PATH                 Use this config file
  --locale TAG                  UI language (en, zh-CN)
  --theme dark|light|auto       Color theme
  --dropzone DIR                Treat files landing in DIR as drops
  -v, --verbose                 Debug logging

Keys:
  tab / shift+tab               Switch chat
  up/down, enter                Select a member, open the profile
  p                             Open the profile of the chat counterpart
  s                             Cycle the selected member's status
  x                             Dismiss the newest notification
  q                             Quit

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "chatviews version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "  Go:         %s\n", runtime.Version())
}

// Parse parses command-line arguments (without the program name) and returns
// the command and args.
func Parse(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "version", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		parsedArgs.Raw = append([]string{cmd}, remaining...)
		return CmdHelp, parsedArgs
	}
}

// globalValueFlags are the global flags that take a value.
var globalValueFlags = map[string]func(*Args, string){
	"config":   func(a *Args, v string) { a.ConfigPath = v },
	"locale":   func(a *Args, v string) { a.Locale = v },
	"theme":    func(a *Args, v string) { a.Theme = v },
	"dropzone": func(a *Args, v string) { a.DropZone = v },
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "-v", "--verbose":
			parsedArgs.Verbose = true
			continue
		}

		if !strings.HasPrefix(arg, "--") {
			remaining = append(remaining, arg)
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		set, ok := globalValueFlags[name]
		if !ok {
			remaining = append(remaining, arg)
			continue
		}
		if !hasValue {
			if i+1 >= len(args) {
				continue
			}
			i++
			value = args[i]
		}
		set(&parsedArgs, value)
	}

	return remaining, parsedArgs
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	args.Subcommand = p.Subcommand()
	args.ConfigKey = p.Positional(1)
	args.ConfigVal = strings.Join(p.PositionalFrom(2), " ")
	args.Unknown = p.Flags()
}
