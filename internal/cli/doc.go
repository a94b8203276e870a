// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-interactive commands
// of chatviews.
//
// # Usage
//
//	cmd, args := cli.Parse(os.Args[1:])
//	switch cmd {
//	case cli.CmdConfig:
//	    err = cli.HandleConfig(args, os.Stdout)
//	case cli.CmdVersion:
//	    cli.PrintVersion(os.Stdout)
//	}
//
// Global flags (--config, --locale, --theme, --dropzone, --verbose)
// may appear anywhere on the command line. Output is colored only when stdout
// is a terminal, honoring NO_COLOR and FORCE_COLOR.
package cli
