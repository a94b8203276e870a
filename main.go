// chatviews - chat title bar, member list and drop zone for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatviews-tui/internal/cli"
	"github.com/jeranaias/chatviews-tui/internal/config"
	"github.com/jeranaias/chatviews-tui/internal/dropzone"
	"github.com/jeranaias/chatviews-tui/internal/lang"
	"github.com/jeranaias/chatviews-tui/internal/logging"
	"github.com/jeranaias/chatviews-tui/internal/model"
	"github.com/jeranaias/chatviews-tui/internal/outbox"
	"github.com/jeranaias/chatviews-tui/internal/ui/chat"
	"github.com/jeranaias/chatviews-tui/internal/ui/components"
	"github.com/jeranaias/chatviews-tui/internal/ui/styles"
	"github.com/jeranaias/chatviews-tui/internal/ui/views"
	"github.com/jeranaias/chatviews-tui/internal/upload"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	switch cmd {
	case cli.CmdTUI:
		if err := runTUI(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdConfig:
		if err := cli.HandleConfig(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.PrintVersion(os.Stdout)
	case cli.CmdHelp:
		cli.PrintUsage(os.Stdout)
		if len(args.Raw) > 0 {
			fmt.Fprintf(os.Stderr, "unknown command: %s\n", args.Raw[0])
			os.Exit(2)
		}
	}
}

// loadConfig loads the config file and applies the command-line overrides.
func loadConfig(args cli.Args) (*config.Config, error) {
	cfg, err := cli.LoadConfig(args)
	if err != nil {
		return nil, err
	}

	if args.Locale != "" {
		cfg.UI.Locale = args.Locale
	}
	if args.Theme != "" {
		cfg.UI.Theme = args.Theme
	}
	if args.DropZone != "" {
		cfg.DropZone.Dir = args.DropZone
		cfg.DropZone.Enabled = true
	}
	if args.Verbose {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runTUI(args cli.Args) error {
	if err := cli.RequireTTY(); err != nil {
		return err
	}

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	log.Info().
		Str("version", Version).
		Str("locale", cfg.UI.Locale).
		Str("theme", cfg.UI.Theme).
		Bool("dropzone", cfg.DropZone.Enabled).
		Msg("starting chatviews")

	store := model.NewDemoStore(os.Getenv("USER"), 0)

	var watcher *dropzone.Watcher
	if cfg.DropZone.Enabled {
		settle := time.Duration(cfg.DropZone.SettleMS) * time.Millisecond
		watcher, err = dropzone.NewWatcher(cfg.DropZone.Dir, settle, log)
		if err != nil {
			return fmt.Errorf("drop zone: %w", err)
		}
		defer watcher.Close()
	}

	screen := chat.New(chat.Options{
		Store:       store,
		Registry:    views.NewRegistry(log),
		Lang:        lang.New(cfg.UI.Locale),
		Policy:      upload.NewPolicy(cfg.Upload.DefaultLimitBytes),
		Outbox:      outbox.New(cfg.Outbox, log),
		Toasts:      components.NewToastManager(),
		Watcher:     watcher,
		Theme:       styles.NewThemeForMode(cfg.UI.Theme),
		Log:         log,
		Locale:      cfg.UI.Locale,
		AvatarSize:  cfg.UI.MemberAvatarSize,
		StrictProps: cfg.UI.StrictProps,
	})
	defer screen.Close()

	p := tea.NewProgram(
		screen,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		return fmt.Errorf("running chatviews: %w", err)
	}
	log.Info().Msg("exiting")
	return nil
}
