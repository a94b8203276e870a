// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation for chatviews.
//
// Subcommands:
//   show (default)      Display current configuration
//   get <key>           Print one value
//   set <key> <value>   Set a configuration value
//   reset               Reset to default configuration
//   path                Show configuration file path
//
// Examples:
//   chatviews config set ui.locale zh-CN
//   chatviews config set upload.default_limit_bytes 5242880
//   chatviews config set dropzone.enabled true
//   chatviews --config ./dev.toml config show
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jeranaias/chatviews-tui/internal/config"
	"github.com/jeranaias/chatviews-tui/internal/upload"
	"github.com/jeranaias/chatviews-tui/internal/util"
)

// configSections lists the keys shown by "config show", grouped by section.
var configSections = []struct {
	Name string
	Keys []string
}{
	{"ui", []string{"locale", "theme", "member_avatar_size", "strict_props"}},
	{"upload", []string{"default_limit_bytes"}},
	{"dropzone", []string{"enabled", "dir", "settle_ms"}},
	{"outbox", []string{"rate_per_second", "burst"}},
	{"log", []string{"level", "path"}},
}

// ConfigPath returns the config file the command operates on.
func ConfigPath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	return config.ConfigPathTOML()
}

// LoadConfig loads the file named by args, or the defaults when it does not exist yet.
func LoadConfig(args Args) (*config.Config, error) {
	path, err := ConfigPath(args)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := config.Default()
		cfg.ApplyEnvOverrides()
		cfg.SetDefaults()
		return cfg, nil
	}
	return config.LoadFromPath(path)
}

// HandleConfig handles the "config" command.
func HandleConfig(args Args, w io.Writer) error {
	if len(args.Unknown) > 0 {
		return fmt.Errorf("unknown flag %s for config", args.Unknown[0])
	}
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args, w)
	case "get":
		return handleConfigGet(args, w)
	case "set":
		return handleConfigSet(args, w)
	case "reset":
		return handleConfigReset(args, w)
	case "path":
		path, err := ConfigPath(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, path)
		return nil
	default:
		return fmt.Errorf("unknown config subcommand %q (try show, get, set, reset, path)", args.Subcommand)
	}
}

func handleConfigShow(args Args, w io.Writer) error {
	cfg, err := LoadConfig(args)
	if err != nil {
		return err
	}
	path, _ := ConfigPath(args)

	fmt.Fprintln(w, render(TitleStyle, "chatviews configuration"))
	fmt.Fprintln(w, render(DimStyle, path))

	for _, section := range configSections {
		fmt.Fprintln(w)
		fmt.Fprintln(w, render(SectionStyle, "["+section.Name+"]"))
		for _, k := range section.Keys {
			v, err := cfg.Get(section.Name + "." + k)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %s %s\n", label(k), render(ValueStyle, formatValue(section.Name+"."+k, v)))
		}
	}
	return nil
}

func handleConfigGet(args Args, w io.Writer) error {
	if args.ConfigKey == "" {
		return errors.New("usage: chatviews config get <key>")
	}
	cfg, err := LoadConfig(args)
	if err != nil {
		return err
	}
	v, err := cfg.Get(args.ConfigKey)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, v)
	return nil
}

func handleConfigSet(args Args, w io.Writer) error {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		return errors.New("usage: chatviews config set <key> <value>")
	}
	cfg, err := LoadConfig(args)
	if err != nil {
		return err
	}

	value := args.ConfigVal
	if current, err := cfg.Get(args.ConfigKey); err == nil {
		if _, isBool := current.(bool); isBool {
			b, err := ParseBoolString(value)
			if err != nil {
				return err
			}
			value = fmt.Sprint(b)
		}
	}

	if err := cfg.Set(args.ConfigKey, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save: %w", err)
	}
	if err := save(args, cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %s = %s\n", render(SuccessStyle, "saved"), args.ConfigKey, value)
	return nil
}

func handleConfigReset(args Args, w io.Writer) error {
	if err := save(args, config.Default()); err != nil {
		return err
	}
	fmt.Fprintln(w, render(SuccessStyle, "configuration reset to defaults"))
	return nil
}

func save(args Args, cfg *config.Config) error {
	path, err := ConfigPath(args)
	if err != nil {
		return err
	}
	return config.SaveTOML(cfg, path)
}

func label(key string) string {
	text := key + ":"
	if !ColorsEnabled() {
		return util.PadRight(text, 22)
	}
	return LabelStyle.Render(text)
}

func formatValue(key string, v interface{}) string {
	switch {
	case key == "upload.default_limit_bytes":
		limit, _ := v.(int64)
		if limit <= 0 {
			return "unlimited"
		}
		return fmt.Sprintf("%d (%s)", limit, upload.FormatBytes(limit))
	case key == "log.path" && v == "":
		return "(default)"
	case strings.HasSuffix(key, ".dir") && v == "":
		return "(unset)"
	}
	return fmt.Sprint(v)
}
