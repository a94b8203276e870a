// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for chatviews.
//
// Configuration file location (in order of precedence):
//   - the path passed with --config
//   - ~/.chatviews/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/jeranaias/chatviews-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete chatviews configuration.
type Config struct {
	Version string `toml:"version"`

	UI       UIConfig       `toml:"ui"`
	Upload   UploadConfig   `toml:"upload"`
	DropZone DropZoneConfig `toml:"dropzone"`
	Outbox   OutboxConfig   `toml:"outbox"`
	Log      LogConfig      `toml:"log"`
}

// UIConfig contains display settings.
type UIConfig struct {
	// Locale selects the string catalog, e.g. "en" or "zh-CN".
	Locale string `toml:"locale"`
	// Theme is "dark", "light" or "auto".
	Theme string `toml:"theme"`
	// MemberAvatarSize is the avatar size used by member list rows.
	MemberAvatarSize int `toml:"member_avatar_size"`
	// StrictProps validates view props on every render and logs violations.
	StrictProps bool `toml:"strict_props"`
}

// UploadConfig contains upload policy settings.
type UploadConfig struct {
	// DefaultLimitBytes applies to users without their own limit. 0 = unlimited.
	DefaultLimitBytes int64 `toml:"default_limit_bytes"`
}

// DropZoneConfig configures the watched inbox directory used as a drop target.
type DropZoneConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
	// SettleMS is how long the inbox must stay quiet before a batch is dropped.
	SettleMS int `toml:"settle_ms"`
}

// OutboxConfig controls how fast queued content is handed to the transport.
type OutboxConfig struct {
	RatePerSecond float64 `toml:"rate_per_second"`
	Burst         int     `toml:"burst"`
}

// LogConfig controls the structured log file.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `toml:"level"`
	// Path is the log file; empty means ~/.chatviews/chatviews.log.
	Path string `toml:"path"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		UI: UIConfig{
			Locale:           "en",
			Theme:            "auto",
			MemberAvatarSize: 30,
			StrictProps:      false,
		},
		Upload: UploadConfig{
			DefaultLimitBytes: 10 * 1024 * 1024,
		},
		DropZone: DropZoneConfig{
			Enabled:  false,
			Dir:      "",
			SettleMS: 300,
		},
		Outbox: OutboxConfig{
			RatePerSecond: 4,
			Burst:         8,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the chatviews configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".chatviews"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from ~/.chatviews/config.toml, falling back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file on top of cfg.
func LoadTOML(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
// Keys missing from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to path atomically.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# chatviews configuration file\n")
	buf.WriteString("# Generated by chatviews - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if _, err := language.Parse(strings.ReplaceAll(c.UI.Locale, "_", "-")); err != nil {
		errs = append(errs, ValidationError{
			Field:   "ui.locale",
			Message: fmt.Sprintf("invalid locale '%s'", c.UI.Locale),
		})
	}

	validThemes := map[string]bool{"auto": true, "dark": true, "light": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	if c.UI.MemberAvatarSize < 10 || c.UI.MemberAvatarSize > 120 {
		errs = append(errs, ValidationError{
			Field:   "ui.member_avatar_size",
			Message: fmt.Sprintf("must be between 10 and 120, got %d", c.UI.MemberAvatarSize),
		})
	}

	if c.Upload.DefaultLimitBytes < 0 {
		errs = append(errs, ValidationError{
			Field:   "upload.default_limit_bytes",
			Message: "must not be negative (use 0 for unlimited)",
		})
	}

	if c.DropZone.Enabled && strings.TrimSpace(c.DropZone.Dir) == "" {
		errs = append(errs, ValidationError{
			Field:   "dropzone.dir",
			Message: "required when dropzone.enabled is true",
		})
	}
	if c.DropZone.SettleMS < 0 {
		errs = append(errs, ValidationError{
			Field:   "dropzone.settle_ms",
			Message: "must not be negative",
		})
	}

	if c.Outbox.RatePerSecond <= 0 {
		errs = append(errs, ValidationError{
			Field:   "outbox.rate_per_second",
			Message: "must be positive",
		})
	}
	if c.Outbox.Burst < 1 {
		errs = append(errs, ValidationError{
			Field:   "outbox.burst",
			Message: "must be at least 1",
		})
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s'", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills zero-value fields that have no meaningful zero.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.UI.Locale == "" {
		c.UI.Locale = defaults.UI.Locale
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.MemberAvatarSize == 0 {
		c.UI.MemberAvatarSize = defaults.UI.MemberAvatarSize
	}
	if c.DropZone.SettleMS == 0 {
		c.DropZone.SettleMS = defaults.DropZone.SettleMS
	}
	if c.Outbox.RatePerSecond == 0 {
		c.Outbox.RatePerSecond = defaults.Outbox.RatePerSecond
	}
	if c.Outbox.Burst == 0 {
		c.Outbox.Burst = defaults.Outbox.Burst
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides.
//
// Supported variables:
//   - CHATVIEWS_LOCALE: overrides ui.locale
//   - CHATVIEWS_UPLOAD_LIMIT: overrides upload.default_limit_bytes
//   - CHATVIEWS_DROP_DIR: sets dropzone.dir and enables the drop zone
//   - CHATVIEWS_LOG_LEVEL: overrides log.level
func (c *Config) ApplyEnvOverrides() {
	if locale := os.Getenv("CHATVIEWS_LOCALE"); locale != "" {
		c.UI.Locale = locale
	}

	if limit := os.Getenv("CHATVIEWS_UPLOAD_LIMIT"); limit != "" {
		if n, err := strconv.ParseInt(limit, 10, 64); err == nil {
			c.Upload.DefaultLimitBytes = n
		}
	}

	if dir := os.Getenv("CHATVIEWS_DROP_DIR"); dir != "" {
		c.DropZone.Dir = dir
		c.DropZone.Enabled = true
	}

	if level := os.Getenv("CHATVIEWS_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.locale").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.locale").
// String values are converted to the field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if strings.TrimSpace(key) == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %w", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %w", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			lower := strings.ToLower(strVal)
			field.SetBool(lower == "1" || lower == "true" || lower == "yes")
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}
