package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mireku/cardik/internal/card"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided upstream,
	// it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "cardik"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "cardik"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults)
	_ = v.ReadInConfig()

	// Environment variables: CARDIK_* (highest among these sources)
	v.SetEnvPrefix("cardik")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Normalize a few dependent values post-merge
	if v.GetString("data_dir") == "" {
		v.Set("data_dir", defaultDataDir())
	}
	if strings.TrimSpace(v.GetString("vault_dir")) == "" {
		v.Set("vault_dir", ".")
	}
	v.Set("default_country_code", strings.ToUpper(strings.TrimSpace(v.GetString("default_country_code"))))

	return nil
}

// defaultDataDir resolves default data dir: $XDG_DATA_HOME/cardik or ~/.local/share/cardik
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "cardik")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "cardik")
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "cardik", "config.toml")
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		// Core paths and conventions
		{Key: "vault_dir", Default: ".", Comment: "Markdown vault root scanned for contact-card blocks"},
		{Key: "vault_pattern", Default: "**/*.md", Comment: "Glob (doublestar) selecting files inside vault_dir"},
		{Key: "data_dir", Default: defaultDataDir(), Comment: "Directory for local state; index is data_dir/cardik.db"},

		// Card pipeline
		{Key: "brandfetch_client_id", Default: "", Comment: "Brandfetch client ID for company logos; clearbit fallback when empty"},
		{Key: "default_country_code", Default: "US", Comment: "Region used to parse and format phone numbers"},
		{Key: "gravatar_host", Default: card.DefaultGravatarHost, Comment: "Avatar provider host for email-derived photos"},
		{Key: "brandfetch_host", Default: card.DefaultBrandfetchHost, Comment: "Primary logo provider host"},
		{Key: "clearbit_host", Default: card.DefaultClearbitHost, Comment: "Fallback logo provider host (no credential required)"},

		// Sections (dotted keys for generator convenience)
		{Key: "render.strategy", Default: "dom", Comment: "Card rendering strategy: dom or template"},
		{Key: "render.template_path", Default: "", Comment: "External HTML template replacing the built-in (template strategy)"},
		{Key: "index.page_size", Default: 200, Comment: "Batch size for list/search paging"},
		{Key: "serve.http_addr", Default: ":8423", Comment: "HTTP listen address for the preview server"},
	}
}

// ResolveDBPath returns the sqlite index file path from data_dir rules.
func ResolveDBPath(v *viper.Viper) string {
	dir := v.GetString("data_dir")
	if dir == "" {
		dir = defaultDataDir()
	}
	// Expand ~ for convenience
	if len(dir) > 0 && dir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	return filepath.Join(dir, "cardik.db")
}
