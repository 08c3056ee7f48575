package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all configuration for the social-graph CLI
type Config struct {
	Seed      string `koanf:"seed"`
	Summary   bool   `koanf:"summary"`
	Watch     bool   `koanf:"watch"`
	Viewer    string `koanf:"viewer"`
	NoColor   bool   `koanf:"no-color"`
	Verbosity string `koanf:"verbosity"`
}

// Load loads configuration from defaults, config file, environment variables, and flags.
// Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"seed":      "",
		"summary":   false,
		"watch":     false,
		"viewer":    "",
		"no-color":  false,
		"verbosity": "",
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config File (optional) - social-graph.toml
	// We ignore errors here as the file might not exist
	_ = k.Load(file.Provider("social-graph.toml"), toml.Parser())

	// 3. Environment Variables
	// Prefix: SOCIAL_GRAPH_ (e.g., SOCIAL_GRAPH_SEED=seed.toml)
	// Underscores map to hyphens, not dots, so SOCIAL_GRAPH_NO_COLOR lands
	// on the hyphenated flag key "no-color".
	if err := k.Load(env.Provider("SOCIAL_GRAPH_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, "SOCIAL_GRAPH_")), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
