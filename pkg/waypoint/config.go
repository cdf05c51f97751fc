package waypoint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/location"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/nav"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/serializer"
)

// Config is the file form of a deep link setup.
//
//	index_alias = "/home"
//
//	[location]
//	strategy = "hash"
//
//	[[links]]
//	name = "detail-page"
//	segment = "detail/:id"
//	default_history = ["list"]
type Config struct {
	IndexAlias string             `toml:"index_alias" yaml:"index_alias"`
	Location   LocationConfig     `toml:"location" yaml:"location"`
	Links      []*serializer.Link `toml:"links" yaml:"links"`
}

// LocationConfig describes how URLs are rendered for the host.
type LocationConfig struct {
	Strategy string `toml:"strategy" yaml:"strategy"` // "path" (default) or "hash"
	BaseHref string `toml:"base_href" yaml:"base_href"`
}

// LoadConfig reads a TOML or YAML config, chosen by file extension.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("waypoint: read config: %w", err)
	}
	return ParseConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseConfig decodes config data in the given format ("toml", "yaml" or "yml").
func ParseConfig(data []byte, format string) (*Config, error) {
	cfg := &Config{}

	var err error
	switch strings.ToLower(format) {
	case "toml":
		err = toml.Unmarshal(data, cfg)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("waypoint: unsupported config format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("waypoint: parse %s config: %w", format, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Links))
	for i, link := range c.Links {
		if link == nil || link.Name == "" {
			return fmt.Errorf("waypoint: link %d has no name", i)
		}
		if seen[link.Name] {
			return fmt.Errorf("waypoint: duplicate link %q", link.Name)
		}
		seen[link.Name] = true
	}
	return nil
}

// Bind attaches components to the links of the same name. Links bound neither
// here nor through load_children fail to resolve.
func (c *Config) Bind(components map[string]*nav.Component) error {
	for name, component := range components {
		link := c.link(name)
		if link == nil {
			return fmt.Errorf("waypoint: bind %q: %w", name, ErrInvalidLink)
		}
		link.Component = component
	}
	return nil
}

// Serializer builds a serializer over the configured links.
func (c *Config) Serializer() *serializer.Serializer {
	return serializer.New(c.Links)
}

// NewLocation creates an in-memory host starting at initial, rendering URLs
// with the configured strategy.
func (c *Config) NewLocation(initial string) *location.Memory {
	return location.NewMemory(initial).
		WithStrategy(constants.ParseLocationStrategy(c.Location.Strategy), c.Location.BaseHref)
}

func (c *Config) link(name string) *serializer.Link {
	for _, link := range c.Links {
		if link.Name == name {
			return link
		}
	}
	return nil
}
