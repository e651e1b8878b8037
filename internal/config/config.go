// Package config holds the optional YAML configuration file: traversal
// defaults, output format and endpoint auth. CLI flags override it.
package config

import (
	"fmt"

	"schemascope/internal/introspection"
	"schemascope/internal/traverse"
)

type Config struct {
	// Depth is a pointer so an explicit "depth: 0" survives defaulting;
	// zero is a valid bound (one shallow level, nothing expanded).
	Depth           *int        `yaml:"depth,omitempty"`
	Format          string      `yaml:"format,omitempty"`
	WrapperSuffixes []string    `yaml:"wrapper_suffixes,omitempty"`
	Roots           []string    `yaml:"roots,omitempty"`
	Strict          bool        `yaml:"strict,omitempty"`
	TimeoutSeconds  int         `yaml:"timeout_seconds,omitempty"`
	Auth            *AuthConfig `yaml:"auth,omitempty"`
	Log             LogConfig   `yaml:"log,omitempty"`
}

type AuthConfig struct {
	Type     string `yaml:"type"`
	Token    string `yaml:"token,omitempty"`    // bearer
	Username string `yaml:"username,omitempty"` // basic
	Password string `yaml:"password,omitempty"` // basic
	Header   string `yaml:"header,omitempty"`   // api-key header name
	Value    string `yaml:"value,omitempty"`    // api-key value
}

type LogConfig struct {
	Format string `yaml:"format,omitempty"`
	Level  string `yaml:"level,omitempty"`
}

func (c *Config) ApplyDefaults() {
	if c.Depth == nil {
		d := traverse.DefaultMaxDepth
		c.Depth = &d
	}
	if c.Format == "" {
		c.Format = "json"
	}
	if c.WrapperSuffixes == nil {
		c.WrapperSuffixes = traverse.DefaultWrapperSuffixes
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 15
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) Validate() error {
	switch c.Format {
	case "json", "yaml", "dot":
	default:
		return fmt.Errorf("format must be json, yaml or dot, got %q", c.Format)
	}
	if c.Depth != nil && *c.Depth < 0 {
		return fmt.Errorf("depth must be >= 0, got %d", *c.Depth)
	}
	if c.Auth != nil {
		switch c.Auth.Type {
		case "bearer", "basic", "api-key":
		default:
			return fmt.Errorf("auth.type must be bearer, basic or api-key, got %q", c.Auth.Type)
		}
	}
	return nil
}

// FetchAuth converts the auth section to the fetcher's form, or nil when
// no auth is configured.
func (c *Config) FetchAuth() *introspection.Auth {
	if c.Auth == nil {
		return nil
	}
	return &introspection.Auth{
		Type:     c.Auth.Type,
		Token:    c.Auth.Token,
		Username: c.Auth.Username,
		Password: c.Auth.Password,
		Header:   c.Auth.Header,
		Value:    c.Auth.Value,
	}
}
