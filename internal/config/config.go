// Copyright (c) 2025 Confwatch authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

// Package config loads the console configuration from an optional YAML
// file with environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// Target is the container the diagnostic command runs in.
	Target string `yaml:"target"`
	// Command is the diagnostic command executed inside the target.
	Command []string `yaml:"command"`

	// BasicUser/BasicPass gate every endpoint when both are set.
	BasicUser string `yaml:"basic_user"`
	BasicPass string `yaml:"basic_pass"`

	// MaxChars caps stored capture text; longer output is truncated
	// with a marker before it reaches the store.
	MaxChars int `yaml:"max_chars"`
	// MaxSnapshots bounds the retained history.
	MaxSnapshots int `yaml:"max_snapshots"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Host:         "127.0.0.1",
		Port:         8088,
		Target:       "npmplus",
		Command:      []string{"nginx", "-T"},
		MaxChars:     5_000_000,
		MaxSnapshots: 5,
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty or the file does not exist), then
// environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// optional file, fall through to env
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays the environment variables the original deployment
// scripts already set.
func (c *Config) applyEnv() {
	if v := os.Getenv("NPMPLUS_CONTAINER"); v != "" {
		c.Target = v
	}
	if v, ok := os.LookupEnv("BASIC_AUTH_USER"); ok {
		c.BasicUser = v
	}
	if v, ok := os.LookupEnv("BASIC_AUTH_PASS"); ok {
		c.BasicPass = v
	}
	if v := os.Getenv("MAX_CHARS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			c.MaxChars = i
		}
	}
	if v := os.Getenv("MAX_SNAPSHOTS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			c.MaxSnapshots = i
		}
	}
}

// ApplyOverrides layers command-line values over the loaded config and
// re-validates, so a flag cannot smuggle in a value the file or
// environment would have been rejected for. Zero values leave the
// loaded config untouched.
func (c *Config) ApplyOverrides(host string, port int) error {
	if host != "" {
		c.Host = host
	}
	if port != 0 {
		c.Port = port
	}
	return c.Validate()
}

// AuthEnabled reports whether the shared-credential gate is active.
func (c *Config) AuthEnabled() bool {
	return c.BasicUser != "" && c.BasicPass != ""
}
