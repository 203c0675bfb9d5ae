package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Target != "npmplus" || cfg.MaxSnapshots != 5 || cfg.MaxChars != 5_000_000 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AuthEnabled() {
		t.Fatal("auth should be off by default")
	}
}

func TestLoadYAMLFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "confwatch.yaml")
	yaml := "target: proxy-a\nmax_chars: 1000\nmax_snapshots: 3\nbasic_user: u\nbasic_pass: p\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// env wins over the file
	t.Setenv("NPMPLUS_CONTAINER", "proxy-b")
	t.Setenv("MAX_SNAPSHOTS", "2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Target != "proxy-b" {
		t.Fatalf("env override lost: target=%q", cfg.Target)
	}
	if cfg.MaxSnapshots != 2 {
		t.Fatalf("env override lost: max_snapshots=%d", cfg.MaxSnapshots)
	}
	if cfg.MaxChars != 1000 {
		t.Fatalf("file value lost: max_chars=%d", cfg.MaxChars)
	}
	if !cfg.AuthEnabled() {
		t.Fatal("auth should be enabled from file")
	}
}

func TestLoadMissingFileIsFine(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Fatalf("missing optional file must not error: %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyOverrides("0.0.0.0", 9000); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if cfg.Host != "0.0.0.0" || cfg.Port != 9000 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}

	// zero values leave the loaded config alone
	cfg = Default()
	if err := cfg.ApplyOverrides("", 0); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != 8088 {
		t.Fatalf("zero overrides must be no-ops: %+v", cfg)
	}

	// a flag value goes through the same range check as file/env values
	if err := Default().ApplyOverrides("", 99999); err == nil {
		t.Fatal("expected out-of-range port to be rejected")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Port = 0 }},
		{"empty target", func(c *Config) { c.Target = "" }},
		{"empty command", func(c *Config) { c.Command = nil }},
		{"zero max_chars", func(c *Config) { c.MaxChars = 0 }},
		{"zero max_snapshots", func(c *Config) { c.MaxSnapshots = 0 }},
		{"one-sided creds", func(c *Config) { c.BasicUser = "u" }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}
