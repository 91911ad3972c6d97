package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.Encoding != "utf-8" {
		t.Errorf("Encoding = %q, want %q", cfg.Encoding, "utf-8")
	}
	if cfg.Mode != "regex" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "regex")
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %q, want %q", cfg.Color, "auto")
	}
	if cfg.Recursive {
		t.Error("Recursive = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `log_level: debug
encoding: latin1
mode: literal
color: never
recursive: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Encoding != "latin1" {
		t.Errorf("Encoding = %q, want %q", cfg.Encoding, "latin1")
	}
	if cfg.Mode != "literal" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "literal")
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want %q", cfg.Color, "never")
	}
	if !cfg.Recursive {
		t.Error("Recursive = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

// TestLoadConfigPartialFile tests that absent keys keep their defaults
func TestLoadConfigPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("mode: literal\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Mode != "literal" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "literal")
	}
	if cfg.LogLevel != "warn" || cfg.Encoding != "utf-8" || cfg.Color != "auto" {
		t.Errorf("absent keys should keep defaults, got %+v", cfg)
	}
}

// TestLoadConfigExplicitFalse tests that an explicit false overrides a default
func TestLoadConfigExplicitFalse(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("recursive: false\nencoding: \"\"\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Recursive {
		t.Error("Recursive = true, want false")
	}
	if cfg.Encoding != "" {
		t.Errorf("Encoding = %q, want explicit empty string", cfg.Encoding)
	}
	// Empty encoding means UTF-8 and is valid.
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

// TestLoadRequiredConfig tests that a named config file must exist
func TestLoadRequiredConfig(t *testing.T) {
	_, err := LoadRequiredConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadRequiredConfig() expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadRequiredConfig() error should wrap fs.ErrNotExist, got %v", err)
	}

	configPath := filepath.Join(t.TempDir(), "present.yaml")
	if err := os.WriteFile(configPath, []byte("mode: literal\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := LoadRequiredConfig(configPath)
	if err != nil {
		t.Fatalf("LoadRequiredConfig() error = %v", err)
	}
	if cfg.Mode != "literal" {
		t.Errorf("Mode = %q, want literal", cfg.Mode)
	}
}

// TestLoadConfigMalformed tests that malformed YAML is an error
func TestLoadConfigMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("log_level: [unclosed\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("LoadConfig() expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestMergeWithFlags tests that non-nil flags override config values
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()

	level := "trace"
	mode := "literal"
	recursive := true
	cfg.MergeWithFlags(&level, nil, &mode, nil, &recursive)

	if cfg.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "trace")
	}
	if cfg.Mode != "literal" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "literal")
	}
	if !cfg.Recursive {
		t.Error("Recursive = false, want true")
	}
	if cfg.Encoding != "utf-8" || cfg.Color != "auto" {
		t.Errorf("nil flags must not change values, got %+v", cfg)
	}
}

// TestValidate tests rejection of invalid values
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "log_level"},
		{name: "bad mode", mutate: func(c *Config) { c.Mode = "glob" }, wantErr: "mode"},
		{name: "bad color", mutate: func(c *Config) { c.Color = "rainbow" }, wantErr: "color"},
		{name: "bad encoding", mutate: func(c *Config) { c.Encoding = "klingon" }, wantErr: "encoding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/from/env.yaml")
		got, required, err := ResolveConfigPath("/from/flag.yaml")
		if err != nil {
			t.Fatal(err)
		}
		if got != "/from/flag.yaml" || !required {
			t.Errorf("ResolveConfigPath() = %q, %v", got, required)
		}
	})

	t.Run("env second", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/from/env.yaml")
		got, required, err := ResolveConfigPath("")
		if err != nil {
			t.Fatal(err)
		}
		if got != "/from/env.yaml" || !required {
			t.Errorf("ResolveConfigPath() = %q, %v", got, required)
		}
	})

	t.Run("working directory last", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		tmpDir := t.TempDir()
		chdir(t, tmpDir)

		got, required, err := ResolveConfigPath("")
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(got) != DefaultFileName {
			t.Errorf("ResolveConfigPath() = %q, want file named %s", got, DefaultFileName)
		}
		if required {
			t.Error("the working directory config file should be optional")
		}
	})
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory to dir, sets PWD, and restores both on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(abs); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", abs)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("testing: chdir: " + err.Error())
		}
	})
}
