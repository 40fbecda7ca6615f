package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"jellyname/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("JELLYNAME_LOG_LEVEL", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "jellyname", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if want := filepath.Join(tempHome, ".local", "state", "jellyname"); cfg.Paths.StateDir != want {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, want)
	}
	if cfg.Paths.LogDir != "" {
		t.Fatalf("expected file logging disabled by default, got %q", cfg.Paths.LogDir)
	}
	if cfg.Behavior.Recursive || cfg.Behavior.AutoApprove {
		t.Fatalf("expected conservative behavior defaults, got %+v", cfg.Behavior)
	}
	if !cfg.Output.Summary {
		t.Fatal("expected summary enabled by default")
	}
	want := []string{".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v"}
	if !reflect.DeepEqual(cfg.Naming.Extensions, want) {
		t.Fatalf("unexpected extensions: %v", cfg.Naming.Extensions)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.StateDir); err != nil || !info.IsDir() {
		t.Fatalf("expected state dir to exist: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "jellyname.toml")

	type payload struct {
		Paths struct {
			LogDir string `toml:"log_dir"`
		} `toml:"paths"`
		Naming struct {
			Extensions []string `toml:"extensions"`
		} `toml:"naming"`
		Behavior struct {
			Recursive bool `toml:"recursive"`
		} `toml:"behavior"`
		Logging struct {
			Level string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.LogDir = filepath.Join(tempDir, "logs")
	custom.Naming.Extensions = []string{"MKV", ".ts", "mkv", " "}
	custom.Behavior.Recursive = true
	custom.Logging.Level = "DEBUG"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("JELLYNAME_LOG_LEVEL", "")

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom config to be used, got %q exists=%v", resolved, exists)
	}
	if !cfg.Behavior.Recursive {
		t.Fatal("expected recursive from file")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized level, got %q", cfg.Logging.Level)
	}
	if !reflect.DeepEqual(cfg.Naming.Extensions, []string{".mkv", ".ts"}) {
		t.Fatalf("unexpected extensions: %v", cfg.Naming.Extensions)
	}
	if cfg.Paths.LogDir != custom.Paths.LogDir {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
}

func TestLoadEnvLogLevelOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JELLYNAME_LOG_LEVEL", "Warn")
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env override, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("JELLYNAME_LOG_LEVEL", "")
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"bad extension", "[naming]\nextensions = [\".tar.gz\"]\n", "naming.extensions"},
		{"unknown key", "[naming]\nextention = [\".mkv\"]\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "jellyname.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSampleConfigLoads(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JELLYNAME_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	defaults := config.Default()
	if !reflect.DeepEqual(cfg.Naming.Extensions, defaults.Naming.Extensions) {
		t.Fatalf("sample extensions drifted from defaults: %v", cfg.Naming.Extensions)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/media")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "media") {
		t.Fatalf("unexpected expansion %q", got)
	}
}
