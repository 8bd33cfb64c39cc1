package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file was not written: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *reloaded != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", reloaded, cfg)
	}
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[cli]\nlimit = 9\n\n[dict]\nencoding = \"latin1\"\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.CLI.Limit != 9 {
		t.Errorf("cli.limit = %d, want 9", cfg.CLI.Limit)
	}
	if cfg.Dict.Encoding != "latin1" {
		t.Errorf("dict.encoding = %q", cfg.Dict.Encoding)
	}
	if cfg.Dict.Path != DefaultConfig().Dict.Path || cfg.Server.MaxLimit != 64 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// limit has the wrong type, the rest is fine
	writeFile(t, path, "[cli]\nlimit = \"lots\"\nprompt = \"? \"\n\n[server]\nmax_limit = 10\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.CLI.Limit != 5 {
		t.Errorf("cli.limit = %d, want default 5", cfg.CLI.Limit)
	}
	if cfg.CLI.Prompt != "? " {
		t.Errorf("cli.prompt = %q", cfg.CLI.Prompt)
	}
	if cfg.Server.MaxLimit != 10 {
		t.Errorf("server.max_limit = %d", cfg.Server.MaxLimit)
	}
}

func TestLoadConfigGarbageFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "this is = = not toml [[[")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CLI.Limit = 0
	cfg.Server.MinPrefix = 3
	cfg.Server.MaxPrefix = 2
	cfg.Server.MaxLimit = -1
	cfg.Dict.Format = ""

	cfg.Validate()

	if cfg.CLI.Limit != 5 || cfg.Server.MaxLimit != 64 {
		t.Errorf("limits not reset: %+v", cfg)
	}
	if cfg.Server.MaxPrefix != 60 {
		t.Errorf("max_prefix = %d, want 60", cfg.Server.MaxPrefix)
	}
	if cfg.Dict.Format != "ranked" {
		t.Errorf("format = %q", cfg.Dict.Format)
	}
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, "[cli]\nlimit = 3\n")

	cfg, used, err := LoadConfigWithPriority(path)
	if err != nil {
		t.Fatalf("LoadConfigWithPriority: %v", err)
	}
	if used != path || cfg.CLI.Limit != 3 {
		t.Errorf("got %q / %+v", used, cfg.CLI)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDisplayPath(t *testing.T) {
	if got := DisplayPath(""); got != "built-in defaults" {
		t.Errorf("DisplayPath(\"\") = %q", got)
	}
	if got := DisplayPath("config.toml"); !filepath.IsAbs(got) {
		t.Errorf("expected an absolute path, got %q", got)
	}
}
