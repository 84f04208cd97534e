package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	clearConfigEnv(t)
	tmpDir := t.TempDir()
	t.Setenv("TD_STORE_DIR", tmpDir)

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Storage.Dir != tmpDir {
		t.Errorf("Storage.Dir = %q, want %q", cfg.Storage.Dir, tmpDir)
	}
	if cfg.Identity.DefaultUsername != DefaultUsername {
		t.Errorf("Identity.DefaultUsername = %q", cfg.Identity.DefaultUsername)
	}
}

func TestLoader_ReadsDefaultFileInStoreDir(t *testing.T) {
	clearConfigEnv(t)
	tmpDir := t.TempDir()
	t.Setenv("TD_STORE_DIR", tmpDir)
	writeConfigFile(t, tmpDir, `
identity:
  default_username: jane_doe
display:
  recent_limit: 7
`)

	loader := NewLoader()
	if got := loader.ConfigFilePath(); got != filepath.Join(tmpDir, "config.yaml") {
		t.Errorf("ConfigFilePath() = %q", got)
	}

	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Identity.DefaultUsername != "jane_doe" {
		t.Errorf("Identity.DefaultUsername = %q, want jane_doe", cfg.Identity.DefaultUsername)
	}
	if cfg.Display.RecentLimit != 7 {
		t.Errorf("Display.RecentLimit = %d, want 7", cfg.Display.RecentLimit)
	}
	// Values absent from the file keep their defaults
	if cfg.Display.TimeFormat == "" {
		t.Error("Display.TimeFormat should keep its default")
	}
}

func TestLoader_EnvironmentOverridesFile(t *testing.T) {
	clearConfigEnv(t)
	tmpDir := t.TempDir()
	path := writeConfigFile(t, tmpDir, `
storage:
  backend: memory
identity:
  default_username: from-file
application:
  timeout: 10s
`)
	t.Setenv("TD_CONFIG_FILE", path)
	t.Setenv("TD_DEFAULT_USERNAME", "from-env")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Identity.DefaultUsername != "from-env" {
		t.Errorf("Identity.DefaultUsername = %q, want from-env", cfg.Identity.DefaultUsername)
	}
	if cfg.Storage.Backend != BackendMemory {
		t.Errorf("Storage.Backend = %q, want memory", cfg.Storage.Backend)
	}
	if cfg.Application.Timeout != 10*time.Second {
		t.Errorf("Application.Timeout = %v, want 10s", cfg.Application.Timeout)
	}
}

func TestLoader_WithFileTakesPrecedence(t *testing.T) {
	clearConfigEnv(t)
	envPath := writeConfigFile(t, t.TempDir(), "identity:\n  default_username: env-file\n")
	explicitPath := writeConfigFile(t, t.TempDir(), "identity:\n  default_username: explicit-file\n")
	t.Setenv("TD_CONFIG_FILE", envPath)
	t.Setenv("TD_STORE_DIR", t.TempDir())

	cfg, err := NewLoader().WithFile(explicitPath).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Identity.DefaultUsername != "explicit-file" {
		t.Errorf("Identity.DefaultUsername = %q, want explicit-file", cfg.Identity.DefaultUsername)
	}
}

func TestLoader_MalformedFile(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfigFile(t, t.TempDir(), "identity: [unclosed\n")

	_, err := NewLoader().WithFile(path).Load()
	if err == nil {
		t.Fatal("Load() should fail on malformed YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoader_InvalidFileValues(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfigFile(t, t.TempDir(), "storage:\n  backend: redis\n")

	_, err := NewLoader().WithFile(path).Load()
	if err == nil {
		t.Fatal("Load() should reject an unknown backend")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("Load() error = %T, want *ConfigError", err)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("TD_STORE_DIR", t.TempDir())
	t.Setenv("TD_URL", "https://example.com/?username=env")

	backend := BackendMemory
	url := "https://example.com/?username=flag"
	limit := 10
	noColor := true
	verbose := true

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		StoreBackend: &backend,
		URL:          &url,
		RecentLimit:  &limit,
		NoColor:      &noColor,
		Verbose:      &verbose,
	})
	if err != nil {
		t.Fatalf("LoadWithOverrides() error = %v", err)
	}
	if cfg.Storage.Backend != BackendMemory {
		t.Errorf("Storage.Backend = %q", cfg.Storage.Backend)
	}
	if cfg.Identity.URL != url {
		t.Errorf("Identity.URL = %q, want flag value", cfg.Identity.URL)
	}
	if cfg.Display.RecentLimit != 10 || !cfg.Display.NoColor || !cfg.Application.Verbose {
		t.Errorf("overrides not applied: %+v %+v", cfg.Display, cfg.Application)
	}
}

func TestLoadWithOverrides_Revalidates(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("TD_STORE_DIR", t.TempDir())

	limit := 0
	_, err := NewLoader().LoadWithOverrides(&ConfigOverrides{RecentLimit: &limit})
	if err == nil {
		t.Fatal("LoadWithOverrides() should reject a zero recent limit")
	}
}
