package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Run("respects XDG_CACHE_HOME", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir error: %v", err)
		}
		if dir != filepath.Join("/tmp/xdg-cache", appName) {
			t.Errorf("cacheDir = %q", dir)
		}
	})

	t.Run("falls back to home", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "")

		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir error: %v", err)
		}
		if !strings.HasSuffix(dir, filepath.Join(".cache", appName)) {
			t.Errorf("cacheDir = %q", dir)
		}
	})
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath error: %v", err)
	}
	if path != filepath.Join("/tmp/xdg-config", appName, "config.toml") {
		t.Errorf("configPath = %q", path)
	}
}
