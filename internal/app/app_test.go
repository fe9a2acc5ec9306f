package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_InvalidConfigFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("gallery_url = [broken"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := Run(context.Background(), Options{ConfigPath: cfgPath})
	if err == nil {
		t.Fatal("Run returned nil, want config error")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Fatalf("err = %v, want load config error", err)
	}
}

func TestRun_InvalidGalleryURLFails(t *testing.T) {
	err := Run(context.Background(), Options{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		GalleryURL: "http://[::1",
	})
	if err == nil {
		t.Fatal("Run returned nil, want gallery client error")
	}
	if !strings.Contains(err.Error(), "init gallery client") {
		t.Fatalf("err = %v, want init gallery client error", err)
	}
}
