package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/finanalyzer/finanalyzer/internal/extractor"
	"github.com/finanalyzer/finanalyzer/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Errorf("listen addr: got %q, want :8080", cfg.ListenAddr)
	}
	if cfg.MaxUploadMB != 32 {
		t.Errorf("max upload: got %d, want 32", cfg.MaxUploadMB)
	}
	if cfg.DefaultProfile != "" {
		t.Errorf("default profile: got %q, want empty (auto-detect)", cfg.DefaultProfile)
	}
	if cfg.Currency != "INR" {
		t.Errorf("currency: got %q, want INR", cfg.Currency)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "listen_addr: \":9000\"\ndefault_profile: kotak\nsnap_tolerance: 6\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("listen addr: got %q, want :9000", cfg.ListenAddr)
	}
	if cfg.DefaultProfile != models.ProfileKotak {
		t.Errorf("default profile: got %q, want kotak", cfg.DefaultProfile)
	}
	if cfg.SnapTolerance != 6 {
		t.Errorf("snap tolerance: got %v, want 6", cfg.SnapTolerance)
	}
}

func TestLoadRejectsUnknownProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_profile: hdfc\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown profile")
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestTableConfig(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tc := cfg.TableConfig()
	if tc.Strategy != extractor.StrategyText {
		t.Errorf("strategy: got %q, want %q", tc.Strategy, extractor.StrategyText)
	}
	if tc.SnapTolerance != 4 {
		t.Errorf("snap tolerance: got %v, want 4", tc.SnapTolerance)
	}
	if tc.ColumnGap != 12 {
		t.Errorf("column gap: got %v, want 12", tc.ColumnGap)
	}
}
