package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"
	cfg.Layout = model.LayoutTabular
	cfg.Face.Pitch = 17
	cfg.Options.NoZwanzig = true
	cfg.RecentTemplates = []string{"/tmp/a.json", "/tmp/b.json"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.Layout != model.LayoutTabular {
		t.Errorf("expected tabular layout, got %s", loaded.Layout)
	}
	if loaded.Face.Pitch != 17 {
		t.Errorf("expected pitch 17, got %f", loaded.Face.Pitch)
	}
	if loaded.Face.TextHeight != 11.55 {
		t.Errorf("expected text height to survive, got %f", loaded.Face.TextHeight)
	}
	if !loaded.Options.NoZwanzig {
		t.Error("expected NoZwanzig option to be loaded")
	}
	if len(loaded.RecentTemplates) != 2 {
		t.Errorf("expected 2 recent templates, got %d", len(loaded.RecentTemplates))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Rows != model.DefaultRows || cfg.Cols != model.DefaultCols {
		t.Errorf("expected default size, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.RecentTemplates == nil {
		t.Error("expected non-nil RecentTemplates")
	}
}

func TestLoadAppConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"rows": 12, "face": {"pitch": 15}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.Rows != 12 {
		t.Errorf("expected rows 12, got %d", cfg.Rows)
	}
	if cfg.Cols != model.DefaultCols {
		t.Errorf("expected default cols, got %d", cfg.Cols)
	}
	if cfg.Face.Pitch != 15 || cfg.Face.FrameSize != 250 {
		t.Errorf("expected pitch 15 and frame 250, got %f %f", cfg.Face.Pitch, cfg.Face.FrameSize)
	}
}

func TestLoadAppConfigEnvOverride(t *testing.T) {
	t.Setenv("WORTUHR_LOG_LEVEL", "debug")
	t.Setenv("WORTUHR_ICON_COPIES", "3")

	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.IconCopies != 3 {
		t.Errorf("expected 3 icon copies, got %d", cfg.IconCopies)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
