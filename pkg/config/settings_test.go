package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SNAKE_CONFIG", "")
	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Width != StandardWidth || s.Height != StandardHeight {
		t.Errorf("Expected %dx%d board, got %dx%d", StandardWidth, StandardHeight, s.Width, s.Height)
	}
	if s.Mode != "classic" {
		t.Errorf("Expected classic mode, got %q", s.Mode)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SNAKE_CONFIG", "")
	t.Setenv("SNAKE_WIDTH", "30")
	t.Setenv("SNAKE_HEIGHT", "3") // too small, ignored
	t.Setenv("SNAKE_MODE", "survival")
	t.Setenv("SNAKE_SEED", "42")
	t.Setenv("SNAKE_VOLUME", "150")
	t.Setenv("SNAKE_AUDIO_ENABLED", "false")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Width != 30 {
		t.Errorf("Expected width 30, got %d", s.Width)
	}
	if s.Height != StandardHeight {
		t.Errorf("Expected invalid height to be ignored, got %d", s.Height)
	}
	if s.Mode != "survival" {
		t.Errorf("Expected survival mode, got %q", s.Mode)
	}
	if s.Seed != 42 || s.EffectiveSeed() != 42 {
		t.Errorf("Expected seed 42, got %d", s.Seed)
	}
	if s.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", s.Volume)
	}
	if s.AudioEnabled {
		t.Error("Expected audio disabled")
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.json")
	if err := os.WriteFile(path, []byte(`{"width": 38, "height": 38, "mode": "time_attack", "lang": "zh_CN"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SNAKE_CONFIG", path)
	t.Setenv("SNAKE_LANG", "en")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Width != 38 || s.Height != 38 {
		t.Errorf("Expected 38x38 from file, got %dx%d", s.Width, s.Height)
	}
	if s.Mode != "time_attack" {
		t.Errorf("Expected time_attack from file, got %q", s.Mode)
	}
	if s.Lang != "en" {
		t.Errorf("Expected env to win over file, got %q", s.Lang)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"width": `), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SNAKE_CONFIG", path)

	s, err := Load()
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if s.Width != StandardWidth {
		t.Errorf("Defaults should survive a malformed file, got width %d", s.Width)
	}
}
