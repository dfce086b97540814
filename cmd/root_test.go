package cmd

import (
	"path/filepath"
	"testing"

	"github.com/olivierh59500/aichair/internal/config"
)

func TestLoadSettingsAppliesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := rootCmd.ParseFlags([]string{"--settings", path, "--width", "1024", "--tps", "1000"}); err != nil {
		t.Fatalf("Expected flags to parse, got %v", err)
	}
	defer func() { settingsPath, width, height, tps = "", 0, 0, 0 }()

	s, err := loadSettings(rootCmd)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.WindowWidth != 1024 {
		t.Errorf("Expected width 1024, got %d", s.WindowWidth)
	}
	if s.WindowHeight != config.WindowHeight {
		t.Errorf("Expected default height %d, got %d", config.WindowHeight, s.WindowHeight)
	}
	// out of range, replaced by the default
	if s.TPS != config.TPS {
		t.Errorf("Expected tps %d, got %d", config.TPS, s.TPS)
	}
}
