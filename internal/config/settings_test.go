package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *s != *Default() {
		t.Errorf("Expected defaults, got %+v", s)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected defaults file to be written: %v", err)
	}
}

func TestLoadRoundTripOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	want := Default()
	want.TPS = 120
	want.Dots.Spacing = 30
	want.Dots.Color = [3]uint8{255, 0, 128}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"dots": {"radius_boost": 4}, "bogus": 1}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Dots.RadiusBoost != 4 {
		t.Errorf("Expected radius_boost 4, got %.2f", s.Dots.RadiusBoost)
	}
	if s.Dots.Spacing != DotSpacing || s.WindowWidth != WindowWidth {
		t.Errorf("Expected untouched fields to keep defaults, got %+v", s)
	}
}

func TestLoadInvalidJSONFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Expected fallback instead of error, got %v", err)
	}
	if *s != *Default() {
		t.Errorf("Expected defaults, got %+v", s)
	}
}

func TestLoadClampsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		check func(*Settings) bool
	}{
		{"tiny window", `{"window_width": 10, "window_height": 10}`, func(s *Settings) bool {
			return s.WindowWidth == WindowWidth && s.WindowHeight == WindowHeight
		}},
		{"tps", `{"tps": 0}`, func(s *Settings) bool { return s.TPS == TPS }},
		{"inverted opacity", `{"dots": {"opacity_min": 0.9, "opacity_max": 0.1}}`, func(s *Settings) bool {
			return s.Dots.OpacityMin == DotOpacityMin && s.Dots.OpacityMax == DotOpacityMax
		}},
		{"spacing", `{"dots": {"spacing": 1}}`, func(s *Settings) bool { return s.Dots.Spacing == DotSpacing }},
		{"negative boost", `{"dots": {"opacity_boost": -1}}`, func(s *Settings) bool { return s.Dots.OpacityBoost == 0 }},
		{"radius", `{"dots": {"interaction_radius": 0}}`, func(s *Settings) bool {
			return s.Dots.InteractionRadius == DotInteractionRadius
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			if err := os.WriteFile(path, []byte(tt.json), 0644); err != nil {
				t.Fatal(err)
			}
			s, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !tt.check(s) {
				t.Errorf("Unexpected settings after validation: %+v", s)
			}
		})
	}
}
