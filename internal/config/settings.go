package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// DotSettings retunes the hero background.
type DotSettings struct {
	Spacing           float64  `json:"spacing"`
	OpacityMin        float64  `json:"opacity_min"`
	OpacityMax        float64  `json:"opacity_max"`
	BaseRadius        float64  `json:"base_radius"`
	InteractionRadius float64  `json:"interaction_radius"`
	OpacityBoost      float64  `json:"opacity_boost"`
	RadiusBoost       float64  `json:"radius_boost"`
	Color             [3]uint8 `json:"color"`
}

type Settings struct {
	WindowWidth  int         `json:"window_width"`
	WindowHeight int         `json:"window_height"`
	TPS          int         `json:"tps"`
	Dots         DotSettings `json:"dots"`
}

func Default() *Settings {
	return &Settings{
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		TPS:          TPS,
		Dots: DotSettings{
			Spacing:           DotSpacing,
			OpacityMin:        DotOpacityMin,
			OpacityMax:        DotOpacityMax,
			BaseRadius:        DotBaseRadius,
			InteractionRadius: DotInteractionRadius,
			OpacityBoost:      DotOpacityBoost,
			RadiusBoost:       DotRadiusBoost,
			Color:             [3]uint8{87, 220, 205},
		},
	}
}

// DefaultPath returns ~/.config/aichair/settings.json, creating the directory.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "aichair")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

// Load reads settings from path. A missing file is created with defaults;
// a malformed one is reported and replaced by defaults in memory.
func Load(path string) (*Settings, error) {
	defaults := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Creating default settings file at %s", path)
			if err := Save(path, defaults); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaults, nil
	}
	warnUnknown("", raw, reflect.TypeOf(Settings{}))

	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaults, nil
	}
	settings.validate(defaults)
	return settings, nil
}

// Save writes settings as indented JSON.
func Save(path string, s *Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Normalize replaces out-of-range values with defaults, logging each one.
func (s *Settings) Normalize() { s.validate(Default()) }

func (s *Settings) validate(d *Settings) {
	if s.WindowWidth < 320 || s.WindowHeight < 240 {
		log.Printf("Invalid window size %dx%d, using default %dx%d", s.WindowWidth, s.WindowHeight, d.WindowWidth, d.WindowHeight)
		s.WindowWidth, s.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	if s.TPS < 1 || s.TPS > 240 {
		log.Printf("Invalid tps %d, must be between 1 and 240, using default %d", s.TPS, d.TPS)
		s.TPS = d.TPS
	}

	dots, def := &s.Dots, d.Dots
	if dots.Spacing < 4 || dots.Spacing > 200 {
		log.Printf("Invalid dots.spacing %.2f, using default %.2f", dots.Spacing, def.Spacing)
		dots.Spacing = def.Spacing
	}
	if dots.OpacityMin < 0 || dots.OpacityMax > 1 || dots.OpacityMin > dots.OpacityMax {
		log.Printf("Invalid dots opacity band [%.2f, %.2f], using default [%.2f, %.2f]",
			dots.OpacityMin, dots.OpacityMax, def.OpacityMin, def.OpacityMax)
		dots.OpacityMin, dots.OpacityMax = def.OpacityMin, def.OpacityMax
	}
	if dots.BaseRadius <= 0 {
		log.Printf("Invalid dots.base_radius %.2f, using default %.2f", dots.BaseRadius, def.BaseRadius)
		dots.BaseRadius = def.BaseRadius
	}
	if dots.InteractionRadius <= 0 {
		log.Printf("Invalid dots.interaction_radius %.2f, using default %.2f", dots.InteractionRadius, def.InteractionRadius)
		dots.InteractionRadius = def.InteractionRadius
	}
	if dots.OpacityBoost < 0 {
		dots.OpacityBoost = 0
	}
	if dots.RadiusBoost < 0 {
		dots.RadiusBoost = 0
	}
}

// warnUnknown logs keys that do not map onto a json tag of t, descending into
// nested objects.
func warnUnknown(prefix string, raw map[string]any, t reflect.Type) {
	fields := make(map[string]reflect.Type)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("json"); tag != "" {
			name := strings.Split(tag, ",")[0]
			if name != "-" {
				fields[name] = field.Type
			}
		}
	}
	for key, value := range raw {
		ft, ok := fields[key]
		if !ok {
			log.Printf("Warning: unrecognised setting key '%s%s' in settings file", prefix, key)
			continue
		}
		if nested, ok := value.(map[string]any); ok && ft.Kind() == reflect.Struct {
			warnUnknown(prefix+key+".", nested, ft)
		}
	}
}
