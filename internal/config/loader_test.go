package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPongConfig()) {
		t.Errorf("embedded defaults differ from DefaultPongConfig():\n got %+v\nwant %+v", cfg, DefaultPongConfig())
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPongConfig()) {
		t.Errorf("Load() without files should return defaults, got %+v", cfg)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	writeFile(t, work, "configs/pong.yaml", "paddles:\n  speed: 12\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Paddles.Speed != 12 {
		t.Errorf("local config should be used, paddle speed = %v", cfg.Paddles.Speed)
	}

	writeFile(t, home, ".pong/pong.toml", "[paddles]\nspeed = 14.0\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Paddles.Speed != 14 {
		t.Errorf("user config should take precedence, paddle speed = %v", cfg.Paddles.Speed)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		check   func(t *testing.T, cfg PongConfig)
	}{
		{
			name:    "yaml partial override",
			file:    "custom.yaml",
			content: "ball:\n  radius: 10\ncompat:\n  release_stops_both: true\n",
			check: func(t *testing.T, cfg PongConfig) {
				if cfg.Ball.Radius != 10 {
					t.Errorf("Ball.Radius = %v, expected 10", cfg.Ball.Radius)
				}
				if !cfg.Compat.ReleaseStopsBoth {
					t.Error("Compat.ReleaseStopsBoth should be true")
				}
				if cfg.Ball.SpeedX != 10 || cfg.Screen.Width != 900 {
					t.Error("unspecified values should keep their defaults")
				}
			},
		},
		{
			name:    "toml",
			file:    "custom.toml",
			content: "[screen]\nwidth = 1000.0\n\n[gameplay]\ntick_rate = 30\n",
			check: func(t *testing.T, cfg PongConfig) {
				if cfg.Screen.Width != 1000 {
					t.Errorf("Screen.Width = %v, expected 1000", cfg.Screen.Width)
				}
				if cfg.Gameplay.TickRate != 30 {
					t.Errorf("Gameplay.TickRate = %d, expected 30", cfg.Gameplay.TickRate)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.file, tc.content)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load(%s) failed: %v", path, err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	if _, err := Load(writeFile(t, dir, "pong.json", "{}")); err == nil {
		t.Error("unsupported extension should be an error")
	}

	if _, err := Load(writeFile(t, dir, "broken.yaml", "screen: [")); err == nil {
		t.Error("malformed yaml should be an error")
	}

	_, err := Load(writeFile(t, dir, "invalid.yaml", "ball:\n  radius: 0\n"))
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "ball.radius" {
		t.Errorf("ValidationError.Field = %q, expected ball.radius", verr.Field)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Compat.ClampBeforeAdvance = true

	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(cfg, format)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			back, err := Parse(data, format)
			if err != nil {
				t.Fatalf("Parse failed: %v\n%s", err, data)
			}
			if !reflect.DeepEqual(back, cfg) {
				t.Errorf("round trip changed config:\n got %+v\nwant %+v", back, cfg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
		field  string
	}{
		{"defaults", func(*PongConfig) {}, ""},
		{"zero width", func(c *PongConfig) { c.Screen.Width = 0 }, "screen.width"},
		{"ball too big", func(c *PongConfig) { c.Ball.Radius = 300 }, "ball.radius"},
		{"no horizontal serve", func(c *PongConfig) { c.Ball.SpeedX = 0 }, "ball.speed_x"},
		{"paddle taller than screen", func(c *PongConfig) { c.Paddles.Height = 600 }, "paddles.height"},
		{"paddles overlap", func(c *PongConfig) { c.Paddles.Offset = 440 }, "paddles"},
		{"tick rate", func(c *PongConfig) { c.Gameplay.TickRate = 0 }, "gameplay.tick_rate"},
		{"negative hold", func(c *PongConfig) { c.Terminal.KeyHoldMS = -1 }, "terminal.key_hold_ms"},
		{"zero hold", func(c *PongConfig) { c.Terminal.KeyHoldMS = 0 }, "terminal.key_hold_ms"},
		{"hold shorter than a tick", func(c *PongConfig) { c.Terminal.KeyHoldMS = 16 }, "terminal.key_hold_ms"},
		{"hold of one tick", func(c *PongConfig) { c.Terminal.KeyHoldMS = 17 }, ""},
		{"short hold at low tick rate", func(c *PongConfig) {
			c.Gameplay.TickRate = 10
			c.Terminal.KeyHoldMS = 50
		}, "terminal.key_hold_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) || verr.Field != tc.field {
				t.Errorf("Validate() = %v, expected error on %s", err, tc.field)
			}
		})
	}
}
