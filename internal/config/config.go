// Package config provides file-based configuration loading for the game.
// Files may be YAML or TOML; the format is chosen by file extension.
package config

// PongConfig contains all configuration for the game and its platforms.
type PongConfig struct {
	Screen   ScreenConfig   `yaml:"screen" toml:"screen"`
	Ball     BallConfig     `yaml:"ball" toml:"ball"`
	Paddles  PaddleConfig   `yaml:"paddles" toml:"paddles"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Compat   CompatConfig   `yaml:"compat" toml:"compat"`
	Terminal TerminalConfig `yaml:"terminal" toml:"terminal"`
	Window   WindowConfig   `yaml:"window" toml:"window"`
}

// ScreenConfig defines the logical playfield size shared by all entities.
type ScreenConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BallConfig defines the ball size and serve velocity.
type BallConfig struct {
	Radius float64 `yaml:"radius" toml:"radius"`
	SpeedX float64 `yaml:"speed_x" toml:"speed_x"` // Units per tick, sign gives serve direction
	SpeedY float64 `yaml:"speed_y" toml:"speed_y"` // Units per tick, positive is downwards
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Offset float64 `yaml:"offset" toml:"offset"` // Distance from the screen edge
	Speed  float64 `yaml:"speed" toml:"speed"`   // Units per tick
}

// GameplayConfig defines loop timing.
type GameplayConfig struct {
	TickRate int `yaml:"tick_rate" toml:"tick_rate"`
}

// CompatConfig switches individual behaviors back to the classic
// implementation. Both default to false.
type CompatConfig struct {
	// ClampBeforeAdvance clamps paddles on last tick's position before
	// moving them, allowing a one-tick overshoot past the screen edge.
	ClampBeforeAdvance bool `yaml:"clamp_before_advance" toml:"clamp_before_advance"`

	// ReleaseStopsBoth stops both paddles whenever any key is released.
	ReleaseStopsBoth bool `yaml:"release_stops_both" toml:"release_stops_both"`
}

// TerminalConfig defines terminal platform parameters.
type TerminalConfig struct {
	// KeyHoldMS is how long a movement key counts as held after its last
	// press or repeat. Terminals do not report key releases. It must
	// cover at least one tick.
	KeyHoldMS int `yaml:"key_hold_ms" toml:"key_hold_ms"`
}

// WindowConfig defines desktop platform parameters.
type WindowConfig struct {
	Title string  `yaml:"title" toml:"title"`
	Scale float64 `yaml:"scale" toml:"scale"`
}
