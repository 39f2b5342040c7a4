package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the built-in configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Screen: ScreenConfig{
			Width:  900,
			Height: 500,
		},
		Ball: BallConfig{
			Radius: 15,
			SpeedX: 10,
			SpeedY: 5,
		},
		Paddles: PaddleConfig{
			Width:  20,
			Height: 120,
			Offset: 15,
			Speed:  10,
		},
		Gameplay: GameplayConfig{
			TickRate: 60,
		},
		Terminal: TerminalConfig{
			KeyHoldMS: 500,
		},
		Window: WindowConfig{
			Title: "PONG",
			Scale: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
