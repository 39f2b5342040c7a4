package config

import "fmt"

// ValidationError describes a configuration value that cannot be used.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Message)
}

// Validate checks that the configuration describes a playable field.
func (c PongConfig) Validate() error {
	checks := []struct {
		ok    bool
		field string
		msg   string
	}{
		{c.Screen.Width > 0, "screen.width", "must be positive"},
		{c.Screen.Height > 0, "screen.height", "must be positive"},
		{c.Ball.Radius > 0, "ball.radius", "must be positive"},
		{2*c.Ball.Radius < c.Screen.Height, "ball.radius", "ball does not fit the screen height"},
		{c.Ball.SpeedX != 0, "ball.speed_x", "serve must move the ball horizontally"},
		{c.Paddles.Width > 0, "paddles.width", "must be positive"},
		{c.Paddles.Height > 0, "paddles.height", "must be positive"},
		{c.Paddles.Height <= c.Screen.Height, "paddles.height", "must not exceed screen.height"},
		{c.Paddles.Offset >= 0, "paddles.offset", "must not be negative"},
		{2*(c.Paddles.Offset+c.Paddles.Width) < c.Screen.Width, "paddles", "paddles overlap horizontally"},
		{c.Paddles.Speed >= 0, "paddles.speed", "must not be negative"},
		{c.Gameplay.TickRate > 0 && c.Gameplay.TickRate <= 1000, "gameplay.tick_rate", "must be within 1..1000"},
		{c.Terminal.KeyHoldMS*c.Gameplay.TickRate >= 1000, "terminal.key_hold_ms", "must cover at least one tick"},
		{c.Window.Scale > 0, "window.scale", "must be positive"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return ValidationError{Field: chk.field, Message: chk.msg}
		}
	}
	return nil
}
