package core

// RuntimeConfig contains the platform parameters a frontend runs with.
// Screen size is measured in the platform's own units (cells for the
// terminal, pixels for the desktop window).
type RuntimeConfig struct {
	ScreenW  int // Screen width in platform units
	ScreenH  int // Screen height in platform units
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
