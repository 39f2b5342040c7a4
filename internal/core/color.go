package core

// Color is a palette entry shared by the simulation and the platforms.
// Terminal platforms map it to ANSI codes, the desktop platform to RGBA.
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorGray
	ColorYellow
	ColorBrightWhite
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorYellow:
		return "yellow"
	case ColorBrightWhite:
		return "bright-white"
	default:
		return "unknown"
	}
}

// RGBA returns the 8-bit channels for the color.
func (c Color) RGBA() (r, g, b, a uint8) {
	switch c {
	case ColorBlack:
		return 0, 0, 0, 255
	case ColorWhite:
		return 255, 255, 255, 255
	case ColorGray:
		return 128, 128, 128, 255
	case ColorYellow:
		return 255, 215, 0, 255
	case ColorBrightWhite:
		return 255, 255, 255, 255
	default:
		return 0, 0, 0, 0
	}
}
