package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color style.
type Color uint8

// Palette used by the snake board and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
	ColorDimGray
)
