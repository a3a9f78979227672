package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Colors used by the board renderer.
const (
	ColorDefault Color = iota
	ColorBrightGreen
	ColorYellow
	ColorBlue
	ColorBrightWhite
	ColorGray
)
