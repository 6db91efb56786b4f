package core

// Color is the foreground color of a screen cell. Hosts map it to whatever
// their output supports; the TUI uses the basic ANSI palette.
type Color uint8

// Colors available to game renderers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorGray // frames and separators
)
