package core

// Color represents a foreground color for a screen cell.
// Hosts map it to ANSI codes or RGB values.
type Color uint8

// Colors used by the game.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorYellow
	ColorWhite
	ColorGreen
	ColorCyan
	ColorGray
)
