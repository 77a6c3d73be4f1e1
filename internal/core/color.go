package core

// Color represents a foreground color for a screen cell.
// Frontends map it to their own palette (ANSI codes in the terminal).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorWhite
	ColorGray
	ColorBrightGreen
	ColorBrightYellow
)
