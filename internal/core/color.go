package core

// Color represents a foreground color for a screen cell.
// Platforms map it to ANSI 256-color codes.
type Color uint8

// Palette used by the gridsnake shells.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightGreen
	ColorBrightRed
	ColorBrightWhite
	ColorGray
)

// Element colors.
const (
	ColorSnakeHead = ColorBrightGreen
	ColorSnakeBody = ColorGreen
	ColorFruit     = ColorBrightRed
	ColorWall      = ColorGray
	ColorTitle     = ColorYellow
	ColorSelected  = ColorCyan
)
