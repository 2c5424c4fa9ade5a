package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// cellWidth is the number of terminal columns per grid cell; two columns
// make cells look roughly square.
const cellWidth = 2

// chromeRows is the space taken by the status line and the help footer.
const chromeRows = 2

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("10")).
	Padding(0, 2)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// MaxGridSize returns the largest grid that fits a width×height terminal.
func MaxGridSize(width, height int) int {
	return min(width/cellWidth, height-chromeRows)
}

// boardRect returns where a grid of size n is drawn on the screen: centered
// horizontally, just below the status line.
func boardRect(s *core.Screen, n int) core.Rect {
	area := core.NewRect(0, 1, s.Width(), s.Height()-chromeRows)
	r := area.CenteredIn(n*cellWidth, n)
	r.Y = area.Y
	return r
}

// drawCell paints one grid cell.
func drawCell(s *core.Screen, board core.Rect, c snake.Cell, glyph string, color core.Color) {
	x := board.X + c.X*cellWidth
	y := board.Y + c.Y
	s.DrawText(x, y, glyph, color)
}

// DrawBoard renders a snapshot into the screen: border, fruit, body, then
// the head on top and a status line above the board.
func DrawBoard(s *core.Screen, snap snake.Snapshot, border []snake.Cell) {
	s.Clear()

	if !s.Bounds().Fits(core.NewRect(0, 0, snap.Size*cellWidth, snap.Size+chromeRows)) {
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d",
			snap.Size*cellWidth, snap.Size+chromeRows), core.ColorBrightRed)
		return
	}

	board := boardRect(s, snap.Size)

	for _, c := range border {
		drawCell(s, board, c, "░░", core.ColorWall)
	}
	for _, c := range snap.Fruit {
		drawCell(s, board, c, "<>", core.ColorFruit)
	}
	for i, c := range snap.Body {
		if i == 0 {
			continue
		}
		drawCell(s, board, c, "██", core.ColorSnakeBody)
	}
	if head, ok := snap.Head(); ok {
		color := core.ColorSnakeHead
		if !snap.Alive {
			color = core.ColorRed
		}
		drawCell(s, board, head, "██", color)
	}

	status := fmt.Sprintf("Length %d  Moves %d", snap.Length, snap.Ticks)
	s.DrawText(board.X, 0, status, core.ColorBrightWhite)
}
