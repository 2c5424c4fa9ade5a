package window

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

const (
	statusHeight = 28
	fontSize     = 20
	titleSize    = 40
)

var (
	colorBackground = rl.NewColor(18, 18, 18, 255)
	colorWall       = rl.DarkGray
	colorBody       = rl.Lime
	colorHead       = rl.Green
	colorDead       = rl.Red
	colorFruit      = rl.Orange
	colorText       = rl.RayWhite
	colorDim        = rl.Gray
	colorSelected   = rl.Yellow
)

// layout converts grid cells to pixels.
type layout struct {
	cell float32
}

func (l layout) pos(c snake.Cell, shift snake.Offset) rl.Vector2 {
	return rl.NewVector2(float32(c.X)*l.cell+shift.DX, float32(c.Y)*l.cell+shift.DY)
}

func (l layout) square(c snake.Cell, shift snake.Offset, col rl.Color) {
	rl.DrawRectangleV(l.pos(c, shift), rl.NewVector2(l.cell, l.cell), col)
}

// boardSide is the board width and height in pixels.
func (l layout) boardSide(size int) int32 {
	return int32(float32(size) * l.cell)
}

// drawFrame draws one interpolated frame of a round.
func drawFrame(f snake.Frame, l layout, length int) {
	for _, c := range f.Border {
		l.square(c, snake.Offset{}, colorWall)
	}
	for _, c := range f.Fruit {
		l.square(c, snake.Offset{}, colorFruit)
	}

	for _, c := range f.Static {
		l.square(c, snake.Offset{}, colorBody)
	}
	l.square(f.TailFrom, f.TailShift, colorBody)

	head := colorHead
	if !f.Alive {
		head = colorDead
	}
	l.square(f.HeadFrom, f.HeadShift, head)

	y := l.boardSide(f.Size) + (statusHeight-fontSize)/2
	rl.DrawText(fmt.Sprintf("Length %d", length), 8, y, fontSize, colorText)
}

// drawMenu draws the start menu with the result of the last round, if any.
func drawMenu(items []string, selected int, last *roundResult) {
	h := int32(rl.GetScreenHeight())
	y := h / 4

	drawCentered("SNAKE", y, titleSize, colorHead)
	y += titleSize + fontSize

	if last != nil {
		label := "Round over"
		if last.Died {
			label = "Game over"
		}
		drawCentered(fmt.Sprintf("%s  length %d  moves %d", label, last.Length, last.Ticks), y, fontSize, colorDim)
	}
	y += fontSize * 2

	for i, item := range items {
		col := colorText
		if i == selected {
			col = colorSelected
			item = "> " + item + " <"
		}
		drawCentered(item, y, fontSize, col)
		y += fontSize + fontSize/2
	}

	if y+fontSize < h {
		drawCentered("arrows move  enter select  q quit", h-fontSize-8, fontSize/2+4, colorDim)
	}
}

func drawCentered(text string, y, size int32, col rl.Color) {
	x := (int32(rl.GetScreenWidth()) - rl.MeasureText(text, size)) / 2
	rl.DrawText(text, x, y, size, col)
}
