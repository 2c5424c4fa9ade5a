package term

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Glyphs written for each cell state.
const (
	glyphBody   = '*'
	glyphEmpty  = ' '
	glyphFruit  = '+'
	glyphBorder = '#'
)

const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
	seqClearLine  = "\033[K"
)

// Painter draws snapshots with cursor-addressed writes, touching only the
// cells that changed since the previous snapshot. The border is drawn on
// the first paint only. Safe for use from several goroutines.
type Painter struct {
	mu     sync.Mutex
	w      *bufio.Writer
	buf    strings.Builder
	numBuf [20]byte
	offCol int
	offRow int

	started bool
	body    map[snake.Cell]bool
	fruit   map[snake.Cell]bool
	size    int
}

// NewPainter creates a painter writing to w. The board's top-left border
// cell is drawn at the 1-based terminal position (offCol+1, offRow+1).
func NewPainter(w io.Writer, offCol, offRow int) *Painter {
	return &Painter{
		w:      bufio.NewWriterSize(w, 8192),
		offCol: offCol,
		offRow: offRow,
		body:   make(map[snake.Cell]bool),
		fruit:  make(map[snake.Cell]bool),
	}
}

// moveTo appends a cursor move to the given grid column and row.
func (p *Painter) moveTo(col, row int) {
	p.buf.WriteString("\033[")
	p.buf.Write(strconv.AppendInt(p.numBuf[:0], int64(row+p.offRow+1), 10))
	p.buf.WriteByte(';')
	p.buf.Write(strconv.AppendInt(p.numBuf[:0], int64(col+p.offCol+1), 10))
	p.buf.WriteByte('H')
}

func (p *Painter) put(c snake.Cell, glyph rune) {
	p.moveTo(c.X, c.Y)
	p.buf.WriteRune(glyph)
}

// Paint draws snap, diffed against the previously painted snapshot.
func (p *Painter) Paint(snap snake.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || snap.Size != p.size {
		p.buf.WriteString(seqHideCursor)
		p.buf.WriteString(seqClear)
		for _, c := range snake.NewGrid(snap.Size).Border() {
			p.put(c, glyphBorder)
		}
		p.body = make(map[snake.Cell]bool)
		p.fruit = make(map[snake.Cell]bool)
		p.size = snap.Size
		p.started = true
	}

	body := snap.Occupied()
	fruit := make(map[snake.Cell]bool, len(snap.Fruit))
	for _, c := range snap.Fruit {
		fruit[c] = true
	}

	// Erase first so a cell that changes role is drawn last
	for c := range p.body {
		if !body[c] && !fruit[c] {
			p.put(c, glyphEmpty)
		}
	}
	for c := range p.fruit {
		if !fruit[c] && !body[c] {
			p.put(c, glyphEmpty)
		}
	}
	for c := range fruit {
		if !p.fruit[c] {
			p.put(c, glyphFruit)
		}
	}
	for c := range body {
		if !p.body[c] {
			p.put(c, glyphBody)
		}
	}

	p.body = body
	p.fruit = fruit

	p.moveTo(0, snap.Size)
	fmt.Fprintf(&p.buf, "length %d", snap.Length)
	p.buf.WriteString(seqClearLine)

	return p.flush()
}

// Close restores the cursor and leaves it below the board.
func (p *Painter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.moveTo(0, p.size+1)
	p.buf.WriteString(seqShowCursor)
	p.buf.WriteString("\r\n")
	return p.flush()
}

func (p *Painter) flush() error {
	data := p.buf.String()
	p.buf.Reset()
	if _, err := p.w.WriteString(data); err != nil {
		return fmt.Errorf("term: write: %w", err)
	}
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("term: write: %w", err)
	}
	return nil
}
