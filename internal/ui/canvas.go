package ui

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/game"
)

const BallChar = '\u2B24' // ⬤

// Canvas draws court-space shapes onto terminal cells, stretching the court
// over the whole screen.
type Canvas struct {
	screen *Screen
	court  game.Court
	cols   int
	rows   int
	bg     tcell.Color
}

func NewCanvas(screen *Screen, court game.Court) *Canvas {
	c := &Canvas{screen: screen, court: court, bg: tcell.ColorBlack}
	c.Resize()
	return c
}

// Resize picks up the current terminal size
func (c *Canvas) Resize() {
	c.cols, c.rows = c.screen.Size()
}

func (c *Canvas) col(x float64) float64 {
	return x * float64(c.cols) / c.court.Width
}

func (c *Canvas) row(y float64) float64 {
	return y * float64(c.rows) / c.court.Height
}

func (c *Canvas) Clear(clr color.Color) {
	c.bg = tcell.FromImageColor(clr)
	style := tcell.StyleDefault.Background(c.bg)
	c.screen.fill(0, 0, c.cols, c.rows, style)
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	x0, x1 := span(c.col(x), c.col(x+w), c.cols)
	y0, y1 := span(c.row(y), c.row(y+h), c.rows)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	style := tcell.StyleDefault.Background(tcell.FromImageColor(clr))
	c.screen.fill(x0, y0, x1-x0, y1-y0, style)
}

// FillCircle marks the cell under the centre with a ball glyph; a ball too
// small to cover whole cells would otherwise vanish.
func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	x := int(math.Floor(c.col(cx)))
	y := int(math.Floor(c.row(cy)))
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(clr)).Background(c.bg)
	c.screen.setCell(x, y, style, BallChar)
}

// MeasureText reports one cell per rune and one row, in court units
func (c *Canvas) MeasureText(s string) (float64, float64) {
	if c.cols == 0 || c.rows == 0 {
		return 0, 0
	}
	n := float64(utf8.RuneCountInString(s))
	return n * c.court.Width / float64(c.cols), c.court.Height / float64(c.rows)
}

func (c *Canvas) DrawText(s string, x, y float64, clr color.Color) {
	cellX := int(math.Round(c.col(x)))
	cellY := int(math.Round(c.row(y)))
	if cellY < 0 || cellY >= c.rows {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(clr)).Background(c.bg).Bold(true)
	c.screen.print(cellX, cellY, s, style)
}

// span converts a court-space interval to a cell range [lo, hi), keeping
// at least one cell for anything visible.
func span(from, to float64, limit int) (int, int) {
	lo := int(math.Floor(from))
	hi := int(math.Ceil(to))
	if hi == lo {
		hi++
	}
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	return lo, hi
}
