// Package render draws a match onto any surface that can fill rectangles
// and circles and print text. Coordinates are court pixels.
package render

import (
	"image/color"
	"strconv"

	"github.com/diegok/pong/internal/game"
)

var (
	Background = color.RGBA{A: 0xff}
	Foreground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

const (
	ScoreTop     = 20 // Distance from the top edge to the score text
	DividerWidth = 10
	DividerStart = 10
	DividerParts = 20 // Dash height is court height / DividerParts
)

// Canvas is a drawable surface in court coordinates
type Canvas interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	// MeasureText returns the size of s as DrawText would print it
	MeasureText(s string) (w, h float64)
	// DrawText prints s with its top-left corner at x,y
	DrawText(s string, x, y float64, c color.Color)
}

// DrawMatch draws one frame: scores, paddles, the centre divider, the ball
// and, once a match is won, the win message on top.
func DrawMatch(c Canvas, gs *game.GameState) {
	c.Clear(Background)

	w := gs.Court.Width
	drawCentered(c, strconv.Itoa(gs.LeftScore), w/4, ScoreTop)
	drawCentered(c, strconv.Itoa(gs.RightScore), 3*w/4, ScoreTop)

	for _, p := range []*game.Paddle{gs.Left, gs.Right} {
		c.FillRect(p.X, p.Y, p.Width, p.Height, Foreground)
	}

	for _, r := range DividerDashes(gs.Court) {
		c.FillRect(r.X, r.Y, r.W, r.H, Foreground)
	}

	c.FillCircle(gs.Ball.X, gs.Ball.Y, gs.Ball.Radius, Foreground)

	if gs.Phase == game.PhaseMatchWon {
		msg := WinMessage(gs.Winner)
		tw, th := c.MeasureText(msg)
		c.DrawText(msg, w/2-tw/2, gs.Court.Height/2-th/2, Foreground)
	}
}

// WinMessage is the text shown when side wins a match
func WinMessage(side game.Side) string {
	if side == game.SideRight {
		return "Right Player Won!"
	}
	return "Left Player Won!"
}

// Rect is an axis-aligned rectangle
type Rect struct {
	X, Y, W, H float64
}

// DividerDashes lays out the dashed centre line. Dashes start every
// height/DividerParts pixels from DividerStart, skipping odd offsets.
func DividerDashes(court game.Court) []Rect {
	step := int(court.Height) / DividerParts
	if step < 1 {
		return nil
	}

	var dashes []Rect
	for y := DividerStart; y < int(court.Height); y += step {
		if y%2 == 1 {
			continue
		}
		dashes = append(dashes, Rect{
			X: court.Width/2 - DividerWidth/2,
			Y: float64(y),
			W: DividerWidth,
			H: float64(step),
		})
	}
	return dashes
}

func drawCentered(c Canvas, s string, centerX, top float64) {
	tw, _ := c.MeasureText(s)
	c.DrawText(s, centerX-tw/2, top, Foreground)
}
