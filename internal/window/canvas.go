package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// FontSize matches the score text height
const FontSize = 50

// Canvas draws onto the ebiten frame handed to Draw
type Canvas struct {
	target *ebiten.Image
	face   text.Face
}

// NewCanvas loads the Go Regular face bundled with x/image
func NewCanvas() (*Canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Canvas{face: &text.GoTextFace{Source: src, Size: FontSize}}, nil
}

func (c *Canvas) SetTarget(img *ebiten.Image) {
	c.target = img
}

func (c *Canvas) Clear(clr color.Color) {
	c.target.Fill(clr)
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.target, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *Canvas) MeasureText(s string) (float64, float64) {
	return text.Measure(s, c.face, 0)
}

func (c *Canvas) DrawText(s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.target, s, c.face, op)
}
