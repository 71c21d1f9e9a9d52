package game

const (
	PaddleWidth  = 20
	PaddleHeight = 100
	PaddleSpeed  = 4  // Pixels per frame
	PaddleMargin = 10 // Gap between paddle and side wall
)

// Direction is a vertical paddle movement
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

type Paddle struct {
	X, Y    float64 // Top-left corner
	Width   float64
	Height  float64
	OriginX float64
	OriginY float64
}

func NewPaddle(x, y float64) *Paddle {
	return &Paddle{
		X:       x,
		Y:       y,
		Width:   PaddleWidth,
		Height:  PaddleHeight,
		OriginX: x,
		OriginY: y,
	}
}

// Move shifts the paddle by PaddleSpeed. Bounds are the caller's concern.
func (p *Paddle) Move(dir Direction) {
	switch dir {
	case DirUp:
		p.Y -= PaddleSpeed
	case DirDown:
		p.Y += PaddleSpeed
	}
}

// Reset puts the paddle back at its spawn position
func (p *Paddle) Reset() {
	p.X = p.OriginX
	p.Y = p.OriginY
}

func (p *Paddle) ContainsY(y float64) bool {
	return y >= p.Y && y <= p.Y+p.Height
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) RightX() float64 {
	return p.X + p.Width
}

func (p *Paddle) BottomY() float64 {
	return p.Y + p.Height
}
