package game

const (
	BallRadius   = 7
	MaxBallSpeed = 5.0 // Pixels per frame, also the serve speed
)

type Ball struct {
	X, Y    float64 // Centre
	VX, VY  float64
	Radius  float64
	OriginX float64
	OriginY float64
}

// NewBall creates a ball at x,y served to the right
func NewBall(x, y float64) *Ball {
	return &Ball{
		X:       x,
		Y:       y,
		VX:      MaxBallSpeed,
		Radius:  BallRadius,
		OriginX: x,
		OriginY: y,
	}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.VY = -b.VY
}

// Reset returns the ball to its spawn point and serves it toward the side
// it was last travelling away from
func (b *Ball) Reset() {
	b.X = b.OriginX
	b.Y = b.OriginY
	b.VX = -b.VX
	b.VY = 0
}

func (b *Ball) LeftX() float64 {
	return b.X - b.Radius
}

func (b *Ball) RightX() float64 {
	return b.X + b.Radius
}
