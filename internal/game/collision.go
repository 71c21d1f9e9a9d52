package game

// Collision reports what the ball touched during one frame
type Collision uint8

const (
	HitWall Collision = 1 << iota
	HitPaddle
)

// Court is the play area; y grows downward from the top edge
type Court struct {
	Width  float64
	Height float64
}

// ResolveCollisions bounces the ball off the top/bottom walls and off the
// paddle on the side it is travelling toward.
//
// A paddle hit requires the ball's centre to be inside the paddle's vertical
// span, so a ball clipping a paddle corner goes through. The ball is not
// pushed back inside the court after a wall bounce.
func ResolveCollisions(court Court, ball *Ball, left, right *Paddle) Collision {
	var hit Collision

	if ball.Y+ball.Radius >= court.Height {
		ball.BounceVertical()
		hit |= HitWall
	} else if ball.Y-ball.Radius <= 0 {
		ball.BounceVertical()
		hit |= HitWall
	}

	if ball.VX < 0 {
		if left.ContainsY(ball.Y) && ball.LeftX() <= left.RightX() {
			ball.VX = -ball.VX
			ball.VY = ReboundVelocity(left, ball.Y)
			hit |= HitPaddle
		}
	} else {
		if right.ContainsY(ball.Y) && ball.RightX() >= right.X {
			ball.VX = -ball.VX
			ball.VY = ReboundVelocity(right, ball.Y)
			hit |= HitPaddle
		}
	}

	return hit
}

// ReboundVelocity maps where the ball met the paddle to a vertical velocity
// in [-MaxBallSpeed, MaxBallSpeed]: 0 at the centre, -MaxBallSpeed at the
// top edge, +MaxBallSpeed at the bottom edge.
func ReboundVelocity(p *Paddle, ballY float64) float64 {
	diff := p.CenterY() - ballY
	reduction := (p.Height / 2) / MaxBallSpeed
	return -diff / reduction
}
