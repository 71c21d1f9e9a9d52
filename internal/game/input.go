package game

// Key is one of the four paddle bindings
type Key uint8

const (
	KeyLeftUp Key = 1 << iota
	KeyLeftDown
	KeyRightUp
	KeyRightDown
)

// Keys is the set of bindings held during a frame
type Keys uint8

func (k Keys) Has(key Key) bool {
	return k&Keys(key) != 0
}

func (k Keys) With(key Key) Keys {
	return k | Keys(key)
}

func (k Keys) Without(key Key) Keys {
	return k &^ Keys(key)
}

// ApplyInput moves each paddle whose key is held, as long as the move keeps
// it inside the court. Each binding is checked on its own against the
// paddle's position at that moment.
func ApplyInput(keys Keys, court Court, left, right *Paddle) {
	movePaddle(keys.Has(KeyLeftUp), keys.Has(KeyLeftDown), court, left)
	movePaddle(keys.Has(KeyRightUp), keys.Has(KeyRightDown), court, right)
}

func movePaddle(up, down bool, court Court, p *Paddle) {
	if up && p.Y-PaddleSpeed >= 0 {
		p.Move(DirUp)
	}
	if down && p.Y+PaddleSpeed+p.Height <= court.Height {
		p.Move(DirDown)
	}
}
