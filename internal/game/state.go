package game

// Title names the window and the terminal
const Title = "Pong"

// Constants for game state management
const (
	TickRate     = 60  // Frames per second
	CourtWidth   = 700 // Window-sized court
	CourtHeight  = 500
	WinningScore = 1
	WinHoldTicks = 5 * TickRate // Win message stays up for 5 seconds
)

// Phase is the match state between frames
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseMatchWon
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseMatchWon:
		return "match_won"
	}
	return "unknown"
}

// Side identifies a player
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Events reports what happened during one Step
type Events uint8

const (
	EventWallBounce Events = 1 << iota
	EventPaddleHit
	EventPoint
	EventMatchWon
	EventMatchReset
)

func (e Events) Has(ev Events) bool {
	return e&ev == ev
}

// GameState owns every entity of a match. It is not safe for concurrent use;
// the frame loop is its only caller.
type GameState struct {
	Court        Court
	Ball         *Ball
	Left         *Paddle
	Right        *Paddle
	LeftScore    int
	RightScore   int
	WinningScore int
	Phase        Phase
	Winner       Side
	LastScorer   Side
	HoldTicks    int
	Tick         int
}

// NewGameState creates a match with centred paddles and the ball served right
func NewGameState() *GameState {
	return NewGameStateSized(CourtWidth, CourtHeight)
}

// NewGameStateSized creates a match on a court of the given size
func NewGameStateSized(width, height float64) *GameState {
	paddleY := height/2 - PaddleHeight/2
	return &GameState{
		Court:        Court{Width: width, Height: height},
		Ball:         NewBall(width/2, height/2),
		Left:         NewPaddle(PaddleMargin, paddleY),
		Right:        NewPaddle(width-PaddleMargin-PaddleWidth, paddleY),
		WinningScore: WinningScore,
		Phase:        PhasePlaying,
	}
}

// Step runs one frame: input, ball movement, collisions, scoring and the
// win check. While a win message is held no physics runs; once the hold
// expires the scores and entities are reset.
func (gs *GameState) Step(keys Keys) Events {
	gs.Tick++

	if gs.Phase == PhaseMatchWon {
		gs.HoldTicks--
		if gs.HoldTicks > 0 {
			return 0
		}
		gs.resetMatch()
		return EventMatchReset
	}

	var events Events

	ApplyInput(keys, gs.Court, gs.Left, gs.Right)

	gs.Ball.Move()

	hit := ResolveCollisions(gs.Court, gs.Ball, gs.Left, gs.Right)
	if hit&HitWall != 0 {
		events |= EventWallBounce
	}
	if hit&HitPaddle != 0 {
		events |= EventPaddleHit
	}

	if gs.CheckScore() {
		events |= EventPoint
	}

	if gs.IsGameOver() {
		gs.Phase = PhaseMatchWon
		gs.Winner = gs.GetWinner()
		gs.HoldTicks = WinHoldTicks
		events |= EventMatchWon
	}

	return events
}

// CheckScore awards a point when the ball has left the court on either side
// and resets the ball and paddles. It reports whether a point was scored.
func (gs *GameState) CheckScore() bool {
	switch {
	case gs.Ball.X < 0:
		gs.RightScore++
		gs.LastScorer = SideRight
	case gs.Ball.X > gs.Court.Width:
		gs.LeftScore++
		gs.LastScorer = SideLeft
	default:
		return false
	}
	gs.resetEntities()
	return true
}

// IsGameOver returns true if either player has reached the winning score
func (gs *GameState) IsGameOver() bool {
	return gs.LeftScore >= gs.WinningScore || gs.RightScore >= gs.WinningScore
}

// GetWinner returns the winning side, or SideNone while nobody has won
func (gs *GameState) GetWinner() Side {
	if gs.LeftScore >= gs.WinningScore {
		return SideLeft
	}
	if gs.RightScore >= gs.WinningScore {
		return SideRight
	}
	return SideNone
}

func (gs *GameState) resetEntities() {
	gs.Ball.Reset()
	gs.Left.Reset()
	gs.Right.Reset()
}

func (gs *GameState) resetMatch() {
	gs.resetEntities()
	gs.LeftScore = 0
	gs.RightScore = 0
	gs.Phase = PhasePlaying
	gs.Winner = SideNone
	gs.HoldTicks = 0
}
