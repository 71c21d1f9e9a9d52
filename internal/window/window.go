// Package window runs a match in a desktop window through ebiten.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/render"
)

// KeyMap binds keyboard keys to paddle controls
var KeyMap = map[ebiten.Key]game.Key{
	ebiten.KeyW:         game.KeyLeftUp,
	ebiten.KeyS:         game.KeyLeftDown,
	ebiten.KeyArrowUp:   game.KeyRightUp,
	ebiten.KeyArrowDown: game.KeyRightDown,
}

// Game adapts a match to ebiten's Update/Draw/Layout cycle. Update runs at
// game.TickRate and hands the held keys to step.
type Game struct {
	state   *game.GameState
	canvas  *Canvas
	step    func(game.Keys)
	pressed func(ebiten.Key) bool
	quit    <-chan struct{}
}

func NewGame(state *game.GameState, step func(game.Keys), quit <-chan struct{}) (*Game, error) {
	canvas, err := NewCanvas()
	if err != nil {
		return nil, err
	}
	return &Game{
		state:   state,
		canvas:  canvas,
		step:    step,
		pressed: ebiten.IsKeyPressed,
		quit:    quit,
	}, nil
}

func (g *Game) Update() error {
	select {
	case <-g.quit:
		return ebiten.Termination
	default:
	}

	g.step(HeldKeys(g.pressed))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.SetTarget(screen)
	render.DrawMatch(g.canvas, g.state)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.state.Court.Width), int(g.state.Court.Height)
}

// Run opens the window and blocks until it is closed or quit fires
func (g *Game) Run() error {
	ebiten.SetWindowTitle(game.Title)
	ebiten.SetWindowSize(int(g.state.Court.Width), int(g.state.Court.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(game.TickRate)
	return ebiten.RunGame(g)
}

// HeldKeys collects the bindings whose key is down according to pressed
func HeldKeys(pressed func(ebiten.Key) bool) game.Keys {
	var keys game.Keys
	for k, binding := range KeyMap {
		if pressed(k) {
			keys = keys.With(binding)
		}
	}
	return keys
}
