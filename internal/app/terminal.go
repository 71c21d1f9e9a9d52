package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/render"
	"github.com/diegok/pong/internal/ui"
)

// runTerminal plays on the terminal screen.
func (a *App) runTerminal() error {
	screen, err := ui.InitScreen(game.Title)
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	return a.mainLoop(screen)
}

// mainLoop renders and steps the match once per tick, collecting key
// presses in between.
func (a *App) mainLoop(screen *ui.Screen) error {
	canvas := ui.NewCanvas(screen, a.state.Court)
	keys := ui.NewKeyTracker()

	done := make(chan struct{})
	defer close(done)
	events := screen.Events(done)

	ticker := time.NewTicker(time.Second / game.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev, ok := <-events:
			if !ok || a.handleEvent(ev, canvas, keys) {
				return nil
			}

		case <-ticker.C:
			render.DrawMatch(canvas, a.state)
			screen.Show()

			a.step(keys.Keys())
			keys.Tick()
		}
	}
}

// handleEvent processes keyboard and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event, canvas *ui.Canvas, keys *ui.KeyTracker) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if binding, ok := ui.KeyToBinding(ev.Key(), ev.Rune()); ok {
			keys.Press(binding)
		}

	case *tcell.EventResize:
		canvas.Resize()
	}

	return false
}
