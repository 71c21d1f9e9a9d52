package app

import (
	"fmt"

	"github.com/diegok/pong/internal/window"
)

// runWindow plays in a desktop window; ebiten owns the frame loop.
func (a *App) runWindow() error {
	g, err := window.NewGame(a.state, a.step, a.quit)
	if err != nil {
		return fmt.Errorf("failed to initialize window: %w", err)
	}
	if err := g.Run(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
