package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/render"
)

// newTestCanvas maps the 700x500 court onto 70x50 cells, 10px per cell
func newTestCanvas(t *testing.T) (*Canvas, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(70, 50)

	return NewCanvas(NewScreen(sim), game.Court{Width: 700, Height: 500}), sim
}

func background(sim tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := sim.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestCanvas_FillRect(t *testing.T) {
	canvas, sim := newTestCanvas(t)
	canvas.Clear(render.Background)

	canvas.FillRect(10, 200, 20, 100, render.Foreground)

	white := tcell.FromImageColor(render.Foreground)
	for y := 20; y < 30; y++ {
		for x := 1; x < 3; x++ {
			if got := background(sim, x, y); got != white {
				t.Errorf("cell (%d,%d): expected paddle colour, got %v", x, y, got)
			}
		}
	}
	if got := background(sim, 3, 25); got == white {
		t.Error("cell right of the paddle should not be filled")
	}
	if got := background(sim, 1, 30); got == white {
		t.Error("cell below the paddle should not be filled")
	}
}

func TestCanvas_FillRectClipsToScreen(t *testing.T) {
	canvas, sim := newTestCanvas(t)
	canvas.Clear(render.Background)

	canvas.FillRect(-50, 480, 100, 100, render.Foreground)

	white := tcell.FromImageColor(render.Foreground)
	if got := background(sim, 0, 49); got != white {
		t.Errorf("expected clipped rect to fill corner cell, got %v", got)
	}
}

func TestCanvas_FillCircle(t *testing.T) {
	canvas, sim := newTestCanvas(t)
	canvas.Clear(render.Background)

	canvas.FillCircle(355, 252, game.BallRadius, render.Foreground)

	r, _, _, _ := sim.GetContent(35, 25)
	if r != BallChar {
		t.Errorf("expected ball glyph at (35,25), got %q", r)
	}

	// Off-court balls are not drawn
	canvas.FillCircle(-20, 250, game.BallRadius, render.Foreground)
}

func TestCanvas_Text(t *testing.T) {
	canvas, sim := newTestCanvas(t)
	canvas.Clear(render.Background)

	w, h := canvas.MeasureText("Left Player Won!")
	if w != 160 || h != 10 {
		t.Errorf("expected size 160x10, got %vx%v", w, h)
	}

	canvas.DrawText("12", 170, 20, render.Foreground)

	for i, want := range "12" {
		r, _, _, _ := sim.GetContent(17+i, 2)
		if r != want {
			t.Errorf("cell (%d,2): expected %q, got %q", 17+i, want, r)
		}
	}
}

func TestCanvas_DrawMatch(t *testing.T) {
	canvas, sim := newTestCanvas(t)
	gs := game.NewGameState()
	gs.Phase = game.PhaseMatchWon
	gs.Winner = game.SideRight

	render.DrawMatch(canvas, gs)

	msg := "Right Player Won!"
	start := 35 - len(msg)/2
	for i, want := range msg {
		r, _, _, _ := sim.GetContent(start+i, 25)
		if r != want {
			t.Fatalf("win message cell %d: expected %q, got %q", i, want, r)
		}
	}
}
