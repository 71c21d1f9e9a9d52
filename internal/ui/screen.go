package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal the court is drawn on
type Screen struct {
	screen tcell.Screen
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// InitScreen takes over the controlling terminal
func InitScreen(title string) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetTitle(title)
	s.HideCursor()
	return NewScreen(s), nil
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) Show() {
	s.screen.Show()
}

// Fini restores the terminal and unblocks Events
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Events forwards terminal events until the screen is finalized or done
// is closed. tcell only offers a blocking poll, hence the goroutine.
func (s *Screen) Events(done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

func (s *Screen) setCell(x, y int, style tcell.Style, r rune) {
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// print writes text one rune per cell and clips at the right edge
func (s *Screen) print(x, y int, text string, style tcell.Style) {
	cols, _ := s.screen.Size()
	for _, r := range text {
		if x >= cols {
			return
		}
		if x >= 0 {
			s.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
