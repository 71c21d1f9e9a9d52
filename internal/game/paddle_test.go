package game

import (
	"testing"
)

func TestNewPaddle(t *testing.T) {
	paddle := NewPaddle(10, 200)

	if paddle.X != 10 || paddle.Y != 200 {
		t.Errorf("expected position (10, 200), got (%f, %f)", paddle.X, paddle.Y)
	}
	if paddle.Width != PaddleWidth {
		t.Errorf("expected Width=%d, got %f", PaddleWidth, paddle.Width)
	}
	if paddle.Height != PaddleHeight {
		t.Errorf("expected Height=%d, got %f", PaddleHeight, paddle.Height)
	}
	if paddle.OriginX != 10 || paddle.OriginY != 200 {
		t.Errorf("expected origin (10, 200), got (%f, %f)", paddle.OriginX, paddle.OriginY)
	}
}

func TestPaddle_MoveUp(t *testing.T) {
	for _, y := range []float64{4, 100, 200, 396} {
		paddle := NewPaddle(10, y)

		paddle.Move(DirUp)

		expectedY := y - PaddleSpeed
		if paddle.Y != expectedY {
			t.Errorf("from Y=%f: expected Y=%f, got %f", y, expectedY, paddle.Y)
		}
	}
}

func TestPaddle_MoveDown(t *testing.T) {
	for _, y := range []float64{0, 100, 200, 396} {
		paddle := NewPaddle(10, y)

		paddle.Move(DirDown)

		expectedY := y + PaddleSpeed
		if paddle.Y != expectedY {
			t.Errorf("from Y=%f: expected Y=%f, got %f", y, expectedY, paddle.Y)
		}
	}
}

func TestPaddle_MoveNone(t *testing.T) {
	paddle := NewPaddle(10, 200)

	paddle.Move(DirNone)

	if paddle.Y != 200 {
		t.Errorf("expected Y to remain unchanged with DirNone, got %f", paddle.Y)
	}
}

func TestPaddle_MoveDoesNotClamp(t *testing.T) {
	paddle := NewPaddle(10, 2)

	paddle.Move(DirUp)

	if paddle.Y != -2 {
		t.Errorf("expected Y=-2, got %f", paddle.Y)
	}
}

func TestPaddle_Reset(t *testing.T) {
	paddle := NewPaddle(670, 200)
	for i := 0; i < 25; i++ {
		paddle.Move(DirDown)
	}
	paddle.X = 12

	paddle.Reset()

	if paddle.X != 670 || paddle.Y != 200 {
		t.Errorf("expected position (670, 200), got (%f, %f)", paddle.X, paddle.Y)
	}
}

func TestPaddle_ContainsY(t *testing.T) {
	paddle := NewPaddle(10, 200) // Spans 200 to 300

	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"center", 250, true},
		{"top edge", 200, true},
		{"bottom edge", 300, true},
		{"above paddle", 199.9, false},
		{"below paddle", 300.1, false},
		{"way above", 0, false},
		{"way below", 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := paddle.ContainsY(tt.y)
			if result != tt.expected {
				t.Errorf("ContainsY(%f) = %v, want %v", tt.y, result, tt.expected)
			}
		})
	}
}

func TestPaddle_Edges(t *testing.T) {
	paddle := NewPaddle(10, 200)

	if paddle.CenterY() != 250 {
		t.Errorf("expected CenterY=250, got %f", paddle.CenterY())
	}
	if paddle.RightX() != 30 {
		t.Errorf("expected RightX=30, got %f", paddle.RightX())
	}
	if paddle.BottomY() != 300 {
		t.Errorf("expected BottomY=300, got %f", paddle.BottomY())
	}
}
