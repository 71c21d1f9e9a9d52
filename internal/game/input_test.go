package game

import (
	"testing"
)

func TestKeys_Set(t *testing.T) {
	var keys Keys
	keys = keys.With(KeyLeftUp).With(KeyRightDown)

	if !keys.Has(KeyLeftUp) || !keys.Has(KeyRightDown) {
		t.Errorf("expected LeftUp and RightDown held, got %08b", keys)
	}
	if keys.Has(KeyLeftDown) || keys.Has(KeyRightUp) {
		t.Errorf("unexpected keys held: %08b", keys)
	}

	keys = keys.Without(KeyLeftUp)
	if keys.Has(KeyLeftUp) {
		t.Error("expected LeftUp released")
	}
}

func TestApplyInput(t *testing.T) {
	tests := []struct {
		name          string
		keys          Keys
		leftY, rightY float64
		wantL, wantR  float64
	}{
		{"no keys", 0, 200, 200, 200, 200},
		{"left up", Keys(KeyLeftUp), 200, 200, 196, 200},
		{"left down", Keys(KeyLeftDown), 200, 200, 204, 200},
		{"right up", Keys(KeyRightUp), 200, 200, 200, 196},
		{"right down", Keys(KeyRightDown), 200, 200, 200, 204},
		{"both paddles", Keys(KeyLeftUp).With(KeyRightDown), 200, 200, 196, 204},
		{"up and down cancel", Keys(KeyLeftUp).With(KeyLeftDown), 200, 200, 200, 200},
		{"up blocked at top", Keys(KeyLeftUp), 3, 200, 3, 200},
		{"up to exactly top", Keys(KeyRightUp), 200, 4, 200, 0},
		{"down blocked at bottom", Keys(KeyRightDown), 200, 397, 200, 397},
		{"down to exactly bottom", Keys(KeyLeftDown), 396, 200, 400, 200},
		{"both held at top moves down", Keys(KeyLeftUp).With(KeyLeftDown), 0, 200, 4, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := NewPaddle(10, tt.leftY)
			right := NewPaddle(670, tt.rightY)

			ApplyInput(tt.keys, testCourt, left, right)

			if left.Y != tt.wantL {
				t.Errorf("expected left Y=%f, got %f", tt.wantL, left.Y)
			}
			if right.Y != tt.wantR {
				t.Errorf("expected right Y=%f, got %f", tt.wantR, right.Y)
			}
		})
	}
}

func TestApplyInput_KeepsPaddleInCourt(t *testing.T) {
	left, right := spawnPaddles()

	for i := 0; i < 200; i++ {
		ApplyInput(Keys(KeyLeftUp).With(KeyRightDown), testCourt, left, right)
		if left.Y < 0 {
			t.Fatalf("left paddle left the court: Y=%f", left.Y)
		}
		if right.BottomY() > testCourt.Height {
			t.Fatalf("right paddle left the court: BottomY=%f", right.BottomY())
		}
	}

	if left.Y != 0 {
		t.Errorf("expected left paddle at top, got Y=%f", left.Y)
	}
	if right.Y != 400 {
		t.Errorf("expected right paddle at bottom, got Y=%f", right.Y)
	}
}
