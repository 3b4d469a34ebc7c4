package flappy

import (
	"testing"
)

func TestNewBird(t *testing.T) {
	env := testEnv()
	b := NewBird(env)

	if b.Y != float64(env.Bird.StartY) {
		t.Errorf("Y = %v, expected start height %d", b.Y, env.Bird.StartY)
	}
	if b.X != env.Bird.StartX {
		t.Errorf("X = %d, expected %d", b.X, env.Bird.StartX)
	}
	if b.VerticalSpeed != 0 {
		t.Errorf("VerticalSpeed = %v, expected 0", b.VerticalSpeed)
	}
	if b.Wing != WingsUp {
		t.Errorf("Wing = %v, expected up", b.Wing)
	}
}

func TestBirdGravity(t *testing.T) {
	env := testEnv()
	b := NewBird(env)

	b.Update()

	if b.VerticalSpeed != env.Physics.Gravity {
		t.Errorf("VerticalSpeed = %v, expected %v", b.VerticalSpeed, env.Physics.Gravity)
	}
	if b.Y != float64(env.Bird.StartY)+env.Physics.Gravity {
		t.Errorf("Y = %v, expected bird to fall by one gravity step", b.Y)
	}
	if b.Wing != WingsUp {
		t.Error("Wings should stay up when not jumping")
	}
}

func TestBirdJump(t *testing.T) {
	env := testEnv()
	b := NewBird(env)

	b.Jump()

	if b.VerticalSpeed != env.Physics.JumpImpulse {
		t.Errorf("VerticalSpeed = %v, expected jump impulse %v", b.VerticalSpeed, env.Physics.JumpImpulse)
	}
	if b.Wing != WingsDown {
		t.Error("Jump should put wings down")
	}
	if b.WingTimer != env.Bird.WingFlapTicks {
		t.Errorf("WingTimer = %d, expected %d", b.WingTimer, env.Bird.WingFlapTicks)
	}
}

func TestBirdJumpOverwritesRisingSpeed(t *testing.T) {
	env := testEnv()
	b := NewBird(env)
	b.VerticalSpeed = -7

	b.Jump()

	if b.VerticalSpeed != env.Physics.JumpImpulse {
		t.Errorf("VerticalSpeed = %v, expected reset to %v", b.VerticalSpeed, env.Physics.JumpImpulse)
	}
}

func TestBirdWingsReturnUp(t *testing.T) {
	b := NewBird(testEnv())
	b.Jump()

	for i := 0; i < 3; i++ {
		b.Update()
		if b.Wing != WingsDown {
			t.Fatalf("Wings should stay down while timer runs, update %d", i+1)
		}
	}

	b.Update()
	if b.Wing != WingsUp {
		t.Error("Wings should return up once the timer has run out")
	}
}

func TestBirdClampKeepsMomentum(t *testing.T) {
	env := testEnv()
	ceiling := float64(env.Screen.CeilingRow)
	ground := float64(env.Screen.GroundRow)

	tests := []struct {
		name      string
		y, speed  float64
		wantY     float64
		wantSpeed float64
	}{
		{"through ground", ground - 1, 3, ground, 3.5},
		{"resting on ground", ground, 0, ground, 0.5},
		{"through ceiling", ceiling + 1, -4, ceiling, -3.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBird(env)
			b.Y = tc.y
			b.VerticalSpeed = tc.speed

			b.Update()

			if b.Y != tc.wantY {
				t.Errorf("Y = %v, expected clamp to %v", b.Y, tc.wantY)
			}
			if b.VerticalSpeed != tc.wantSpeed {
				t.Errorf("VerticalSpeed = %v, expected %v (clamp must not cancel speed)", b.VerticalSpeed, tc.wantSpeed)
			}
		})
	}
}

func TestBirdStaysInBounds(t *testing.T) {
	env := testEnv()
	rng := NewSeededRand(7)
	b := NewBird(env)

	for i := 0; i < 2000; i++ {
		if rng.IntRange(0, 3) == 0 {
			b.Jump()
		}
		b.Update()
		if b.Y < float64(env.Screen.CeilingRow) || b.Y > float64(env.Screen.GroundRow) {
			t.Fatalf("tick %d: Y = %v outside [%d, %d]", i, b.Y, env.Screen.CeilingRow, env.Screen.GroundRow)
		}
	}
}

func TestBirdHitbox(t *testing.T) {
	b := NewBird(testEnv())
	b.X = 5

	if got := b.Hitbox(); got != [HitboxWidth]int{6, 7, 8} {
		t.Errorf("Hitbox() = %v, expected [6 7 8]", got)
	}
}

func TestBirdRow(t *testing.T) {
	b := NewBird(testEnv())
	b.Y = 10.5
	if b.Row() != 10 {
		t.Errorf("Row() = %d, expected 10", b.Row())
	}
}
