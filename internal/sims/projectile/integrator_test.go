package projectile

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestComputeDerivedReferenceCase(t *testing.T) {
	s, d := ComputeDerived(DefaultParams())

	if !near(d.R, 0.35, tolerance) {
		t.Fatalf("r = %v, expected 0.35", d.R)
	}
	if !near(d.AngleRad, math.Pi/3, tolerance) {
		t.Fatalf("angle = %v, expected pi/3", d.AngleRad)
	}
	if !near(s.VX, 25.0, 1e-9) {
		t.Fatalf("vx0 = %v, expected 25", s.VX)
	}
	if !near(s.VY, 43.30127018922193, 1e-9) {
		t.Fatalf("vy0 = %v, expected 43.30", s.VY)
	}
	if s.X != 0 || s.Y != 0 {
		t.Fatalf("launch position = (%v,%v), expected origin", s.X, s.Y)
	}
}

func TestComputeDerivedVelocityComponents(t *testing.T) {
	tests := []struct {
		speed, angle float64
	}{
		{0, 0},
		{10, 0},
		{10, 90},
		{33.3, 12.5},
		{120, 75},
		{5, -30},
	}
	for _, tt := range tests {
		p := DefaultParams()
		p.Speed = tt.speed
		p.Angle = tt.angle
		s, d := ComputeDerived(p)
		rad := tt.angle * math.Pi / 180
		if !near(s.VX, tt.speed*math.Cos(rad), tolerance) || !near(s.VY, tt.speed*math.Sin(rad), tolerance) {
			t.Fatalf("v=%v alpha=%v: got (%v,%v)", tt.speed, tt.angle, s.VX, s.VY)
		}
		if !near(d.AngleRad, rad, tolerance) {
			t.Fatalf("alpha=%v: angle rad %v, expected %v", tt.angle, d.AngleRad, rad)
		}
	}
}

func TestComputeDerivedFrictionDisabled(t *testing.T) {
	p := DefaultParams()
	p.Friction = false
	_, d := ComputeDerived(p)
	if d.R != 0 {
		t.Fatalf("r = %v with friction disabled, expected 0", d.R)
	}
}

func TestFirstStepReferenceCase(t *testing.T) {
	s0, d := ComputeDerived(DefaultParams())

	s1 := StepX(s0, d)
	if !near(s1.VX, 24.9125, tolerance) {
		t.Fatalf("vx1 = %v, expected 24.9125", s1.VX)
	}
	if !near(s1.X, 0.24868903125, tolerance) {
		t.Fatalf("x1 = %v, expected ~0.24869", s1.X)
	}
	if s1.Y != s0.Y || s1.VY != s0.VY {
		t.Fatal("StepX must not touch the vertical component")
	}

	s2 := StepY(s0, d)
	vy := s0.VY - 9.81*0.01 - 0.35*s0.VY*0.01
	y := vy*0.01 - 0.5*9.81*0.0001 + 0.5*0.35*vy*0.0001
	if !near(s2.VY, vy, tolerance) || !near(s2.Y, y, tolerance) {
		t.Fatalf("StepY = (y %v, vy %v), expected (%v, %v)", s2.Y, s2.VY, y, vy)
	}
	if s2.X != s0.X || s2.VX != s0.VX {
		t.Fatal("StepY must not touch the horizontal component")
	}
}

func TestStepsArePure(t *testing.T) {
	s0, d := ComputeDerived(DefaultParams())
	a, b := s0, s0
	for i := 0; i < 500; i++ {
		a = Advance(a, d)
		b = Advance(b, d)
		if a != b {
			t.Fatalf("step %d diverged: %+v vs %+v", i, a, b)
		}
	}
	if again := StepX(s0, d); again != StepX(s0, d) {
		t.Fatal("StepX is not deterministic")
	}
}

func TestNoDragIsBallistic(t *testing.T) {
	p := DefaultParams()
	p.Friction = false
	s, d := ComputeDerived(p)
	vx0 := s.VX
	for i := 0; i < 100; i++ {
		s = Advance(s, d)
	}
	if !near(s.VX, vx0, tolerance) {
		t.Fatalf("vx changed without drag: %v -> %v", vx0, s.VX)
	}
	if !near(s.X, vx0*100*p.Dt, 1e-7) {
		t.Fatalf("x = %v, expected %v", s.X, vx0*100*p.Dt)
	}
}
