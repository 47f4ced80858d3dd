package projectile

// State is the point-mass position and velocity. Y is never clamped; callers
// decide when a run has landed.
type State struct {
	X, Y   float64
	VX, VY float64
}

// StepX advances the horizontal component by one semi-implicit Euler step.
func StepX(s State, d Derived) State {
	dt := d.Dt
	vx := s.VX - d.R*s.VX*dt
	s.X = s.X + vx*dt - 0.5*d.R*vx*dt*dt
	s.VX = vx
	return s
}

// StepY advances the vertical component by one semi-implicit Euler step.
func StepY(s State, d Derived) State {
	dt, g := d.Dt, d.Gravity
	vy := s.VY - g*dt - d.R*s.VY*dt
	s.Y = s.Y + vy*dt - 0.5*g*dt*dt + 0.5*d.R*vy*dt*dt
	s.VY = vy
	return s
}

// Advance applies StepX and StepY.
func Advance(s State, d Derived) State {
	return StepY(StepX(s, d), d)
}
