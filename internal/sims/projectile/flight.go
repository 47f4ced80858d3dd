package projectile

// Flight summarises one complete run.
type Flight struct {
	Run    int
	Steps  int
	Landed bool
	// Range is the x where the path crosses the ground line, interpolated
	// between the last two samples. Without a landing it is the last x.
	Range float64
	Apex  float64
	Time  float64
}

// landed reports whether a sample is at or below the ground line.
func landed(s Sample) bool { return s.Y <= 0 }

// Fly starts a run and steps it until the projectile lands or maxSteps is
// reached. maxSteps <= 0 means no cap. The run is stopped before returning.
func Fly(s *Simulator, maxSteps int) (Flight, error) {
	id, err := s.Start()
	if err != nil {
		return Flight{}, err
	}
	f := Flight{Run: id}
	for maxSteps <= 0 || f.Steps < maxSteps {
		sample, err := s.Step()
		if err != nil {
			s.Stop()
			return f, err
		}
		f.Steps++
		if landed(sample) {
			f.Landed = true
			break
		}
	}
	dt := s.Derived().Dt
	s.Stop()

	samples, _ := s.Trajectory(id)
	f.Range, f.Apex = Summarize(samples)
	f.Time = float64(f.Steps) * dt
	return f, nil
}

// Summarize returns the ground crossing and the highest y of a sample
// sequence that starts after launch from the origin.
func Summarize(samples []Sample) (rangeX, apex float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	for _, s := range samples {
		if s.Y > apex {
			apex = s.Y
		}
	}
	last := samples[len(samples)-1]
	if !landed(last) {
		return last.X, apex
	}
	prev := Sample{}
	if len(samples) > 1 {
		prev = samples[len(samples)-2]
	}
	if prev.Y == last.Y {
		return last.X, apex
	}
	t := prev.Y / (prev.Y - last.Y)
	return prev.X + t*(last.X-prev.X), apex
}
