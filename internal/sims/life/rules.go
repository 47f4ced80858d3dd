package life

// Rules holds the three neighbour-count thresholds of the automaton.
type Rules struct {
	Overpopulation  int // a cell dies above this count
	Underpopulation int // a cell dies below this count
	Rebirth         int // a dead cell with exactly this count comes alive
}

// DefaultRules returns the classroom defaults.
func DefaultRules() Rules {
	return Rules{Overpopulation: 3, Underpopulation: 1, Rebirth: 2}
}

// Conway returns the B3/S23 thresholds.
func Conway() Rules {
	return Rules{Overpopulation: 3, Underpopulation: 2, Rebirth: 3}
}

// NextState applies the rules to one cell. Rebirth is checked before the
// population bounds, so a dead cell whose count equals Rebirth is revived
// even when that count lies outside [Underpopulation, Overpopulation].
func NextState(alive bool, neighbors int, r Rules) bool {
	if !alive && neighbors == r.Rebirth {
		return true
	}
	if neighbors > r.Overpopulation || neighbors < r.Underpopulation {
		return false
	}
	return alive
}
