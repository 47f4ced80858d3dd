package projectile

import "sort"

// Sample is one recorded projectile position.
type Sample struct {
	X, Y float64
}

// Trajectories keeps the samples of every run keyed by run id, so a
// restarted run never appends to an earlier one.
type Trajectories struct {
	runs map[int][]Sample
}

// NewTrajectories returns an empty store.
func NewTrajectories() *Trajectories {
	return &Trajectories{runs: map[int][]Sample{}}
}

// Begin allocates a fresh empty sequence for id.
func (t *Trajectories) Begin(id int) {
	t.runs[id] = make([]Sample, 0, 256)
}

// Append adds s to the sequence of id.
func (t *Trajectories) Append(id int, s Sample) {
	t.runs[id] = append(t.runs[id], s)
}

// Get returns a copy of the samples recorded for id.
func (t *Trajectories) Get(id int) ([]Sample, bool) {
	samples, ok := t.runs[id]
	if !ok {
		return nil, false
	}
	return append([]Sample(nil), samples...), true
}

// Each visits runs in ascending id order. The slices must not be modified.
func (t *Trajectories) Each(fn func(id int, samples []Sample)) {
	for _, id := range t.IDs() {
		fn(id, t.runs[id])
	}
}

// IDs lists run ids in ascending order.
func (t *Trajectories) IDs() []int {
	ids := make([]int, 0, len(t.runs))
	for id := range t.runs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len reports the number of recorded runs.
func (t *Trajectories) Len() int { return len(t.runs) }

// Clear discards every run.
func (t *Trajectories) Clear() {
	t.runs = map[int][]Sample{}
}
