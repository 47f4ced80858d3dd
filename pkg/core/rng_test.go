package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
	if NewRNG(1).IntN(0) != 0 || NewRNG(1).IntN(-3) != 0 {
		t.Fatal("IntN must return 0 for non-positive n")
	}
}

func TestFillBoolsDensity(t *testing.T) {
	buf := make([]bool, 4000)
	n := NewRNG(3).FillBools(buf, 0.3)
	if n < 1000 || n > 1400 {
		t.Fatalf("density 0.3 set %d of %d", n, len(buf))
	}
	count := 0
	for _, v := range buf {
		if v {
			count++
		}
	}
	if count != n {
		t.Fatalf("returned %d but %d set", n, count)
	}
	if NewRNG(3).FillBools(buf, 0) != 0 {
		t.Fatal("density 0 must leave every entry unset")
	}
}
