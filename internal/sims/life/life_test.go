package life

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"labsim/internal/core"

	"github.com/rs/zerolog"
)

func gridFrom(size int, alive ...[2]int) *core.Grid {
	g := core.NewSquareGrid(size)
	for _, c := range alive {
		g.Set(c[0], c[1], true)
	}
	return g
}

func expectCells(t *testing.T, g *core.Grid, expects map[[2]int]bool, when string) {
	t.Helper()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive := g.Alive(x, y)
			shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("%s cell (%d,%d) alive=%v, expected %v", when, x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := gridFrom(5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	g = Step(g, Conway())
	expectCells(t, g, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "after first step")

	g = Step(g, Conway())
	expectCells(t, g, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "after second step")
}

func TestRebirthTakesPrecedence(t *testing.T) {
	rules := Rules{Overpopulation: 1, Underpopulation: 1, Rebirth: 2}
	g := gridFrom(3, [2]int{0, 0}, [2]int{2, 0})

	if n := Neighbors(g, 1, 1); n != 2 {
		t.Fatalf("neighbors = %d, expected 2", n)
	}
	next := Step(g, rules)
	if !next.Alive(1, 1) {
		t.Fatal("dead cell with count == rebirth must come alive even above overpopulation")
	}
	if !NextState(false, 2, rules) {
		t.Fatal("NextState must check rebirth first")
	}
	if NextState(true, 2, rules) {
		t.Fatal("an alive cell above overpopulation must die")
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	size := 4
	full := core.NewSquareGrid(size)
	for i := range full.Cells() {
		full.Cells()[i] = true
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			want := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && full.InBounds(x+dx, y+dy) {
						want++
					}
				}
			}
			if got := Neighbors(full, x, y); got != want {
				t.Fatalf("(%d,%d) neighbors = %d, expected %d", x, y, got, want)
			}
		}
	}
	for _, c := range [][2]int{{0, 0}, {0, size - 1}, {size - 1, 0}, {size - 1, size - 1}} {
		if got := Neighbors(full, c[0], c[1]); got != 3 {
			t.Fatalf("corner (%d,%d) has %d neighbors, expected 3", c[0], c[1], got)
		}
	}

	// A wrapping board would see the far column as neighbours of column 0.
	g := gridFrom(5, [2]int{4, 1}, [2]int{4, 2}, [2]int{4, 3})
	if n := Neighbors(g, 0, 2); n != 0 {
		t.Fatalf("left edge sees %d neighbours across the board", n)
	}
}

func TestStepIsSynchronous(t *testing.T) {
	g := gridFrom(5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	before := g.Clone()
	_ = Step(g, Conway())
	if !g.Equal(before) {
		t.Fatal("Step modified its input")
	}

	a := Step(g, DefaultRules())
	b := core.NewSquareGrid(5)
	StepInto(b, g, DefaultRules())
	if !a.Equal(b) {
		t.Fatal("Step and StepInto disagree")
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	for _, rebirth := range []int{1, 2, 3, 8} {
		g := Step(core.NewSquareGrid(6), Rules{Overpopulation: 3, Underpopulation: 1, Rebirth: rebirth})
		if g.Population() != 0 {
			t.Fatalf("rebirth=%d: empty grid produced %d cells", rebirth, g.Population())
		}
	}
}

func TestResize(t *testing.T) {
	for _, size := range []int{1, 2, 7, 20, 33} {
		g, coords, err := Resize(size)
		if err != nil {
			t.Fatal(err)
		}
		if g.W != size || g.H != size || len(g.Cells()) != size*size || g.Population() != 0 {
			t.Fatalf("size %d: got %dx%d with %d alive", size, g.W, g.H, g.Population())
		}
		if len(coords) != size*size {
			t.Fatalf("size %d: %d coords", size, len(coords))
		}
		seen := map[Coord]bool{}
		for _, c := range coords {
			if seen[c] || !g.InBounds(c.X, c.Y) {
				t.Fatalf("size %d: bad or duplicate coord %+v", size, c)
			}
			seen[c] = true
		}
	}
	if _, _, err := Resize(0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("Resize(0) error = %v", err)
	}
}

func TestToggleInvolution(t *testing.T) {
	g := gridFrom(4, [2]int{1, 1})
	once := Toggle(g, 2, 3)
	if once.Equal(g) || !once.Alive(2, 3) {
		t.Fatal("toggle did not flip the cell")
	}
	twice := Toggle(once, 2, 3)
	if !twice.Equal(g) {
		t.Fatal("toggling twice must restore the grid")
	}
	if !Toggle(g, 9, 9).Equal(g) {
		t.Fatal("out-of-bounds toggle changed the grid")
	}
}

func TestBoardLifecycle(t *testing.T) {
	l := New(5)
	l.Reset(0)
	if !l.Toggle(2, 1) || !l.Toggle(2, 2) || !l.Toggle(2, 3) {
		t.Fatal("toggle refused while stopped")
	}
	if !l.SetRules(Conway()) {
		t.Fatal("SetRules refused while stopped")
	}

	l.Step()
	if l.Generation() != 0 {
		t.Fatal("Step must not advance a stopped board")
	}

	if err := l.Start(); err != nil {
		t.Fatal(err)
	}
	if l.Toggle(0, 0) {
		t.Fatal("toggle accepted while running")
	}
	if l.SetRules(DefaultRules()) || l.SetIntParameter("over", 5) || l.SetFloatParameter("interval", 2) {
		t.Fatal("rule change accepted while running")
	}
	l.Step()
	if l.Generation() != 1 {
		t.Fatalf("generation = %d, expected 1", l.Generation())
	}
	expectCells(t, l.Grid(), map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "board")
	cells := l.Cells()
	if cells[2*5+1] != 1 || cells[1*5+2] != 0 {
		t.Fatal("display buffer out of sync with the grid")
	}

	if err := l.Resize(8); err != nil {
		t.Fatal(err)
	}
	if l.Running() {
		t.Fatal("resize must stop the run")
	}
	if l.Size().W != 8 || len(l.Cells()) != 64 || len(l.Coords()) != 64 || l.Grid().Population() != 0 {
		t.Fatal("resize did not reallocate an empty board")
	}
	if l.Generation() != 0 {
		t.Fatal("resize must reset the generation counter")
	}
}

func TestBoardToggleInvolution(t *testing.T) {
	l := New(6)
	before := l.Grid()
	l.Toggle(3, 4)
	l.Toggle(3, 4)
	if !l.Grid().Equal(before) {
		t.Fatal("double toggle changed the board")
	}
}

func TestBoardStartValidatesInterval(t *testing.T) {
	l := NewWithConfig(FromMap(map[string]string{"interval": "soon"}))
	err := l.Start()
	if !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if l.Running() {
		t.Fatal("refused start must leave the board stopped")
	}
	if !math.IsNaN(l.cfg.Interval) {
		t.Fatal("unparseable interval should be kept as NaN")
	}
}

func TestAdvanceWithoutBoard(t *testing.T) {
	var l Life
	if err := l.Advance(); !errors.Is(err, core.ErrStateUnavailable) {
		t.Fatalf("expected ErrStateUnavailable, got %v", err)
	}
	if err := l.Start(); !errors.Is(err, core.ErrStateUnavailable) {
		t.Fatalf("expected ErrStateUnavailable, got %v", err)
	}
}

func TestDefaultSeedLoads(t *testing.T) {
	rows := DefaultSeed()
	if len(rows) != 20 {
		t.Fatalf("seed has %d rows, expected 20", len(rows))
	}
	l := NewWithConfig(DefaultConfig())
	if l.Size().W != 20 || l.Grid().Population() == 0 {
		t.Fatal("default board should start from the seed pattern")
	}
	empty := NewWithConfig(FromMap(map[string]string{"seed_pattern": SeedEmpty}))
	if empty.Grid().Population() != 0 {
		t.Fatal("empty pattern should start all dead")
	}
	if _, err := ParseSeed([]byte("[]")); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("empty seed error = %v", err)
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a, b := New(16), New(16)
	a.Randomize(99)
	b.Randomize(99)
	if !a.Grid().Equal(b.Grid()) {
		t.Fatal("same seed produced different boards")
	}
	if a.Grid().Population() == 0 {
		t.Fatal("randomize produced an empty board")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"size": "12", "over": "4", "under": "2", "rebirth": "3", "seed_pattern": "bogus"})
	if c.Size != 12 || c.Rules != (Rules{Overpopulation: 4, Underpopulation: 2, Rebirth: 3}) {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Seed != SeedDefault {
		t.Fatalf("unknown seed pattern should keep the default, got %q", c.Seed)
	}
}

func TestStartRejectsUnparsableOptions(t *testing.T) {
	cases := []struct {
		opts map[string]string
		key  string
	}{
		{map[string]string{"over": "abc"}, "over"},
		{map[string]string{"under": "two"}, "under"},
		{map[string]string{"rebirth": "NaN"}, "rebirth"},
		{map[string]string{"size": "x"}, "size"},
		{map[string]string{"size": "0"}, "size"},
		{map[string]string{"size": "-3"}, "size"},
		{map[string]string{"over": "abc", "size": "x", "rebirth": "NaN"}, "over"},
	}
	for _, tc := range cases {
		l := NewWithConfig(FromMap(tc.opts))
		err := l.Start()
		if !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("%v: expected ErrInvalidParameter, got %v", tc.opts, err)
		}
		var pe *core.ParamError
		if !errors.As(err, &pe) || pe.Key != tc.key {
			t.Fatalf("%v: expected error naming %q, got %v", tc.opts, tc.key, err)
		}
		if l.Running() {
			t.Fatalf("%v: board must not run", tc.opts)
		}
		if l.Size().W != DefaultConfig().Size {
			t.Fatalf("%v: board should still be allocated at the default size", tc.opts)
		}
	}
}

func TestSettingRejectedOptionsUnblocksStart(t *testing.T) {
	l := NewWithConfig(FromMap(map[string]string{"over": "abc", "size": "x"}))
	if !l.SetIntParameter("over", 4) {
		t.Fatal("over should be settable while stopped")
	}
	var pe *core.ParamError
	if err := l.Start(); !errors.As(err, &pe) || pe.Key != "size" {
		t.Fatalf("size is still unparsed, got %v", err)
	}
	if err := l.Resize(8); err != nil {
		t.Fatal(err)
	}
	if err := l.Start(); err != nil {
		t.Fatalf("all options set, got %v", err)
	}

	l = NewWithConfig(FromMap(map[string]string{"under": "x", "rebirth": "y"}))
	if !l.SetRules(DefaultRules()) {
		t.Fatal("SetRules refused while stopped")
	}
	if err := l.Start(); err != nil {
		t.Fatalf("SetRules replaces every threshold, got %v", err)
	}
}

func TestExtinctionLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	l := New(5)
	l.Reset(0)
	l.SetLogger(zerolog.New(&buf))
	l.Toggle(2, 2)
	if err := l.Start(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		l.Step()
	}
	if got := strings.Count(buf.String(), "population died out"); got != 1 {
		t.Fatalf("expected one extinction message, got %d:\n%s", got, buf.String())
	}

	buf.Reset()
	l.Stop()
	l.Reset(0)
	if err := l.Start(); err != nil {
		t.Fatal(err)
	}
	l.Step()
	if strings.Contains(buf.String(), "population died out") {
		t.Fatal("a board that starts empty has nothing to die out")
	}
}
