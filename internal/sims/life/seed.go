package life

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"labsim/internal/core"
)

//go:embed default_seed.json
var defaultSeedJSON []byte

// DefaultSeed returns the startup pattern as rows of cells.
func DefaultSeed() [][]bool {
	rows, err := ParseSeed(defaultSeedJSON)
	if err != nil {
		panic(fmt.Sprintf("life: embedded seed: %v", err))
	}
	return rows
}

// ParseSeed decodes a JSON boolean matrix (an array of rows).
func ParseSeed(data []byte) ([][]bool, error) {
	var rows [][]bool
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: seed: %v", core.ErrInvalidParameter, err)
	}
	if len(rows) == 0 {
		return nil, &core.ParamError{Key: "seed", Reason: "empty pattern"}
	}
	return rows, nil
}

// stamp copies rows into g starting at the origin, clipping to g.
func stamp(g *core.Grid, rows [][]bool) {
	for y, row := range rows {
		for x, alive := range row {
			g.Set(x, y, alive)
		}
	}
}
