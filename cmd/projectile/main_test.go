package main

import (
	"strings"
	"testing"

	"labsim/internal/sims/projectile"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAngles(t *testing.T) {
	got, err := parseAngles(" 30, 45,,60 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 45, 60}, got)

	_, err = parseAngles("30,steep")
	assert.Error(t, err)
	_, err = parseAngles(" , ")
	assert.Error(t, err)
}

func TestFlySkipsRefusedRuns(t *testing.T) {
	p := projectile.DefaultParams()
	sim := projectile.NewSimulator(p)

	results, series := fly(sim, p, []float64{30, 60}, 0, zerolog.Nop())
	require.Len(t, results, 2)
	require.Len(t, series, 2)
	assert.Equal(t, 30.0, results[0].Angle)
	assert.Equal(t, 1, results[1].Run)
	assert.Len(t, series[1].X, results[1].Steps)

	p.Dt = 0
	results, _ = fly(projectile.NewSimulator(p), p, []float64{45}, 0, zerolog.Nop())
	assert.Empty(t, results)
}

func TestSummaryMarksCappedRuns(t *testing.T) {
	out := summary([]result{
		{Angle: 45, Flight: projectile.Flight{Run: 0, Steps: 10, Landed: true, Range: 12.5}},
		{Angle: 80, Flight: projectile.Flight{Run: 1, Steps: 99}},
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "range")
	assert.Contains(t, lines[1], "12.50")
	assert.NotContains(t, lines[1], "step cap")
	assert.Contains(t, lines[2], "step cap")
}
