package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"labsim/internal/logging"
	"labsim/internal/render"
	"labsim/internal/sims/projectile"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

func main() {
	def := projectile.DefaultParams()
	speed := flag.Float64("v", def.Speed, "launch speed")
	angles := flag.String("angles", strconv.FormatFloat(def.Angle, 'f', -1, 64), "comma-separated launch angles in degrees, one run each")
	mass := flag.Float64("m", def.Mass, "mass")
	drag := flag.Float64("c", def.Drag, "drag coefficient")
	dt := flag.Float64("dt", def.Dt, "time step")
	gravity := flag.Float64("g", def.Gravity, "gravitational acceleration")
	friction := flag.Bool("friction", def.Friction, "apply linear drag")
	maxSteps := flag.Int("max-steps", 1_000_000, "step cap per run (0 = none)")
	width := flag.Int("width", 72, "plot width")
	height := flag.Int("height", 12, "plot height")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logging.Setup(os.Stderr, *debug)
	logger := logging.Component("projectile")

	list, err := parseAngles(*angles)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -angles")
	}

	p := projectile.Params{
		Speed:    *speed,
		Mass:     *mass,
		Drag:     *drag,
		Dt:       *dt,
		Gravity:  *gravity,
		Friction: *friction,
	}
	sim := projectile.NewSimulator(p)

	results, series := fly(sim, p, list, *maxSteps, logger)
	if len(results) == 0 {
		log.Fatal().Msg("no run completed")
	}

	fmt.Println(summary(results))
	fmt.Println(graphStyle.Render(render.PlotTrajectories(series, *width, *height, "y over x")))
}

type result struct {
	Angle float64
	projectile.Flight
}

func fly(sim *projectile.Simulator, p projectile.Params, angles []float64, maxSteps int, logger zerolog.Logger) ([]result, []render.Series) {
	var results []result
	var series []render.Series
	for _, angle := range angles {
		p.Angle = angle
		sim.SetParams(p)
		f, err := projectile.Fly(sim, maxSteps)
		if err != nil {
			logger.Error().Err(err).Float64("alpha", angle).Msg("run refused")
			continue
		}
		if !f.Landed {
			logger.Warn().Int("run", f.Run).Int("max_steps", maxSteps).Msg("run hit step cap before landing")
		}
		logger.Debug().Int("run", f.Run).Int("steps", f.Steps).Float64("range", f.Range).Msg("run finished")
		results = append(results, result{Angle: angle, Flight: f})

		samples, _ := sim.Trajectory(f.Run)
		s := render.Series{Name: fmt.Sprintf("run %d", f.Run)}
		for _, smp := range samples {
			s.X = append(s.X, smp.X)
			s.Y = append(s.Y, smp.Y)
		}
		series = append(series, s)
	}
	return results, series
}

func parseAngles(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("angle %q: %w", part, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no angles given")
	}
	return out, nil
}

func summary(results []result) string {
	header := []string{"run", "alpha", "steps", "range", "apex", "time"}
	rows := []string{row(headerStyle, header)}
	for _, f := range results {
		cells := []string{
			strconv.Itoa(f.Run),
			strconv.FormatFloat(f.Angle, 'f', 1, 64),
			strconv.Itoa(f.Steps),
			strconv.FormatFloat(f.Range, 'f', 2, 64),
			strconv.FormatFloat(f.Apex, 'f', 2, 64),
			strconv.FormatFloat(f.Time, 'f', 2, 64),
		}
		line := row(cellStyle, cells)
		if !f.Landed {
			line += warnStyle.Render("  (step cap)")
		}
		rows = append(rows, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func row(style lipgloss.Style, cells []string) string {
	rendered := make([]string, len(cells))
	for i, c := range cells {
		rendered[i] = style.Width(10).Align(lipgloss.Right).Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
