package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

// game owns one grid and everything the host tracks around it
type game struct {
	config   utils.Config
	source   model.DecisionSource
	grid     *model.Grid
	history  model.History
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	out      io.Writer

	generation     int
	stagnantCount  int
	lastRestartGen int
}

// newGame validates the configuration and builds the first generation
func newGame(config utils.Config, out io.Writer) (*game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &game{
		config:   config,
		source:   utils.NewDecisionSource(seed),
		renderer: &model.TerminalRenderer{Out: out},
		stats:    utils.NewStats(),
		out:      out,
	}

	grid, err := g.buildGrid()
	if err != nil {
		return nil, err
	}
	g.grid = grid
	return g, nil
}

// buildGrid constructs a grid from the configured policy and stamps
func (g *game) buildGrid() (*model.Grid, error) {
	policy, err := model.ParsePolicy(g.config.Policy)
	if err != nil {
		return nil, err
	}

	grid, err := model.New(policy, g.config.Width, g.config.Height, g.source)
	if err != nil {
		return nil, errors.Wrapf(err, "[buildGrid] failed to construct %+v grid", policy)
	}

	for _, s := range g.config.Stamps {
		p, err := model.PatternByName(s.Pattern)
		if err != nil {
			return nil, err
		}
		grid.Stamp(p, s.Row, s.Col)
	}
	return grid, nil
}

// run advances the simulation until the generation limit or until ctx is done
func (g *game) run(ctx context.Context) error {
	lastFrameTime := time.Now()

	for {
		if ctx.Err() != nil {
			return nil
		}

		frameStart := time.Now()
		living := g.updateGameState(frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if g.config.Render {
			if err := g.draw(living); err != nil {
				return err
			}
		}

		if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
			log.Printf("reached maximum generations limit (%d)", g.config.MaxGenerations)
			return nil
		}

		restart, reason := checkRestartConditions(living, g.stagnantCount, g.config)
		switch {
		case restart && g.config.AutoRestart:
			if err := g.restart(reason); err != nil {
				return err
			}
		case living == 0:
			log.Printf("population extinct at generation %d", g.generation)
			return nil
		}

		g.grid.Tick()
		g.generation++

		if g.config.FrameRate > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(g.config.FrameRate):
			}
		}
	}
}

// updateGameState records the current generation and returns its population
func (g *game) updateGameState(frame time.Duration) int {
	living := g.grid.CountLivingCells()
	g.stats.Update(g.generation, living, frame)

	if g.history.Observe(g.grid) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	return living
}

// draw clears the terminal, prints the status lines and renders the grid
func (g *game) draw(living int) error {
	if err := g.renderer.Clear(); err != nil {
		return errors.Wrap(err, "[draw] failed to clear terminal")
	}

	density := float64(living) / float64(g.grid.Width()*g.grid.Height()) * 100
	status := "Active"
	switch {
	case living == 0:
		status = "Extinct"
	case g.stagnantCount > 0:
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}

	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.generation, living, density, status)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs | Restarts: %d\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds(), g.stats.Restarts)
	if g.generation > g.lastRestartGen {
		fmt.Fprintf(g.out, "Generations since restart: %d\n", g.generation-g.lastRestartGen)
	}
	fmt.Fprintln(g.out)

	if err := g.renderer.Display(g.grid); err != nil {
		return errors.Wrap(err, "[draw] failed to render grid")
	}
	return nil
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restart rebuilds the grid from the configured policy, drawing fresh
// decisions from the shared source
func (g *game) restart(reason string) error {
	log.Printf("restarting at generation %d due to %s", g.generation, reason)

	grid, err := g.buildGrid()
	if err != nil {
		return err
	}
	g.grid = grid
	g.history.Reset()
	g.stagnantCount = 0
	g.lastRestartGen = g.generation
	g.stats.Restarts++
	return nil
}

// summary logs the final statistics of the run
func (g *game) summary() {
	log.Printf("final stats: %d generations in %.1f seconds, %d restarts",
		g.generation, g.stats.Runtime().Seconds(), g.stats.Restarts)
	log.Printf("average: %.1f gen/sec, %.1f avg population",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}
