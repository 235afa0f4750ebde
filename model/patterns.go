package model

import "github.com/pkg/errors"

// Pattern is a fixed shape that can be stamped onto a Grid.
type Pattern struct {
	Name string
	// Radius is the half-width of the square cleared around the anchor
	// before Cells are set.
	Radius int
	// Cells are the live offsets relative to the anchor.
	Cells []Coord
}

var (
	// Glider travels one cell down and one cell right every 4 generations.
	Glider = Pattern{
		Name:   "glider",
		Radius: 2,
		Cells: []Coord{
			{Row: -1, Col: 1},
			{Row: 0, Col: -1},
			{Row: 0, Col: 1},
			{Row: 1, Col: 0},
			{Row: 1, Col: 1},
		},
	}

	// Pulsar is the 48-cell period-3 oscillator.
	Pulsar = Pattern{
		Name:   "pulsar",
		Radius: 7,
		Cells:  pulsarCells(),
	}

	patterns = map[string]Pattern{
		Glider.Name: Glider,
		Pulsar.Name: Pulsar,
	}
)

// pulsarCells builds the four reflected quadrants: the bars on rows ±1 and
// ±6 span columns ±2..±4, and the transposed bars fill the columns.
func pulsarCells() []Coord {
	cells := make([]Coord, 0, 48)
	for _, bar := range []int{-6, -1, 1, 6} {
		for _, span := range []int{-4, -3, -2, 2, 3, 4} {
			cells = append(cells,
				Coord{Row: bar, Col: span},
				Coord{Row: span, Col: bar},
			)
		}
	}
	return cells
}

// PatternByName looks up a stampable pattern by its Name
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[PatternByName] name: %+v", name)
	}
	return p, nil
}

// Stamp clears the (2*Radius+1)² square centered on (row, col) and then sets
// the pattern's cells alive. Every coordinate wraps, and the result does not
// depend on what was there before.
func (g *Grid) Stamp(p Pattern, row, col int) {
	for dr := -p.Radius; dr <= p.Radius; dr++ {
		for dc := -p.Radius; dc <= p.Radius; dc++ {
			g.set(g.index(g.wrap(row+dr, col+dc)), false)
		}
	}

	live := make([]Coord, len(p.Cells))
	for i, c := range p.Cells {
		live[i] = Coord{Row: row + c.Row, Col: col + c.Col}
	}
	g.SetCells(live)
}

// AddGlider stamps a Glider anchored at (row, col)
func (g *Grid) AddGlider(row, col int) {
	g.Stamp(Glider, row, col)
}

// AddPulsar stamps a Pulsar anchored at (row, col)
func (g *Grid) AddPulsar(row, col int) {
	g.Stamp(Pulsar, row, col)
}
