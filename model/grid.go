package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/sheikhrachel/torus-life/rules"
)

// Coord addresses a cell by row and column
type Coord struct {
	Row int
	Col int
}

// Grid is a toroidal Game of Life board stored one bit per cell, row-major.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	width  int
	height int
	cells  *bitset.BitSet
	next   *bitset.BitSet // written by Tick, then swapped with cells
}

func newGrid(width, height int) (*Grid, error) {
	if err := validateDimensions("newGrid", width, height); err != nil {
		return nil, err
	}
	g := &Grid{width: width, height: height}
	g.reallocate()
	return g, nil
}

// reallocate sizes both buffers to width*height with every cell dead
func (g *Grid) reallocate() {
	n := uint(g.width * g.height)
	g.cells = bitset.New(n)
	g.next = bitset.New(n)
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// SetWidth changes the number of columns. Every cell is dead afterwards.
func (g *Grid) SetWidth(width int) error {
	if err := validateDimensions("SetWidth", width, g.height); err != nil {
		return err
	}
	g.width = width
	g.reallocate()
	return nil
}

// SetHeight changes the number of rows. Every cell is dead afterwards.
func (g *Grid) SetHeight(height int) error {
	if err := validateDimensions("SetHeight", g.width, height); err != nil {
		return err
	}
	g.height = height
	g.reallocate()
	return nil
}

// wrap maps any row/column pair onto the torus
func (g *Grid) wrap(row, col int) (int, int) {
	row %= g.height
	if row < 0 {
		row += g.height
	}
	col %= g.width
	if col < 0 {
		col += g.width
	}
	return row, col
}

// index expects row and col already wrapped into range
func (g *Grid) index(row, col int) uint {
	return uint(row*g.width + col)
}

func (g *Grid) get(idx uint) bool {
	return g.cells.Test(idx)
}

func (g *Grid) set(idx uint, alive bool) {
	g.cells.SetTo(idx, alive)
}

func (g *Grid) toggle(idx uint) {
	g.cells.Flip(idx)
}

// Alive reports whether the cell at (row, col) is alive. Coordinates wrap.
func (g *Grid) Alive(row, col int) bool {
	return g.get(g.index(g.wrap(row, col)))
}

// ToggleCell flips the cell at (row, col). Coordinates wrap.
func (g *Grid) ToggleCell(row, col int) {
	g.toggle(g.index(g.wrap(row, col)))
}

// SetCells marks every listed cell alive without clearing anything else
func (g *Grid) SetCells(coords []Coord) {
	for _, c := range coords {
		g.set(g.index(g.wrap(c.Row, c.Col)), true)
	}
}

// Clear kills every cell, keeping the dimensions
func (g *Grid) Clear() {
	g.cells.ClearAll()
}

// neighborDeltas yields the row and column steps of the Moore neighborhood.
// A step of -1 is expressed as dimension-1 so it stays non-negative; on a
// grid one cell wide or high that step collapses to 0 and the same cell can
// fill more than one slot.
func (g *Grid) neighborDeltas() ([3]int, [3]int) {
	return [3]int{g.height - 1, 0, 1}, [3]int{g.width - 1, 0, 1}
}

// Neighbors returns the Moore neighborhood of (row, col) on the torus,
// ordered NW, N, NE, W, E, SW, S, SE.
func (g *Grid) Neighbors(row, col int) []Coord {
	row, col = g.wrap(row, col)
	rowDeltas, colDeltas := g.neighborDeltas()

	neighbors := make([]Coord, 0, 8)
	for _, dr := range rowDeltas {
		for _, dc := range colDeltas {
			if dr == 0 && dc == 0 {
				continue
			}
			neighbors = append(neighbors, Coord{
				Row: (row + dr) % g.height,
				Col: (col + dc) % g.width,
			})
		}
	}
	return neighbors
}

// LiveNeighborCount returns how many of the Neighbors of (row, col) are alive
func (g *Grid) LiveNeighborCount(row, col int) int {
	row, col = g.wrap(row, col)
	return g.liveNeighborCount(row, col)
}

// liveNeighborCount is LiveNeighborCount without the slice allocation; it
// visits the same slots as Neighbors.
func (g *Grid) liveNeighborCount(row, col int) int {
	rowDeltas, colDeltas := g.neighborDeltas()

	count := 0
	for _, dr := range rowDeltas {
		for _, dc := range colDeltas {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.get(g.index((row+dr)%g.height, (col+dc)%g.width)) {
				count++
			}
		}
	}
	return count
}

// Tick advances the grid by one generation. Neighbor counts are read from
// the current field only; the next generation is built in a second buffer
// and swapped in once every cell has been decided.
func (g *Grid) Tick() {
	for row := range g.height {
		for col := range g.width {
			idx := g.index(row, col)
			g.next.SetTo(idx, rules.ApplyConwayRules(g.liveNeighborCount(row, col), g.get(idx)))
		}
	}
	g.cells, g.next = g.next, g.cells
}

// Cells returns a copy of the packed field, bit row*width+col per cell
func (g *Grid) Cells() *bitset.BitSet {
	return g.cells.Clone()
}

// PackedBytes returns the field as bytes: cell i is bit i%8 of byte i/8
func (g *Grid) PackedBytes() []byte {
	n := g.width * g.height
	packed := make([]byte, (n+7)/8)
	for i, ok := g.cells.NextSet(0); ok; i, ok = g.cells.NextSet(i + 1) {
		packed[i/8] |= 1 << (i % 8)
	}
	return packed
}

// LiveCells returns the coordinates of every live cell in row-major order
func (g *Grid) LiveCells() []Coord {
	live := make([]Coord, 0, g.cells.Count())
	for i, ok := g.cells.NextSet(0); ok; i, ok = g.cells.NextSet(i + 1) {
		live = append(live, Coord{Row: int(i) / g.width, Col: int(i) % g.width})
	}
	return live
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() int {
	return int(g.cells.Count())
}

// Hash returns an MD5 fingerprint of the dimensions and cell field
func (g *Grid) Hash() string {
	h := md5.New()
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(g.width))
	binary.LittleEndian.PutUint64(dims[8:], uint64(g.height))
	h.Write(dims[:])
	h.Write(g.PackedBytes())
	return fmt.Sprintf("%x", h.Sum(nil))
}
