package rules

// B3/S23 neighbor counts.
const (
	BirthNeighbors   = 3
	SurviveNeighbors = 2
)

/*
ApplyConwayRules decides whether a cell is alive in the next generation.

A live cell with 2 or 3 live neighbors survives, a dead cell with exactly 3
live neighbors is born, every other cell is dead.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == SurviveNeighbors || neighbors == BirthNeighbors
	}
	return neighbors == BirthNeighbors
}
