package rules

/*
ApplyConwayRules applies Conway's B3/S23 rules to determine the next state of a cell.

A live cell survives with exactly 2 or 3 live neighbors, a dead cell is born
with exactly 3: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
