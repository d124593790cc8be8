package main

import "testing"

func TestMemoryCycle(t *testing.T) {
	m := memory{banks: []int{0, 2, 7, 0}}
	for _, want := range [][]int{
		{2, 4, 1, 2},
		{3, 1, 2, 3},
		{0, 2, 3, 4},
		{1, 3, 4, 1},
		{2, 4, 1, 2},
	} {
		m.cycle()
		checkDeepEqual(t, m.banks, want)
	}
}

func TestDay6(t *testing.T) {
	checkSolution(t, day6, "0\t2\t7\t0\n", answer{5, 4})
	checkSolutionError(t, day6, "")
	checkSolutionError(t, day6, "1 -2")
	checkSolutionError(t, day6, "1 two")
}
