package main

import "testing"

func TestSpiralDistance(t *testing.T) {
	for _, tt := range []struct {
		n    int
		want int
	}{
		{1, 0},
		{12, 3},
		{23, 2},
		{25, 4},
		{49, 6},
		{1024, 31},
	} {
		if got := spiralDistance(tt.n); got != tt.want {
			t.Errorf("spiralDistance(%d): got %d; want %d", tt.n, got, tt.want)
		}
	}
}

func TestStressTest(t *testing.T) {
	for _, tt := range []struct {
		n    int
		want int
	}{
		{1, 2},
		{5, 10},
		{10, 11},
		{60, 122},
		{747, 806},
	} {
		if got := stressTest(tt.n); got != tt.want {
			t.Errorf("stressTest(%d): got %d; want %d", tt.n, got, tt.want)
		}
	}
}

func TestSpiralLayout(t *testing.T) {
	s := newSpiral()
	want := []vec2{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {2, -1}, {2, 0}}
	var got []vec2
	for range want {
		got = append(got, s.advance())
	}
	checkDeepEqual(t, got, want)
}

func TestDay3(t *testing.T) {
	checkSolution(t, day3, "1024\n", answer{31, 1968})
	checkSolutionError(t, day3, "0")
	checkSolutionError(t, day3, "ten")
}
