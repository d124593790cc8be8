package main

import (
	"errors"
	"strconv"
	"strings"
)

func init() {
	register("3", day3)
}

func day3(input []byte) (answer, error) {
	n, err := strconv.Atoi(strings.TrimSpace(string(input)))
	if err != nil {
		return answer{}, err
	}
	if n < 1 {
		return answer{}, errors.New("input must be >= 1")
	}
	return answer{spiralDistance(n), stressTest(n)}, nil
}

// spiralDistance is the Manhattan distance from square n to square 1.
func spiralDistance(n int) int {
	s := newSpiral()
	for s.n < n {
		s.advance()
	}
	return abs(s.v.x) + abs(s.v.y)
}

// stressTest fills the spiral with the sum of each square's already-filled
// neighbors and returns the first value larger than n.
func stressTest(n int) int {
	vals := map[vec2]int{{0, 0}: 1}
	s := newSpiral()
	for {
		v := s.advance()
		var sum int
		for _, d := range neighborDirs {
			sum += vals[v.add(d)]
		}
		if sum > n {
			return sum
		}
		vals[v] = sum
	}
}

// spiral walks outward from square 1 at the origin: right 1, up 1,
// left 2, down 2, right 3, and so on.
type spiral struct {
	n    int
	idir int
	d0   int
	d    int
	par  bool
	v    vec2
}

func newSpiral() *spiral {
	return &spiral{n: 1, d0: 1, d: 1}
}

var spiralDirs = []vec2{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

var neighborDirs = []vec2{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func (s *spiral) advance() vec2 {
	if s.d == 0 { // turn
		s.idir = (s.idir + 1) % len(spiralDirs)
		if s.par {
			s.d0++
		}
		s.par = !s.par
		s.d = s.d0
	}
	s.v = s.v.add(spiralDirs[s.idir])
	s.d--
	s.n++
	return s.v
}

type vec2 struct {
	x, y int
}

func (v vec2) add(v1 vec2) vec2 {
	return vec2{v.x + v1.x, v.y + v1.y}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
