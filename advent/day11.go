package main

import (
	"fmt"
	"strings"
)

func init() {
	register("11", day11)
}

func day11(input []byte) (answer, error) {
	var steps []hex
	for _, dir := range strings.Split(strings.TrimSpace(string(input)), ",") {
		step, ok := hexDirs[strings.TrimSpace(dir)]
		if !ok {
			return answer{}, fmt.Errorf("bad direction %q", dir)
		}
		steps = append(steps, step)
	}
	final, furthest := walkHex(steps)
	return answer{final, furthest}, nil
}

// hex is a position on a hex grid in cube coordinates: q+r+s == 0.
type hex struct {
	q, r, s int
}

var hexDirs = map[string]hex{
	"n":  {0, -1, 1},
	"s":  {0, 1, -1},
	"ne": {1, -1, 0},
	"sw": {-1, 1, 0},
	"nw": {-1, 0, 1},
	"se": {1, 0, -1},
}

func (h hex) add(h1 hex) hex {
	return hex{h.q + h1.q, h.r + h1.r, h.s + h1.s}
}

// dist is the number of steps from the origin.
func (h hex) dist() int {
	return (abs(h.q) + abs(h.r) + abs(h.s)) / 2
}

// walkHex returns the distance of the end point and the furthest distance
// seen along the way.
func walkHex(steps []hex) (final, furthest int) {
	var pos hex
	for _, step := range steps {
		pos = pos.add(step)
		if d := pos.dist(); d > furthest {
			furthest = d
		}
	}
	return pos.dist(), furthest
}
