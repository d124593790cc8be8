package main

import (
	"strconv"
	"strings"

	"github.com/cespare/advent2017/knothash"
)

func init() {
	register("10", day10)
}

func day10(input []byte) (answer, error) {
	s := strings.TrimSpace(string(input))
	lengths, err := parseLengths(s)
	if err != nil {
		return answer{}, err
	}
	check, err := knotCheck(knothash.Size, lengths)
	if err != nil {
		return answer{}, err
	}
	return answer{check, knothash.String(s)}, nil
}

// knotCheck runs a single round over a list of n elements and multiplies
// the first two.
func knotCheck(n int, lengths []int) (int, error) {
	k := knothash.New(n)
	if err := k.Round(lengths); err != nil {
		return 0, err
	}
	return k.Check(), nil
}

func parseLengths(s string) ([]int, error) {
	var lengths []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		lengths = append(lengths, n)
	}
	return lengths, nil
}
