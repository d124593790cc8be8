package main

import (
	"bytes"
	"errors"

	"github.com/cespare/advent2017/tower"
)

func init() {
	register("7", day7)
}

// day7 reports the bottom program of the tower and then either the weight
// that would balance it or, if it is already balanced, its total weight.
func day7(input []byte) (answer, error) {
	recs, err := tower.Parse(bytes.NewReader(input))
	if err != nil {
		return answer{}, err
	}
	dump("records", recs)
	tree, err := tower.Build(recs)
	if err != nil {
		return answer{}, err
	}
	total, err := tree.Resolve(tree.Root)
	var ue *tower.UnbalancedError
	switch {
	case err == nil:
		return answer{tree.Root, total}, nil
	case errors.As(err, &ue):
		return answer{tree.Root, ue.Want}, nil
	default:
		return answer{}, err
	}
}
