package main

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("6", day6)
}

func day6(input []byte) (answer, error) {
	var mem memory
	for _, field := range strings.Fields(string(input)) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return answer{}, err
		}
		if n < 0 {
			return answer{}, fmt.Errorf("negative bank size %d", n)
		}
		mem.banks = append(mem.banks, n)
	}
	if len(mem.banks) == 0 {
		return answer{}, errors.New("no memory banks")
	}
	dump("banks", mem.banks)
	cycles, loop := mem.findLoop()
	return answer{cycles, loop}, nil
}

type memory struct {
	banks []int
}

// findLoop redistributes until a configuration repeats. It returns the
// number of cycles done and the length of the loop.
func (m *memory) findLoop() (cycles, loop int) {
	seen := map[string]int{m.String(): 0}
	for i := 1; ; i++ {
		m.cycle()
		s := m.String()
		if j, ok := seen[s]; ok {
			return i, i - j
		}
		seen[s] = i
	}
}

func (m *memory) String() string {
	var b bytes.Buffer
	for _, numBlocks := range m.banks {
		fmt.Fprintf(&b, "%d,", numBlocks)
	}
	return b.String()
}

func (m *memory) cycle() {
	max := -1
	var j int
	for i, numBlocks := range m.banks {
		if numBlocks > max {
			j = i
			max = numBlocks
		}
	}
	m.banks[j] = 0
	for ; max > 0; max-- {
		j = (j + 1) % len(m.banks)
		m.banks[j]++
	}
}
