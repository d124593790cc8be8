package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("12", day12)
}

func day12(input []byte) (answer, error) {
	uf := newUnionFind()
	scanner := bufio.NewScanner(bytes.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		id, pipes, err := parsePipes(line)
		if err != nil {
			return answer{}, err
		}
		uf.add(id)
		for _, p := range pipes {
			uf.union(id, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return answer{}, err
	}
	if !uf.has(0) {
		return answer{}, errors.New("no program 0")
	}
	return answer{uf.groupSize(0), uf.groups()}, nil
}

// parsePipes parses a line like "2 <-> 0, 3, 4".
func parsePipes(s string) (id int, pipes []int, err error) {
	lhs, rhs, ok := strings.Cut(s, "<->")
	if !ok {
		return 0, nil, fmt.Errorf("bad pipe line %q", s)
	}
	id, err = strconv.Atoi(strings.TrimSpace(lhs))
	if err != nil {
		return 0, nil, fmt.Errorf("bad program ID in %q", s)
	}
	for _, field := range strings.Split(rhs, ",") {
		p, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return 0, nil, fmt.Errorf("bad pipe in %q", s)
		}
		pipes = append(pipes, p)
	}
	return id, pipes, nil
}

// unionFind is a disjoint-set forest over program IDs with union by size
// and path halving.
type unionFind struct {
	parent map[int]int
	size   map[int]int
	n      int // number of sets
}

func newUnionFind() *unionFind {
	return &unionFind{
		parent: make(map[int]int),
		size:   make(map[int]int),
	}
}

func (u *unionFind) has(x int) bool {
	_, ok := u.parent[x]
	return ok
}

func (u *unionFind) add(x int) {
	if u.has(x) {
		return
	}
	u.parent[x] = x
	u.size[x] = 1
	u.n++
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(x, y int) {
	u.add(x)
	u.add(y)
	rx, ry := u.find(x), u.find(y)
	if rx == ry {
		return
	}
	if u.size[rx] < u.size[ry] {
		rx, ry = ry, rx
	}
	u.parent[ry] = rx
	u.size[rx] += u.size[ry]
	delete(u.size, ry)
	u.n--
}

func (u *unionFind) groupSize(x int) int {
	return u.size[u.find(x)]
}

func (u *unionFind) groups() int {
	return u.n
}
