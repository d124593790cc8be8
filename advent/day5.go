package main

import (
	"bufio"
	"bytes"
	"errors"
	"strconv"
	"strings"
)

func init() {
	register("5", day5)
}

func day5(input []byte) (answer, error) {
	var insns []int
	scanner := bufio.NewScanner(bytes.NewReader(input))
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return answer{}, err
		}
		insns = append(insns, n)
	}
	if err := scanner.Err(); err != nil {
		return answer{}, err
	}
	if len(insns) == 0 {
		return answer{}, errors.New("no jump offsets")
	}
	return answer{countSteps(insns, incrementOffset), countSteps(insns, strangeOffset)}, nil
}

// countSteps runs a machine over a copy of insns and returns the number of
// steps taken to jump out of the list.
func countSteps(insns []int, update func(int) int) int {
	m := machine{insns: append([]int(nil), insns...), update: update}
	i := 1
	for m.step() {
		i++
	}
	return i
}

type machine struct {
	insns  []int
	pc     int
	update func(off int) int
}

func (m *machine) step() bool {
	off := m.insns[m.pc]
	next := m.pc + off
	if next < 0 || next >= len(m.insns) {
		return false
	}
	m.insns[m.pc] = m.update(off)
	m.pc = next
	return true
}

func incrementOffset(off int) int { return off + 1 }

func strangeOffset(off int) int {
	if off >= 3 {
		return off - 1
	}
	return off + 1
}
