package main

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("8", day8)
}

func day8(input []byte) (answer, error) {
	var insns []instruction
	scanner := bufio.NewScanner(bytes.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		insn, err := parseInstruction(line)
		if err != nil {
			return answer{}, err
		}
		insns = append(insns, insn)
	}
	if err := scanner.Err(); err != nil {
		return answer{}, err
	}
	dump("instructions", insns)
	c := newCPU()
	for _, insn := range insns {
		c.run(insn)
	}
	return answer{c.largest(), c.max}, nil
}

type condition struct {
	reg string
	op  string
	val int
}

type instruction struct {
	reg   string
	delta int
	cond  condition
}

func parseInstruction(s string) (instruction, error) {
	var insn instruction
	parts := strings.Fields(s)
	if len(parts) != 7 || parts[3] != "if" {
		return insn, fmt.Errorf("bad instruction %q", s)
	}
	insn.reg = parts[0]
	var err error
	insn.delta, err = strconv.Atoi(parts[2])
	if err != nil {
		return insn, fmt.Errorf("bad amount in instruction %q", s)
	}
	switch parts[1] {
	case "inc":
	case "dec":
		insn.delta = -insn.delta
	default:
		return insn, fmt.Errorf("bad operation %q in instruction %q", parts[1], s)
	}
	insn.cond.reg = parts[4]
	insn.cond.op = parts[5]
	switch insn.cond.op {
	case "==", "!=", "<", "<=", ">", ">=":
	default:
		return insn, fmt.Errorf("bad comparison %q in instruction %q", insn.cond.op, s)
	}
	insn.cond.val, err = strconv.Atoi(parts[6])
	if err != nil {
		return insn, fmt.Errorf("bad comparison value in instruction %q", s)
	}
	return insn, nil
}

// Registers start at 0, so max (the largest value ever held) does too.
type cpu struct {
	regs map[string]int
	max  int
}

func newCPU() *cpu {
	return &cpu{regs: make(map[string]int)}
}

func (c *cpu) run(insn instruction) {
	cv, ok := c.regs[insn.cond.reg]
	if !ok {
		c.regs[insn.cond.reg] = 0
	}
	var cond bool
	switch insn.cond.op {
	case "==":
		cond = cv == insn.cond.val
	case "!=":
		cond = cv != insn.cond.val
	case "<":
		cond = cv < insn.cond.val
	case "<=":
		cond = cv <= insn.cond.val
	case ">":
		cond = cv > insn.cond.val
	case ">=":
		cond = cv >= insn.cond.val
	}
	if cond {
		v := c.regs[insn.reg] + insn.delta
		if v > c.max {
			c.max = v
		}
		c.regs[insn.reg] = v
	}
}

// largest returns the largest value in any register the program mentioned.
func (c *cpu) largest() int {
	var max int
	first := true
	for _, v := range c.regs {
		if first || v > max {
			max = v
			first = false
		}
	}
	return max
}
