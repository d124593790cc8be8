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
	register("13", day13)
}

func day13(input []byte) (answer, error) {
	fw, err := parseFirewall(input)
	if err != nil {
		return answer{}, err
	}
	dump("firewall", fw)
	delay, err := fw.safeDelay()
	if err != nil {
		return answer{}, err
	}
	return answer{fw.severity(), delay}, nil
}

type layer struct {
	depth int
	rng   int
}

// A layer's scanner is back at the top every 2*(rng-1) picoseconds.
func (l layer) period() int {
	return 2 * (l.rng - 1)
}

func (l layer) caught(delay int) bool {
	p := l.period()
	return p == 0 || (delay+l.depth)%p == 0
}

type firewall []layer

func parseFirewall(input []byte) (firewall, error) {
	var fw firewall
	scanner := bufio.NewScanner(bytes.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lhs, rhs, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("bad layer %q", line)
		}
		var l layer
		var err error
		if l.depth, err = strconv.Atoi(strings.TrimSpace(lhs)); err != nil || l.depth < 0 {
			return nil, fmt.Errorf("bad depth in %q", line)
		}
		if l.rng, err = strconv.Atoi(strings.TrimSpace(rhs)); err != nil || l.rng < 1 {
			return nil, fmt.Errorf("bad range in %q", line)
		}
		fw = append(fw, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return fw, nil
}

// severity is the cost of the trip when leaving right away.
func (fw firewall) severity() int {
	var sum int
	for _, l := range fw {
		if l.caught(0) {
			sum += l.depth * l.rng
		}
	}
	return sum
}

// maxPeriod bounds the search for a safe delay.
const maxPeriod = 1 << 40

var errNoSafeDelay = errors.New("no delay gets through the firewall")

// safeDelay finds the smallest delay for which no scanner catches the
// packet. The pattern repeats with the lcm of the scanner periods, so
// there's nothing to find past that.
func (fw firewall) safeDelay() (int, error) {
	cycle := 1
	for _, l := range fw {
		p := l.period()
		if p == 0 {
			return 0, errNoSafeDelay
		}
		cycle = lcm(cycle, p)
		if cycle > maxPeriod {
			return 0, fmt.Errorf("firewall period exceeds %d", maxPeriod)
		}
	}
delayLoop:
	for delay := 0; delay < cycle; delay++ {
		for _, l := range fw {
			if l.caught(delay) {
				continue delayLoop
			}
		}
		return delay, nil
	}
	return 0, errNoSafeDelay
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
