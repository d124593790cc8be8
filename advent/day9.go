package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

func init() {
	register("9", day9)
}

func day9(input []byte) (answer, error) {
	st, err := processStream(bytes.NewReader(input))
	if err != nil {
		return answer{}, err
	}
	return answer{st.score, st.garbage}, nil
}

type parseState int

const (
	stateOuter parseState = iota
	stateClosed
	stateGarbage
	stateEscaped
)

type streamStats struct {
	score   int // sum of every group's depth
	garbage int // non-cancelled characters inside garbage
}

// processStream scores a stream made of a single group, or of a single
// piece of garbage. Newlines outside of garbage are ignored.
func processStream(r io.Reader) (streamStats, error) {
	var st streamStats
	br := bufio.NewReader(r)
	state := stateOuter
	depth := 0
	started := false
	complete := false
	for i := 0; ; i++ {
		c, err := br.ReadByte()
		if err == io.EOF {
			if !complete {
				if !started {
					return st, errors.New("empty stream")
				}
				return st, errors.New("unexpected EOF")
			}
			return st, nil
		}
		if err != nil {
			return st, err
		}
		if c == '\n' && state != stateGarbage && state != stateEscaped {
			continue
		}
		if complete {
			return st, fmt.Errorf("unexpected %q at pos %d after end of stream", c, i)
		}
		started = true
		switch state {
		case stateOuter:
			switch c {
			case '{':
				depth++
			case '<':
				state = stateGarbage
			case '}':
				if depth == 0 {
					return st, fmt.Errorf("unexpected %q at pos %d", c, i)
				}
				st.score += depth
				depth--
				complete = depth == 0
				state = stateClosed
			default:
				return st, fmt.Errorf("unexpected %q at pos %d", c, i)
			}
		case stateClosed:
			switch c {
			case ',':
				if depth == 0 {
					return st, fmt.Errorf("unexpected %q at pos %d", c, i)
				}
				state = stateOuter
			case '}':
				if depth == 0 {
					return st, fmt.Errorf("unexpected %q at pos %d", c, i)
				}
				st.score += depth
				depth--
				complete = depth == 0
			default:
				return st, fmt.Errorf("unexpected %q at pos %d", c, i)
			}
		case stateGarbage:
			switch c {
			case '!':
				state = stateEscaped
			case '>':
				state = stateClosed
				complete = depth == 0
			default:
				st.garbage++
			}
		case stateEscaped:
			state = stateGarbage
		}
	}
}
