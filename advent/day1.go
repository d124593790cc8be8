package main

import (
	"errors"
	"fmt"
	"strings"
)

func init() {
	register("1", day1)
}

func day1(input []byte) (answer, error) {
	digits := strings.TrimSpace(string(input))
	if digits == "" {
		return answer{}, errors.New("empty input")
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return answer{}, fmt.Errorf("input contained non-digit %q", c)
		}
	}
	if len(digits)%2 != 0 {
		return answer{}, errors.New("need even number of digits")
	}
	return answer{captcha(digits, 1), captcha(digits, len(digits)/2)}, nil
}

// captcha sums the digits that match the digit offset places further
// along the circular list.
func captcha(digits string, offset int) int {
	var sum int
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c == digits[(i+offset)%len(digits)] {
			sum += int(c - '0')
		}
	}
	return sum
}
