package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func init() {
	register("2", day2)
}

func day2(input []byte) (answer, error) {
	mat, err := parseMatrix(bytes.NewReader(input))
	if err != nil {
		return answer{}, err
	}
	dump("matrix", mat)
	sum, err := divisibleSum(mat)
	if err != nil {
		return answer{}, err
	}
	return answer{checksum(mat), sum}, nil
}

func checksum(mat [][]int) int {
	var checksum int
	for _, row := range mat {
		min, max := row[0], row[0]
		for _, n := range row {
			if n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		checksum += max - min
	}
	return checksum
}

func divisibleSum(mat [][]int) (int, error) {
	var sum int
rowLoop:
	for r, row := range mat {
		for i := 0; i < len(row); i++ {
			for j := i + 1; j < len(row); j++ {
				n0, n1 := row[i], row[j]
				if n0 > n1 {
					n0, n1 = n1, n0
				}
				if n0 != 0 && n1%n0 == 0 {
					sum += n1 / n0
					continue rowLoop
				}
			}
		}
		return 0, fmt.Errorf("row %d has no evenly divisible pair", r+1)
	}
	return sum, nil
}

// parseMatrix reads whitespace-separated integers, one row per line.
// Blank lines are skipped.
func parseMatrix(r io.Reader) ([][]int, error) {
	var mat [][]int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, field := range fields {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, err
			}
			row[i] = n
		}
		mat = append(mat, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(mat) == 0 {
		return nil, errors.New("empty spreadsheet")
	}
	return mat, nil
}
