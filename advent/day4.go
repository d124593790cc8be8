package main

import (
	"bufio"
	"bytes"
	"sort"
	"strings"
)

func init() {
	register("4", day4)
}

func day4(input []byte) (answer, error) {
	var numValid, numValidAnagram int
	scanner := bufio.NewScanner(bytes.NewReader(input))
	for scanner.Scan() {
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}
		if validPassphrase(words, identity) {
			numValid++
		}
		if validPassphrase(words, sortLetters) {
			numValidAnagram++
		}
	}
	if err := scanner.Err(); err != nil {
		return answer{}, err
	}
	return answer{numValid, numValidAnagram}, nil
}

// validPassphrase reports whether no two words have the same key.
func validPassphrase(words []string, key func(string) string) bool {
	seen := make(map[string]struct{})
	for _, word := range words {
		k := key(word)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
	}
	return true
}

func identity(s string) string { return s }

func sortLetters(s string) string {
	sorted := []rune(s)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return string(sorted)
}
