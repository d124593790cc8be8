package main

import (
	"strings"
	"testing"
)

func TestValidPassphrase(t *testing.T) {
	for _, tt := range []struct {
		s       string
		anagram bool
		want    bool
	}{
		{"aa bb cc dd ee", false, true},
		{"aa bb cc dd aa", false, false},
		{"aa bb cc dd aaa", false, true},
		{"abcde fghij", true, true},
		{"abcde xyz ecdab", true, false},
		{"a ab abc abd abf abj", true, true},
		{"iiii oiii ooii oooi oooo", true, true},
		{"oiii ioii iioi iiio", true, false},
	} {
		key := identity
		if tt.anagram {
			key = sortLetters
		}
		if got := validPassphrase(strings.Fields(tt.s), key); got != tt.want {
			t.Errorf("validPassphrase(%q, anagram=%t): got %t; want %t", tt.s, tt.anagram, got, tt.want)
		}
	}
}

func TestDay4(t *testing.T) {
	checkSolution(t, day4, `
		aa bb cc dd ee
		aa bb cc dd aa
		abcde xyz ecdab
		oiii ioii iioi iiio

		a ab abc abd abf abj
	`, answer{4, 2})
}
