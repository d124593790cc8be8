package main

import "testing"

func TestCaptcha(t *testing.T) {
	for _, tt := range []struct {
		digits string
		half   bool
		want   int
	}{
		{"1122", false, 3},
		{"1111", false, 4},
		{"1234", false, 0},
		{"91212129", false, 9},
		{"1212", true, 6},
		{"1221", true, 0},
		{"123425", true, 4},
		{"123123", true, 12},
		{"12131415", true, 4},
	} {
		offset := 1
		if tt.half {
			offset = len(tt.digits) / 2
		}
		if got := captcha(tt.digits, offset); got != tt.want {
			t.Errorf("captcha(%q, %d): got %d; want %d", tt.digits, offset, got, tt.want)
		}
	}
}

func TestDay1(t *testing.T) {
	checkSolution(t, day1, "91212129\n", answer{9, 6})
	checkSolutionError(t, day1, "")
	checkSolutionError(t, day1, "12a4")
	checkSolutionError(t, day1, "123")
}
