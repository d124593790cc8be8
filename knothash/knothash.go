// Package knothash implements the knot hash: a circular list of bytes is
// repeatedly twisted by reversing sublists, and the result is folded into
// 16 bytes.
package knothash

import (
	"encoding/hex"
	"fmt"
)

// Size is the length of the circular list used by Sum.
const Size = 256

var suffix = []int{17, 31, 73, 47, 23}

// Knot is a circular list of n elements, initially 0, 1, ..., n-1, along
// with the current position and skip size.
type Knot struct {
	list []int
	pos  int
	skip int
}

// New returns a Knot of n elements.
func New(n int) *Knot {
	k := &Knot{list: make([]int, n)}
	for i := range k.list {
		k.list[i] = i
	}
	return k
}

// Round runs one round of twists, one per length. A length longer than the
// list is an error.
func (k *Knot) Round(lengths []int) error {
	n := len(k.list)
	for _, length := range lengths {
		if length < 0 || length > n {
			return fmt.Errorf("knothash: invalid length %d for list of %d", length, n)
		}
		for i, j := k.pos, k.pos+length-1; i < j; i, j = i+1, j-1 {
			k.list[i%n], k.list[j%n] = k.list[j%n], k.list[i%n]
		}
		k.pos = (k.pos + length + k.skip) % n
		k.skip++
	}
	return nil
}

// List returns the current list. The returned slice must not be modified.
func (k *Knot) List() []int {
	return k.list
}

// Check returns the product of the first two elements of the list.
func (k *Knot) Check() int {
	return k.list[0] * k.list[1]
}

// Dense xors each block of 16 elements together.
func (k *Knot) Dense() []byte {
	dense := make([]byte, (len(k.list)+15)/16)
	for i, v := range k.list {
		dense[i/16] ^= byte(v)
	}
	return dense
}

// Sum returns the knot hash of b: the bytes of b followed by a fixed
// suffix are used as lengths for 64 rounds over a list of Size elements.
func Sum(b []byte) [16]byte {
	lengths := make([]int, 0, len(b)+len(suffix))
	for _, c := range b {
		lengths = append(lengths, int(c))
	}
	lengths = append(lengths, suffix...)
	k := New(Size)
	for i := 0; i < 64; i++ {
		if err := k.Round(lengths); err != nil {
			panic(err) // lengths are bytes, always < Size
		}
	}
	var sum [16]byte
	copy(sum[:], k.Dense())
	return sum
}

// String returns the knot hash of s as 32 hex digits.
func String(s string) string {
	sum := Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
