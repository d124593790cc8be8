// Package tower finds the bottom program of a tower of programs and the
// single weight that would balance it.
//
// The input is a list of records, one per program:
//
//	fwft (72) -> ktlj, cntj, xhth
//
// Every program holding up other programs has a name, a weight, and the
// names of the programs it holds. A Tree built from the records is
// immutable; Resolve may be called on it any number of times.
package tower

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrMalformed is wrapped by every Build error. The records do not
	// describe a single tree.
	ErrMalformed = errors.New("tower: malformed input")

	ErrUnknownProgram = errors.New("tower: unknown program")
)

// Record is a single program as it appears in the input.
type Record struct {
	Name     string
	Weight   int
	Children []string
}

// Tree is a tower of programs rooted at Root.
type Tree struct {
	Root string

	weights  map[string]int
	children map[string][]string
}

// Build constructs a Tree from recs. It fails with an error wrapping
// ErrMalformed unless the records form exactly one tree: every name is
// declared once, every child is declared, no program has two parents, and
// exactly one program (the root) has no parent.
func Build(recs []Record) (*Tree, error) {
	t := &Tree{
		weights:  make(map[string]int, len(recs)),
		children: make(map[string][]string, len(recs)),
	}
	for _, rec := range recs {
		if _, ok := t.weights[rec.Name]; ok {
			return nil, fmt.Errorf("%w: program %q declared twice", ErrMalformed, rec.Name)
		}
		t.weights[rec.Name] = rec.Weight
		t.children[rec.Name] = append([]string{}, rec.Children...)
	}

	parent := make(map[string]string)
	for _, rec := range recs {
		for _, child := range rec.Children {
			if _, ok := t.weights[child]; !ok {
				return nil, fmt.Errorf("%w: %q holds undeclared program %q", ErrMalformed, rec.Name, child)
			}
			if p, ok := parent[child]; ok {
				return nil, fmt.Errorf("%w: %q is held by both %q and %q", ErrMalformed, child, p, rec.Name)
			}
			parent[child] = rec.Name
		}
	}

	var noParents []string
	for _, rec := range recs {
		if _, ok := parent[rec.Name]; !ok {
			noParents = append(noParents, rec.Name)
		}
	}
	if len(noParents) != 1 {
		return nil, fmt.Errorf("%w: found %d programs with no parent%s",
			ErrMalformed, len(noParents), listNames(noParents))
	}
	t.Root = noParents[0]

	// With one parent per program, anything the root can't reach sits on
	// a cycle of its own.
	if n := t.reachable(); n != len(recs) {
		return nil, fmt.Errorf("%w: %d programs are not reachable from %q",
			ErrMalformed, len(recs)-n, t.Root)
	}
	return t, nil
}

func (t *Tree) reachable() int {
	n := 0
	stack := []string{t.Root}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		stack = append(stack, t.children[name]...)
	}
	return n
}

func listNames(names []string) string {
	if len(names) == 0 {
		return ""
	}
	sorted := append([]string{}, names...)
	sort.Strings(sorted)
	if len(sorted) > 5 {
		sorted = append(sorted[:5], "...")
	}
	return " (" + strings.Join(sorted, ", ") + ")"
}

// Weight returns the program's own weight.
func (t *Tree) Weight(name string) (int, bool) {
	w, ok := t.weights[name]
	return w, ok
}

// Children returns the names of the programs held by name, in input order.
// The returned slice must not be modified.
func (t *Tree) Children(name string) []string {
	return t.children[name]
}

// Len reports the number of programs in the tree.
func (t *Tree) Len() int {
	return len(t.weights)
}
