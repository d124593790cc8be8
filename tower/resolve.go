package tower

import (
	"fmt"
	"strings"
)

// UnbalancedError reports the one program whose weight keeps its parent
// from balancing. Want is the weight it would need to have; it may be
// negative if the input is inconsistent.
type UnbalancedError struct {
	Program string
	Weight  int
	Want    int
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("tower: program %q weighs %d; it should weigh %d", e.Program, e.Weight, e.Want)
}

// AmbiguousError means the children of Parent disagree but there is no
// single odd one out, so there's no telling which weight is wrong. The
// common case is a program holding exactly two unequal branches.
type AmbiguousError struct {
	Parent   string
	Children []string
	Totals   []int
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tower: cannot tell which branch of %q is unbalanced:", e.Parent)
	for i, name := range e.Children {
		fmt.Fprintf(&b, " %s=%d", name, e.Totals[i])
	}
	return b.String()
}

// Resolve returns the total weight of the branch rooted at name: the
// program's own weight plus that of everything it holds.
//
// If some program in the branch is unbalanced, Resolve instead returns an
// *UnbalancedError naming the child with the wrong weight, or an
// *AmbiguousError if no child can be singled out. Deeper problems are
// reported ahead of shallower ones, and among siblings the first in input
// order wins.
func (t *Tree) Resolve(name string) (int, error) {
	if _, ok := t.weights[name]; !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownProgram, name)
	}
	return t.resolve(name)
}

func (t *Tree) resolve(name string) (int, error) {
	children := t.children[name]
	totals := make([]int, len(children))
	sum := 0
	for i, child := range children {
		w, err := t.resolve(child)
		if err != nil {
			return 0, err
		}
		totals[i] = w
		sum += w
	}
	odd, want, ok := oddOneOut(totals)
	if !ok {
		return 0, &AmbiguousError{
			Parent:   name,
			Children: append([]string{}, children...),
			Totals:   totals,
		}
	}
	if odd >= 0 {
		child := children[odd]
		w := t.weights[child]
		return 0, &UnbalancedError{
			Program: child,
			Weight:  w,
			Want:    w + want - totals[odd],
		}
	}
	return t.weights[name] + sum, nil
}

// oddOneOut inspects sibling branch totals. If they all agree it returns
// (-1, 0, true). If exactly one differs from all the others (which agree),
// it returns that index and the total the others share. Any other pattern
// is ambiguous and ok is false.
func oddOneOut(totals []int) (i, want int, ok bool) {
	if len(totals) < 2 {
		return -1, 0, true
	}
	counts := make(map[int]int)
	for _, w := range totals {
		counts[w]++
	}
	switch len(counts) {
	case 1:
		return -1, 0, true
	case 2:
	default:
		return -1, 0, false
	}
	var single, common int
	var haveSingle, haveCommon bool
	for w, n := range counts {
		if n == 1 && !haveSingle {
			single, haveSingle = w, true
		} else {
			common, haveCommon = w, true
		}
	}
	if !haveSingle || !haveCommon || counts[common] < 2 {
		return -1, 0, false
	}
	for i, w := range totals {
		if w == single {
			return i, common, true
		}
	}
	panic("unreachable")
}
