package tower

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads one record per line from r. Blank lines are skipped.
func Parse(r io.Reader) ([]Record, error) {
	var recs []Record
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		s := scanner.Text()
		if strings.TrimSpace(s) == "" {
			continue
		}
		rec, err := ParseRecord(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// ParseRecord parses a line of the form
//
//	name (weight) -> child, child, ...
//
// where the arrow and child list are optional.
func ParseRecord(s string) (Record, error) {
	var rec Record
	self, children, hasChildren := strings.Cut(s, "->")
	selfParts := strings.Fields(self)
	if len(selfParts) != 2 {
		return rec, fmt.Errorf("bad self part %q", self)
	}
	rec.Name = selfParts[0]
	weightStr := selfParts[1]
	if len(weightStr) < 3 || weightStr[0] != '(' || weightStr[len(weightStr)-1] != ')' {
		return rec, fmt.Errorf("bad weight part %q", weightStr)
	}
	w, err := strconv.Atoi(weightStr[1 : len(weightStr)-1])
	if err != nil {
		return rec, fmt.Errorf("bad weight for %q: %s", rec.Name, err)
	}
	if w < 0 {
		return rec, fmt.Errorf("negative weight for %q", rec.Name)
	}
	rec.Weight = w

	if hasChildren {
		for _, name := range strings.Split(children, ",") {
			name = strings.TrimSpace(name)
			if name == "" || strings.ContainsAny(name, " \t") {
				return rec, fmt.Errorf("bad child list %q for %q", strings.TrimSpace(children), rec.Name)
			}
			rec.Children = append(rec.Children, name)
		}
	}
	return rec, nil
}
