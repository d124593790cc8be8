package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cespare/wait"
	"github.com/dustin/go-humanize"
)

type report struct {
	name    string
	size    int
	elapsed time.Duration
	ans     answer
	skipped bool // no input
	err     error
}

// runAll runs every registered solution that has an input in the inputs
// dir, cfg.concurrency at a time.
func runAll(cfg *config, w io.Writer) error {
	if cfg.inputDir == "" {
		return errors.New("all: no [inputs] dir configured")
	}
	names := sortedNames()
	reports := make([]report, len(names))

	work := make(chan int)
	var wg wait.Group
	for i := 0; i < cfg.concurrency; i++ {
		wg.Go(func(quit <-chan struct{}) error {
			for {
				select {
				case j, ok := <-work:
					if !ok {
						return nil
					}
					reports[j] = runOne(cfg.inputDir, names[j])
				case <-quit:
					return nil
				}
			}
		})
	}
	wg.Go(func(quit <-chan struct{}) error {
		for i := range names {
			select {
			case work <- i:
			case <-quit:
				return nil
			}
		}
		close(work)
		return nil
	})
	if err := wg.Wait(); err != nil {
		return err
	}
	return writeReports(w, reports)
}

func runOne(dir, name string) report {
	r := report{name: name}
	input, err := os.ReadFile(inputPath(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.skipped = true
		} else {
			r.err = err
		}
		return r
	}
	r.size = len(input)
	start := time.Now()
	r.ans, r.err = solutions[name](input)
	r.elapsed = time.Since(start)
	return r
}

func writeReports(w io.Writer, reports []report) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "day\tpart 1\tpart 2\tinput\ttime")
	var failed int
	for _, r := range reports {
		switch {
		case r.skipped:
			fmt.Fprintf(tw, "%s\t-\t-\t(none)\t\n", r.name)
		case r.err != nil:
			failed++
			fmt.Fprintf(tw, "%s\terror: %s\t\t%s\t\n", r.name, r.err, humanize.Bytes(uint64(r.size)))
		default:
			fmt.Fprintf(tw, "%s\t%v\t%v\t%s\t%s\n",
				r.name, r.ans.part1, r.ans.part2,
				humanize.Bytes(uint64(r.size)), roundDuration(r.elapsed))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d solutions failed", failed, len(reports))
	}
	return nil
}

func roundDuration(d time.Duration) time.Duration {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond)
	case d < time.Second:
		return d.Round(100 * time.Microsecond)
	default:
		return d.Round(10 * time.Millisecond)
	}
}
