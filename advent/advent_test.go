package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/lithammer/dedent"
	ini "github.com/vaughan0/go-ini"
)

func checkSolution(t *testing.T, fn solution, input string, want answer) {
	t.Helper()
	got, err := fn([]byte(dedent.Dedent(input)))
	if err != nil {
		t.Fatalf("error for input %q: %s", input, err)
	}
	if got != want {
		t.Errorf("input %q: got %v; want %v", input, got, want)
	}
}

func checkSolutionError(t *testing.T, fn solution, input string) {
	t.Helper()
	if got, err := fn([]byte(dedent.Dedent(input))); err == nil {
		t.Errorf("input %q: got %v; want error", input, got)
	}
}

func checkDeepEqual(t *testing.T, got, want any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got != want:\n%s", strings.Join(pretty.Diff(got, want), "\n"))
	}
}

func TestRegistered(t *testing.T) {
	want := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13"}
	checkDeepEqual(t, sortedNames(), want)
}

func TestNameLess(t *testing.T) {
	for _, tt := range []struct {
		a, b string
		want bool
	}{
		{"1", "2", true},
		{"2", "10", true},
		{"10", "2", false},
		{"3a", "3b", true},
		{"3b", "3a", false},
		{"7", "7", false},
	} {
		if got := nameLess(tt.a, tt.b); got != tt.want {
			t.Errorf("nameLess(%q, %q): got %t; want %t", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestInputPath(t *testing.T) {
	for _, tt := range []struct {
		name string
		want string
	}{
		{"7", "/in/day07.txt"},
		{"13", "/in/day13.txt"},
		{"3b", "/in/day03b.txt"},
	} {
		if got := inputPath("/in", tt.name); got != tt.want {
			t.Errorf("inputPath(%q): got %q; want %q", tt.name, got, tt.want)
		}
	}
}

func TestParseConfig(t *testing.T) {
	f, err := ini.Load(strings.NewReader(dedent.Dedent(`
		[inputs]
		dir = /tmp/aoc

		[run]
		concurrency = 3
	`)))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := parseConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	checkDeepEqual(t, cfg, &config{inputDir: "/tmp/aoc", concurrency: 3})
}

func TestParseConfigBadConcurrency(t *testing.T) {
	for _, s := range []string{"0", "-2", "many"} {
		f, err := ini.Load(strings.NewReader("[run]\nconcurrency = " + s + "\n"))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := parseConfig(f); err == nil {
			t.Errorf("concurrency = %s: got nil error", s)
		}
	}
}

func TestLoadConfigMissing(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nope.ini")
	cfg, err := loadConfig(name, false)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.inputDir != "" || cfg.concurrency < 1 {
		t.Errorf("got %+v; want defaults", cfg)
	}
	if _, err := loadConfig(name, true); err == nil {
		t.Error("explicit missing config: got nil error")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip(err)
	}
	got, err := expandHome("~/aoc")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "aoc"); got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	got, err = expandHome("/abs/aoc")
	if err != nil {
		t.Fatal(err)
	}
	if want := "/abs/aoc"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func writeInput(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(inputPath(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDispatch(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "1", "1122\n")
	cfg := &config{inputDir: dir, concurrency: 1}

	var buf bytes.Buffer
	if err := dispatch(cfg, []string{"1"}, &buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "3\n0\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}

	file := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(file, []byte("1212"), 0o644); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := dispatch(cfg, []string{"1", file}, &buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "0\n6\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestDispatchErrors(t *testing.T) {
	cfg := &config{inputDir: t.TempDir(), concurrency: 1}
	for _, args := range [][]string{
		nil,
		{"99"},
		{"1", "a", "b"},
		{"all", "extra"},
		{"import", "1"},
		{"1", filepath.Join(cfg.inputDir, "missing.txt")},
	} {
		if err := dispatch(cfg, args, new(bytes.Buffer)); err == nil {
			t.Errorf("dispatch(%q): got nil error", args)
		}
	}
}

func TestRunAll(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "1", "1122")
	writeInput(t, dir, "11", "ne,ne,s,s")
	cfg := &config{inputDir: dir, concurrency: 3}

	var buf bytes.Buffer
	if err := runAll(cfg, &buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1+len(solutions) {
		t.Fatalf("got %d lines of output; want %d:\n%s", len(lines), 1+len(solutions), buf.String())
	}
	for _, tt := range []struct {
		line   int
		fields []string
	}{
		{1, []string{"1", "3", "0", "4", "B"}},
		{2, []string{"2", "-", "-", "(none)"}},
		{11, []string{"11", "2", "2", "9", "B"}},
	} {
		fields := strings.Fields(lines[tt.line])
		if len(fields) < len(tt.fields) {
			t.Errorf("line %d: got %q; want prefix %q", tt.line, fields, tt.fields)
			continue
		}
		checkDeepEqual(t, fields[:len(tt.fields)], tt.fields)
	}
}

func TestRunAllFailure(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "3", "not a number")
	cfg := &config{inputDir: dir, concurrency: 2}
	var buf bytes.Buffer
	if err := runAll(cfg, &buf); err == nil {
		t.Fatal("got nil error")
	}
	if !strings.Contains(buf.String(), "error:") {
		t.Errorf("report doesn't show the error:\n%s", buf.String())
	}
}

func TestRunAllNoDir(t *testing.T) {
	if err := runAll(&config{concurrency: 1}, new(bytes.Buffer)); err == nil {
		t.Fatal("got nil error")
	}
}

func TestImport(t *testing.T) {
	src := filepath.Join(t.TempDir(), "download.txt")
	if err := os.WriteFile(src, []byte("0 2 7 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(t.TempDir(), "inputs")
	cfg := &config{inputDir: dir, concurrency: 1}
	if err := importInput(cfg, "6", src); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "day06.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "0 2 7 0\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}

	if err := importInput(cfg, "42", src); err == nil {
		t.Error("import of unknown solution: got nil error")
	}
	if err := importInput(&config{concurrency: 1}, "6", src); err == nil {
		t.Error("import with no inputs dir: got nil error")
	}
}
