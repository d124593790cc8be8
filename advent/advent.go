package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/felixge/fgprof"
	"github.com/kr/pretty"
)

var debug bool

func main() {
	log.SetFlags(0)
	configFile := flag.String("config", defaultConfigFile(), "INI config `file`")
	interactive := flag.Bool("i", false, "Run an interactive prompt")
	profile := flag.String("fgprof", "", "Write a wall-clock profile to `file`")
	flag.BoolVar(&debug, "debug", false, "Pretty-print parsed inputs to stderr")
	flag.Usage = usage
	flag.Parse()

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	cfg, err := loadConfig(*configFile, explicit)
	if err != nil {
		log.Fatal(err)
	}

	if !*interactive && flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	var stopProfile func() error
	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		stopProfile = fgprof.Start(f, fgprof.FormatPprof)
	}

	if *interactive {
		err = repl(cfg)
	} else {
		err = dispatch(cfg, flag.Args(), os.Stdout)
	}
	if stopProfile != nil {
		if err := stopProfile(); err != nil {
			log.Println("Error writing profile:", err)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s [flags] <solution> [input-file]
       %s [flags] all
       %s [flags] import <solution> <input-file>
       %s -i

With no input file, the input is read from the configured inputs dir
or else from stdin.

Flags:
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "\nwhere solution is one of:")
	printSolutions(os.Stderr)
}

func printSolutions(w io.Writer) {
	for _, name := range sortedNames() {
		fmt.Fprintln(w, name)
	}
}

// dispatch runs a single command line (minus flags), writing answers to w.
func dispatch(cfg *config, args []string, w io.Writer) error {
	if len(args) == 0 {
		return errors.New("no solution given")
	}
	switch args[0] {
	case "all":
		if len(args) != 1 {
			return errors.New("usage: all")
		}
		return runAll(cfg, w)
	case "import":
		if len(args) != 3 {
			return errors.New("usage: import <solution> <input-file>")
		}
		return importInput(cfg, args[1], args[2])
	}

	name := args[0]
	fn, ok := solutions[name]
	if !ok {
		return fmt.Errorf("unknown solution %q", name)
	}
	var file string
	switch len(args) {
	case 1:
	case 2:
		file = args[1]
	default:
		return fmt.Errorf("too many arguments for solution %s", name)
	}
	input, err := readInput(cfg, name, file)
	if err != nil {
		return err
	}
	ans, err := fn(input)
	if err != nil {
		return fmt.Errorf("solution %s: %w", name, err)
	}
	ans.print(w)
	return nil
}

// A solution computes both answers for one day's puzzle input.
type solution func(input []byte) (answer, error)

type answer struct {
	part1 any
	part2 any
}

func (a answer) print(w io.Writer) {
	fmt.Fprintln(w, a.part1)
	fmt.Fprintln(w, a.part2)
}

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	splitName(name) // panics on a bad name
	solutions[name] = fn
}

func sortedNames() []string {
	names := make([]string, 0, len(solutions))
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

// dump pretty-prints v to stderr in -debug mode.
func dump(label string, v any) {
	if !debug {
		return
	}
	pretty.Fprintf(os.Stderr, "%s: %# v\n", label, v)
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
