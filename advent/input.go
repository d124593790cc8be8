package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// readInput finds the input for the named solution: the given file ("-"
// means stdin), else the file in the configured inputs dir, else stdin as
// long as it isn't a terminal.
func readInput(cfg *config, name, file string) ([]byte, error) {
	switch file {
	case "":
	case "-":
		return io.ReadAll(os.Stdin)
	default:
		return os.ReadFile(file)
	}
	if cfg.inputDir != "" {
		b, err := os.ReadFile(inputPath(cfg.inputDir, name))
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if isTerminal(os.Stdin.Fd()) {
		return nil, fmt.Errorf("no input for solution %s: give an input file, "+
			"set [inputs] dir in the config, or pipe the input to stdin", name)
	}
	return io.ReadAll(os.Stdin)
}

func inputPath(dir, name string) string {
	n, suffix := splitName(name)
	return filepath.Join(dir, fmt.Sprintf("day%02d%s.txt", n, suffix))
}
