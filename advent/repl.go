package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

func repl(cfg *config) error {
	var history string
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".advent2017_history")
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "advent> ",
		HistoryFile: history,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "quit", "exit":
			return nil
		case "help", "?":
			fmt.Fprintln(l.Stdout(), "commands: <solution> [input-file] | all | import <solution> <file> | quit")
			fmt.Fprintln(l.Stdout(), "solutions:", strings.Join(sortedNames(), " "))
			continue
		}
		if err := dispatch(cfg, args, l.Stdout()); err != nil {
			fmt.Fprintln(l.Stderr(), err)
		}
	}
}
