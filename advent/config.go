package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	ini "github.com/vaughan0/go-ini"
)

type config struct {
	inputDir    string // may be empty
	concurrency int
}

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".advent2017.ini")
}

// loadConfig reads the INI file at name. Unless explicit is set, a missing
// file just means the defaults.
func loadConfig(name string, explicit bool) (*config, error) {
	if name == "" {
		return parseConfig(ini.File{})
	}
	f, err := ini.LoadFile(name)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return parseConfig(ini.File{})
		}
		return nil, fmt.Errorf("error loading config (%s): %s", name, err)
	}
	cfg, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("bad config (%s): %s", name, err)
	}
	return cfg, nil
}

func parseConfig(f ini.File) (*config, error) {
	cfg := &config{concurrency: runtime.NumCPU()}
	if dir, ok := f.Get("inputs", "dir"); ok && dir != "" {
		dir, err := expandHome(dir)
		if err != nil {
			return nil, err
		}
		cfg.inputDir = dir
	}
	if s, ok := f.Get("run", "concurrency"); ok {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("run.concurrency must be a positive integer; got %q", s)
		}
		cfg.concurrency = n
	}
	return cfg, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
