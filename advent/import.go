package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/cespare/cp"
)

// importInput copies src into the inputs dir under the name readInput
// looks for.
func importInput(cfg *config, name, src string) error {
	if _, ok := solutions[name]; !ok {
		return fmt.Errorf("unknown solution %q", name)
	}
	if cfg.inputDir == "" {
		return errors.New("import: no [inputs] dir configured")
	}
	if err := os.MkdirAll(cfg.inputDir, 0o755); err != nil {
		return err
	}
	dst := inputPath(cfg.inputDir, name)
	if err := cp.CopyFile(dst, src); err != nil {
		return err
	}
	log.Printf("Copied %s to %s", src, dst)
	return nil
}
