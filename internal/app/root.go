package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ishi-private/arknights-power-calc/internal/config"
)

// FindRoot locates the app root by probing for arkpower.yaml upward from
// the working directory, so the tool can run from the repo root or any
// subdirectory.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := cwd
	for i := 0; i < 10; i++ {
		probe := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(probe); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("cannot find app root from %q (expected to find %s in this dir or any parent)", cwd, config.FileName)
}
