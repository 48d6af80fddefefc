// Package app drives the interactive calculation sessions.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ishi-private/arknights-power-calc/internal/config"
	"github.com/ishi-private/arknights-power-calc/internal/roster"
)

type Options struct {
	// DataDir overrides the configured data directory.
	DataDir string
}

// ExitError carries a desired process exit code through the error chain.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err == nil {
		return "exit"
	}
	return e.Err.Error()
}

func (e ExitError) Unwrap() error {
	return e.Err
}

// Run executes the calculator and returns the desired process exit code.
func Run() int {
	return RunWithOptions(Options{})
}

// RunWithOptions executes the calculator and returns the desired process exit code.
func RunWithOptions(opts Options) int {
	appRoot, err := FindRoot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := run(appRoot, opts); err != nil {
		var ee ExitError
		if errors.As(err, &ee) {
			if ee.Err != nil && ee.Code != 0 {
				fmt.Fprintln(os.Stderr, ee.Err)
			}
			return ee.Code
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func run(appRoot string, opts Options) error {
	cfg, err := config.Load(appRoot, opts.DataDir)
	if err != nil {
		return err
	}

	fmt.Println("============================================================")
	fmt.Println("  アークナイツ キャラ火力計算ツール")
	fmt.Println("============================================================")

	fmt.Println("\nキャラクターデータを読み込み中...")
	characters, err := roster.Load(cfg.CSVFile)
	if err != nil {
		return err
	}
	if len(characters) == 0 {
		return fmt.Errorf("no characters in %s", cfg.CSVFile)
	}
	fmt.Printf("  %d キャラクター読み込み完了\n", len(characters))

	p := NewPrompter(os.Stdin)
	for {
		if err := session(cfg, characters, p); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println("\n終了します。")
				return nil
			}
			return err
		}

		again, err := p.Line("\n別の計算をしますか？ (y/N): ")
		if err != nil {
			fmt.Println("\n終了します。")
			return nil
		}
		if again != "y" && again != "Y" {
			fmt.Println("終了します。")
			return nil
		}
	}
}
