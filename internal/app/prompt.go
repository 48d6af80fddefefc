package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter wraps interactive line input. EOF propagates as io.EOF so the
// session loop can exit cleanly on Ctrl-D.
type Prompter struct {
	sc *bufio.Scanner
}

func NewPrompter(r io.Reader) *Prompter {
	return &Prompter{sc: bufio.NewScanner(r)}
}

// Line prints the prompt and reads one trimmed line.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Print(prompt)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.sc.Text()), nil
}

// Int asks for an integer, returning def on empty input.
func (p *Prompter) Int(label string, def int) (int, error) {
	for {
		s, err := p.Line(fmt.Sprintf("%s [デフォルト: %d]: ", label, def))
		if err != nil {
			return 0, err
		}
		if s == "" {
			return def, nil
		}
		if v, err := strconv.Atoi(s); err == nil {
			return v, nil
		}
		fmt.Println("  整数を入力してください。")
	}
}

// Float asks until a number is entered.
func (p *Prompter) Float(prompt string) (float64, error) {
	for {
		s, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v, nil
		}
		fmt.Println("  数値を入力してください (例: 3.30)")
	}
}

// SelectIndex asks for a 1-based choice out of n items and returns it
// 0-based.
func (p *Prompter) SelectIndex(n int, prompt string) (int, error) {
	for {
		s, err := p.Line(prompt + ": ")
		if err != nil {
			return 0, err
		}
		if idx, err := strconv.Atoi(s); err == nil && idx >= 1 && idx <= n {
			return idx - 1, nil
		}
		fmt.Printf("  1〜%d の番号を入力してください。\n", n)
	}
}
