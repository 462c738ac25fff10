package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

func init() {
	register("repl", repl)
}

func repl(cfg *config, _ []string) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: cfg.history,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	return runREPL(l, l.Stdout())
}

type lineReader interface {
	Readline() (string, error)
}

func runREPL(lr lineReader, w io.Writer) error {
	for {
		line, err := lr.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return fmt.Errorf("readline error: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintln(w, evalLine(line))
	}
}

// evalLine reports both captcha answers for one line of digits.
func evalLine(line string) string {
	digits, err := parseDigits(line)
	if err != nil {
		return err.Error()
	}
	one := circularSum(digits, 1)
	offset, err := halfwayOffset(digits)
	if err != nil {
		return fmt.Sprintf("one: %d; two: %s", one, err)
	}
	return fmt.Sprintf("one: %d; two: %d", one, circularSum(digits, offset))
}
