package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

func init() {
	register("one", day1a)
	register("two", day1b)
	register("1a", day1a)
	register("1b", day1b)
}

var (
	errMissingArg = errors.New("need 1 arg: input file")
	errOddLength  = errors.New("need even number of digits")
)

// stdout receives the echoed input and the results.
var stdout io.Writer = os.Stdout

func day1a(cfg *config, args []string) error {
	digits, err := loadDigits(cfg, args)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "The result for part one is '%d'\n", circularSum(digits, 1))
	return nil
}

func day1b(cfg *config, args []string) error {
	digits, err := loadDigits(cfg, args)
	if err != nil {
		return err
	}
	offset, err := halfwayOffset(digits)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "The result for part two is '%d'\n", circularSum(digits, offset))
	return nil
}

func loadDigits(cfg *config, args []string) ([]int, error) {
	if len(args) != 1 {
		return nil, errMissingArg
	}
	var echo io.Writer
	if cfg.echo {
		echo = stdout
	}
	s, err := readInput(args[0], echo)
	if err != nil {
		return nil, err
	}
	if cfg.trim {
		s = strings.TrimSpace(s)
	}
	return parseDigits(s)
}

// A ParseError records the first non-digit character found in the input.
// Offset is in bytes.
type ParseError struct {
	Offset int
	Char   rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("input contained non-digit %q at offset %d", e.Char, e.Offset)
}

func parseDigits(s string) ([]int, error) {
	digits := make([]int, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r < '0' || r > '9' {
			return nil, &ParseError{Offset: i, Char: r}
		}
		digits = append(digits, int(r-'0'))
		i += size
	}
	return digits, nil
}

// circularSum sums every digit that equals the digit offset positions
// ahead of it, wrapping around the end of the list. An empty list sums to 0.
func circularSum(digits []int, offset int) int {
	n := len(digits)
	if n == 0 {
		return 0
	}
	offset %= n
	if offset < 0 {
		offset += n
	}
	var sum int
	for i, d := range digits {
		if d == digits[(i+offset)%n] {
			sum += d
		}
	}
	return sum
}

func halfwayOffset(digits []int) (int, error) {
	if len(digits)%2 != 0 {
		return 0, errOddLength
	}
	return len(digits) / 2, nil
}
