package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
)

// readInput returns the full contents of the named file. If echo is
// non-nil the raw contents are also written there.
func readInput(path string, echo io.Writer) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	log.Printf("Read %s from %s", humanize.Bytes(uint64(len(b))), path)
	if echo != nil {
		fmt.Fprintf(echo, "Input text: '%s'\n", b)
	}
	return string(b), nil
}
