package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestReadInput(t *testing.T) {
	var echo bytes.Buffer
	got, err := readInput("testdata/day1.txt", &echo)
	if err != nil {
		t.Fatal(err)
	}
	if want := "91212129\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if want := "Input text: '91212129\n'\n"; echo.String() != want {
		t.Errorf("echo: got %q; want %q", echo.String(), want)
	}
}

func TestReadInputNoEcho(t *testing.T) {
	if _, err := readInput("testdata/day1.txt", nil); err != nil {
		t.Fatal(err)
	}
}

func TestReadInputNotFound(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "missing.txt"), nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got err %v; want fs.ErrNotExist", err)
	}
}

func TestReadInputEmpty(t *testing.T) {
	name := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(name, nil, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := readInput(name, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("got %q; want empty", got)
	}
}

func TestReadInputDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := readInput(dir, nil)
	if err == nil {
		t.Fatal("expected error reading a directory")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v; want an error other than fs.ErrNotExist", err)
	}
	var perr *fs.PathError
	if !errors.As(err, &perr) {
		t.Errorf("got %v; want wrapped *fs.PathError", err)
	}
}
