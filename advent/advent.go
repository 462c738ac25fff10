package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
)

var configFile = flag.String("config", "", "INI config file (optional)")

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	fn, ok := solutions[flag.Arg(0)]
	if !ok {
		log.Fatalf("unknown solution %q", flag.Arg(0))
	}
	if err := fn(cfg, flag.Args()[1:]); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Strings(names)
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "usage: %s [-config file] [solution] [args...]\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintln(w, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

type solution func(cfg *config, args []string) error

var solutions = make(map[string]solution)

func register(name string, fn solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}
