package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/vaughan0/go-ini"
)

type config struct {
	trim    bool
	echo    bool
	history string // readline history file; empty disables history
}

func defaultConfig() *config {
	return &config{trim: true, echo: true}
}

// loadConfig reads the [captcha] section of an INI file.
// An empty filename gives the defaults.
func loadConfig(filename string) (*config, error) {
	if filename == "" {
		return defaultConfig(), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	defer f.Close()
	cfg, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %w", filename, err)
	}
	return cfg, nil
}

func parseConfig(r io.Reader) (*config, error) {
	file, err := ini.Load(r)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range []struct {
		key string
		dst *bool
	}{
		{"trim", &cfg.trim},
		{"echo", &cfg.echo},
	} {
		v, ok := file.Get("captcha", opt.key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("bad value for %s: %q", opt.key, v)
		}
		*opt.dst = b
	}
	if v, ok := file.Get("captcha", "history"); ok {
		cfg.history = v
	}
	return cfg, nil
}
