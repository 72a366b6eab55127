package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// config holds the tunables shared by the subcommands. Fields left out
// of a config file keep their defaults.
type config struct {
	Iterations  int      `yaml:"iterations"`
	Seed        *uint64  `yaml:"seed"`
	Probes      []string `yaml:"probes"`
	EnglishRank string   `yaml:"english_rank"`
	Top         int      `yaml:"top"`
	Parallel    int      `yaml:"parallel"`
}

func defaultConfig() config {
	return config{
		Iterations:  defaultIterations,
		Probes:      append([]string(nil), defaultProbes...),
		EnglishRank: englishRank,
		Top:         nrLetters,
		Parallel:    runtime.NumCPU() * 2,
	}
}

// loadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (config, error) {
	cfg := defaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrInvalidIterations)
	}
	if err := validRank(c.EnglishRank); err != nil {
		return err
	}
	if _, err := newWordList(c.Probes); err != nil {
		return err
	}
	if c.Parallel < 1 {
		return fmt.Errorf("%w: parallel must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// wordList builds the scorer for c's probes. c must be valid.
func (c config) wordList() *wordList {
	return mustWordList(c.Probes)
}
