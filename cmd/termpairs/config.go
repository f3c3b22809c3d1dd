package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// jobConfig holds the settings shared by the template and generate
// subcommands. Every field can come from a flag or from a YAML job
// file; flags given explicitly on the command line win.
type jobConfig struct {
	Lexicon  string `yaml:"lexicon"`
	Glossary string `yaml:"glossary"`
	Terms    string `yaml:"terms"`
	Count    int    `yaml:"count"`
	MaxLines int    `yaml:"max_lines"`
	Seed     int64  `yaml:"seed"`
}

// loadConfig reads a YAML job file. Unknown keys are rejected so a
// typo'd setting fails loudly instead of being silently ignored.
func loadConfig(path string) (jobConfig, error) {
	var cfg jobConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills in settings from a job file for every flag the
// user did not set explicitly.
func (c *jobConfig) applyDefaults(file jobConfig, cmd *cobra.Command) {
	changed := func(name string) bool {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			return true
		}
		if f := cmd.InheritedFlags().Lookup(name); f != nil && f.Changed {
			return true
		}
		return false
	}
	if !changed("lexicon") && file.Lexicon != "" {
		c.Lexicon = file.Lexicon
	}
	if !changed("glossary") && file.Glossary != "" {
		c.Glossary = file.Glossary
	}
	if !changed("terms") && file.Terms != "" {
		c.Terms = file.Terms
	}
	if !changed("count") && file.Count > 0 {
		c.Count = file.Count
	}
	if !changed("max-lines") && file.MaxLines > 0 {
		c.MaxLines = file.MaxLines
	}
	if !changed("seed") && file.Seed != 0 {
		c.Seed = file.Seed
	}
}
