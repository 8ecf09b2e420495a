// Package engine bundles the lexer/parser/runtime pipeline behind a small
// embeddable interface, plus the ambient configuration and tracing knobs
// around it.
package engine

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds ambient, non-semantic interpreter knobs. None of these
// fields affect program evaluation; they only control diagnostics and
// REPL convenience.
type Config struct {
	TraceTokens bool   `yaml:"trace_tokens"`
	TraceAST    bool   `yaml:"trace_ast"`
	HistoryFile string `yaml:"history_file"`
}

// LoadConfig reads and decodes a YAML config file at path. A missing file
// yields the zero-value Config and no error, since configuration is
// entirely optional.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
