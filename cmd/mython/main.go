package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mython-lang/mython/engine"
	"github.com/peterh/liner"
)

func main() {
	cfg, err := engine.LoadConfig(".mython.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "mython: loading .mython.yaml: %v\n", err)
		os.Exit(1)
	}
	interp := engine.New(engine.WithConfig(cfg))

	args := os.Args[1:]
	if len(args) > 0 {
		script := args[0]
		var runErr error
		if script == "-" {
			runErr = interp.RunReader(os.Stdin)
		} else {
			runErr = interp.RunFile(script)
		}
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "mython: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	if !isInteractive() {
		runBufferedSession(interp, bufio.NewReader(os.Stdin))
		return
	}
	runInteractiveREPL(interp, cfg)
}

// runBufferedSession reads the whole of r as a single program and runs it
// once. Unlike Gisp's expression-at-a-time REPL, this language's
// indentation blocks must be read as a whole before they mean anything,
// so there is no incremental form-by-form evaluation here.
func runBufferedSession(interp *engine.Interpreter, r io.Reader) {
	if err := interp.RunReader(r); err != nil {
		fmt.Fprintf(os.Stderr, "mython: %v\n", err)
		os.Exit(1)
	}
}

// runInteractiveREPL accumulates lines from a liner-backed prompt until a
// blank line terminates the program, then runs the accumulated buffer.
// A lexer/parser/runtime error is printed to stderr without ending the
// session.
func runInteractiveREPL(interp *engine.Interpreter, cfg engine.Config) {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	historyPath := cfg.HistoryFile
	if historyPath == "" {
		historyPath = defaultHistoryPath()
	}
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	var buffer strings.Builder
	for {
		prompt := "mython> "
		if buffer.Len() > 0 {
			prompt = "...     "
		}
		input, err := state.Prompt(prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				buffer.Reset()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}

		if strings.TrimSpace(input) == "" && buffer.Len() > 0 {
			src := buffer.String()
			buffer.Reset()
			state.AppendHistory(strings.TrimRight(src, "\n"))
			if err := interp.Run(src); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			continue
		}

		buffer.WriteString(input)
		buffer.WriteString("\n")
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".mython_history")
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
