package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mython-lang/mython/ast"
	"github.com/mython-lang/mython/parser"
	"github.com/mython-lang/mython/runtime"
)

// Interpreter bundles the module-level scope and the output sink a
// program's print statements write to. A single Interpreter can run
// multiple programs in sequence against the same global scope, so variable
// bindings from one run stay visible to the next. Class names are resolved
// when each program is parsed, so a program cannot instantiate a class
// defined by an earlier run.
type Interpreter struct {
	global *runtime.Scope
	output io.Writer
	trace  io.Writer
	config Config
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithOutput redirects the interpreter's print sink. The default is
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) { i.output = w }
}

// WithConfig attaches ambient tracing/REPL configuration.
func WithConfig(cfg Config) Option {
	return func(i *Interpreter) { i.config = cfg }
}

// WithTraceSink redirects where TraceTokens/TraceAST dumps are written.
// The default is os.Stderr.
func WithTraceSink(w io.Writer) Option {
	return func(i *Interpreter) { i.trace = w }
}

// New builds an Interpreter with a fresh global scope.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		global: runtime.NewScope(),
		output: os.Stdout,
		trace:  os.Stderr,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run lexes, parses, and executes src against the interpreter's global
// scope.
func (i *Interpreter) Run(src string) error {
	return i.RunReader(bytes.NewReader([]byte(src)))
}

// RunFile reads path and runs it.
func (i *Interpreter) RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return i.RunReader(f)
}

// RunReader reads a complete program from r and executes it.
func (i *Interpreter) RunReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	if i.config.TraceTokens {
		if err := dumpTokens(i.trace, data); err != nil {
			return err
		}
	}

	program, err := parser.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}

	if i.config.TraceAST {
		dumpAST(i.trace, program, 0)
	}

	ast.SetOutput(i.output)
	_, err = program.Execute(i.global)
	if err != nil {
		var ret *runtime.ReturnSignal
		if errors.As(err, &ret) {
			return fmt.Errorf("runtime error: return outside of a method: %v", ret.Value)
		}
		return err
	}
	return nil
}

// dumpTokens writes a one-token-per-line trace of the lexical stream,
// used only for diagnostics (Config.TraceTokens).
func dumpTokens(w io.Writer, src []byte) error {
	return parser.DumpTokens(w, bytes.NewReader(src))
}

// dumpAST writes a rough indented outline of the parsed tree, used only
// for diagnostics (Config.TraceAST).
func dumpAST(w io.Writer, node ast.Node, depth int) {
	fmt.Fprintf(w, "%*s%T\n", depth*2, "", node)
	for _, child := range astChildren(node) {
		dumpAST(w, child, depth+1)
	}
}

// astChildren enumerates the direct child nodes of n, for the rough
// trace outline only; it is not exhaustive over every field, just every
// sub-statement/sub-expression worth showing.
func astChildren(n ast.Node) []ast.Node {
	switch v := n.(type) {
	case *ast.Compound:
		return v.Statements
	case *ast.IfElse:
		children := []ast.Node{v.Cond, v.Then}
		if v.Else != nil {
			children = append(children, v.Else)
		}
		return children
	case *ast.Print:
		return v.Args
	case *ast.Return:
		return []ast.Node{v.Expr}
	case *ast.Assignment:
		return []ast.Node{v.Rhs}
	case *ast.FieldAssignment:
		return []ast.Node{v.Object, v.Rhs}
	case *ast.Add:
		return []ast.Node{v.Lhs, v.Rhs}
	case *ast.Sub:
		return []ast.Node{v.Lhs, v.Rhs}
	case *ast.Mult:
		return []ast.Node{v.Lhs, v.Rhs}
	case *ast.Div:
		return []ast.Node{v.Lhs, v.Rhs}
	case *ast.Or:
		return []ast.Node{v.Lhs, v.Rhs}
	case *ast.And:
		return []ast.Node{v.Lhs, v.Rhs}
	case *ast.Not:
		return []ast.Node{v.Arg}
	case *ast.Comparison:
		return []ast.Node{v.Lhs, v.Rhs}
	case *ast.MethodCall:
		children := []ast.Node{v.Object}
		return append(children, v.Args...)
	case *ast.NewInstance:
		return v.Args
	case *ast.Stringify:
		return []ast.Node{v.Arg}
	default:
		return nil
	}
}
