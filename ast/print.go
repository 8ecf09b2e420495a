package ast

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/mython-lang/mython/runtime"
)

var (
	outputMu sync.Mutex
	output   io.Writer = os.Stdout
)

// SetOutput redirects the process-wide print sink. The default is
// os.Stdout; tests redirect it to a buffer to capture output.
func SetOutput(w io.Writer) {
	outputMu.Lock()
	defer outputMu.Unlock()
	output = w
}

func currentOutput() io.Writer {
	outputMu.Lock()
	defer outputMu.Unlock()
	return output
}

// Print evaluates each argument left to right, renders it through the
// value's print contract separated by single spaces, and terminates with a
// newline. A None argument prints as the literal "None".
type Print struct {
	Args []Node
}

func (p *Print) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	w := currentOutput()
	for i, arg := range p.Args {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return runtime.None, err
			}
		}
		v, err := arg.Execute(scope)
		if err != nil {
			return runtime.None, err
		}
		if err := runtime.Print(w, v); err != nil {
			return runtime.None, err
		}
	}
	_, err := io.WriteString(w, "\n")
	return runtime.None, err
}

// Stringify renders its argument's print representation into a String
// value.
type Stringify struct {
	Arg Node
}

func (s *Stringify) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	v, err := s.Arg.Execute(scope)
	if err != nil {
		return runtime.None, err
	}
	var buf bytes.Buffer
	if err := runtime.Print(&buf, v); err != nil {
		return runtime.None, err
	}
	return runtime.StringHandle(buf.String()), nil
}
