package ast

import "github.com/mython-lang/mython/runtime"

// Or evaluates both operands unconditionally — no short-circuit — applies
// truthiness to each, and returns a fresh Bool. This is deliberate, not an
// oversight: a method call on the right-hand side runs for its side
// effects even when the left-hand side already settles the result.
type Or struct {
	Lhs, Rhs Node
}

func (o *Or) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	l, r, err := evalPair(scope, o.Lhs, o.Rhs)
	if err != nil {
		return runtime.None, err
	}
	return runtime.BoolHandle(runtime.IsTrue(l) || runtime.IsTrue(r)), nil
}

// And evaluates both operands unconditionally — no short-circuit — and
// returns a fresh Bool.
type And struct {
	Lhs, Rhs Node
}

func (a *And) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	l, r, err := evalPair(scope, a.Lhs, a.Rhs)
	if err != nil {
		return runtime.None, err
	}
	return runtime.BoolHandle(runtime.IsTrue(l) && runtime.IsTrue(r)), nil
}

// Not returns the negation of its argument's truthiness.
type Not struct {
	Arg Node
}

func (n *Not) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	v, err := n.Arg.Execute(scope)
	if err != nil {
		return runtime.None, err
	}
	return runtime.BoolHandle(!runtime.IsTrue(v)), nil
}

// Comparator is a pluggable two-operand predicate, satisfied by
// runtime.Equal, runtime.Less, and their derived compositions.
type Comparator func(l, r runtime.Handle) (bool, error)

// Comparison applies Cmp to the evaluated operands and returns a fresh
// Bool.
type Comparison struct {
	Cmp      Comparator
	Lhs, Rhs Node
}

func (c *Comparison) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	l, r, err := evalPair(scope, c.Lhs, c.Rhs)
	if err != nil {
		return runtime.None, err
	}
	result, err := c.Cmp(l, r)
	if err != nil {
		return runtime.None, err
	}
	return runtime.BoolHandle(result), nil
}
