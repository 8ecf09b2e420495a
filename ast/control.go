package ast

import "github.com/mython-lang/mython/runtime"

// Compound executes each statement in order and returns None.
type Compound struct {
	Statements []Node
}

func (c *Compound) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	for _, stmt := range c.Statements {
		if _, err := stmt.Execute(scope); err != nil {
			return runtime.None, err
		}
	}
	return runtime.None, nil
}

// Return evaluates Expr and propagates it as a non-local exit, caught only
// by runtime.ClassInstance.Call.
type Return struct {
	Expr Node
}

func (r *Return) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	v, err := r.Expr.Execute(scope)
	if err != nil {
		return runtime.None, err
	}
	return runtime.None, runtime.NewReturnSignal(v)
}

// ClassDefinition binds Class's name to a handle carrying the class value
// in the current scope.
type ClassDefinition struct {
	Class *runtime.Class
}

func (c *ClassDefinition) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	scope.Set(c.Class.Name, runtime.Own(c.Class))
	return runtime.None, nil
}

// IfElse executes Then when Cond is truthy, otherwise Else if present.
type IfElse struct {
	Cond Node
	Then Node
	Else Node // nil when no else clause
}

func (i *IfElse) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	cond, err := i.Cond.Execute(scope)
	if err != nil {
		return runtime.None, err
	}
	if runtime.IsTrue(cond) {
		if _, err := i.Then.Execute(scope); err != nil {
			return runtime.None, err
		}
	} else if i.Else != nil {
		if _, err := i.Else.Execute(scope); err != nil {
			return runtime.None, err
		}
	}
	return runtime.None, nil
}
