package ast

import "github.com/mython-lang/mython/runtime"

// Literal produces a fresh handle owning a compile-time constant value
// (Number, String, Bool, or None) every time it is executed.
type Literal struct {
	Value runtime.Handle
}

func (l *Literal) Execute(*runtime.Scope) (runtime.Handle, error) {
	return l.Value, nil
}

// VariableValue resolves a possibly-dotted name (obj.field.subfield) by
// walking every segment but the last through ClassInstance field scopes.
//
// RootScopeFallback selects between two lookup rules for the final
// segment of a multi-part name: when false (the default and the correct
// behavior), it is looked up in the field scope reached by walking the
// chain; when true, it is instead looked up back in the scope Execute was
// called with, reproducing a known quirk kept available for comparison.
type VariableValue struct {
	Names             []string
	RootScopeFallback bool
}

func (v *VariableValue) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	if len(v.Names) == 0 {
		return runtime.None, newConstructionError("VariableValue requires at least one name")
	}

	cur := scope
	for _, name := range v.Names[:len(v.Names)-1] {
		h, ok := cur.Get(name)
		if !ok {
			return runtime.None, newNameNotFoundError(name)
		}
		inst, ok := runtime.TryAs[*runtime.ClassInstance](h)
		if !ok {
			return runtime.None, newNotAnObjectError(name)
		}
		cur = inst.Fields()
	}

	last := v.Names[len(v.Names)-1]
	lookup := cur
	if v.RootScopeFallback && len(v.Names) > 1 {
		lookup = scope
	}
	h, ok := lookup.Get(last)
	if !ok {
		return runtime.None, newVariableNotFoundError(last)
	}
	return h, nil
}
