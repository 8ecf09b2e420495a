package ast

import "github.com/mython-lang/mython/runtime"

// Assignment evaluates Rhs, binds the result to Name in the current scope
// (inserting or overwriting), and returns that value.
type Assignment struct {
	Name string
	Rhs  Node
}

func (a *Assignment) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	v, err := a.Rhs.Execute(scope)
	if err != nil {
		return runtime.None, err
	}
	scope.Set(a.Name, v)
	return v, nil
}

// FieldAssignment evaluates Object, requires it to resolve to a
// ClassInstance, then evaluates Rhs and stores it into that instance's
// field scope.
type FieldAssignment struct {
	Object *VariableValue
	Field  string
	Rhs    Node
}

func (f *FieldAssignment) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	objHandle, err := f.Object.Execute(scope)
	if err != nil {
		return runtime.None, err
	}
	inst, ok := runtime.TryAs[*runtime.ClassInstance](objHandle)
	if !ok {
		return runtime.None, newTypeError("cannot assign to the field %s of not an object", f.Field)
	}
	v, err := f.Rhs.Execute(scope)
	if err != nil {
		return runtime.None, err
	}
	inst.Fields().Set(f.Field, v)
	return v, nil
}
