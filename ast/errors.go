package ast

import "github.com/mython-lang/mython/runtime"

// newNameNotFoundError and newVariableNotFoundError both report the
// "Name" error kind; they build a *runtime.NameError directly so that
// errors.As with a *runtime.NameError target finds them, rather than keeping a
// second, ast-local name-error type alongside runtime's.
func newNameNotFoundError(name string) error {
	return runtime.NewNameError("name %s not found in the scope", name)
}

func newVariableNotFoundError(name string) error {
	return runtime.NewNameError("variable %s not found in closure", name)
}

// newNotAnObjectError and newTypeError both report the "Type" error kind
// through *runtime.TypeError, for the same reason.
func newNotAnObjectError(name string) error {
	return runtime.NewTypeError("%s is not an object, can't access its fields", name)
}

func newTypeError(format string, args ...interface{}) error {
	return runtime.NewTypeError(format, args...)
}

type constructionError struct{ msg string }

func (e *constructionError) Error() string { return e.msg }

func newConstructionError(msg string) error {
	return &constructionError{msg: msg}
}

// newArithmeticError reports the "Arithmetic" error kind through
// *runtime.ArithmeticError.
func newArithmeticError(format string, args ...interface{}) error {
	return runtime.NewArithmeticError(format, args...)
}
