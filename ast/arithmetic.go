package ast

import "github.com/mython-lang/mython/runtime"

// Add accepts Number+Number, String+String (concatenation), or a left
// operand that is a ClassInstance defining __add__ of arity 1.
type Add struct {
	Lhs, Rhs Node
}

func (a *Add) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	l, r, err := evalPair(scope, a.Lhs, a.Rhs)
	if err != nil {
		return runtime.None, err
	}

	if ln, ok := runtime.TryAs[runtime.Number](l); ok {
		if rn, ok := runtime.TryAs[runtime.Number](r); ok {
			return runtime.NumberHandle(ln.Val + rn.Val), nil
		}
	}
	if ls, ok := runtime.TryAs[runtime.String](l); ok {
		if rs, ok := runtime.TryAs[runtime.String](r); ok {
			return runtime.StringHandle(ls.Val + rs.Val), nil
		}
	}
	if li, ok := runtime.TryAs[*runtime.ClassInstance](l); ok && li.HasMethod("__add__", 1) {
		return li.Call("__add__", []runtime.Handle{r})
	}
	return runtime.None, newTypeError("addition isn't supported for these operands")
}

// Sub is defined only for Number-Number.
type Sub struct {
	Lhs, Rhs Node
}

func (s *Sub) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	ln, rn, err := evalNumberPair(scope, s.Lhs, s.Rhs, "subtraction")
	if err != nil {
		return runtime.None, err
	}
	return runtime.NumberHandle(ln - rn), nil
}

// Mult is defined only for Number*Number.
type Mult struct {
	Lhs, Rhs Node
}

func (m *Mult) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	ln, rn, err := evalNumberPair(scope, m.Lhs, m.Rhs, "multiplication")
	if err != nil {
		return runtime.None, err
	}
	return runtime.NumberHandle(ln * rn), nil
}

// Div is defined only for Number/Number and fails on a zero divisor.
// Integer division truncates toward zero, which is what Go's / already
// does for signed integers.
type Div struct {
	Lhs, Rhs Node
}

func (d *Div) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	ln, rn, err := evalNumberPair(scope, d.Lhs, d.Rhs, "division")
	if err != nil {
		return runtime.None, err
	}
	if rn == 0 {
		return runtime.None, newArithmeticError("Division by zero")
	}
	return runtime.NumberHandle(ln / rn), nil
}

func evalPair(scope *runtime.Scope, lhs, rhs Node) (runtime.Handle, runtime.Handle, error) {
	l, err := lhs.Execute(scope)
	if err != nil {
		return runtime.None, runtime.None, err
	}
	r, err := rhs.Execute(scope)
	if err != nil {
		return runtime.None, runtime.None, err
	}
	return l, r, nil
}

func evalNumberPair(scope *runtime.Scope, lhs, rhs Node, op string) (int64, int64, error) {
	l, r, err := evalPair(scope, lhs, rhs)
	if err != nil {
		return 0, 0, err
	}
	ln, ok := runtime.TryAs[runtime.Number](l)
	if !ok {
		return 0, 0, newTypeError("%s is supported only for integers", capitalize(op))
	}
	rn, ok := runtime.TryAs[runtime.Number](r)
	if !ok {
		return 0, 0, newTypeError("%s is supported only for integers", capitalize(op))
	}
	return ln.Val, rn.Val, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
