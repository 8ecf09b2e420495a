package runtime

import (
	"fmt"
	"io"
)

// Value is the closed set of runtime value variants. The set is sealed to
// this package: sealed is unexported, so no outside package can add a new
// variant. This is the idiomatic Go rendition of a closed discriminated
// union: an interface with an unexported marker method instead of open-
// ended type-based dispatch.
type Value interface {
	// Print renders the value to w following the language's print
	// contract (used by both the print statement and Stringify).
	Print(w io.Writer) error
	sealed()
}

// Number is a signed integer value.
type Number struct {
	Val int64
}

func (Number) sealed() {}

func (n Number) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d", n.Val)
	return err
}

// String is an immutable text value.
type String struct {
	Val string
}

func (String) sealed() {}

func (s String) Print(w io.Writer) error {
	_, err := io.WriteString(w, s.Val)
	return err
}

// Bool is a two-valued boolean.
type Bool struct {
	Val bool
}

func (Bool) sealed() {}

func (b Bool) Print(w io.Writer) error {
	lit := "False"
	if b.Val {
		lit = "True"
	}
	_, err := io.WriteString(w, lit)
	return err
}

// Handle is the universal carrier threaded through evaluation. A zero
// Handle represents None/absent. Own and Share both produce a Handle that
// wraps the same underlying Value; the distinction exists at the API
// surface to mark ownership intent even though Go's garbage collector
// makes the two identical in practice, since nothing in this language can
// form a reference cycle.
type Handle struct {
	value Value
}

// None is the sentinel handle carrying no value.
var None = Handle{}

// Own wraps v as an exclusively-held handle.
func Own(v Value) Handle { return Handle{value: v} }

// Share wraps v as a non-owning handle, used to inject self into a method
// scope without transferring ownership of the instance.
func Share(v Value) Handle { return Handle{value: v} }

// NumberHandle constructs an owned Number handle.
func NumberHandle(i int64) Handle { return Own(Number{Val: i}) }

// StringHandle constructs an owned String handle.
func StringHandle(s string) Handle { return Own(String{Val: s}) }

// BoolHandle constructs an owned Bool handle.
func BoolHandle(b bool) Handle { return Own(Bool{Val: b}) }

// Value returns the wrapped Value, or nil if the handle is None.
func (h Handle) Value() Value { return h.value }

// IsNone reports whether the handle carries no value.
func (h Handle) IsNone() bool { return h.value == nil }

// Bool reports true iff the handle is non-None. This is a narrow
// presence check, distinct from full language truthiness (where e.g.
// Number(0) is falsy); that rule is IsTrue, below.
func (h Handle) Bool() bool { return h.value != nil }

// TryAs attempts to view the handle's value as T, returning ok=false
// without panicking on a mismatch or a None handle.
func TryAs[T Value](h Handle) (T, bool) {
	v, ok := h.value.(T)
	return v, ok
}

// IsTrue implements the language's truthiness rule: None is false, Number
// is false only when zero, String is false only when empty, Bool is its
// own payload, and ClassInstance is always true.
func IsTrue(h Handle) bool {
	switch v := h.value.(type) {
	case nil:
		return false
	case Number:
		return v.Val != 0
	case String:
		return v.Val != ""
	case Bool:
		return v.Val
	case *ClassInstance:
		return v != nil
	default:
		return false
	}
}

// Print renders the handle's value, or the literal "None" when the handle
// is empty — the rule applied by the print statement for absent arguments.
func Print(w io.Writer, h Handle) error {
	if h.IsNone() {
		_, err := io.WriteString(w, "None")
		return err
	}
	return h.value.Print(w)
}
