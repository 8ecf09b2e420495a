package runtime

import (
	"bytes"
	"testing"
)

// stubNode is a Node whose Execute simply returns a fixed result, letting
// class/dispatch tests avoid depending on package ast.
type stubNode struct {
	handle Handle
	err    error
}

func (s *stubNode) Execute(*Scope) (Handle, error) { return s.handle, s.err }

// selfFieldNode reads "self" from the call scope and returns one of its
// fields, used to exercise field access from within a method body.
type selfFieldNode struct{ field string }

func (n *selfFieldNode) Execute(scope *Scope) (Handle, error) {
	h, ok := scope.Get("self")
	if !ok {
		return None, NewNameError("self not found")
	}
	inst, ok := TryAs[*ClassInstance](h)
	if !ok {
		return None, NewTypeError("self is not an instance")
	}
	v, ok := inst.Fields().Get(n.field)
	if !ok {
		return None, NewNameError("field %s not found", n.field)
	}
	return v, nil
}

func TestNewClassRejectsDuplicateMethods(t *testing.T) {
	methods := []*Method{
		{Name: "m", Params: nil, Body: &stubNode{handle: None}},
		{Name: "m", Params: nil, Body: &stubNode{handle: None}},
	}
	_, err := NewClass("C", methods, nil)
	if err == nil {
		t.Fatalf("expected a DefinitionError for a duplicate method name")
	}
	if _, ok := err.(*DefinitionError); !ok {
		t.Fatalf("got %T, want *DefinitionError", err)
	}
}

func TestGetMethodWalksParentChain(t *testing.T) {
	parent, err := NewClass("Parent", []*Method{
		{Name: "greet", Params: nil, Body: &stubNode{handle: StringHandle("hi")}},
	}, nil)
	if err != nil {
		t.Fatalf("NewClass(Parent): %v", err)
	}
	child, err := NewClass("Child", nil, parent)
	if err != nil {
		t.Fatalf("NewClass(Child): %v", err)
	}

	m, ok := child.GetMethod("greet")
	if !ok {
		t.Fatalf("expected Child to inherit greet from Parent")
	}
	if m.Name != "greet" {
		t.Fatalf("got method %q, want greet", m.Name)
	}

	if _, ok := child.GetMethod("missing"); ok {
		t.Fatalf("GetMethod should fail for an undefined method")
	}
}

func TestHasMethodChecksArityExactly(t *testing.T) {
	class, err := NewClass("C", []*Method{
		{Name: "f", Params: []string{"a"}, Body: &stubNode{handle: None}},
	}, nil)
	if err != nil {
		t.Fatalf("NewClass: %v", err)
	}
	inst := NewInstance(class)
	if !inst.HasMethod("f", 1) {
		t.Fatalf("expected HasMethod(f, 1) to be true")
	}
	if inst.HasMethod("f", 0) {
		t.Fatalf("HasMethod should fail on an arity mismatch")
	}
	if inst.HasMethod("g", 0) {
		t.Fatalf("HasMethod should fail for an undefined method")
	}
}

func TestCallArityMismatchIsArityError(t *testing.T) {
	class, err := NewClass("C", []*Method{
		{Name: "f", Params: []string{"a", "b"}, Body: &stubNode{handle: None}},
	}, nil)
	if err != nil {
		t.Fatalf("NewClass: %v", err)
	}
	inst := NewInstance(class)
	_, err = inst.Call("f", []Handle{NumberHandle(1)})
	if err == nil {
		t.Fatalf("expected an ArityError")
	}
	if _, ok := err.(*ArityError); !ok {
		t.Fatalf("got %T, want *ArityError", err)
	}
}

func TestCallSeedsSelfAndParamsAndCatchesReturn(t *testing.T) {
	body := &returningNode{inner: &selfFieldNode{field: "x"}}
	class, err := NewClass("C", []*Method{
		{Name: "getX", Params: nil, Body: body},
	}, nil)
	if err != nil {
		t.Fatalf("NewClass: %v", err)
	}
	inst := NewInstance(class)
	inst.Fields().Set("x", NumberHandle(42))

	result, err := inst.Call("getX", nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	n, ok := TryAs[Number](result)
	if !ok || n.Val != 42 {
		t.Fatalf("got %+v, want Number{42}", result)
	}
}

// returningNode wraps inner's result in a ReturnSignal, the way ast.Return
// does, without depending on package ast.
type returningNode struct{ inner Node }

func (r *returningNode) Execute(scope *Scope) (Handle, error) {
	v, err := r.inner.Execute(scope)
	if err != nil {
		return None, err
	}
	return None, NewReturnSignal(v)
}

func TestCallWithoutReturnYieldsNone(t *testing.T) {
	class, err := NewClass("C", []*Method{
		{Name: "noop", Params: nil, Body: &stubNode{handle: NumberHandle(1)}},
	}, nil)
	if err != nil {
		t.Fatalf("NewClass: %v", err)
	}
	inst := NewInstance(class)
	result, err := inst.Call("noop", nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if !result.IsNone() {
		t.Fatalf("a method that never returns explicitly should yield None, got %+v", result)
	}
}

func TestClassInstancePrintDispatchesToStr(t *testing.T) {
	class, err := NewClass("C", []*Method{
		{Name: "__str__", Params: nil, Body: &returningNode{inner: &stubNode{handle: StringHandle("hi")}}},
	}, nil)
	if err != nil {
		t.Fatalf("NewClass: %v", err)
	}
	inst := NewInstance(class)

	var buf bytes.Buffer
	if err := inst.Print(&buf); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if buf.String() != "hi" {
		t.Fatalf("got %q, want hi", buf.String())
	}
}
