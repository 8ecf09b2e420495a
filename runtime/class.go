package runtime

import (
	"errors"
	"fmt"
	"io"
)

// Node is the subset of an AST statement/expression that the runtime needs
// to invoke: a method body. The ast package's node types implement this
// interface; runtime never imports ast, which keeps the value model and
// class dispatch independent of the evaluator that walks them.
type Node interface {
	Execute(scope *Scope) (Handle, error)
}

// Method is a named, fixed-arity callable backed by an AST body.
type Method struct {
	Name   string
	Params []string
	Body   Node
}

// Class is a class descriptor: a method table plus an optional parent for
// single inheritance.
type Class struct {
	Name   string
	vtable map[string]*Method
	Parent *Class
}

// NewClass builds a class descriptor, rejecting duplicate method names
// within the same definition.
func NewClass(name string, methods []*Method, parent *Class) (*Class, error) {
	vtable := make(map[string]*Method, len(methods))
	for _, m := range methods {
		if _, dup := vtable[m.Name]; dup {
			return nil, &DefinitionError{Class: name, Method: m.Name}
		}
		vtable[m.Name] = m
	}
	return &Class{Name: name, vtable: vtable, Parent: parent}, nil
}

// GetMethod walks self then the parent chain, returning the nearest
// definition of name.
func (c *Class) GetMethod(name string) (*Method, bool) {
	for cur := c; cur != nil; cur = cur.Parent {
		if m, ok := cur.vtable[name]; ok {
			return m, true
		}
	}
	return nil, false
}

func (c *Class) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Class %s", c.Name)
	return err
}

func (c *Class) sealed() {}

// ClassInstance is a runtime object: a borrowed class plus an embedded
// field scope.
type ClassInstance struct {
	class  *Class
	fields *Scope
}

// NewInstance allocates a fresh instance with an empty field scope.
func NewInstance(class *Class) *ClassInstance {
	return &ClassInstance{class: class, fields: NewScope()}
}

func (ci *ClassInstance) sealed() {}

// Class returns the instance's class.
func (ci *ClassInstance) Class() *Class { return ci.class }

// Fields returns the instance's embedded field scope.
func (ci *ClassInstance) Fields() *Scope { return ci.fields }

// HasMethod reports whether the instance's class (or an ancestor) defines
// name with exactly argc formal parameters.
func (ci *ClassInstance) HasMethod(name string, argc int) bool {
	m, ok := ci.class.GetMethod(name)
	return ok && len(m.Params) == argc
}

// Call locates name through the inheritance chain, checks arity, builds a
// fresh call scope seeding self as a shared handle plus each bound
// argument, executes the body, and interprets a ReturnSignal as the
// call's result.
func (ci *ClassInstance) Call(name string, args []Handle) (Handle, error) {
	m, ok := ci.class.GetMethod(name)
	if !ok {
		return None, fmt.Errorf("class %s doesn't have method %s", ci.class.Name, name)
	}
	if len(m.Params) != len(args) {
		return None, &ArityError{Class: ci.class.Name, Method: name, Expected: len(m.Params), Got: len(args)}
	}

	call := NewScope()
	call.Set("self", Share(ci))
	for i, param := range m.Params {
		call.Set(param, args[i])
	}

	_, err := m.Body.Execute(call)
	if err == nil {
		return None, nil
	}
	var ret *ReturnSignal
	if errors.As(err, &ret) {
		return ret.Value, nil
	}
	return None, err
}

// Print dispatches to __str__ (arity 0) when defined; otherwise it prints
// an implementation-defined identity token.
func (ci *ClassInstance) Print(w io.Writer) error {
	if ci.HasMethod("__str__", 0) {
		result, err := ci.Call("__str__", nil)
		if err != nil {
			return err
		}
		return Print(w, result)
	}
	_, err := fmt.Fprintf(w, "<%s instance at %p>", ci.class.Name, ci)
	return err
}
