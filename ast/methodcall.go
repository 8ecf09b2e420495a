package ast

import "github.com/mython-lang/mython/runtime"

// MethodCall evaluates Object, requires it to be a ClassInstance, then
// evaluates its arguments left to right, and dispatches the named method.
type MethodCall struct {
	Object Node
	Method string
	Args   []Node
}

func (m *MethodCall) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	callee, err := m.Object.Execute(scope)
	if err != nil {
		return runtime.None, err
	}
	inst, ok := runtime.TryAs[*runtime.ClassInstance](callee)
	if !ok {
		return runtime.None, newTypeError("trying to call method %s on an object which is not a class instance", m.Method)
	}

	args := make([]runtime.Handle, len(m.Args))
	for i, a := range m.Args {
		v, err := a.Execute(scope)
		if err != nil {
			return runtime.None, err
		}
		args[i] = v
	}
	return inst.Call(m.Method, args)
}

// NewInstance allocates a ClassInstance bound to Class. If Class defines
// __init__, its arguments are evaluated and the constructor is invoked;
// any arity error it raises propagates unchanged.
type NewInstance struct {
	Class *runtime.Class
	Args  []Node
}

func (n *NewInstance) Execute(scope *runtime.Scope) (runtime.Handle, error) {
	inst := runtime.NewInstance(n.Class)
	if _, ok := n.Class.GetMethod("__init__"); ok {
		args := make([]runtime.Handle, len(n.Args))
		for i, a := range n.Args {
			v, err := a.Execute(scope)
			if err != nil {
				return runtime.None, err
			}
			args[i] = v
		}
		if _, err := inst.Call("__init__", args); err != nil {
			return runtime.None, err
		}
	}
	return runtime.Own(inst), nil
}
