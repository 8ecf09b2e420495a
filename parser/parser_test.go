package parser

import (
	"strings"
	"testing"

	"github.com/mython-lang/mython/ast"
	"github.com/mython-lang/mython/runtime"
)

func mustParse(t *testing.T, src string) *ast.Compound {
	t.Helper()
	node, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	compound, ok := node.(*ast.Compound)
	if !ok {
		t.Fatalf("Parse returned %T, want *ast.Compound", node)
	}
	return compound
}

func TestParseAssignment(t *testing.T) {
	prog := mustParse(t, "x = 1 + 2\n")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	assign, ok := prog.Statements[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("got %T, want *ast.Assignment", prog.Statements[0])
	}
	if assign.Name != "x" {
		t.Fatalf("got Name=%q, want x", assign.Name)
	}
	if _, ok := assign.Rhs.(*ast.Add); !ok {
		t.Fatalf("got Rhs %T, want *ast.Add", assign.Rhs)
	}
}

func TestParseFieldAssignment(t *testing.T) {
	prog := mustParse(t, "self.x = 1\n")
	fa, ok := prog.Statements[0].(*ast.FieldAssignment)
	if !ok {
		t.Fatalf("got %T, want *ast.FieldAssignment", prog.Statements[0])
	}
	if fa.Field != "x" || len(fa.Object.Names) != 1 || fa.Object.Names[0] != "self" {
		t.Fatalf("unexpected FieldAssignment shape: %+v", fa)
	}
}

func TestParsePrintMultipleArgs(t *testing.T) {
	prog := mustParse(t, "print 1, \"two\", None\n")
	p, ok := prog.Statements[0].(*ast.Print)
	if !ok {
		t.Fatalf("got %T, want *ast.Print", prog.Statements[0])
	}
	if len(p.Args) != 3 {
		t.Fatalf("got %d args, want 3", len(p.Args))
	}
}

func TestParseIfElse(t *testing.T) {
	src := "if 1 < 2:\n  print 1\nelse:\n  print 2\n"
	prog := mustParse(t, src)
	ie, ok := prog.Statements[0].(*ast.IfElse)
	if !ok {
		t.Fatalf("got %T, want *ast.IfElse", prog.Statements[0])
	}
	if ie.Else == nil {
		t.Fatalf("expected an Else branch")
	}
	if _, ok := ie.Cond.(*ast.Comparison); !ok {
		t.Fatalf("got Cond %T, want *ast.Comparison", ie.Cond)
	}
}

func TestParseClassWithInheritanceAndMethodCall(t *testing.T) {
	src := "" +
		"class Base:\n" +
		"  def greet(self):\n" +
		"    return \"base\"\n" +
		"class Derived(Base):\n" +
		"  def __init__(self, n):\n" +
		"    self.n = n\n" +
		"d = Derived(5)\n" +
		"print d.greet()\n"
	prog := mustParse(t, src)
	if len(prog.Statements) != 4 {
		t.Fatalf("got %d top-level statements, want 4", len(prog.Statements))
	}

	baseDef, ok := prog.Statements[0].(*ast.ClassDefinition)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassDefinition", prog.Statements[0])
	}
	derivedDef, ok := prog.Statements[1].(*ast.ClassDefinition)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassDefinition", prog.Statements[1])
	}
	if derivedDef.Class.Parent != baseDef.Class {
		t.Fatalf("Derived's parent should be the already-parsed Base class")
	}

	assign, ok := prog.Statements[2].(*ast.Assignment)
	if !ok {
		t.Fatalf("got %T, want *ast.Assignment", prog.Statements[2])
	}
	newInst, ok := assign.Rhs.(*ast.NewInstance)
	if !ok {
		t.Fatalf("got Rhs %T, want *ast.NewInstance", assign.Rhs)
	}
	if newInst.Class != derivedDef.Class {
		t.Fatalf("NewInstance should reference the Derived class descriptor")
	}
}

func TestParseUnaryMinusLowersToSubtractionFromZero(t *testing.T) {
	prog := mustParse(t, "x = -5\n")
	assign := prog.Statements[0].(*ast.Assignment)
	sub, ok := assign.Rhs.(*ast.Sub)
	if !ok {
		t.Fatalf("got Rhs %T, want *ast.Sub", assign.Rhs)
	}
	lit, ok := sub.Lhs.(*ast.Literal)
	if !ok {
		t.Fatalf("got Lhs %T, want *ast.Literal", sub.Lhs)
	}
	n, ok := runtime.TryAs[runtime.Number](lit.Value)
	if !ok || n.Val != 0 {
		t.Fatalf("got Lhs literal %+v, want Number{0}", lit.Value)
	}
}

func TestParseStringifyBuiltin(t *testing.T) {
	prog := mustParse(t, "print str(42)\n")
	p := prog.Statements[0].(*ast.Print)
	if _, ok := p.Args[0].(*ast.Stringify); !ok {
		t.Fatalf("got %T, want *ast.Stringify", p.Args[0])
	}
}

func TestParseUndefinedClassInstantiationIsSyntaxError(t *testing.T) {
	_, err := Parse(strings.NewReader("x = Nope()\n"))
	if err == nil {
		t.Fatalf("expected an error instantiating an undefined class")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("got %T, want *SyntaxError", err)
	}
}
