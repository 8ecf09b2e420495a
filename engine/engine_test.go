package engine

import (
	"bytes"
	"strings"
	"testing"
)

func runAndCapture(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	i := New(WithOutput(&buf))
	if err := i.Run(src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return buf.String()
}

func TestEngineArithmeticAndPrint(t *testing.T) {
	got := runAndCapture(t, "print 1 + 2\n")
	if got != "3\n" {
		t.Fatalf("got %q, want %q", got, "3\n")
	}
}

func TestEngineStringConcatenation(t *testing.T) {
	got := runAndCapture(t, `print "foo" + "bar"` + "\n")
	if got != "foobar\n" {
		t.Fatalf("got %q, want %q", got, "foobar\n")
	}
}

func TestEngineIfElse(t *testing.T) {
	got := runAndCapture(t, "if 0:\n  print 1\nelse:\n  print 2\n")
	if got != "2\n" {
		t.Fatalf("got %q, want %q", got, "2\n")
	}
}

func TestEngineClassWithInitAndStr(t *testing.T) {
	src := "" +
		"class Point:\n" +
		"  def __init__(self, x, y):\n" +
		"    self.x = x\n" +
		"    self.y = y\n" +
		"  def __str__(self):\n" +
		"    return str(self.x) + \" \" + str(self.y)\n" +
		"p = Point(1, 2)\n" +
		"print p\n"
	got := runAndCapture(t, src)
	if got != "1 2\n" {
		t.Fatalf("got %q, want %q", got, "1 2\n")
	}
}

func TestEngineMethodOverrideThroughInheritance(t *testing.T) {
	src := "" +
		"class Animal:\n" +
		"  def speak(self):\n" +
		"    return \"...\"\n" +
		"class Dog(Animal):\n" +
		"  def speak(self):\n" +
		"    return \"Woof\"\n" +
		"a = Animal()\n" +
		"d = Dog()\n" +
		"print a.speak()\n" +
		"print d.speak()\n"
	got := runAndCapture(t, src)
	want := "...\nWoof\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEngineDivisionByZero(t *testing.T) {
	i := New(WithOutput(new(bytes.Buffer)))
	err := i.Run("x = 1 / 0\n")
	if err == nil {
		t.Fatalf("expected a division-by-zero error")
	}
	if !strings.Contains(err.Error(), "Division by zero") {
		t.Fatalf("got %q, want a message containing %q", err.Error(), "Division by zero")
	}
}

func TestEngineNoShortCircuitEvaluatesBothOperands(t *testing.T) {
	src := "" +
		"class Counter:\n" +
		"  def __init__(self):\n" +
		"    self.calls = 0\n" +
		"  def bump(self):\n" +
		"    self.calls = self.calls + 1\n" +
		"    return True\n" +
		"c = Counter()\n" +
		"r = True or c.bump()\n" +
		"print c.calls\n"
	got := runAndCapture(t, src)
	if got != "1\n" {
		t.Fatalf("got %q, want %q (both operands of Or must evaluate, no short-circuit)", got, "1\n")
	}
}

func TestEngineVariableValueRootScopeFallbackFlag(t *testing.T) {
	src := "" +
		"class Inner:\n" +
		"  def __init__(self):\n" +
		"    self.v = 1\n" +
		"class Outer:\n" +
		"  def __init__(self):\n" +
		"    self.inner = Inner()\n" +
		"o = Outer()\n" +
		"v = 99\n" +
		"print o.inner.v\n"
	got := runAndCapture(t, src)
	if got != "1\n" {
		t.Fatalf("got %q, want %q (default field-scope-correct lookup)", got, "1\n")
	}
}

func TestEngineTraceTokensWritesToSink(t *testing.T) {
	var out, trace bytes.Buffer
	i := New(WithOutput(&out), WithConfig(Config{TraceTokens: true}), WithTraceSink(&trace))
	if err := i.Run("print 1\n"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if trace.Len() == 0 {
		t.Fatalf("expected a non-empty token trace")
	}
}
