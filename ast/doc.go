// Package ast defines the statement and expression nodes that realize the
// language's semantics. Every node type implements runtime.Node by
// exposing Execute(scope) (runtime.Handle, error); the parser package only
// ever constructs these nodes, it never evaluates them.
package ast

import "github.com/mython-lang/mython/runtime"

// Node is the shared contract every statement/expression node satisfies.
// It is an alias for runtime.Node so that parser and ast speak the same
// type without ast importing parser or runtime importing ast.
type Node = runtime.Node
