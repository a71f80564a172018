// Package csharp runs the checker over C# sources parsed with tree-sitter.
//
// Invocations (Foo(1, 2)) and explicit object creations (new Point(1, 2))
// are call sites. An argument is named when it carries a "name:" binding.
// An object creation without an argument list (new Point { X = 1 }) has no
// list at all and is never reported. Target-typed new(1, 2) is not treated
// as an object creation.
//
// Sources with syntax errors are still checked: tree-sitter recovers and
// broken nodes simply have no recognizable argument list.
package csharp
