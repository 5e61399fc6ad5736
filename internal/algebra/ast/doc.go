// Package ast defines the immutable expression tree for the algebra core.
//
// Package: ast
// Title: Algebraic AST Node Definitions
// Description: Defines the expression node variants (constants, variables,
//              binary and unary operators), the Equation pair, structural
//              equality, path-based subtree addressing, and the canonical
//              serializer. Trees are immutable once constructed: a rewrite
//              produces a new tree that shares every untouched subtree with
//              the original and copies only the ancestors along the path.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial AST node definitions
package ast
