// Package parser converts equation text into expression trees.
//
// Package: parser
// Title: Equation Grammar & Parser
// Description: Implements the lexical analyzer and recursive-descent parser
//              for the single-variable equation grammar: integer and "a/b"
//              rational literals, identifiers, the operators + - * / ^,
//              parentheses, implicit multiplication ("4x", "2(x + 1)"),
//              and exactly one top-level equals sign. The parser is total on
//              every string the canonical serializer produces; parse errors
//              carry the PARSE_FAILURE code.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial lexer and parser implementation
package parser
