// Package rational provides exact fraction arithmetic for the algebra core.
//
// Package: rational
// Title: Exact Rational Arithmetic
// Description: Wraps math/big.Rat behind an immutable value API. Every
//              coefficient in the algebra core is a Rational; no operation
//              ever converts to floating point, so generation and rewriting
//              are free of rounding drift by construction.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial implementation
package rational
