// Package generator builds solvable practice equations from a seed.
//
// Package: generator
// Title: Seeded Problem Generator
// Description: Synthesizes a trivially solved equation "x = c" and
//              scrambles it through a bounded, seeded walk of inverse
//              rewrite steps (adding constants to both sides, scaling both
//              sides), so every emitted problem is solvable by legal
//              forward actions by construction. Identical seeds always
//              yield byte-identical output. Degenerate draws are redrawn
//              within a fixed retry budget, after which a smaller
//              known-safe scramble is used instead of failing.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial generator implementation
package generator
