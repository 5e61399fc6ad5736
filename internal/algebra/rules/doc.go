// Package rules holds the rewrite rule catalogue and the enumeration engine.
//
// Package: rules
// Title: Rewrite Rule Catalogue & Engine
// Description: Defines the fixed, totally ordered table of named local
//              rewrite rules over equation trees and the deterministic
//              engine that enumerates every legal application for a given
//              equation. Equation-level rules (moving terms, scaling both
//              sides, swapping sides, isolating the variable) are tested
//              first at the equals node; node-level rules (constant folding,
//              combining like terms, distribution, commutation toward
//              canonical order) are then tested at every subtree position in
//              pre-order, left side before right side. Identical input
//              always yields the identical action list.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial rule catalogue and engine
package rules
