// File: rational.go
// Title: Rational Value Implementation
// Description: Implements the immutable Rational value type. All operations
//              return fresh values; the embedded big.Rat is never exposed
//              mutably, so shared subtrees can hold the same Rational safely.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial implementation

package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// Rational is an immutable exact fraction
type Rational struct {
	val *big.Rat
}

// FromInt creates a Rational from an integer value
func FromInt(n int64) Rational {
	return Rational{val: new(big.Rat).SetInt64(n)}
}

// New creates a Rational p/q. The denominator must not be zero.
func New(p, q int64) (Rational, error) {
	if q == 0 {
		return Rational{}, fmt.Errorf("rational: denominator is zero")
	}
	return Rational{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}, nil
}

// Parse converts "p/q" or a bare integer string into a Rational
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, fmt.Errorf("rational: empty literal")
	}
	if strings.Contains(s, "/") {
		parts := strings.SplitN(s, "/", 2)
		num, ok := new(big.Int).SetString(strings.TrimSpace(parts[0]), 10)
		if !ok {
			return Rational{}, fmt.Errorf("rational: invalid numerator %q", parts[0])
		}
		den, ok := new(big.Int).SetString(strings.TrimSpace(parts[1]), 10)
		if !ok {
			return Rational{}, fmt.Errorf("rational: invalid denominator %q", parts[1])
		}
		if den.Sign() == 0 {
			return Rational{}, fmt.Errorf("rational: denominator is zero in %q", s)
		}
		return Rational{val: new(big.Rat).SetFrac(num, den)}, nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Rational{}, fmt.Errorf("rational: invalid integer literal %q", s)
	}
	return Rational{val: new(big.Rat).SetInt(n)}, nil
}

// rat returns the internal value, substituting zero for the zero struct
func (r Rational) rat() *big.Rat {
	if r.val == nil {
		return new(big.Rat)
	}
	return r.val
}

// Add returns r + o
func (r Rational) Add(o Rational) Rational {
	return Rational{val: new(big.Rat).Add(r.rat(), o.rat())}
}

// Sub returns r - o
func (r Rational) Sub(o Rational) Rational {
	return Rational{val: new(big.Rat).Sub(r.rat(), o.rat())}
}

// Mul returns r * o
func (r Rational) Mul(o Rational) Rational {
	return Rational{val: new(big.Rat).Mul(r.rat(), o.rat())}
}

// Div returns r / o. Division by zero is an error.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, fmt.Errorf("rational: division by zero")
	}
	return Rational{val: new(big.Rat).Quo(r.rat(), o.rat())}, nil
}

// Neg returns -r
func (r Rational) Neg() Rational {
	return Rational{val: new(big.Rat).Neg(r.rat())}
}

// Abs returns |r|
func (r Rational) Abs() Rational {
	if r.Sign() < 0 {
		return r.Neg()
	}
	return Rational{val: new(big.Rat).Set(r.rat())}
}

// Cmp compares r and o: -1 if r < o, 0 if equal, +1 if r > o
func (r Rational) Cmp(o Rational) int {
	return r.rat().Cmp(o.rat())
}

// Equal reports whether r and o denote the same fraction
func (r Rational) Equal(o Rational) bool {
	return r.Cmp(o) == 0
}

// Sign returns -1, 0, or +1 depending on the sign of r
func (r Rational) Sign() int {
	return r.rat().Sign()
}

// IsZero reports whether r is zero
func (r Rational) IsZero() bool {
	return r.Sign() == 0
}

// IsOne reports whether r is exactly one
func (r Rational) IsOne() bool {
	return r.rat().Cmp(big.NewRat(1, 1)) == 0
}

// IsInt reports whether r has denominator one
func (r Rational) IsInt() bool {
	return r.rat().IsInt()
}

// Num returns the numerator of the normalized fraction
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.rat().Num())
}

// Denom returns the denominator of the normalized fraction
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.rat().Denom())
}

// String renders the canonical textual form: a bare integer when the
// denominator is one, "p/q" otherwise. This is the only form the serializer
// emits for constants, and the parser accepts exactly these forms back.
func (r Rational) String() string {
	if r.IsInt() {
		return r.rat().Num().String()
	}
	return r.rat().RatString()
}
