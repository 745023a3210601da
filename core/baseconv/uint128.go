package baseconv

import "math/bits"

// Uint128 is the canonical value of a conversion: a fixed-width 128-bit
// unsigned integer used as the base-independent pivot between the input
// literal and every rendered output. The zero value is the number zero.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// U128 returns the Uint128 holding v.
func U128(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// MaxUint128 is the largest representable canonical value, 2^128 - 1.
var MaxUint128 = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// String renders u in base 10.
func (u Uint128) String() string {
	s, _ := Render(u, 10)
	return s
}

// mulAdd returns u*m + a and whether the result overflowed 128 bits.
func (u Uint128) mulAdd(m, a uint64) (Uint128, bool) {
	overflow, hi := bits.Mul64(u.Hi, m)
	carry, lo := bits.Mul64(u.Lo, m)
	hi, c := bits.Add64(hi, carry, 0)
	overflowed := overflow != 0 || c != 0
	lo, c = bits.Add64(lo, a, 0)
	hi, c = bits.Add64(hi, 0, c)
	return Uint128{Hi: hi, Lo: lo}, overflowed || c != 0
}

// divmod returns u/d and u%d. The divisor must be non-zero and no larger
// than the remainder bound bits.Div64 requires, which every base in the
// supported range satisfies.
func (u Uint128) divmod(d uint64) (Uint128, uint64) {
	qhi := u.Hi / d
	rem := u.Hi % d
	qlo, rem := bits.Div64(rem, u.Lo, d)
	return Uint128{Hi: qhi, Lo: qlo}, rem
}
