package baseconv

import (
	"github.com/znielsen/numconv/core/errors"
)

// Render produces the minimal-length digit string for v in the given
// base, most significant digit first, with no leading zeros. Digit
// values 10 and above render as uppercase letters. The zero value
// renders as "0".
//
// A base outside [MinBase, MaxRenderBase] fails with ErrTargetBase.
func Render(v Uint128, base uint32) (string, error) {
	if base < MinBase || base > MaxRenderBase {
		return "", &errors.BaseRangeError{Base: base, Min: MinBase, Max: MaxRenderBase}
	}
	// The digit loop below never runs for zero.
	if v.IsZero() {
		return "0", nil
	}

	// 128 bits of base 2 is the longest possible rendering.
	buf := make([]byte, 0, 128)
	for !v.IsZero() {
		var d uint64
		v, d = v.divmod(uint64(base))
		buf = append(buf, digitChar(uint8(d)))
	}
	// Digits were extracted least significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

func digitChar(d uint8) byte {
	if d >= 10 {
		return 'A' + d - 10
	}
	return '0' + d
}
