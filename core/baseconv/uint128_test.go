package baseconv

import "testing"

func TestMulAdd(t *testing.T) {
	got, overflow := U128(5).mulAdd(10, 7)
	if overflow {
		t.Fatal("5*10+7 reported overflow")
	}
	if got != U128(57) {
		t.Errorf("5*10+7 = %v, want 57", got)
	}

	// Crossing the 64-bit boundary carries into Hi.
	got, overflow = U128(^uint64(0)).mulAdd(16, 15)
	if overflow {
		t.Fatal("crossing 64 bits reported overflow")
	}
	want := Uint128{Hi: 0xF, Lo: ^uint64(0)}
	if got != want {
		t.Errorf("(2^64-1)*16+15 = %v, want %v", got, want)
	}
}

func TestMulAddOverflow(t *testing.T) {
	if _, overflow := MaxUint128.mulAdd(2, 0); !overflow {
		t.Error("max*2 should overflow")
	}
	if _, overflow := MaxUint128.mulAdd(1, 1); !overflow {
		t.Error("max+1 should overflow")
	}
	if _, overflow := MaxUint128.mulAdd(1, 0); overflow {
		t.Error("max*1 should not overflow")
	}
}

// divmod must invert mulAdd for every base in the supported range.
func TestDivmod(t *testing.T) {
	values := []Uint128{
		U128(0),
		U128(187),
		U128(^uint64(0)),
		{Hi: 0xDEAD, Lo: 0xBEEF},
		MaxUint128,
	}

	for base := uint64(MinBase); base <= MaxParseBase; base++ {
		for _, v := range values {
			q, r := v.divmod(base)
			if r >= base {
				t.Fatalf("%v %% %d = %d, want < %d", v, base, r, base)
			}
			back, overflow := q.mulAdd(base, r)
			if overflow {
				t.Fatalf("reconstructing %v from (%v, %d) overflowed", v, q, r)
			}
			if back != v {
				t.Errorf("divmod(%v, %d) does not reconstruct: got %v", v, base, back)
			}
		}
	}
}

func TestUint128String(t *testing.T) {
	if got := U128(187).String(); got != "187" {
		t.Errorf("String() = %q, want %q", got, "187")
	}
	if got := (Uint128{}).String(); got != "0" {
		t.Errorf("zero String() = %q, want %q", got, "0")
	}
	// 2^64 = 18446744073709551616
	if got := (Uint128{Hi: 1, Lo: 0}).String(); got != "18446744073709551616" {
		t.Errorf("2^64 String() = %q, want %q", got, "18446744073709551616")
	}
}
