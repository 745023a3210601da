// Package resolve disentangles the overloaded positional arguments of
// the numconv command line. The first positional slot may hold a
// symbolic base alias, or the number itself when the user skipped the
// alias; in the latter case every following positional argument has
// shifted one slot, so the value sitting in the numeral slot is really
// the first requested output base. Resolve performs that case analysis
// once and returns an explicit, tagged result.
package resolve

// Kind identifies which case the positional arguments resolved to.
type Kind int

const (
	// KindAlias means the base character matched a symbolic alias and
	// the remaining slots were taken at face value.
	KindAlias Kind = iota
	// KindShifted means the base character was actually the numeral, so
	// the numeral slot held an output base that was folded back into the
	// request list.
	KindShifted
	// KindBareLiteral means the base character was the numeral and no
	// further positional arguments were supplied.
	KindBareLiteral
)

func (k Kind) String() string {
	switch k {
	case KindAlias:
		return "alias"
	case KindShifted:
		return "shifted"
	case KindBareLiteral:
		return "bare literal"
	}
	return "unknown"
}

// Resolution is the definitive reading of the positional arguments.
type Resolution struct {
	Kind       Kind
	Base       uint32   // Resolved input base
	Literal    string   // Numeral literal to convert, when HasLiteral
	HasLiteral bool     // False only when an alias was given without a number
	ToBases    []string // Requested output bases, shift-corrected
}

// AliasBase maps a symbolic base character to its numeric base: "b" for
// binary, "o" for octal, "d" for decimal, and "h" or "x" for hex.
func AliasBase(c string) (uint32, bool) {
	switch c {
	case "b":
		return 2, true
	case "o":
		return 8, true
	case "d":
		return 10, true
	case "h", "x":
		return 16, true
	}
	return 0, false
}

// Resolve determines the input base and numeral literal from the
// positional arguments. baseChar is the first positional slot, num the
// second (hasNum false when absent), fromBase the value of the numeric
// base flag, and toBases the trailing output-base requests. The input
// slices and arguments are never mutated; the returned ToBases is a
// fresh slice when shift correction applies.
func Resolve(baseChar string, num string, hasNum bool, fromBase uint32, toBases []string) Resolution {
	if base, ok := AliasBase(baseChar); ok {
		return Resolution{
			Kind:       KindAlias,
			Base:       base,
			Literal:    num,
			HasLiteral: hasNum,
			ToBases:    toBases,
		}
	}

	if hasNum {
		// The slots shifted: baseChar is the numeral and num is the
		// first output base the user asked for.
		shifted := make([]string, 0, len(toBases)+1)
		shifted = append(shifted, num)
		shifted = append(shifted, toBases...)
		return Resolution{
			Kind:       KindShifted,
			Base:       fromBase,
			Literal:    baseChar,
			HasLiteral: true,
			ToBases:    shifted,
		}
	}

	return Resolution{
		Kind:       KindBareLiteral,
		Base:       fromBase,
		Literal:    baseChar,
		HasLiteral: true,
		ToBases:    toBases,
	}
}
