package baseconv

import "strings"

// Group inserts sep into s every width characters, counted from the
// right-hand (least significant) end. The leftmost group may be shorter
// than width and is never split; no separator is ever placed at the
// start or end of the string. Width 0 returns s unchanged.
func Group(s string, sep rune, width uint32) string {
	w := int(width)
	if w == 0 || len(s) <= w {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/w)
	lead := len(s) % w
	if lead == 0 {
		lead = w
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += w {
		b.WriteRune(sep)
		b.WriteString(s[i : i+w])
	}
	return b.String()
}

// Pad left-pads s with '0' to at least width characters. Padding is
// applied to the raw digit string before grouping so that separators
// count digits only.
func Pad(s string, width uint8) string {
	if len(s) >= int(width) {
		return s
	}
	return strings.Repeat("0", int(width)-len(s)) + s
}
