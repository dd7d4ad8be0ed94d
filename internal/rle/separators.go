package rle

import "strings"

// JoinRows joins row fragments with a single separator between neighbours.
// Empty fragments still contribute their separators.
func JoinRows(fragments []string) string {
	return strings.Join(fragments, string(rune(SymbolSeparator)))
}

// CompressSeparators folds every maximal run of k separators into the count
// k followed by one separator (the count is omitted when k is 1). All other
// bytes pass through in order. The input is treated as flat text, so a run
// may span several collapsed rows.
func CompressSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pending := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == SymbolSeparator {
			pending++
			continue
		}
		if pending > 0 {
			writeCounted(&b, pending, SymbolSeparator)
			pending = 0
		}
		b.WriteByte(c)
	}
	if pending > 0 {
		writeCounted(&b, pending, SymbolSeparator)
	}
	return b.String()
}
