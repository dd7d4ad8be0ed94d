package rle

// Encode converts g into its run-length text form, terminated by '!'.
// Callers must reject grids with zero width or height beforehand.
func Encode(g Grid) string {
	body := CompressSeparators(JoinRows(EncodeRows(g)))
	return body + string(rune(SymbolTerminator))
}
