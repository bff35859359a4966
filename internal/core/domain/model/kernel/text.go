package kernel

import "golang.org/x/text/unicode/norm"

// NormalizeText converts a display string to Unicode Normalization Form C.
// All string fields intended for display are normalized at write time so that
// repeated reads are byte-stable and comparisons behave predictably regardless
// of the encoding variant the caller supplied (composed vs. decomposed accents,
// keyboard-dependent input, copy-pasted text).
//
// Example:
//
//	kernel.NormalizeText("Café") // "Café" in composed form
func NormalizeText(s string) string {
	return norm.NFC.String(s)
}
