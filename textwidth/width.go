// Package textwidth classifies code points into terminal display widths.
// It is the single source of truth for every width decision in the
// renderer; callers above it never consult rune tables directly.
package textwidth

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Width policy values for East-Asian ambiguous code points.
const (
	AmbigNarrow = 1
	AmbigWide   = 2
)

// zeroWidthCF is the fixed set of zero-width format and separator code
// points. General-category classification alone under-identifies these:
// some Cf characters render at nonzero width, while this set also pulls
// in Cc, Mn, Zl, and Zp members that never occupy a cell.
var zeroWidthCF = map[rune]struct{}{
	0x0000: {}, // null
	0x034F: {}, // combining grapheme joiner
	0x200B: {}, // zero width space
	0x200C: {}, // zero width non-joiner
	0x200D: {}, // zero width joiner
	0x200E: {}, // left-to-right mark
	0x200F: {}, // right-to-left mark
	0x2028: {}, // line separator
	0x2029: {}, // paragraph separator
	0x202A: {}, // left-to-right embedding
	0x202B: {}, // right-to-left embedding
	0x202C: {}, // pop directional formatting
	0x202D: {}, // left-to-right override
	0x202E: {}, // right-to-left override
	0x2060: {}, // word joiner
	0x2061: {}, // function application
	0x2062: {}, // invisible times
	0x2063: {}, // invisible separator
}

// IsZeroWidth reports whether r is in the designated zero-width set.
func IsZeroWidth(r rune) bool {
	_, ok := zeroWidthCF[r]
	return ok
}

// RuneWidth returns the number of terminal cells r occupies: 0, 1, or 2.
// ambig is the width charged to East-Asian ambiguous and neutral code
// points (AmbigNarrow unless the locale calls for AmbigWide). The
// function is pure; results are safe to cache on (r, ambig).
func RuneWidth(r rune, ambig int) int {
	if IsZeroWidth(r) {
		return 0
	}
	if runewidth.IsAmbiguousWidth(r) || runewidth.IsNeutralWidth(r) {
		if unicode.Is(unicode.Mn, r) {
			return 1
		}
		return ambig
	}
	if runewidth.RuneWidth(r) == 2 {
		return 2
	}
	if !unicode.In(r, unicode.Mn, unicode.Me) {
		return 1
	}
	return 0
}

// IsOddSpace reports whether r is a space-like character that must be
// substituted for display: controls, non-ASCII space separators, line
// and paragraph separators, and surrogates. Plain ASCII space is not odd.
func IsOddSpace(r rune) bool {
	if r == ' ' {
		return false
	}
	return unicode.In(r, unicode.Cc, unicode.Zs, unicode.Zl, unicode.Cs)
}

// Modifier letter and tone letter blocks. The characters whose Unicode
// names begin with MODIFIER live here; Go carries no name table, so block
// membership plus category stands in for the name prefix test.
var modifierBlocks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x02B0, Hi: 0x02FF, Stride: 1}, // spacing modifier letters
		{Lo: 0xA700, Hi: 0xA71F, Stride: 1}, // modifier tone letters
	},
}

// IsModifier reports whether r is a spacing modifier letter or diacritic
// substituted with the modifier glyph during clipping.
func IsModifier(r rune) bool {
	if !unicode.In(r, unicode.Mn, unicode.Sk, unicode.Lm) {
		return false
	}
	return unicode.Is(modifierBlocks, r)
}
