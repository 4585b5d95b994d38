package markup

import "github.com/avockley/gridterm/textwidth"

// Subst holds the display substitutes for characters that cannot be
// written to the terminal as-is. Combining and Modifier may be empty
// when the visibility option is off, collapsing those cells to zero
// width.
type Subst struct {
	Truncator string
	OddSpace  string
	Combining string
	Modifier  string
}

// Result is the outcome of clipping a literal run to a cell budget.
type Result struct {
	Text  string
	Width int
}

type clipKey struct {
	text  string
	width int
	sub   Subst
	ambig int
}

var clipCache = newLRUCache[clipKey, Result](cacheSize)

// dispRune returns the display form of r: a substitute string for odd
// spaces, zero-width format characters, and modifier letters, or the
// rune itself with its display width.
func dispRune(r rune, sub Subst, ambig int) (string, bool) {
	switch {
	case textwidth.IsModifier(r):
		return sub.Modifier, true
	case textwidth.IsOddSpace(r):
		return sub.OddSpace, true
	case textwidth.IsZeroWidth(r):
		return sub.Combining, true
	}
	return string(r), false
}

// Clip shortens a single literal run (no markers) to at most width
// display cells, replacing clipped content with the truncator. A width
// of 0 is the unbounded sentinel and never truncates. The result width
// never exceeds width except when even the truncator alone is wider.
func Clip(s string, width int, sub Subst, ambig int) Result {
	key := clipKey{text: s, width: width, sub: sub, ambig: ambig}
	if res, ok := clipCache.get(key); ok {
		return res
	}

	truncW := DisplayWidth(sub.Truncator, 0, true, ambig)
	var out []rune
	var widths []int
	w := 0
	pop := func() {
		w -= widths[len(widths)-1]
		out = out[:len(out)-1]
		widths = widths[:len(widths)-1]
	}

	for _, r := range s {
		repl, substituted := dispRune(r, sub, ambig)
		for _, rr := range repl {
			rw := textwidth.RuneWidth(rr, ambig)
			if substituted && rw == 0 {
				rw = 1 // substitution glyphs always occupy a cell
			}
			out = append(out, rr)
			widths = append(widths, rw)
			w += rw
		}
		if width > 0 && w > width-truncW+1 {
			// Drop the final two emitted characters, then keep
			// shedding until the truncator fits inside the bound.
			// Clipping one cell early is fine; overflowing is not.
			for i := 0; i < 2 && len(out) > 0; i++ {
				pop()
			}
			for w+truncW > width && len(out) > 0 {
				pop()
			}
			out = append(out, []rune(sub.Truncator)...)
			w += truncW
			break
		}
	}

	res := Result{Text: string(out), Width: w}
	clipCache.put(key, res)
	return res
}
