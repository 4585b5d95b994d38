package render

import "github.com/gdamore/tcell/v2"

// Attr is a composable display attribute: foreground, background, and
// attribute flags, each color half carrying the precedence it was set
// at. Attrs merge rather than replace, so a cell can accumulate the row
// style, the column style, and an inline span in any order.
type Attr struct {
	Fg    tcell.Color
	Bg    tcell.Color
	Attrs tcell.AttrMask

	FgPrec int8
	BgPrec int8
}

// DefaultAttr returns the terminal default attribute.
func DefaultAttr() Attr {
	return Attr{Fg: tcell.ColorDefault, Bg: tcell.ColorDefault}
}

// Update merges b into a at the given precedence and returns the result.
// Each color half of b wins only when it is set and prec is at least the
// precedence that half of a was set at; attribute flags always
// accumulate. Update is commutative across precedence levels: the
// highest-precedence set value ends up in the result regardless of
// merge order.
func (a Attr) Update(b Attr, prec int8) Attr {
	if b.Fg != tcell.ColorDefault && prec >= a.FgPrec {
		a.Fg = b.Fg
		a.FgPrec = prec
	}
	if b.Bg != tcell.ColorDefault && prec >= a.BgPrec {
		a.Bg = b.Bg
		a.BgPrec = prec
	}
	a.Attrs |= b.Attrs
	return a
}

// Style converts the attribute to a tcell style.
func (a Attr) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(a.Fg).
		Background(a.Bg).
		Attributes(a.Attrs)
}
