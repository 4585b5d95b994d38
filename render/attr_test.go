package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestAttrUpdatePrecedence(t *testing.T) {
	base := Attr{Fg: tcell.ColorWhite, Bg: tcell.ColorBlack, FgPrec: 5, BgPrec: 5}

	low := base.Update(Attr{Fg: tcell.ColorRed}, 2)
	if low.Fg != tcell.ColorWhite {
		t.Errorf("low precedence overrode foreground: %v", low.Fg)
	}

	high := base.Update(Attr{Fg: tcell.ColorRed}, 8)
	if high.Fg != tcell.ColorRed {
		t.Errorf("high precedence did not override foreground: %v", high.Fg)
	}
	if high.Bg != tcell.ColorBlack {
		t.Errorf("background changed without a new value: %v", high.Bg)
	}
}

func TestAttrUpdateUnsetFieldsKept(t *testing.T) {
	base := Attr{Fg: tcell.ColorWhite, Bg: tcell.ColorBlack}
	got := base.Update(Attr{Bg: tcell.ColorBlue}, 8)
	if got.Fg != tcell.ColorWhite {
		t.Errorf("unset foreground clobbered existing: %v", got.Fg)
	}
	if got.Bg != tcell.ColorBlue {
		t.Errorf("background not updated: %v", got.Bg)
	}
}

func TestAttrUpdateAccumulatesFlags(t *testing.T) {
	a := Attr{Attrs: tcell.AttrBold}
	got := a.Update(Attr{Attrs: tcell.AttrUnderline}, 1)
	if got.Attrs != tcell.AttrBold|tcell.AttrUnderline {
		t.Errorf("Attrs = %v, want bold|underline", got.Attrs)
	}
}

func TestAttrUpdateAssociativeOverride(t *testing.T) {
	// Two conflicting requests at different precedences resolve the
	// same regardless of arrival order relative to a neutral update.
	a := DefaultAttr()
	x := a.Update(Attr{Fg: tcell.ColorRed}, 3).Update(Attr{Fg: tcell.ColorGreen}, 7)
	y := a.Update(Attr{Fg: tcell.ColorGreen}, 7).Update(Attr{Fg: tcell.ColorRed}, 3)
	if x.Fg != tcell.ColorGreen || y.Fg != tcell.ColorGreen {
		t.Errorf("higher precedence must win both ways: %v, %v", x.Fg, y.Fg)
	}
}
