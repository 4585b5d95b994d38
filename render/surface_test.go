package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestSubSurfaceClipping(t *testing.T) {
	parent := newFakeSurface(10, 40)
	sub := NewSubSurface(parent, 2, 5, 4, 10)

	if h, w := sub.Size(); h != 4 || w != 10 {
		t.Fatalf("Size = (%d, %d), want (4, 10)", h, w)
	}

	if err := sub.WriteText(0, 0, "hello", DefaultAttr().Style()); err != nil {
		t.Fatal(err)
	}
	if got := parent.row(2); got[5:10] != "hello" {
		t.Errorf("parent row 2 = %q", got)
	}

	// Text running past the window clips at the window edge, not the
	// parent's.
	if err := sub.WriteText(1, 8, "abcdef", DefaultAttr().Style()); err != nil {
		t.Fatal(err)
	}
	if parent.runes[3][13] != 'a' || parent.runes[3][14] != 'b' {
		t.Errorf("clipped write wrong: %q", parent.row(3))
	}
	if parent.runes[3][15] != ' ' {
		t.Errorf("write escaped the window: %q", parent.row(3))
	}

	if err := sub.WriteText(4, 0, "x", DefaultAttr().Style()); err == nil {
		t.Error("write below the window must fail")
	}
	if err := sub.WriteText(0, 10, "x", DefaultAttr().Style()); err == nil {
		t.Error("write right of the window must fail")
	}
}

func TestSubSurfaceOriginChains(t *testing.T) {
	parent := newFakeSurface(20, 60)
	outer := NewSubSurface(parent, 3, 4, 10, 30)
	inner := NewSubSurface(outer, 2, 1, 5, 10)

	y, x := inner.Origin()
	if y != 5 || x != 5 {
		t.Errorf("Origin = (%d, %d), want (5, 5)", y, x)
	}
}

func TestSubSurfaceClampedToParent(t *testing.T) {
	parent := newFakeSurface(10, 20)
	sub := NewSubSurface(parent, 8, 15, 5, 10)
	if h, w := sub.Size(); h != 2 || w != 5 {
		t.Errorf("Size = (%d, %d), want clamped (2, 5)", h, w)
	}
}

func TestSubSurfaceFill(t *testing.T) {
	parent := newFakeSurface(5, 20)
	sub := NewSubSurface(parent, 1, 2, 2, 6)
	style := Attr{Attrs: tcell.AttrBold}.Style()

	if err := sub.Fill(0, 0, 100, style); err != nil {
		t.Fatal(err)
	}
	for x := 2; x < 8; x++ {
		if parent.styles[1][x] != style {
			t.Errorf("cell %d not filled", x)
		}
	}
	if parent.styles[1][8] == style {
		t.Error("fill escaped the window")
	}
}
