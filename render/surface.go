package render

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/avockley/gridterm/textwidth"
)

// ErrOutOfBounds reports a write starting outside a surface.
var ErrOutOfBounds = errors.New("write outside surface bounds")

const columnFill = ' '

// Surface is a rectangular cell target. Coordinates are row-major and
// surface-relative; writes starting out of bounds fail, writes running
// off the right edge clip silently.
type Surface interface {
	// Size returns the dimensions as rows, cols.
	Size() (int, int)
	// Origin returns the absolute offset of cell (0, 0) as y, x.
	Origin() (int, int)
	// WriteText writes s starting at (y, x) with one style.
	WriteText(y, x int, s string, style tcell.Style) error
	// Fill writes width blank cells starting at (y, x).
	Fill(y, x, width int, style tcell.Style) error
}

// ScreenSurface adapts a tcell screen to the Surface interface.
type ScreenSurface struct {
	scr tcell.Screen

	// Ambig is the cell width charged to East-Asian ambiguous runes.
	Ambig int
}

// NewScreenSurface wraps scr with the narrow ambiguous-width policy.
func NewScreenSurface(scr tcell.Screen) *ScreenSurface {
	return &ScreenSurface{scr: scr, Ambig: textwidth.AmbigNarrow}
}

func (s *ScreenSurface) Size() (int, int) {
	w, h := s.scr.Size()
	return h, w
}

func (s *ScreenSurface) Origin() (int, int) {
	return 0, 0
}

// WriteText places each rune at its display position. Zero-width runes
// are skipped; the cell after a full-width rune is left to the screen's
// own wide-rune handling.
func (s *ScreenSurface) WriteText(y, x int, text string, style tcell.Style) error {
	h, w := s.Size()
	if y < 0 || y >= h || x < 0 || x >= w {
		return ErrOutOfBounds
	}
	for _, r := range text {
		rw := textwidth.RuneWidth(r, s.Ambig)
		if rw == 0 {
			continue
		}
		if x >= w {
			break
		}
		s.scr.SetContent(x, y, r, nil, style)
		x += rw
	}
	return nil
}

func (s *ScreenSurface) Fill(y, x, width int, style tcell.Style) error {
	h, w := s.Size()
	if y < 0 || y >= h || x < 0 || x >= w {
		return ErrOutOfBounds
	}
	for i := 0; i < width && x+i < w; i++ {
		s.scr.SetContent(x+i, y, columnFill, nil, style)
	}
	return nil
}

// SubSurface is a rectangular window into a parent surface. Writes are
// clipped to its bounds and translated to parent coordinates; origins
// chain, so regions registered against a nested surface still resolve
// in absolute screen cells.
type SubSurface struct {
	parent Surface
	y, x   int
	h, w   int
}

// NewSubSurface carves the h by w rectangle at (y, x) out of parent.
// The rectangle is clamped to the parent's bounds.
func NewSubSurface(parent Surface, y, x, h, w int) *SubSurface {
	ph, pw := parent.Size()
	if y < 0 {
		y = 0
	}
	if x < 0 {
		x = 0
	}
	if y+h > ph {
		h = ph - y
	}
	if x+w > pw {
		w = pw - x
	}
	return &SubSurface{parent: parent, y: y, x: x, h: h, w: w}
}

func (s *SubSurface) Size() (int, int) {
	return s.h, s.w
}

func (s *SubSurface) Origin() (int, int) {
	py, px := s.parent.Origin()
	return py + s.y, px + s.x
}

func (s *SubSurface) WriteText(y, x int, text string, style tcell.Style) error {
	if y < 0 || y >= s.h || x < 0 || x >= s.w {
		return ErrOutOfBounds
	}
	return s.parent.WriteText(s.y+y, s.x+x, clipToWidth(text, s.w-x), style)
}

func (s *SubSurface) Fill(y, x, width int, style tcell.Style) error {
	if y < 0 || y >= s.h || x < 0 || x >= s.w {
		return ErrOutOfBounds
	}
	if width > s.w-x {
		width = s.w - x
	}
	return s.parent.Fill(s.y+y, s.x+x, width, style)
}

// clipToWidth cuts text to at most width display cells, without
// substitution. Used only to keep sub-surface writes inside their
// window.
func clipToWidth(text string, width int) string {
	w := 0
	for i, r := range text {
		w += textwidth.RuneWidth(r, textwidth.AmbigNarrow)
		if w > width {
			return text[:i]
		}
	}
	return text
}
