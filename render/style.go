package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Resolver maps a style token from a markup marker to an attribute.
type Resolver interface {
	Resolve(name string) Attr
}

// attrWords are the recognized attribute keywords in a style token.
var attrWords = map[string]tcell.AttrMask{
	"bold":      tcell.AttrBold,
	"italic":    tcell.AttrItalic,
	"underline": tcell.AttrUnderline,
	"reverse":   tcell.AttrReverse,
	"dim":       tcell.AttrDim,
	"blink":     tcell.AttrBlink,
}

// Palette resolves style tokens. Defined names take priority; anything
// else is parsed as a space-separated attribute and color description,
// "fg" or "fg on bg", with unknown words ignored.
type Palette struct {
	names map[string]Attr
}

// NewPalette returns a palette with the built-in markup styles defined.
func NewPalette() *Palette {
	p := &Palette{names: make(map[string]Attr)}
	p.Define("code", Attr{Attrs: tcell.AttrReverse})
	p.Define("clickable", Attr{Attrs: tcell.AttrUnderline})
	return p
}

// Define binds a name to an attribute, overriding token parsing for it.
func (p *Palette) Define(name string, a Attr) {
	p.names[name] = a
}

// Resolve returns the attribute for a style token. Unknown tokens
// resolve to the zero attribute, which leaves the base style untouched
// when merged.
func (p *Palette) Resolve(name string) Attr {
	if a, ok := p.names[name]; ok {
		return a
	}

	var a Attr
	bg := false
	for _, word := range strings.Fields(name) {
		if word == "on" {
			bg = true
			continue
		}
		if mask, ok := attrWords[word]; ok {
			a.Attrs |= mask
			continue
		}
		c, ok := parseColor(word)
		if !ok {
			continue
		}
		if bg {
			a.Bg = c
		} else {
			a.Fg = c
		}
	}
	return a
}

// parseColor accepts a #rrggbb hex value or a named terminal color.
func parseColor(word string) (tcell.Color, bool) {
	if strings.HasPrefix(word, "#") {
		c, err := colorful.Hex(word)
		if err != nil {
			return 0, false
		}
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
	}
	if c, ok := tcell.ColorNames[word]; ok {
		return c, true
	}
	return 0, false
}
