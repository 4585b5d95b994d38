package render

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/avockley/gridterm/config"
	"github.com/avockley/gridterm/markup"
	"github.com/avockley/gridterm/mouse"
)

// Substitution glyphs shown for combining and modifier characters when
// the visibility option is on.
const (
	combiningGlyph = "◌" // dotted circle
	modifierGlyph  = "◦" // white bullet
)

// Context carries the per-frame collaborators a draw call needs. It is
// owned by the frame loop and passed by reference into draw and dispatch
// code; nothing in it is global.
type Context struct {
	Styles Resolver
	Mouse  *mouse.Registry
	Opts   *config.Options
	Log    *log.Logger

	// Debug propagates drawing-surface errors instead of swallowing
	// them at the renderer boundary.
	Debug bool
}

// NewContext returns a context with the default palette, a fresh mouse
// registry, and default options.
func NewContext() *Context {
	return &Context{
		Styles: NewPalette(),
		Mouse:  mouse.NewRegistry(),
		Opts:   config.Default(),
		Log:    log.New(os.Stderr),
	}
}

// subst builds the clip substitution set from the context options. With
// visibility off, combining and modifier substitutes collapse to nothing.
func (ctx *Context) subst() markup.Subst {
	sub := markup.Subst{
		Truncator: ctx.Opts.Truncator,
		OddSpace:  ctx.Opts.OddSpace,
	}
	if ctx.Opts.Visibility {
		sub.Combining = combiningGlyph
		sub.Modifier = modifierGlyph
	}
	return sub
}
