package render

import (
	"fmt"
	"strings"

	"github.com/avockley/gridterm/markup"
	"github.com/avockley/gridterm/mouse"
)

// stylePrecedence is the precedence markup style tokens combine at,
// above base attributes so an inline span wins over the row style.
const stylePrecedence = 8

// DrawOpts controls a DrawClipped call.
type DrawOpts struct {
	// Width is the explicit cell budget per chunk; negative measures
	// each chunk against the remaining surface width.
	Width int
	// Clear blank-fills the allotted range before writing.
	Clear bool
	// RTL draws leftward, ending at the original x.
	RTL bool
	// Literal disables marker interpretation.
	Literal bool
}

// DefaultDrawOpts is the common case: auto width, clearing, left to right.
func DefaultDrawOpts() DrawOpts {
	return DrawOpts{Width: -1, Clear: true}
}

// Draw writes styled text at y, x with default options and returns the
// total display width drawn.
func (ctx *Context) Draw(dst Surface, y, x int, s string, base Attr) int {
	n, _ := ctx.DrawClipped(dst, y, x, s, base, DefaultDrawOpts())
	return n
}

// DrawClipped writes the annotated string s into dst at y, x, clipping
// each literal chunk to its allotted width with the configured truncator
// and combining the chunk styles into base. "onclick..." tokens render
// as clickable and register a primary-button-release mouse region over
// the drawn cells. The reset token restores base. Returns the total
// display width drawn; surface errors stop the draw and are swallowed
// unless the context is in debug mode.
func (ctx *Context) DrawClipped(dst Surface, y, x int, s string, base Attr, o DrawOpts) (int, error) {
	windowWidth := 80
	if dst != nil {
		_, windowWidth = dst.Size()
	}

	total := 0
	cattr := base
	link := ""
	ambig := ctx.Opts.AmbigWidth
	sub := ctx.subst()

	for _, seg := range markup.Segments(s, o.Literal) {
		if seg.IsStyle() {
			name := seg.Style
			if strings.HasPrefix(name, "onclick") {
				link = name
				name = "clickable"
			}
			if name == markup.Reset {
				link = ""
				cattr = base
				continue
			}
			cattr = cattr.Update(ctx.Styles.Resolve(name), stylePrecedence)
			continue
		}

		chunk := seg.Text
		chunkw := o.Width
		if chunkw < 0 {
			chunkw = markup.DisplayWidth(chunk, windowWidth-total, true, ambig)
		}
		if o.RTL {
			chunkw = min(chunkw, x-1)
		} else {
			chunkw = min(chunkw, windowWidth-x-1)
		}
		if chunkw <= 0 || dst == nil {
			return total, nil
		}

		res := markup.Clip(chunk, chunkw, sub, ambig)
		var err error
		if o.RTL {
			err = dst.WriteText(y, x-res.Width-1, res.Text, cattr.Style())
		} else {
			if o.Clear {
				err = dst.Fill(y, x, chunkw, cattr.Style())
			}
			if werr := dst.WriteText(y, x, res.Text, cattr.Style()); err == nil {
				err = werr
			}
		}
		if err != nil {
			if ctx.Debug {
				return total, fmt.Errorf("draw y=%d x=%d w=%d: %w", y, x, chunkw, err)
			}
			if ctx.Log != nil {
				ctx.Log.Debug("draw stopped", "y", y, "x", x, "err", err)
			}
			return total, nil
		}

		if link != "" && ctx.Mouse != nil {
			ctx.Mouse.Register(dst, y, x, 1, res.Width, "", map[string]mouse.Action{
				mouse.Button1ReleasedName: {Command: link},
			})
		}

		x += res.Width
		total += res.Width

		if res.Width < markup.DisplayWidth(chunk, 0, true, ambig) {
			break // chunk was truncated, nothing further fits
		}
	}
	return total, nil
}
