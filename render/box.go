package render

import (
	"strings"

	"github.com/avockley/gridterm/markup"
)

// Box drawing runes, single-line style.
const (
	boxTL = '┌'
	boxTR = '┐'
	boxBL = '└'
	boxBR = '┘'
	boxH  = '─'
	boxV  = '│'
)

// Box draws a bordered panel filling dst: border on the edges, the body
// lines drawn clipped inside with one row and two columns of margin, and
// the title right-aligned on the top edge. Body lines may carry markup.
func (ctx *Context) Box(dst Surface, lines []string, base Attr, title string) {
	h, w := dst.Size()
	if h < 2 || w < 2 {
		return
	}
	style := base.Style()

	top := string(boxTL) + strings.Repeat(string(boxH), w-2) + string(boxTR)
	bottom := string(boxBL) + strings.Repeat(string(boxH), w-2) + string(boxBR)
	_ = dst.Fill(0, 0, w, style)
	_ = dst.WriteText(0, 0, top, style)
	for y := 1; y < h-1; y++ {
		_ = dst.Fill(y, 0, w, style)
		_ = dst.WriteText(y, 0, string(boxV), style)
		_ = dst.WriteText(y, w-1, string(boxV), style)
	}
	_ = dst.WriteText(h-1, 0, bottom, style)

	for i, line := range lines {
		if i+1 >= h-1 {
			break
		}
		ctx.Draw(dst, i+1, 2, line, base)
	}

	if title != "" {
		caption := "| " + title + " |"
		x := w - markup.DisplayWidth(caption, 0, true, ctx.Opts.AmbigWidth) - 4
		if x < 1 {
			x = 1
		}
		ctx.Draw(dst, 0, x, caption, base)
	}
}
