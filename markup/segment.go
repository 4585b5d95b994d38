// Package markup parses inline-styled strings into typed segments and
// provides the width, clipping, and word-wrap primitives built on that
// representation. The marker syntax is "[:name]" to push a style and
// "[:]" to reset to the default; everything between markers is literal
// text.
package markup

import (
	"regexp"
	"strings"
)

// Reset is the style token produced by the bare "[:]" marker.
const Reset = ":"

var markerRE = regexp.MustCompile(`\[:[^\]]*?\]`)

// Segment is one typed piece of an annotated string: a style token with
// empty Text, or a literal run with empty Style.
type Segment struct {
	Style string
	Text  string
}

// IsStyle reports whether the segment is a style change rather than a
// literal run.
func (s Segment) IsStyle() bool { return s.Style != "" }

// Segments decomposes s into its ordered style and literal segments.
// Empty literal runs are dropped. In literal mode marker interpretation
// is disabled and the whole string is one literal segment.
func Segments(s string, literal bool) []Segment {
	if literal {
		if s == "" {
			return nil
		}
		return []Segment{{Text: s}}
	}
	var segs []Segment
	last := 0
	for _, m := range markerRE.FindAllStringIndex(s, -1) {
		if text := s[last:m[0]]; text != "" {
			segs = append(segs, Segment{Text: text})
		}
		name := s[m[0]+2 : m[1]-1]
		if name == "" {
			name = Reset
		}
		segs = append(segs, Segment{Style: name})
		last = m[1]
	}
	if text := s[last:]; text != "" {
		segs = append(segs, Segment{Text: text})
	}
	return segs
}

// Join reassembles segments into annotated text. For input without empty
// literal runs, Join(Segments(s, false)) == s.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		switch {
		case seg.Style == Reset:
			b.WriteString("[:]")
		case seg.Style != "":
			b.WriteString("[:")
			b.WriteString(seg.Style)
			b.WriteString("]")
		default:
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

var (
	mdCodeRE      = regexp.MustCompile("`(.*?)`")
	mdBoldRE      = regexp.MustCompile(`\*\*(.*?)\*\*`)
	mdItalicRE    = regexp.MustCompile(`\*(.*?)\*`)
	mdUnderlineRE = regexp.MustCompile(`\b_(.*?)_\b`)
)

// FromMarkdown rewrites a small markdown shorthand into marker syntax:
// backticks become code spans, double asterisks bold, single asterisks
// italic, and underscore-delimited words underline. The pass is one-way
// and applied once; the produced markers contain none of the shorthand
// characters, so later rules cannot rewrite inside them.
func FromMarkdown(s string) string {
	s = mdCodeRE.ReplaceAllString(s, "[:code]$1[:]")
	s = mdBoldRE.ReplaceAllString(s, "[:bold]$1[:]")
	s = mdItalicRE.ReplaceAllString(s, "[:italic]$1[:]")
	s = mdUnderlineRE.ReplaceAllString(s, "[:underline]$1[:]")
	return s
}
