package markup

import (
	"strings"

	"github.com/avockley/gridterm/textwidth"
)

// Line is one wrapped output line: the style-preserving text and the
// plain text with markers removed.
type Line struct {
	Styled string
	Plain  string
}

// Wrap reflows a styled multi-line text block to the given column width.
// Each input line is first run through the markdown shorthand pass, then
// word-wrapped on its literal text only; markers are zero width and are
// re-attached to whichever output line their literal run landed on,
// splitting runs that straddle a wrap boundary. Output lines after the
// first of an input line are prefixed with indent (styled side only).
// Leftover markers are flushed as marker-only pairs with empty plain
// text.
func Wrap(text string, width int, indent string, ambig int) []Line {
	var out []Line
	if text == "" {
		return out
	}
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if line == "" {
			out = append(out, Line{})
			continue
		}
		out = append(out, wrapLine(line, width, indent, ambig)...)
	}
	return out
}

func wrapLine(line string, width int, indent string, ambig int) []Line {
	line = FromMarkdown(line)

	// Alternating literal/marker chunks, starting and ending with a
	// literal (possibly empty). Consumed as a queue below.
	var chunks []string
	var plain strings.Builder
	last := 0
	for _, m := range markerRE.FindAllStringIndex(line, -1) {
		chunks = append(chunks, line[last:m[0]], line[m[0]:m[1]])
		plain.WriteString(line[last:m[0]])
		last = m[1]
	}
	chunks = append(chunks, line[last:])
	plain.WriteString(line[last:])

	var out []Line
	for lineno, txt := range greedyWrap(plain.String(), width, ambig) {
		t := []rune(txt)
		var styled strings.Builder
		for len(chunks) > 0 {
			c := []rune(chunks[0])
			if len(c) > len(t) {
				// Wrap boundary falls inside this literal run;
				// the remainder carries over to the next line.
				styled.WriteString(string(t))
				chunks[0] = string(c[len(t):])
				break
			}
			if len(chunks) == 1 {
				styled.WriteString(chunks[0])
				chunks = nil
			} else {
				chunks = chunks[1:]
				styled.WriteString(string(t[:len(c)]))
				styled.WriteString(chunks[0])
				chunks = chunks[1:]
			}
			t = t[len(c):]
		}
		s := styled.String()
		if lineno > 0 {
			s = indent + s
		}
		out = append(out, Line{Styled: s, Plain: txt})
	}

	for _, c := range chunks {
		if c == "" {
			continue
		}
		out = append(out, Line{Styled: c})
	}
	return out
}

// greedyWrap folds plain text to width display columns, preserving all
// whitespace: runs are never dropped at fold points, only carried to the
// next line. Runs wider than a whole line are split mid-run.
func greedyWrap(s string, width int, ambig int) []string {
	if s == "" {
		return nil
	}
	if width <= 0 {
		return []string{s}
	}

	var lines []string
	var cur []rune
	curW := 0
	flush := func() {
		lines = append(lines, string(cur))
		cur = nil
		curW = 0
	}
	appendRun := func(run []rune, w int) {
		cur = append(cur, run...)
		curW += w
	}

	for _, run := range splitRuns(s) {
		rw := 0
		for _, r := range run {
			rw += textwidth.RuneWidth(r, ambig)
		}
		if curW+rw <= width {
			appendRun(run, rw)
			continue
		}
		if len(cur) > 0 {
			flush()
		}
		if rw <= width {
			appendRun(run, rw)
			continue
		}
		for _, r := range run {
			w := textwidth.RuneWidth(r, ambig)
			if curW+w > width && len(cur) > 0 {
				flush()
			}
			appendRun([]rune{r}, w)
		}
	}
	if len(cur) > 0 {
		flush()
	}
	return lines
}

// splitRuns splits s into maximal runs of whitespace and non-whitespace.
func splitRuns(s string) [][]rune {
	var runs [][]rune
	var cur []rune
	curSpace := false
	for _, r := range s {
		space := r == ' ' || r == '\t'
		if len(cur) > 0 && space != curSpace {
			runs = append(runs, cur)
			cur = nil
		}
		cur = append(cur, r)
		curSpace = space
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}
