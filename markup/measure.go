package markup

import "github.com/avockley/gridterm/textwidth"

type widthKey struct {
	text     string
	maxWidth int
	literal  bool
	ambig    int
}

var widthCache = newLRUCache[widthKey, int](cacheSize)

// DisplayWidth returns the total display width of s. Style markers
// contribute zero width. When maxWidth > 0 the scan stops as soon as the
// running sum exceeds it; the returned value may then overshoot the true
// width, serving as a fast existence check rather than an exact measure.
func DisplayWidth(s string, maxWidth int, literal bool, ambig int) int {
	key := widthKey{text: s, maxWidth: maxWidth, literal: literal, ambig: ambig}
	if w, ok := widthCache.get(key); ok {
		return w
	}
	w := 0
scan:
	for _, seg := range Segments(s, literal) {
		if seg.IsStyle() {
			continue
		}
		for _, r := range seg.Text {
			w += textwidth.RuneWidth(r, ambig)
			if maxWidth > 0 && w > maxWidth {
				break scan
			}
		}
	}
	widthCache.put(key, w)
	return w
}
