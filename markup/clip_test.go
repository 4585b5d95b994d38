package markup

import (
	"strings"
	"testing"
)

func testSubst() Subst {
	return Subst{Truncator: "…", OddSpace: "·", Combining: "◌", Modifier: "◦"}
}

func TestClipTruncation(t *testing.T) {
	res := Clip("hello world", 5, testSubst(), 1)
	if res.Text != "hell…" {
		t.Errorf("Text = %q, want %q", res.Text, "hell…")
	}
	if res.Width != 5 {
		t.Errorf("Width = %d, want 5", res.Width)
	}
}

func TestClipUnboundedSentinel(t *testing.T) {
	long := strings.Repeat("x", 500)
	res := Clip(long, 0, testSubst(), 1)
	if res.Text != long || res.Width != 500 {
		t.Errorf("width 0 must never truncate, got %d cells", res.Width)
	}
}

func TestClipBoundNeverExceeded(t *testing.T) {
	inputs := []string{
		"hello world",
		"短い中文字列テスト",
		"a中b文c字d",
		strings.Repeat("中", 20),
		"plain ascii text that is long enough",
	}
	for _, in := range inputs {
		for bound := 1; bound <= 12; bound++ {
			res := Clip(in, bound, testSubst(), 1)
			if res.Width > bound {
				t.Errorf("Clip(%q, %d) width = %d, exceeds bound", in, bound, res.Width)
			}
		}
	}
}

func TestClipRoundTrip(t *testing.T) {
	in := "just fits"
	w := DisplayWidth(in, 0, true, 1)
	for k := 0; k <= 3; k++ {
		res := Clip(in, w+k, testSubst(), 1)
		if res.Text != in {
			t.Errorf("Clip at bound+%d altered text: %q", k, res.Text)
		}
		if res.Width != w {
			t.Errorf("Clip at bound+%d width = %d, want %d", k, res.Width, w)
		}
	}
}

func TestClipWideStraddle(t *testing.T) {
	// A full-width rune straddling the truncation point may clip one
	// cell early but must not overflow.
	res := Clip("ab中def", 4, testSubst(), 1)
	if res.Width > 4 {
		t.Errorf("straddling wide rune overflowed: width %d", res.Width)
	}
	if !strings.HasSuffix(res.Text, "…") {
		t.Errorf("expected truncator suffix, got %q", res.Text)
	}
}

func TestClipSubstitutions(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sub  Subst
		want string
	}{
		{"control to odd space", "a\x07b", testSubst(), "a·b"},
		{"no-break space to odd space", "a b", testSubst(), "a·b"},
		{"zero width joiner to combining glyph", "a‍b", testSubst(), "a◌b"},
		{"modifier letter to modifier glyph", "aʰb", testSubst(), "a◦b"},
		{"plain space kept", "a b", testSubst(), "a b"},
		{
			"visibility off collapses",
			"a‍ʰb",
			Subst{Truncator: "…", OddSpace: "·"},
			"ab",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Clip(tt.in, 0, tt.sub, 1)
			if res.Text != tt.want {
				t.Errorf("Clip(%q) = %q, want %q", tt.in, res.Text, tt.want)
			}
		})
	}
}

func TestClipSubstituteGlyphWidth(t *testing.T) {
	res := Clip("‍‍", 0, testSubst(), 1)
	if res.Width != 2 {
		t.Errorf("two substituted glyphs = width %d, want 2", res.Width)
	}
	res = Clip("‍‍", 0, Subst{Truncator: "…"}, 1)
	if res.Width != 0 {
		t.Errorf("collapsed substitutes = width %d, want 0", res.Width)
	}
}
