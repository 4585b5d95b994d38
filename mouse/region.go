// Package mouse tracks clickable screen regions for the current draw
// cycle and resolves decoded pointer events against them. The registry
// lifecycle is strictly phased: cleared at the start of every cycle,
// append-only while the frame renders, read-only during dispatch.
package mouse

// Surface is the minimal screen handle a region remembers: enough to
// translate region-relative coordinates to absolute ones and to test
// window containment.
type Surface interface {
	// Origin returns the surface's absolute offset as y, x.
	Origin() (int, int)
	// Size returns the surface dimensions as rows, cols.
	Size() (int, int)
}

// HandlerFunc is a callback bound to a button event. It receives the
// event's cell coordinates and the decoded keystroke name.
type HandlerFunc func(y, x int, keystroke string)

// Action is what a matched region performs: an opaque command token
// string handed to the application's executor, or a direct callback.
// Exactly one side is set.
type Action struct {
	Command string
	Func    HandlerFunc
}

// Region is one clickable rectangle, valid only for the draw cycle that
// registered it.
type Region struct {
	Window  string
	Surface Surface
	Y, X    int
	H, W    int
	Buttons map[string]Action
}

// contains reports whether the absolute cell (x, y) lies in the region.
func (r *Region) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Registry holds the current cycle's regions in registration order.
type Registry struct {
	regions []Region
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Clear drops all regions. The frame loop calls this at the start of
// every draw cycle; regions never persist across cycles.
func (g *Registry) Clear() {
	g.regions = g.regions[:0]
}

// Len returns the number of registered regions.
func (g *Registry) Len() int {
	return len(g.regions)
}

// Register appends a region owned by the named window. If scr is a
// nested sub-surface, y and x are translated by its origin so lookups
// work in absolute coordinates. Overlapping registrations are expected
// and resolved at lookup time.
func (g *Registry) Register(scr Surface, y, x, h, w int, window string, buttons map[string]Action) {
	if scr != nil {
		py, px := scr.Origin()
		y += py
		x += px
	}
	g.regions = append(g.regions, Region{
		Window:  window,
		Surface: scr,
		Y:       y,
		X:       x,
		H:       h,
		W:       w,
		Buttons: buttons,
	})
}

// Lookup scans regions in reverse registration order and returns the
// action of the first one that both contains (x, y) and binds the
// keystroke; the most recently drawn region is topmost and wins.
func (g *Registry) Lookup(x, y int, keystroke string) (Action, bool) {
	for i := len(g.regions) - 1; i >= 0; i-- {
		r := &g.regions[i]
		if !r.contains(x, y) {
			continue
		}
		if act, ok := r.Buttons[keystroke]; ok {
			return act, true
		}
	}
	return Action{}, false
}
