package mouse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Executor runs an opaque command token against the application. The
// dispatcher never interprets the token.
type Executor interface {
	Execute(cmd string) error
}

// View receives the click position before a matched action runs, so a
// bound command can read "where the mouse was" from its target.
type View interface {
	SetMousePos(x, y int)
}

// headerRows is the fixed header offset subtracted from the recorded
// mouse row.
const headerRows = 1

// Pane window names used by the focus-switch logic.
const (
	TopWindow    = "top"
	BottomWindow = "bot"
)

// Panes tracks which half of a split layout is active. Pct carries the
// split sign convention: positive puts pane 1 on top, negative pane 2.
type Panes struct {
	Active int // 1 or 2
	Pct    int
}

func (p *Panes) topActive() bool {
	return (p.Active == 2 && p.Pct < 0) || (p.Active == 1 && p.Pct > 0)
}

func (p *Panes) bottomActive() bool {
	return (p.Active == 1 && p.Pct < 0) || (p.Active == 2 && p.Pct > 0)
}

// Flip switches the active pane.
func (p *Panes) Flip() {
	if p.Active == 1 {
		p.Active = 2
	} else {
		p.Active = 1
	}
}

// Dispatcher resolves decoded pointer events against the region
// registry and invokes the matched action.
type Dispatcher struct {
	Registry *Registry
	Exec     Executor
	Panes    *Panes
	Log      *log.Logger
}

// Dispatch decodes raw against the supplied windows, applies pane focus
// switching, resolves the topmost matching region, and invokes its
// action. A click into the inactive pane's window flips focus before
// resolution. Returns the empty string when the event was handled, else
// the decoded keystroke for fallback handling by the caller. Action
// failures are surfaced through the logger at this boundary only and
// never reach the registry's next-cycle reset.
func (d *Dispatcher) Dispatch(raw RawEvent, windows []Window, view View) string {
	ev := Decode(raw, windows)

	if d.Panes != nil {
		inTop := ev.In(TopWindow)
		inBottom := ev.In(BottomWindow)
		if (d.Panes.bottomActive() && inTop && !inBottom) ||
			(d.Panes.topActive() && inBottom && !inTop) {
			d.Panes.Flip()
		}
	}

	act, ok := d.Registry.Lookup(ev.X, ev.Y, ev.Keystroke)
	if view != nil {
		view.SetMousePos(ev.X, ev.Y-headerRows)
	}
	if !ok {
		return ev.Keystroke
	}

	if err := d.invoke(act, ev); err != nil && d.Log != nil {
		d.Log.Error("mouse action failed", "keystroke", ev.Keystroke, "err", err)
	}
	return ""
}

// invoke runs the matched action. Command strings are split on
// whitespace and executed in sequence; callbacks receive (y, x,
// keystroke). Panics from either are converted to errors at this
// boundary.
func (d *Dispatcher) invoke(act Action, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action panicked: %v", r)
		}
	}()

	if act.Func != nil {
		act.Func(ev.Y, ev.X, ev.Keystroke)
		return nil
	}
	for _, cmd := range strings.Fields(act.Command) {
		if d.Exec == nil {
			return fmt.Errorf("no executor for command %q", cmd)
		}
		if err := d.Exec.Execute(cmd); err != nil {
			return fmt.Errorf("command %q: %w", cmd, err)
		}
	}
	return nil
}
