package mouse

import "strconv"

// ButtonMask is the raw pointer-event button-state bitmask, laid out the
// way curses-style drivers report it: five state bits per button for
// five buttons, then the modifier and position-report bits.
type ButtonMask uint32

// bitsPerButton is the stride between consecutive buttons' state bits.
const bitsPerButton = 5

const (
	Button1Released ButtonMask = 1 << (bitsPerButton * iota)
	Button2Released
	Button3Released
	Button4Released
	Button5Released
)

const (
	Button1Pressed ButtonMask = 2 << (bitsPerButton * iota)
	Button2Pressed
	Button3Pressed
	Button4Pressed
	Button5Pressed
)

const (
	Button1Clicked ButtonMask = 4 << (bitsPerButton * iota)
	Button2Clicked
	Button3Clicked
	Button4Clicked
	Button5Clicked
)

const (
	Button1DoubleClicked ButtonMask = 8 << (bitsPerButton * iota)
	Button2DoubleClicked
	Button3DoubleClicked
	Button4DoubleClicked
	Button5DoubleClicked
)

const (
	ButtonCtrl     ButtonMask = 1 << 25
	ButtonShift    ButtonMask = 1 << 26
	ButtonAlt      ButtonMask = 1 << 27
	ReportPosition ButtonMask = 1 << 28
)

// Keystroke name for the primary button release, the identifier click
// regions registered during rendering are keyed by.
const Button1ReleasedName = "BUTTON1_RELEASED"

// buttonNames maps every known button event bit to its keystroke name.
// Built once at startup; decode looks residual masks up here and falls
// back to the numeric value for unknown combinations.
var buttonNames = map[ButtonMask]string{
	Button1Released:      "BUTTON1_RELEASED",
	Button1Pressed:       "BUTTON1_PRESSED",
	Button1Clicked:       "BUTTON1_CLICKED",
	Button1DoubleClicked: "BUTTON1_DOUBLE_CLICKED",
	Button2Released:      "BUTTON2_RELEASED",
	Button2Pressed:       "BUTTON2_PRESSED",
	Button2Clicked:       "BUTTON2_CLICKED",
	Button2DoubleClicked: "BUTTON2_DOUBLE_CLICKED",
	Button3Released:      "BUTTON3_RELEASED",
	Button3Pressed:       "BUTTON3_PRESSED",
	Button3Clicked:       "BUTTON3_CLICKED",
	Button3DoubleClicked: "BUTTON3_DOUBLE_CLICKED",
	Button4Released:      "BUTTON4_RELEASED",
	Button4Pressed:       "BUTTON4_PRESSED",
	Button4Clicked:       "BUTTON4_CLICKED",
	Button4DoubleClicked: "BUTTON4_DOUBLE_CLICKED",
	Button5Released:      "BUTTON5_RELEASED",
	Button5Pressed:       "BUTTON5_PRESSED",
	Button5Clicked:       "BUTTON5_CLICKED",
	Button5DoubleClicked: "BUTTON5_DOUBLE_CLICKED",
	ReportPosition:       "REPORT_MOUSE_POSITION",
}

// prettyNames maps wheel event names to their command-facing aliases.
var prettyNames = map[string]string{
	"BUTTON4_PRESSED": "ScrollwheelUp",
	"BUTTON5_PRESSED": "ScrollwheelDown",
}

// PrettyKeystroke returns the command-facing name for a decoded
// keystroke, preserving any modifier prefix.
func PrettyKeystroke(ks string) string {
	prefix := ""
	if i := lastModifierEnd(ks); i > 0 {
		prefix, ks = ks[:i], ks[i:]
	}
	if pretty, ok := prettyNames[ks]; ok {
		return prefix + pretty
	}
	return prefix + ks
}

func lastModifierEnd(ks string) int {
	end := 0
	for {
		advanced := false
		for _, mod := range []string{"CTRL-", "ALT-", "SHIFT-"} {
			if len(ks) >= end+len(mod) && ks[end:end+len(mod)] == mod {
				end += len(mod)
				advanced = true
			}
		}
		if !advanced {
			return end
		}
	}
}

// RawEvent is the low-level pointer report: device id, cell coordinates,
// wheel position, and the raw button-state bitmask.
type RawEvent struct {
	ID      int
	X, Y, Z int
	State   ButtonMask
}

// Window is a named rectangle tested for containment during decode.
type Window struct {
	Name    string
	Surface Surface
}

// Event is a decoded pointer event: the normalized keystroke name with
// modifier prefixes, the cell coordinates, and the names of every
// supplied window whose bounds contain the point.
type Event struct {
	Keystroke string
	Y, X      int
	Found     []string
}

// In reports whether the event landed inside the named window.
func (e *Event) In(name string) bool {
	for _, f := range e.Found {
		if f == name {
			return true
		}
	}
	return false
}

// Decode normalizes a raw pointer event. Modifier bits are stripped and
// recorded in the fixed order CTRL, ALT, SHIFT as keystroke prefixes;
// the residual mask is named from the button table, falling back to its
// numeric value. Windows are tested in the order supplied and every
// match is collected.
func Decode(raw RawEvent, windows []Window) Event {
	state := raw.State
	clicktype := ""
	if state&ButtonCtrl != 0 {
		clicktype += "CTRL-"
		state &^= ButtonCtrl
	}
	if state&ButtonAlt != 0 {
		clicktype += "ALT-"
		state &^= ButtonAlt
	}
	if state&ButtonShift != 0 {
		clicktype += "SHIFT-"
		state &^= ButtonShift
	}

	name, ok := buttonNames[state]
	if !ok {
		name = strconv.FormatUint(uint64(state), 10)
	}

	ev := Event{Keystroke: clicktype + name, Y: raw.Y, X: raw.X}
	for _, win := range windows {
		if win.Surface == nil {
			continue
		}
		py, px := win.Surface.Origin()
		mh, mw := win.Surface.Size()
		if raw.Y >= py && raw.Y < py+mh && raw.X >= px && raw.X < px+mw {
			ev.Found = append(ev.Found, win.Name)
		}
	}
	return ev
}
