package mouse

import "github.com/gdamore/tcell/v2"

// tcell reports the currently held buttons; curses-style dispatch wants
// press/release transitions. Translator keeps the previously observed
// hold state and synthesizes the transition bits.
type Translator struct {
	prev tcell.ButtonMask
}

// physical button order: tcell.Button1 is primary, Button3 middle,
// Button2 secondary, matching buttons 1..3 of the mask layout.
var buttonOrder = []struct {
	tc  tcell.ButtonMask
	num int
}{
	{tcell.Button1, 1},
	{tcell.Button3, 2},
	{tcell.Button2, 3},
}

func pressedBit(num int) ButtonMask {
	return ButtonMask(2) << (bitsPerButton * (num - 1))
}

func releasedBit(num int) ButtonMask {
	return ButtonMask(1) << (bitsPerButton * (num - 1))
}

// Translate converts a tcell mouse event into the raw bitmask form the
// decoder consumes. Motion with no transition maps to a bare position
// report.
func (t *Translator) Translate(ev *tcell.EventMouse) RawEvent {
	x, y := ev.Position()
	btns := ev.Buttons()

	var state ButtonMask
	if btns&tcell.WheelUp != 0 {
		state |= Button4Pressed // wheel events are instantaneous
	}
	if btns&tcell.WheelDown != 0 {
		state |= Button5Pressed
	}

	held := btns &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	diff := held ^ t.prev
	for _, b := range buttonOrder {
		if diff&b.tc == 0 {
			continue
		}
		if held&b.tc != 0 {
			state |= pressedBit(b.num)
		} else {
			state |= releasedBit(b.num)
		}
	}
	t.prev = held

	mods := ev.Modifiers()
	if mods&tcell.ModCtrl != 0 {
		state |= ButtonCtrl
	}
	if mods&tcell.ModAlt != 0 {
		state |= ButtonAlt
	}
	if mods&tcell.ModShift != 0 {
		state |= ButtonShift
	}

	if state&^(ButtonCtrl|ButtonAlt|ButtonShift) == 0 {
		state |= ReportPosition
	}

	return RawEvent{X: x, Y: y, State: state}
}
