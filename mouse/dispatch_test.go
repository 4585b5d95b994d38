package mouse

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

type recordingExec struct {
	cmds []string
	fail string
}

func (e *recordingExec) Execute(cmd string) error {
	e.cmds = append(e.cmds, cmd)
	if cmd == e.fail {
		return errors.New("boom")
	}
	return nil
}

type recordingView struct {
	x, y int
	set  bool
}

func (v *recordingView) SetMousePos(x, y int) {
	v.x, v.y = x, y
	v.set = true
}

func testDispatcher(exec Executor) *Dispatcher {
	return &Dispatcher{
		Registry: NewRegistry(),
		Exec:     exec,
		Log:      log.New(io.Discard),
	}
}

func TestDispatchCommandSequence(t *testing.T) {
	exec := &recordingExec{}
	d := testDispatcher(exec)
	d.Registry.Register(nil, 0, 0, 5, 20, "", map[string]Action{
		"BUTTON1_PRESSED": {Command: "sheet go-mouse"},
	})

	got := d.Dispatch(RawEvent{X: 3, Y: 2, State: Button1Pressed}, nil, nil)
	if got != "" {
		t.Errorf("handled event returned keystroke %q", got)
	}
	if len(exec.cmds) != 2 || exec.cmds[0] != "sheet" || exec.cmds[1] != "go-mouse" {
		t.Errorf("executed = %v", exec.cmds)
	}
}

func TestDispatchCallbackArgs(t *testing.T) {
	d := testDispatcher(nil)
	var gy, gx int
	var gks string
	d.Registry.Register(nil, 0, 0, 5, 20, "", map[string]Action{
		"BUTTON1_RELEASED": {Func: func(y, x int, ks string) {
			gy, gx, gks = y, x, ks
		}},
	})

	d.Dispatch(RawEvent{X: 4, Y: 1, State: Button1Released}, nil, nil)
	if gy != 1 || gx != 4 || gks != "BUTTON1_RELEASED" {
		t.Errorf("callback got (%d, %d, %q)", gy, gx, gks)
	}
}

func TestDispatchUnmatchedReturnsKeystroke(t *testing.T) {
	d := testDispatcher(&recordingExec{})
	got := d.Dispatch(RawEvent{X: 0, Y: 0, State: ButtonCtrl | Button2Pressed}, nil, nil)
	if got != "CTRL-BUTTON2_PRESSED" {
		t.Errorf("unhandled event returned %q", got)
	}
}

func TestDispatchSetsMousePos(t *testing.T) {
	d := testDispatcher(nil)
	view := &recordingView{}

	d.Dispatch(RawEvent{X: 12, Y: 6, State: ReportPosition}, nil, view)
	if !view.set {
		t.Fatal("view position never set")
	}
	if view.x != 12 || view.y != 5 {
		t.Errorf("mouse pos = (%d, %d), want (12, 5) after header offset", view.x, view.y)
	}
}

func TestDispatchCommandErrorNotPropagated(t *testing.T) {
	exec := &recordingExec{fail: "bad"}
	d := testDispatcher(exec)
	d.Registry.Register(nil, 0, 0, 5, 20, "", map[string]Action{
		"BUTTON1_PRESSED": {Command: "ok bad never"},
	})

	got := d.Dispatch(RawEvent{X: 1, Y: 1, State: Button1Pressed}, nil, nil)
	if got != "" {
		t.Errorf("matched event returned keystroke %q", got)
	}
	// The sequence stops at the failing command.
	if len(exec.cmds) != 2 {
		t.Errorf("executed = %v, want stop after failure", exec.cmds)
	}
}

func TestDispatchCallbackPanicContained(t *testing.T) {
	d := testDispatcher(nil)
	d.Registry.Register(nil, 0, 0, 5, 20, "", map[string]Action{
		"BUTTON1_PRESSED": {Func: func(y, x int, ks string) {
			panic("handler bug")
		}},
	})

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic escaped dispatch: %v", r)
		}
	}()
	d.Dispatch(RawEvent{X: 1, Y: 1, State: Button1Pressed}, nil, nil)
}

func TestDispatchPaneFlip(t *testing.T) {
	windows := []Window{
		{Name: TopWindow, Surface: stubSurface{oy: 0, ox: 0, h: 10, w: 80}},
		{Name: BottomWindow, Surface: stubSurface{oy: 10, ox: 0, h: 10, w: 80}},
	}

	tests := []struct {
		name       string
		panes      Panes
		y          int
		wantActive int
	}{
		{"bottom active, click top", Panes{Active: 1, Pct: -1}, 5, 2},
		{"top active, click bottom", Panes{Active: 1, Pct: 1}, 15, 2},
		{"top active, click top", Panes{Active: 1, Pct: 1}, 5, 1},
		{"negative pct, pane 2 on top, click bottom", Panes{Active: 2, Pct: -1}, 15, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDispatcher(nil)
			panes := tt.panes
			d.Panes = &panes
			d.Dispatch(RawEvent{X: 5, Y: tt.y, State: Button1Pressed}, windows, nil)
			if panes.Active != tt.wantActive {
				t.Errorf("Active = %d, want %d", panes.Active, tt.wantActive)
			}
		})
	}
}
