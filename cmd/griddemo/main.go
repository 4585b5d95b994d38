// Command griddemo renders a small scrollable table with styled cells
// and live mouse regions: click to move the cursor, scroll to pan,
// click the help link for an overlay. It demonstrates the frame cycle
// the library is built around: clear regions, draw, wait, dispatch.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/avockley/gridterm/config"
	"github.com/avockley/gridterm/markup"
	"github.com/avockley/gridterm/mouse"
	"github.com/avockley/gridterm/render"
)

type app struct {
	ctx    *render.Context
	root   *render.ScreenSurface
	scr    tcell.Screen
	panes  mouse.Panes
	layout mouse.Layout

	mouseX, mouseY int
	curRow, curCol int
	topRow         int
	showHelp       bool
	quit           bool

	cols []string
	rows [][]string
}

func (a *app) SetMousePos(x, y int) {
	a.mouseX, a.mouseY = x, y
}

// Execute runs the opaque command tokens bound to mouse regions.
func (a *app) Execute(cmd string) error {
	switch cmd {
	case "quit":
		a.quit = true
	case "go-mouse":
		if row, ok := a.layout.RowAt(a.mouseY); ok {
			a.curRow = row
		}
		if col, ok := a.layout.ColAt(a.mouseX); ok {
			a.curCol = col
		}
	case "scroll-up":
		a.topRow = max(0, a.topRow-a.ctx.Opts.ScrollIncr)
	case "scroll-down":
		a.topRow = min(len(a.rows)-1, a.topRow+a.ctx.Opts.ScrollIncr)
	case "toggle-help":
		a.showHelp = !a.showHelp
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

const colWidth = 14

func (a *app) draw() {
	a.ctx.Mouse.Clear()
	a.scr.Clear()
	h, w := a.root.Size()
	base := render.DefaultAttr()

	// Header row.
	a.layout.Cols = a.layout.Cols[:0]
	x := 0
	for i, name := range a.cols {
		a.ctx.Draw(a.root, 0, x, "[:bold underline]"+name+"[:]", base)
		a.layout.Cols = append(a.layout.Cols, mouse.Span{Index: i, Offset: x, Size: colWidth - 1})
		x += colWidth
	}

	// Body rows, one screen row each, header offset 1.
	a.layout.Rows = a.layout.Rows[:0]
	y := 1
	for i := a.topRow; i < len(a.rows) && y < h-1; i++ {
		a.layout.Rows = append(a.layout.Rows, mouse.Span{Index: i, Offset: y, Size: 1})
		x = 0
		for j, cell := range a.rows[i] {
			text := cell
			if i == a.curRow && j == a.curCol {
				text = "[:black on yellow]" + cell + "[:]"
			}
			opts := render.DefaultDrawOpts()
			opts.Width = colWidth - 1
			a.ctx.DrawClipped(a.root, y, x, text, base, opts)
			x += colWidth
		}
		y++
	}

	// The whole grid is one clickable region; the wheel pans it.
	a.ctx.Mouse.Register(a.root, 1, 0, y-1, w, mouse.TopWindow, map[string]mouse.Action{
		"BUTTON1_PRESSED": {Command: "go-mouse"},
		"BUTTON4_PRESSED": {Command: "scroll-up"},
		"BUTTON5_PRESSED": {Command: "scroll-down"},
	})

	status := fmt.Sprintf("row %d col %d  [:onclick toggle-help]help[:]  `q` quits",
		a.curRow, a.curCol)
	a.ctx.Draw(a.root, h-1, 0, markup.FromMarkdown(status), base)

	if a.showHelp {
		box := render.NewSubSurface(a.root, h/4, w/4, h/2, w/2)
		body := markup.Wrap("Click a cell to move the cursor. "+
			"**Scroll** to pan the table. Click *help* again to close.", w/2-4, "", a.ctx.Opts.AmbigWidth)
		lines := make([]string, 0, len(body))
		for _, ln := range body {
			lines = append(lines, ln.Styled)
		}
		a.ctx.Box(box, lines, a.ctx.Styles.Resolve("black on white"), "help")
		a.ctx.Mouse.Register(box, 0, 0, h/2, w/2, mouse.TopWindow, map[string]mouse.Action{
			"BUTTON1_PRESSED": {Command: "toggle-help"},
		})
	}

	a.scr.Show()
}

func sampleRows() [][]string {
	rows := make([][]string, 40)
	for i := range rows {
		rows[i] = []string{
			fmt.Sprintf("item-%02d", i),
			fmt.Sprintf("[:green]%d[:]", i*i),
			"東京テスト値",
		}
	}
	return rows
}

func run(opts *config.Options, logger *log.Logger) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer scr.Fini()
	if opts.MouseIntervalMs > 0 {
		scr.EnableMouse()
	}

	ctx := render.NewContext()
	ctx.Opts = opts
	ctx.Log = logger
	ctx.Debug = opts.Debug

	a := &app{
		ctx:   ctx,
		scr:   scr,
		root:  render.NewScreenSurface(scr),
		panes: mouse.Panes{Active: 1, Pct: 50},
		cols:  []string{"name", "value", "note"},
		rows:  sampleRows(),
	}
	disp := &mouse.Dispatcher{
		Registry: ctx.Mouse,
		Exec:     a,
		Panes:    &a.panes,
		Log:      logger,
	}
	windows := []mouse.Window{{Name: mouse.TopWindow, Surface: a.root}}
	var tr mouse.Translator

	for !a.quit {
		a.draw()
		switch ev := scr.PollEvent().(type) {
		case *tcell.EventResize:
			scr.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				a.quit = true
			}
		case *tcell.EventMouse:
			raw := tr.Translate(ev)
			if ks := disp.Dispatch(raw, windows, a); ks != "" {
				logger.Debug("unhandled", "keystroke", mouse.PrettyKeystroke(ks))
			}
		}
	}
	return nil
}

func main() {
	optPath := flag.String("options", "", "TOML options file")
	logPath := flag.String("log", "", "debug log file")
	flag.Parse()

	logger := log.New(os.Stderr)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.New(f)
		logger.SetLevel(log.DebugLevel)
	}

	opts := config.Default()
	if *optPath != "" {
		var err error
		if opts, err = config.Load(*optPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if err := run(opts, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
