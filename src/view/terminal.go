package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"golife/src/session"
)

const (
	leftColumnWidth = 30
	minWindowHeight = 12
)

//Terminal paints session render models with gocui and converts every
//keystroke into a session.Event. It never interprets commands: the
//session owns the key-to-command mapping, the terminal only decodes.
type Terminal struct {
	g      *gocui.Gui
	events chan session.Event
	model  session.RenderModel

	liveFiller string
	deadFiller string
	cursorLive string
	cursorDead string
}

func NewTerminal() *Terminal {
	t := &Terminal{
		events:     make(chan session.Event, 16),
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
		cursorLive: aurora.Reverse("█").String(),
		cursorDead: aurora.Reverse("░").String(),
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.SetManagerFunc(t.layout)

	//hard exit, independent of the session state machine
	err = t.g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone,
		func(*gocui.Gui, *gocui.View) error { return gocui.ErrQuit })
	if err != nil {
		log.Panicln(err)
	}
	return t
}

//Events is the decoded, ordered, single-consumer input stream.
func (t *Terminal) Events() <-chan session.Event {
	return t.events
}

//Paint schedules a repaint for the given model. Safe to call from
//the session goroutine: the model swap happens on the UI loop.
func (t *Terminal) Paint(m session.RenderModel) {
	t.g.Update(func(*gocui.Gui) error {
		t.model = m
		return nil
	})
}

//Run blocks in the UI main loop until Stop or Ctrl-C.
func (t *Terminal) Run() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
	close(t.events)
}

//Stop ends the UI main loop.
func (t *Terminal) Stop() {
	t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
}

//edit is the catch-all key decoder: gocui feeds every keystroke of
//the focused input view through here.
func (t *Terminal) edit(_ *gocui.View, key gocui.Key, ch rune, _ gocui.Modifier) {
	var ev session.Event
	switch key {
	case gocui.KeyArrowUp:
		ev = session.Event{Kind: session.EventUp}
	case gocui.KeyArrowDown:
		ev = session.Event{Kind: session.EventDown}
	case gocui.KeyArrowLeft:
		ev = session.Event{Kind: session.EventLeft}
	case gocui.KeyArrowRight:
		ev = session.Event{Kind: session.EventRight}
	case gocui.KeyEnter:
		ev = session.Event{Kind: session.EventEnter}
	case gocui.KeyEsc:
		ev = session.Event{Kind: session.EventEsc}
	case gocui.KeySpace:
		ev = session.Event{Kind: session.EventSpace}
	case gocui.KeyBackspace, gocui.KeyBackspace2:
		ev = session.Event{Kind: session.EventBackspace}
	default:
		if ch == 0 {
			return
		}
		ev = session.Event{Kind: session.EventRune, Rune: ch}
	}
	select {
	case t.events <- ev:
	default:
		//the session has stopped consuming; drop rather than block
		//the UI loop
	}
}

func (t *Terminal) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxY < minWindowHeight {
		if err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			return err
		}
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		_ = g.DeleteView("help")
		return nil
	}

	if err := t.headerLayout(g, 2, t.model.Title); err != nil {
		return err
	}

	if v, err := g.SetView("status", 0, 2, leftColumnWidth, maxY-4); err == nil || err == gocui.ErrUnknownView {
		v.Title = "Status"
		v.Frame = true
		t.renderStatus(v)
	} else {
		return err
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 2, maxX-1, maxY-4); err == nil || err == gocui.ErrUnknownView {
		v.Title = "Field"
		v.Frame = true
		if t.model.Menu != nil {
			t.renderMenu(v)
		} else {
			t.renderField(v)
		}
	} else {
		return err
	}

	if v, err := g.SetView("help", -1, maxY-4, maxX, maxY-1); err == nil || err == gocui.ErrUnknownView {
		v.Frame = false
		t.renderLegend(v)
	} else {
		return err
	}

	//hidden single-cell view that funnels raw keystrokes to edit
	if v, err := g.SetView("input", maxX-2, maxY-2, maxX, maxY); err == nil || err == gocui.ErrUnknownView {
		v.Frame = false
		v.Editable = true
		v.Editor = gocui.EditorFunc(t.edit)
		if _, err := g.SetCurrentView("input"); err != nil {
			return err
		}
	} else {
		return err
	}
	return nil
}

func (t *Terminal) headerLayout(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView("header", -1, -1, maxX+1, height)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Frame = false
	v.BgColor = gocui.ColorCyan
	v.FgColor = gocui.ColorBlack
	v.Clear()
	if len(text) > maxX {
		text = text[:maxX]
	}
	pad := (maxX - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	_, _ = fmt.Fprintln(v, strings.Repeat(" ", pad)+text)
	return nil
}

func (t *Terminal) renderStatus(v *gocui.View) {
	v.Clear()
	m := t.model
	_, _ = fmt.Fprintln(v, " "+m.Status)
	if m.Prompt != "" {
		_, _ = fmt.Fprintln(v, t.renderProp(m.Prompt, "%v_", m.Input))
	}
	if m.Error != "" {
		_, _ = fmt.Fprintln(v, " "+aurora.Red(m.Error).String())
	}
}

func (t *Terminal) renderField(v *gocui.View) {
	v.Clear()
	cells := t.model.Cells
	if cells == nil {
		return
	}

	crop := false
	maxW, maxH := v.Size()
	if len(cells) > maxH || (len(cells) > 0 && len(cells[0]) > maxW) {
		crop = true
	}

	var b bytes.Buffer
	for y, row := range cells {
		if y >= maxH {
			break
		}
		if y != 0 {
			b.WriteByte(10)
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red("The field is larger than the viewing area").BgBlack().String())
			break
		}
		for x, alive := range row {
			if x >= maxW {
				break
			}
			b.WriteString(t.filler(x, y, alive))
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (t *Terminal) filler(x, y int, alive bool) string {
	c := t.model.Cursor
	if c != nil && c.X == x && c.Y == y {
		if alive {
			return t.cursorLive
		}
		return t.cursorDead
	}
	if alive {
		return t.liveFiller
	}
	return t.deadFiller
}

func (t *Terminal) renderMenu(v *gocui.View) {
	v.Clear()
	_, maxH := v.Size()
	m := t.model

	//keep the selection visible by scrolling the window over the list
	top := 0
	if m.Selected >= maxH {
		top = m.Selected - maxH + 1
	}
	for i := top; i < len(m.Menu) && i-top < maxH; i++ {
		line := " " + m.Menu[i]
		if i == m.Selected {
			line = aurora.Reverse(">" + m.Menu[i]).String()
		}
		_, _ = fmt.Fprintln(v, line)
	}
}

func (t *Terminal) renderLegend(v *gocui.View) {
	v.Clear()
	var b bytes.Buffer
	b.WriteString("KEYS: ")
	for i, h := range t.model.Legend {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(h.Key).String())
		b.WriteString(": ")
		b.WriteString(h.Action)
	}
	_, _ = fmt.Fprintln(v, b.String())
}

func (t *Terminal) renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}
