package session

import (
	"fmt"

	"golife/src/pattern"
)

//Edit is cursor-driven manual cell toggling. The cursor clamps to
//the field; toggling goes through Grid.Set like every other edit.
//A working snapshot can be stashed to and restored from the store.
type Edit struct {
	blocking
	s    *Session
	x, y int
	err  string
}

func NewEdit(s *Session) *Edit {
	return &Edit{s: s}
}

func (e *Edit) Render() RenderModel {
	return RenderModel{
		Title:  "Edit",
		Status: fmt.Sprintf("cursor (%v,%v)", e.x, e.y),
		Error:  e.err,
		Cells:  e.s.Grid.Snapshot(),
		Cursor: &Point{X: e.x, Y: e.y},
		Legend: []Hint{
			{"arrows", "move"},
			{"space", "toggle"},
			{"t", "snapshot"},
			{"r", "restore"},
			{"esc", "done"},
		},
	}
}

func (e *Edit) Handle(ev Event) State {
	if ev.Kind == EventClosed {
		return NewEnd()
	}
	e.err = ""
	switch ev.Kind {
	case EventUp:
		e.move(0, -1)
	case EventDown:
		e.move(0, 1)
	case EventLeft:
		e.move(-1, 0)
	case EventRight:
		e.move(1, 0)
	case EventSpace, EventEnter:
		e.toggle()
	case EventEsc:
		return NewMain(e.s)
	case EventRune:
		switch ev.Rune {
		case 't':
			e.snapshot()
		case 'r':
			e.restore()
		}
	}
	return e
}

func (e *Edit) move(dx, dy int) {
	e.x = clamp(e.x+dx, 0, e.s.Grid.Width()-1)
	e.y = clamp(e.y+dy, 0, e.s.Grid.Height()-1)
}

func (e *Edit) toggle() {
	g := e.s.Grid
	alive, err := g.Get(e.x, e.y)
	if err == nil {
		err = g.Set(e.x, e.y, !alive)
	}
	if err != nil {
		e.err = err.Error()
	}
}

func (e *Edit) snapshot() {
	data := pattern.Encode(pattern.FromGrid(e.s.Grid))
	if err := e.s.Store.Write(snapshotName, data); err != nil {
		e.err = err.Error()
	}
}

func (e *Edit) restore() {
	data, err := e.s.Store.Read(snapshotName)
	if err != nil {
		e.err = "no snapshot to restore"
		return
	}
	p, err := pattern.Decode(data)
	if err == nil {
		err = pattern.Apply(p, e.s.Grid)
	}
	if err != nil {
		e.err = err.Error()
		return
	}
	e.move(0, 0)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
