package session

import "fmt"

//Start is the splash state: any key enters Main.
type Start struct {
	blocking
	s *Session
}

func NewStart(s *Session) *Start {
	return &Start{s: s}
}

func (st *Start) Render() RenderModel {
	g := st.s.Grid
	return RenderModel{
		Title:  "The Game of Life",
		Status: fmt.Sprintf("%vx%v field, rule %v", g.Width(), g.Height(), g.Rules()),
		Cells:  g.Snapshot(),
		Legend: []Hint{{"any key", "begin"}},
	}
}

func (st *Start) Handle(ev Event) State {
	if ev.Kind == EventClosed {
		return NewEnd()
	}
	if ev.isKey() {
		return NewMain(st.s)
	}
	return st
}
