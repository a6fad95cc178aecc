package session

import (
	"fmt"

	"golife/src/pattern"
)

//Load lists the store's pattern files for selection. Decode or store
//failures surface in place; the state only leaves for Main on a
//successful apply or on escape.
type Load struct {
	blocking
	s     *Session
	files []string
	sel   int
	err   string
}

func NewLoad(s *Session) *Load {
	l := &Load{s: s}
	files, err := s.Store.List()
	if err != nil {
		l.err = err.Error()
	}
	l.files = files
	return l
}

func (l *Load) Render() RenderModel {
	return RenderModel{
		Title:    "Load",
		Status:   fmt.Sprintf("%v pattern(s)", len(l.files)),
		Error:    l.err,
		Menu:     l.files,
		Selected: l.sel,
		Legend: []Hint{
			{"up/down", "select"},
			{"enter", "load"},
			{"esc", "cancel"},
		},
	}
}

func (l *Load) Handle(ev Event) State {
	if ev.Kind == EventClosed {
		return NewEnd()
	}
	switch ev.Kind {
	case EventUp:
		l.sel = clamp(l.sel-1, 0, max(len(l.files)-1, 0))
	case EventDown:
		l.sel = clamp(l.sel+1, 0, max(len(l.files)-1, 0))
	case EventEnter:
		//enter retries an operation, so only it clears the last
		//surfaced error; navigation keeps it visible
		l.err = ""
		if len(l.files) == 0 {
			l.err = "nothing to load"
			return l
		}
		if err := l.load(l.files[l.sel]); err != nil {
			l.err = err.Error()
			return l
		}
		return NewMain(l.s)
	case EventEsc:
		return NewMain(l.s)
	}
	return l
}

func (l *Load) load(name string) error {
	data, err := l.s.Store.Read(name)
	if err != nil {
		return err
	}
	codec, ok := pattern.ForName(name)
	if !ok {
		return fmt.Errorf("no codec for %q", name)
	}
	p, err := codec.Decode(data)
	if err != nil {
		return err
	}
	return pattern.Apply(p, l.s.Grid)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
