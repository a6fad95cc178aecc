package session

import (
	"strings"
	"unicode"

	"golife/src/pattern"
)

//Save collects a destination name, then encodes the grid and writes
//it to the store. Escape discards the buffer.
type Save struct {
	blocking
	s   *Session
	buf []rune
	err string
}

func NewSave(s *Session) *Save {
	return &Save{s: s}
}

func (sv *Save) Render() RenderModel {
	return RenderModel{
		Title:  "Save",
		Status: "name the pattern",
		Error:  sv.err,
		Cells:  sv.s.Grid.Snapshot(),
		Prompt: "save as",
		Input:  string(sv.buf),
		Legend: []Hint{
			{"enter", "save"},
			{"esc", "cancel"},
		},
	}
}

func (sv *Save) Handle(ev Event) State {
	if ev.Kind == EventClosed {
		return NewEnd()
	}
	sv.err = ""
	switch ev.Kind {
	case EventRune:
		if unicode.IsPrint(ev.Rune) {
			sv.buf = append(sv.buf, ev.Rune)
		}
	case EventSpace:
		sv.buf = append(sv.buf, ' ')
	case EventBackspace:
		if len(sv.buf) > 0 {
			sv.buf = sv.buf[:len(sv.buf)-1]
		}
	case EventEnter:
		name := strings.TrimSpace(string(sv.buf))
		if name == "" {
			sv.err = "name must not be empty"
			return sv
		}
		codec, ok := pattern.ForName(name)
		if !ok {
			name += pattern.Ext
			codec, _ = pattern.ForName(name)
		}
		data := codec.Encode(pattern.FromGrid(sv.s.Grid))
		if err := sv.s.Store.Write(name, data); err != nil {
			sv.err = err.Error()
			return sv
		}
		return NewMain(sv.s)
	case EventEsc:
		return NewMain(sv.s)
	}
	return sv
}
