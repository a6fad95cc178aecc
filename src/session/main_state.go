package session

import (
	"fmt"
	"time"
)

//Main is the default view. It dispatches single-letter commands and
//carries the autorun sub-mode: same command set, same grid, but the
//input wait is bounded so generations advance on a timer.
type Main struct {
	s       *Session
	autorun bool
}

func NewMain(s *Session) *Main {
	return &Main{s: s}
}

var mainLegend = []Hint{
	{"n", "next"},
	{"a", "autorun"},
	{"c", "clear"},
	{"r", "random"},
	{"e", "edit"},
	{"l", "load"},
	{"s", "save"},
	{"f", "config"},
	{"q", "quit"},
}

func (m *Main) Render() RenderModel {
	g := m.s.Grid
	status := fmt.Sprintf("gen %v · alive %v · rule %v · wrap %v",
		g.Generation(), g.LiveCells(), g.Rules(), onOff(g.Wrap()))
	legend := mainLegend
	if m.autorun {
		status += fmt.Sprintf(" · autorun %v", m.s.Interval)
		legend = []Hint{{"any key", "stop"}}
	}
	return RenderModel{
		Title:  "Life",
		Status: status,
		Cells:  g.Snapshot(),
		Legend: legend,
	}
}

func (m *Main) WaitTimeout() time.Duration {
	if m.autorun {
		return m.s.Interval
	}
	return 0
}

func (m *Main) Handle(ev Event) State {
	if ev.Kind == EventClosed {
		return NewEnd()
	}
	if m.autorun {
		if ev.Kind == EventTick {
			m.s.Grid.NextGeneration()
			return m
		}
		//a key during autorun only cancels; it is never also
		//executed as a command
		m.autorun = false
		return m
	}
	if ev.Kind != EventRune {
		return m
	}
	switch ev.Rune {
	case 'n':
		m.s.Grid.NextGeneration()
	case 'a':
		m.autorun = true
	case 'c':
		m.s.Grid.Clear()
	case 'r':
		m.s.Grid.Randomize(m.s.Density)
	case 'e':
		return NewEdit(m.s)
	case 'l':
		return NewLoad(m.s)
	case 's':
		return NewSave(m.s)
	case 'f':
		return NewConfig(m.s)
	case 'q', 'x':
		return NewEnd()
	}
	return m
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
